// Package config loads and validates heatpath settings from YAML.
//
// Every field has a default (see Default), so an absent or empty file is a
// valid configuration that solves the two published constraint sets.
// A variants list in the file replaces the default list as a whole.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heatpath/dijkstra"
)

// Sentinel errors for configuration loading.
var (
	// ErrRead indicates the configuration file could not be read.
	ErrRead = errors.New("config: cannot read file")
	// ErrDecode indicates malformed YAML or an unknown key.
	ErrDecode = errors.New("config: cannot decode YAML")
	// ErrInvalid indicates a value failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete solver configuration.
type Config struct {
	// Workers bounds how many inputs are solved concurrently.
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
	// Variants lists the constraint sets solved for every input, in output order.
	Variants []Variant `yaml:"variants" validate:"required,min=1,unique=Name,dive"`
	Search   Search    `yaml:"search"`
	Log      Log       `yaml:"log"`
}

// Variant is a named constraint set.
type Variant struct {
	Name   string `yaml:"name" validate:"required"`
	MinRun int    `yaml:"min_run" validate:"gte=1"`
	MaxRun int    `yaml:"max_run" validate:"gtefield=MinRun"`
}

// Constraints converts v to search constraints.
func (v Variant) Constraints() dijkstra.Constraints {
	return dijkstra.Constraints{MinRun: v.MinRun, MaxRun: v.MaxRun}
}

// Search tunes every search run by the solver.
type Search struct {
	// MaxFrontier caps pending frontier entries; 0 derives a bound from the grid.
	MaxFrontier int `yaml:"max_frontier" validate:"gte=0"`
	// Impassable turns cells with cost >= this value into walls; 0 disables walls.
	Impassable int `yaml:"impassable" validate:"gte=0,lte=10"`
	// ReturnPath reconstructs the optimal route of every variant.
	ReturnPath bool `yaml:"return_path"`
}

// Options translates s into search options.
func (s Search) Options() []dijkstra.Option {
	var opts []dijkstra.Option
	if s.MaxFrontier > 0 {
		opts = append(opts, dijkstra.WithMaxFrontier(s.MaxFrontier))
	}
	if s.Impassable > 0 {
		opts = append(opts, dijkstra.WithImpassable(s.Impassable))
	}
	if s.ReturnPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	return opts
}

// Log selects the slog handler built by the command line.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration: part1 {1,3} and part2 {4,10},
// four workers, automatic frontier bound, info-level text logs.
func Default() Config {
	p1, p2 := dijkstra.Part1(), dijkstra.Part2()
	return Config{
		Workers: 4,
		Variants: []Variant{
			{Name: "part1", MinRun: p1.MinRun, MaxRun: p1.MaxRun},
			{Name: "part2", MinRun: p2.MinRun, MaxRun: p2.MaxRun},
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected. Empty input yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Parse(data)
}
