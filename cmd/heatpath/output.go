package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/heatpath/config"
	"github.com/katalvlaran/heatpath/gridgraph"
	"github.com/katalvlaran/heatpath/solver"
)

// newLogger builds the slog handler selected by the configuration.
func newLogger(w io.Writer, c config.Log) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch c.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
}

// writeReports prints one line per variant:
//
//	[source ]variant: cost[ route]
//
// The source prefix is added when more than one input was solved.
func writeReports(w io.Writer, reports []solver.Report, withSource, withRoute bool) error {
	for _, rep := range reports {
		prefix := ""
		if withSource {
			prefix = rep.Source + " "
		}
		for _, a := range rep.Answers {
			var err error
			switch {
			case !a.Reachable:
				_, err = fmt.Fprintf(w, "%s%s: unreachable\n", prefix, a.Variant)
			case withRoute:
				_, err = fmt.Fprintf(w, "%s%s: %d %s\n", prefix, a.Variant, a.Cost, route(a.Path))
			default:
				_, err = fmt.Fprintf(w, "%s%s: %d\n", prefix, a.Variant, a.Cost)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// route renders a cell path as one arrow per move.
func route(path []gridgraph.Point) string {
	var sb strings.Builder
	for i := 1; i < len(path); i++ {
		sb.WriteByte(arrow(path[i-1], path[i]))
	}
	return sb.String()
}

func arrow(from, to gridgraph.Point) byte {
	for _, d := range gridgraph.Directions() {
		if from.Add(d) != to {
			continue
		}
		switch d {
		case gridgraph.Up:
			return '^'
		case gridgraph.Right:
			return '>'
		case gridgraph.Down:
			return 'v'
		case gridgraph.Left:
			return '<'
		}
	}
	return '?'
}
