// Package heatpath finds least-heat-loss crucible routes across digit grids.
//
// 🚀 What is heatpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: parse digit maps, bounds checks, directions
//		• Constrained shortest path: Dijkstra over (position, direction, run) states
//		• Solver: every constraint set per input, many inputs in parallel
//		• CLI: heatpath [file...], configuration in YAML
//
// ✨ Why states and not cells?
//
//   - A crucible may travel at most MaxRun cells in a straight line and must
//     travel at least MinRun before turning or stopping.
//   - Whether a move is allowed depends on how the cell was entered, so the
//     search settles each (cell, direction, run length) triple separately.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/    — digit cost grid, Point, Direction, format errors
//	dijkstra/     — constrained-state search, neighbor policy, options
//	solver/       — variants per input, batch solving, metrics & traces
//	config/       — YAML configuration with defaults and validation
//	cmd/heatpath/ — command line
//
// Quick ASCII example (part1: at most 3 in a row):
//
//	2>>34^>>>1323
//	32v>>>35v5623
//	32552456v>>54
//	...
//
// is the start of the 102-heat-loss route through the published example.
//
//	go install github.com/katalvlaran/heatpath/cmd/heatpath@latest
package heatpath
