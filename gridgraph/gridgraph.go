// Package gridgraph provides utilities to treat a 2D grid of single-digit
// cell costs as a graph. It supports:
//
//   - Construction from [][]int or from digit text (one row per line)
//   - Bounds checks and row-major index/coordinate conversion
//   - Four-directional moves via the Direction enumeration
//
// Entering a cell costs that cell's value; leaving a cell is free.
package gridgraph

import (
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrCellRange if a value
// lies outside [MinCost, MaxCost]. Errors are reported as *FormatError.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, &FormatError{Err: ErrEmptyGrid}
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, &FormatError{Line: y + 1, Err: ErrNonRectangular}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < MinCost || v > MaxCost {
				return nil, &FormatError{Line: y + 1, Column: x + 1, Err: ErrCellRange}
			}
			cells[y][x] = v
		}
	}

	return &GridGraph{Width: w, Height: h, CellValues: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether p lies within the grid boundaries.
func (gg *GridGraph) Contains(p Point) bool {
	return gg.InBounds(p.X, p.Y)
}

// Cost returns the cost of entering cell p. p must be in bounds.
func (gg *GridGraph) Cost(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// Start is the top-left cell.
func (gg *GridGraph) Start() Point { return Point{} }

// Goal is the bottom-right cell.
func (gg *GridGraph) Goal() Point { return Point{X: gg.Width - 1, Y: gg.Height - 1} }

// Cells returns Width×Height.
func (gg *GridGraph) Cells() int { return gg.Width * gg.Height }

// Index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// String renders the grid as digit rows separated by newlines,
// the same form accepted by Parse.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow(gg.Height * (gg.Width + 1))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			sb.WriteByte(byte('0' + gg.CellValues[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
