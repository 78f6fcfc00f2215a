// Package gridgraph defines core types, directions, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/heatpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonDigit indicates a character other than '0'..'9' in textual input.
	ErrNonDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrCellRange indicates a numeric cell value outside [MinCost, MaxCost].
	ErrCellRange = errors.New("gridgraph: cell cost out of range")
)

// Cell cost bounds. Every cell holds a single decimal digit.
const (
	MinCost = 0
	MaxCost = 9
)

// FormatError reports a malformed grid together with its position in the input.
// Line and Column are 1-based; Column is 0 when the error concerns a whole row.
// Err is one of the package sentinels, so errors.Is works through it.
type FormatError struct {
	Line   int
	Column int
	Err    error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch {
	case e.Line == 0:
		return e.Err.Error()
	case e.Column == 0:
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	default:
		return fmt.Sprintf("%v (line %d, column %d)", e.Err, e.Line, e.Column)
	}
}

// Unwrap returns the underlying sentinel.
func (e *FormatError) Unwrap() error { return e.Err }

// Direction is one of the four unit moves on the grid, or None for a state
// that has not moved yet.
type Direction uint8

const (
	// None marks the synthetic start state; it has no reverse and no delta.
	None Direction = iota
	// Up moves toward row 0.
	Up
	// Right moves toward higher columns.
	Right
	// Down moves toward higher rows.
	Down
	// Left moves toward column 0.
	Left
)

// Directions returns the four movement directions in a fixed order:
// Up, Right, Down, Left. A fresh array is returned on every call.
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}

// Delta returns the unit vector (dx, dy) of d. None yields (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Reverse returns the negated direction. None is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// String returns a short human-readable name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point as "x,y", the same form used for vertex IDs.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// GridGraph treats a 2D digit grid as an implicit 4-connected graph whose
// edge weight is the cost of the cell being entered. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the cell cost.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
}
