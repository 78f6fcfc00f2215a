// Package gridgraph treats a 2D grid of digit costs as a graph, the input
// model for constrained shortest-path searches.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of costs 0..9.
//   - Parse builds one from text: one row per line, one digit per cell.
//   - Point and Direction describe positions and the four orthogonal moves.
//
// Why:
//
//   - Heat-loss routing: the cost of a move is the cost of the cell entered.
//   - Any puzzle-style map where terrain difficulty is a single digit.
//
// Complexity:
//
//   - NewGridGraph, Parse: O(W×H) time and memory.
//   - InBounds, Cost, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonDigit: textual input contains a byte other than '0'..'9'.
//   - ErrCellRange: numeric input contains a value outside 0..9.
//
// Every format error is a *FormatError carrying the offending line and column.
package gridgraph
