package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes caps a single input row.
const maxLineBytes = 1 << 20

// Parse reads a digit grid from r: one row per line, each byte '0'..'9'.
// A final newline is optional and "\r\n" line endings are accepted.
// Empty input yields ErrEmptyGrid, a row of a different length (including a
// blank line) yields ErrNonRectangular, and any other byte yields ErrNonDigit.
// All format problems are returned as *FormatError; read failures are wrapped.
func Parse(r io.Reader) (*GridGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var cells [][]int
	width := -1
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if width < 0 {
			if text == "" {
				return nil, &FormatError{Line: line, Err: ErrEmptyGrid}
			}
			width = len(text)
		}
		if len(text) != width {
			return nil, &FormatError{Line: line, Err: ErrNonRectangular}
		}
		row := make([]int, width)
		for x := 0; x < width; x++ {
			c := text[x]
			if c < '0' || c > '9' {
				return nil, &FormatError{Line: line, Column: x + 1, Err: ErrNonDigit}
			}
			row[x] = int(c - '0')
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading input: %w", err)
	}
	if len(cells) == 0 {
		return nil, &FormatError{Err: ErrEmptyGrid}
	}

	return &GridGraph{Width: width, Height: len(cells), CellValues: cells}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*GridGraph, error) {
	return Parse(strings.NewReader(s))
}
