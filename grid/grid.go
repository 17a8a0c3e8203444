package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty square 2D slice of booleans,
// where true means passable. It deep-copies the input to ensure
// immutability. Returns ErrEmptyGrid if rows is empty, ErrNotSquare if any
// row's length differs from len(rows).
// Complexity: O(n²) time and memory.
func New(rows [][]bool) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, i, len(row), n)
		}
		cells[i] = make([]bool, n)
		copy(cells[i], row)
	}

	return &Grid{n: n, cells: cells}, nil
}

// Parse constructs a Grid from n strings of n marker characters each,
// using opts to interpret the markers. Returns ErrEmptyGrid, ErrNotSquare,
// or ErrBadMarker on malformed input.
// Complexity: O(n²) time and memory.
func Parse(lines []string, opts Options) (*Grid, error) {
	n := len(lines)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, n)
	for i, line := range lines {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, i, len(line), n)
		}
		cells[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			switch line[j] {
			case opts.Passable:
				cells[i][j] = true
			case opts.Blocked:
				// already false
			default:
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrBadMarker, line[j], i, j)
			}
		}
	}

	return &Grid{n: n, cells: cells}, nil
}

// N returns the grid dimension.
// Complexity: O(1).
func (g *Grid) N() int {
	return g.n
}

// Passable reports whether the cell at row i, column j is passable.
// Defined for 0 ≤ i, j < n; out-of-range coordinates panic.
// Complexity: O(1).
func (g *Grid) Passable(i, j int) bool {
	return g.cells[i][j]
}

// String renders the grid with the default markers, one row per line.
// Intended for debugging and test output.
func (g *Grid) String() string {
	opts := DefaultOptions()
	var b strings.Builder
	b.Grow(g.n * (g.n + 1))
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if g.cells[i][j] {
				b.WriteByte(opts.Passable)
			} else {
				b.WriteByte(opts.Blocked)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
