// Package grid defines the Grid type, parse options, and sentinel errors.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row")
	// ErrNotSquare indicates some row's length differs from the row count.
	ErrNotSquare = errors.New("grid: every row must be exactly n cells wide")
	// ErrBadMarker indicates Parse met a character that is neither the
	// passable nor the blocked marker.
	ErrBadMarker = errors.New("grid: unknown cell marker")
)

// Options contains tunable parameters for Parse.
type Options struct {
	// Passable is the byte marking a passable cell.
	Passable byte
	// Blocked is the byte marking a blocked cell.
	Blocked byte
}

// DefaultOptions returns an Options with the conventional markers:
// '.' passable, '#' blocked.
func DefaultOptions() Options {
	return Options{
		Passable: '.',
		Blocked:  '#',
	}
}

// Grid is an immutable n×n table of booleans: cells[i][j] reports whether
// the cell at row i, column j is passable. It is fixed after construction;
// both constructors deep-copy their input.
type Grid struct {
	n     int
	cells [][]bool
}
