// Package grid provides the immutable n×n boolean grid underlying every
// crossgrid computation.
//
// What:
//
//   - Grid wraps a square [][]bool table of passable/blocked cells.
//   - New builds a Grid from booleans; Parse builds one from marker strings
//     ('.' passable, '#' blocked by default, tunable via Options).
//   - Both constructors deep-copy their input: a Grid never mutates after
//     construction and never aliases caller memory.
//
// Why:
//
//   - Every downstream sweep (runscan, crossing) reads the same grid many
//     times; immutability makes those reads trivially safe to reason about.
//   - Parsing lives here so malformed input is rejected before any
//     computation starts.
//
// Contracts:
//
//   - n ≥ 1; a Grid with zero rows cannot be constructed (ErrEmptyGrid).
//   - Passable(i, j) is defined for 0 ≤ i, j < n only; out-of-range access
//     is a programming defect and panics, it is never a recoverable error.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows.
//   - ErrNotSquare: some row's length differs from the row count.
//   - ErrBadMarker: Parse met a character that is neither marker.
//
// Complexity: construction O(n²) time and memory; Passable O(1).
package grid
