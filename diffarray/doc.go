// Package diffarray implements a per-row difference array: a table
// supporting O(1) half-open range increments on each row and, after one
// prefix-summing pass, O(1) point queries of how many registered ranges
// cover a cell.
//
// What:
//
//   - Table is a rows×cols integer matrix in difference form.
//   - RangeAdd(row, lo, hi) marks the interval [lo, hi) on one row.
//   - Materialize prefix-sums every row, turning marks into cover counts.
//   - At(row, col) then reads the cover count of one cell.
//   - Window walks one column downward, maintaining the sum of At over a
//     trailing window of rows.
//
// Why:
//
//	The crossing oracle registers every qualifying horizontal run as a
//	column interval on its row, then needs, per cell of a vertical sweep,
//	the number of registrations within the last k rows of one column. The
//	difference-array-plus-prefix-sum pattern answers that in O(1) per cell.
//
// Contracts:
//
//   - A Table moves through two states: accumulating (RangeAdd allowed)
//     and materialized (At and Window allowed). Materialize flips the
//     state once; interleaving the two phases is a programming defect.
//   - Out-of-range indices panic, they are never recoverable errors.
//
// Complexity: RangeAdd O(1); Materialize O(rows·cols); At O(1); a full
// Window walk over one column O(rows).
package diffarray
