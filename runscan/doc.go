// Package runscan computes run lengths of passable cells along grid lines.
//
// What:
//
//   - Line produces, for one row or one column, the length of the passable
//     run ending at every position: 0 on a blocked cell, previous+1 on a
//     passable one.
//   - Longest sweeps every row and column at once and returns the longest
//     run anywhere in the grid — the "longest line" answer.
//
// Why:
//
//   - The crossing oracle consumes Line twice per feasibility check (rows
//     in phase 1, columns in phase 2); Longest is the entire simple mode.
//
// Contracts:
//
//   - Line is a pure function of the grid: no retained state, deterministic
//     output. Callers may pass a scratch slice to avoid reallocation.
//   - An Axis other than Columns scans a row, mirroring how connectivity
//     defaults are resolved elsewhere in this module.
//
// Complexity: Line O(n) per call; Longest O(n²) for the whole grid.
package runscan
