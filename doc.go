// Package crossgrid answers one combinatorial question about an n×n boolean
// grid of passable and blocked cells: the largest k for which a qualifying
// shape of size k fits inside the passable region.
//
// 🚀 What is crossgrid?
//
//	A small, pure-Go library built from four cooperating packages:
//		• grid/      — the immutable n×n boolean grid and its parser
//		• runscan/   — run-length sweeps along rows and columns
//		• diffarray/ — range-add / point-query tables via prefix sums
//		• crossing/  — the feasibility oracle and the monotone search
//
// Two shape families are supported:
//
//   - Longest line: the longest contiguous run of passable cells found in
//     any single row or column. A single O(n²) sweep (runscan.Longest).
//
//   - Crossing: the largest k such that a horizontal run of length ≥ k and
//     a vertical run of length ≥ k share a free cell, under a non-reuse
//     rule that demands a genuinely distinct pair of runs. Decided per k
//     by crossing.Feasible in O(n²) and maximized by crossing.Max with a
//     binary search over [0, n+1), for O(n² log n) total.
//
// ✨ Why choose crossgrid?
//
//   - Single-shot & in-memory – no I/O, no persistence, no goroutines
//   - Strict sentinels – construction errors are fixed, comparable values
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example (n = 4, '.' passable, '#' blocked):
//
//	. . . .
//	# # # #
//	. # . #
//	# . # .
//
// Longest line = 4 (the top row); crossing answer = 2 (the top row is long
// enough to host two independent length-2 runs, and no k = 3 pair exists).
//
// See each package's doc.go for contracts and complexity notes, and
// cmd/crossgrid for the stdin/stdout front end.
//
//	go get github.com/MikolajKolek/crossgrid
package crossgrid
