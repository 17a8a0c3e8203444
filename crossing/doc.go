// Package crossing decides, for an n×n boolean grid, the largest k such
// that a horizontal run of passable cells of length ≥ k and a vertical run
// of length ≥ k can be placed as a genuinely distinct pair — the "crossing"
// shape family of crossgrid.
//
// What:
//
//   - Feasible(g, k) is the boolean oracle for one threshold k: a
//     two-phase sweep over rows then columns, backed by a diffarray.Table
//     that counts, per cell, how many qualifying horizontal runs cover a
//     column within the trailing k rows.
//   - Max(g) binary-searches the largest feasible k over [0, n+1),
//     exploiting that Feasible is monotone non-increasing in k.
//   - Solve(g, mode) dispatches between the crossing search and the plain
//     longest-line sweep (runscan.Longest).
//
// Why:
//
//	A direct search over run pairs is quartic; the oracle answers one
//	threshold in O(n²), so the monotone search settles the maximum in
//	O(n² log n) overall.
//
// How the oracle certifies feasibility, per sweep axis:
//
//   - Witness certificate: the lexicographically smallest coordinate of
//     any qualifying run seen so far on the axis. When a later qualifying
//     run ends at (line, pos) and the witness lies at or before
//     (line, pos−k), the two observations are far enough apart to stand
//     on their own, and the sweep exits early.
//   - Distinct-crossing certificate (columns only): when the number of
//     horizontal-run registrations covering the current vertical run's
//     trailing k-row span is strictly below the phase-1 total, some
//     horizontal run is still unclaimed by this vertical run.
//
// The exact tie-break of the witness comparison is authoritative over any
// rederivation; the exhaustive differential test against a linear scan of
// the oracle pins it down.
//
// Contracts:
//
//   - Feasible builds all scratch state (difference table, counters,
//     witnesses) fresh per call; nothing is shared across calls, and the
//     grid is only read.
//   - Feasible(g, k) is trivially true for k ≤ 0 and false for k > n.
//
// Complexity: Feasible O(n²) time and memory; Max O(n² log n).
package crossing
