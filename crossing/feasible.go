package crossing

import (
	"github.com/MikolajKolek/crossgrid/diffarray"
	"github.com/MikolajKolek/crossgrid/grid"
	"github.com/MikolajKolek/crossgrid/runscan"
)

// Feasible reports whether a distinct pair of qualifying runs of length
// ≥ k exists in g. The predicate is monotone non-increasing in k, which
// Max exploits; no caller depends on anything beyond the boolean.
//
// Two-phase sweep:
//
// Phase 1 walks every row. Each time a horizontal run reaches length ≥ k
// at (i, j) it either fires the witness certificate (see types.go) or is
// counted and registered as the column interval [j-k+1, j+1) on row i of
// a difference table.
//
// Phase 2 materializes the table and walks every column, keeping the sum
// of registrations over the trailing k rows. A vertical run reaching
// length ≥ k fires either the witness certificate or the distinct-crossing
// one: the trailing sum falling strictly below the phase-1 count means at
// least one horizontal run is unclaimed by this vertical span.
//
// All scratch state is rebuilt per call.
//
// Complexity: O(n²) time and memory.
func Feasible(g *grid.Grid, k int) bool {
	n := g.N()
	if k <= 0 {
		return true
	}
	if k > n {
		return false
	}

	var (
		horizontal witness
		vertical   witness
		runs       int
		cover      = diffarray.New(n, n+1)
		buf        = make([]int, n)
	)

	// Phase 1: rows.
	for i := 0; i < n; i++ {
		buf = runscan.Line(g, runscan.Rows, i, buf)
		for j, r := range buf {
			if r < k {
				continue
			}
			horizontal.observe(i, j)
			if horizontal.certifies(i, j, k) {
				return true
			}
			runs++
			cover.RangeAdd(i, j-k+1, j+1)
		}
	}

	cover.Materialize()

	// Phase 2: columns.
	for i := 0; i < n; i++ {
		buf = runscan.Line(g, runscan.Columns, i, buf)
		win := cover.Window(i, k)
		for j, r := range buf {
			claimed := win.Next()
			if r < k {
				continue
			}
			vertical.observe(i, j)
			if vertical.certifies(i, j, k) {
				return true
			}
			if claimed < runs {
				return true
			}
		}
	}

	return false
}

// Max returns the largest k in [0, n] for which Feasible(g, k) holds.
// Binary search over the half-open range [0, n+1): a stays feasible
// (trivially at 0), b stays infeasible (trivially at n+1); bisect until
// they are adjacent.
//
// Complexity: O(n² log n).
func Max(g *grid.Grid) int {
	a, b := 0, g.N()+1
	for b-a > 1 {
		mid := a + (b-a)/2
		if Feasible(g, mid) {
			a = mid
		} else {
			b = mid
		}
	}

	return a
}

// Solve computes the answer for g under the given mode: the longest-line
// sweep for ModeLongestLine, the crossing maximum for every other value.
func Solve(g *grid.Grid, mode Mode) int {
	if mode == ModeLongestLine {
		return runscan.Longest(g)
	}

	return Max(g)
}
