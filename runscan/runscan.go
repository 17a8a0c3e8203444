package runscan

import "github.com/MikolajKolek/crossgrid/grid"

// Line computes run lengths along one line of g. For axis Rows, index is a
// row and position t walks columns; for axis Columns, index is a column and
// position t walks rows. The result r satisfies r[t] = 0 when the cell at
// position t is blocked, else r[t-1]+1 (with r[-1] = 0).
//
// dst is reused as the output buffer when its capacity suffices, so callers
// in a loop can allocate once. The returned slice is always length g.N().
//
// Complexity: O(n) time, O(1) extra memory when dst is reused.
func Line(g *grid.Grid, axis Axis, index int, dst []int) []int {
	n := g.N()
	if cap(dst) < n {
		dst = make([]int, n)
	} else {
		dst = dst[:n]
	}

	run := 0
	for t := 0; t < n; t++ {
		var passable bool
		if axis == Columns {
			passable = g.Passable(t, index)
		} else {
			passable = g.Passable(index, t)
		}
		if passable {
			run++
		} else {
			run = 0
		}
		dst[t] = run
	}

	return dst
}

// Longest returns the length of the longest contiguous run of passable
// cells found in any single row or column of g. Both axes are swept in one
// pass over the grid.
//
// Complexity: O(n²) time, O(1) memory.
func Longest(g *grid.Grid) int {
	n := g.N()
	best := 0
	for i := 0; i < n; i++ {
		row, col := 0, 0
		for t := 0; t < n; t++ {
			if g.Passable(i, t) {
				row++
			} else {
				row = 0
			}
			if g.Passable(t, i) {
				col++
			} else {
				col = 0
			}
			if row > best {
				best = row
			}
			if col > best {
				best = col
			}
		}
	}

	return best
}
