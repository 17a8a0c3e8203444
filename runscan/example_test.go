package runscan_test

import (
	"fmt"

	"github.com/MikolajKolek/crossgrid/grid"
	"github.com/MikolajKolek/crossgrid/runscan"
)

// ExampleLine shows the run-length recurrence along one row: a blocked cell
// resets the run to zero, a passable cell extends it by one.
func ExampleLine() {
	g, _ := grid.Parse([]string{
		"..#.",
		"....",
		"#..#",
		"....",
	}, grid.DefaultOptions())

	fmt.Println("row 0:", runscan.Line(g, runscan.Rows, 0, nil))
	fmt.Println("col 3:", runscan.Line(g, runscan.Columns, 3, nil))
	// Output:
	// row 0: [1 2 0 1]
	// col 3: [1 2 0 1]
}

// ExampleLongest computes the longest passable run in any row or column.
func ExampleLongest() {
	g, _ := grid.Parse([]string{
		".#..",
		".##.",
		".###",
		".###",
	}, grid.DefaultOptions())

	// Column 0 is fully passable.
	fmt.Println(runscan.Longest(g))
	// Output:
	// 4
}
