package crossing_test

import (
	"fmt"

	"github.com/MikolajKolek/crossgrid/crossing"
	"github.com/MikolajKolek/crossgrid/grid"
)

// ExampleMax finds the largest threshold for which a distinct pair of
// horizontal and vertical runs exists.
func ExampleMax() {
	g, _ := grid.Parse([]string{
		"...",
		"...",
		"...",
	}, grid.DefaultOptions())

	fmt.Println(crossing.Max(g))
	// Output:
	// 3
}

// ExampleSolve dispatches between the two shape families on a grid where
// they disagree: one long row hosts two length-2 runs, but no length-3
// pair exists.
func ExampleSolve() {
	g, _ := grid.Parse([]string{
		"....",
		"####",
		"#.##",
		"####",
	}, grid.DefaultOptions())

	fmt.Println("longest line:", crossing.Solve(g, crossing.ModeLongestLine))
	fmt.Println("crossing:    ", crossing.Solve(g, crossing.ModeCrossing))
	// Output:
	// longest line: 4
	// crossing:     2
}

// ExampleFeasible probes single thresholds of the oracle directly.
func ExampleFeasible() {
	g, _ := grid.Parse([]string{
		"#.#",
		".#.",
		"#.#",
	}, grid.DefaultOptions())

	fmt.Println("k=1:", crossing.Feasible(g, 1))
	fmt.Println("k=2:", crossing.Feasible(g, 2))
	// Output:
	// k=1: true
	// k=2: false
}
