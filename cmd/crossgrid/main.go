// Command crossgrid reads a grid query from stdin and prints the answer.
//
// Input format: two integers n and m on the first line (dimension and mode
// selector), followed by n rows of n marker characters. Mode m = 1 asks for
// the longest passable line; any other m asks for the crossing maximum.
//
// The single resulting integer is written to stdout. Malformed input is
// rejected here, before any computation runs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/MikolajKolek/crossgrid/crossing"
	"github.com/MikolajKolek/crossgrid/grid"
)

var log = logrus.New()

var (
	passable = flag.String("passable", ".", "marker for passable cells (one byte)")
	blocked  = flag.String("blocked", "#", "marker for blocked cells (one byte)")
	verbose  = flag.Bool("v", false, "enable debug logging")
)

func setupLogging() {
	logLevel := logrus.InfoLevel
	if *verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func markerOptions() grid.Options {
	opts := grid.DefaultOptions()
	if len(*passable) != 1 || len(*blocked) != 1 {
		log.Fatal("markers must be exactly one byte each")
	}
	opts.Passable = (*passable)[0]
	opts.Blocked = (*blocked)[0]
	if opts.Passable == opts.Blocked {
		log.Fatal("passable and blocked markers must differ")
	}
	return opts
}

func main() {
	flag.Parse()
	setupLogging()

	in := bufio.NewReader(os.Stdin)

	var n, m int
	if _, err := fmt.Fscan(in, &n, &m); err != nil {
		log.Fatal("reading dimension and mode: ", err)
	}
	if n < 1 {
		log.Fatalf("grid dimension must be positive, got %d", n)
	}

	lines := make([]string, n)
	for i := range lines {
		if _, err := fmt.Fscan(in, &lines[i]); err != nil {
			log.Fatalf("reading row %d: %v", i, err)
		}
	}

	g, err := grid.Parse(lines, markerOptions())
	if err != nil {
		log.Fatal("parsing grid: ", err)
	}

	mode := crossing.ModeCrossing
	if m == 1 {
		mode = crossing.ModeLongestLine
	}
	log.Debugf("n=%d mode=%s", n, mode)

	fmt.Println(crossing.Solve(g, mode))
}
