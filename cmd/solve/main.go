// Command solve reads a TSPLIB95 instance and prints an optimal tour.
//
// Usage:
//
//	solve <path/to/instance.tsp>
//
// On success the tour edges and the optimal cost are printed and the exit
// code is 0. Failures print a single categorised message on stderr and exit
// nonzero. Set HELDKARP_DEBUG=1 for progress logging on stderr.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/heldkarp/solver"
	"github.com/katalvlaran/heldkarp/tsplib"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: solve <path/to/instance.tsp>")
		os.Exit(2)
	}

	var debug = os.Getenv("HELDKARP_DEBUG") != ""

	inst, err := tsplib.ParseFile(os.Args[1])
	if err != nil {
		fail(err)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "parsed %s: n=%d, metric=%s\n",
			inst.Meta.Name, inst.Meta.Dimension, inst.Meta.EdgeWeightType)
	}

	start := time.Now()
	tour, err := solver.Solve(inst.Dist, solver.DefaultOptions())
	if err != nil {
		fail(err)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "solved in %v\n", time.Since(start))
	}

	for _, e := range tour.Edges {
		fmt.Printf("%d %d\n", e.V, e.U)
	}
	fmt.Printf("cost %d\n", tour.Cost)
}

// fail prints one categorised message and exits nonzero.
func fail(err error) {
	var category string
	switch {
	case errors.Is(err, tsplib.ErrIO):
		category = "io"
	case errors.Is(err, tsplib.ErrUnsupported):
		category = "unsupported"
	case errors.Is(err, tsplib.ErrDataSection):
		category = "data"
	case errors.Is(err, solver.ErrNoTour):
		category = "infeasible"
	default:
		category = "format"
	}
	fmt.Fprintf(os.Stderr, "solve: %s error: %v\n", category, err)
	os.Exit(1)
}
