// Package solver — branching-edge selection.
package solver

import "github.com/katalvlaran/heldkarp/core"

// edgeToBranchOn picks the edge the controller splits on next: among the
// last 1-tree's Available edges incident to a node whose tree degree ≠ 2,
// the one of maximum reduced (penalty-adjusted) cost. Excluding an
// expensive degree-violating edge perturbs the 1-tree most, and fixing it
// commits the most constrained decision first.
//
// Ties break by smaller endpoint id, then the larger, keeping the search
// tree identical across runs.
//
// ok=false means every tree edge is Fixed or all degrees are 2 already;
// the caller prunes (the degree-2 case is handled earlier as a tour).
func edgeToBranchOn(eng *oneTreeEngine, tree []core.Edge) (core.Edge, bool) {
	var (
		best     core.Edge
		bestCost core.ScaledDistance
		found    bool

		i int
		e core.Edge
		c core.ScaledDistance
	)
	for i = 0; i < len(tree); i++ {
		e = tree[i]
		if eng.states.GetRowBigger(e.U, e.V) != EdgeAvailable {
			continue
		}
		if eng.deg[e.U] == 2 && eng.deg[e.V] == 2 {
			continue
		}

		c = eng.reduced(e.U, e.V)
		switch {
		case !found, c > bestCost:
			best, bestCost, found = e, c, true
		case c == bestCost:
			// Equal cost: prefer the smaller endpoint pair (V is the
			// smaller endpoint of a normalised edge).
			if e.V < best.V || (e.V == best.V && e.U < best.U) {
				best = e
			}
		}
	}

	return best, found
}
