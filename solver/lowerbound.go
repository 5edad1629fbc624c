// Package solver — the Held–Karp Lagrangian lower bound.
//
// The degree-2 constraint of a tour is relaxed into per-node penalties:
// under penalty vector π the cost of a 1-tree T is
//
//	L(π) = Σ_{(u,v)∈T} (scaled(u,v) − π[u] − π[v]) + 2·Σ π
//
// which is a valid lower bound on the scaled optimal tour cost for every π.
// The loop alternates minimum-1-tree construction with a subgradient update
// of π driven by the per-node degree deviation δ[v] = 2 − deg_T(v), and
// short-circuits when the 1-tree is already a tour (Σδ² = 0) or the bound
// reaches the incumbent upper bound.
package solver

import (
	"math"

	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/symmat"
)

// lbKind discriminates the outcome of a lower-bound computation.
type lbKind int

const (
	// lbInfeasible: no 1-tree exists under the branch's edge states.
	lbInfeasible lbKind = iota

	// lbBound: a lower bound plus the last 1-tree (branching material).
	lbBound

	// lbTour: the 1-tree converged to a Hamiltonian cycle.
	lbTour
)

// lbResult is the outcome of heldKarpLowerBound. tree aliases the engine's
// edge buffer and is valid until the engine's next build; tour owns its
// edges.
type lbResult struct {
	kind  lbKind
	bound core.Distance
	tree  []core.Edge
	tour  core.Tour
}

// heldKarpLowerBound iterates 1-tree construction and subgradient penalty
// updates. The incumbent upper bound is re-read from the shared cell every
// iteration so concurrent improvements tighten the stopping test at once.
//
// The penalty vector eng.pen is updated in place; it belongs to the branch
// and carries warm-started penalties into child nodes.
//
// Stopping conditions, in test order per iteration: infeasible 1-tree;
// bound ≥ incumbent (prune); Σδ² = 0 (tour found); iteration budget;
// step ≤ minStep (stalled schedule).
//
// Complexity: O(maxIterations · n²) time.
func heldKarpLowerBound(
	eng *oneTreeEngine,
	dist *symmat.Sym[core.Distance],
	inc *incumbent,
	maxIterations int,
	beta float64,
) lbResult {
	var (
		bestLB    = core.ScaledMin
		alpha     = initialAlpha
		iterCount int

		tree  []core.Edge
		ok    bool
		i     int
		v     int
		delta int32
	)

	for {
		tree, ok = eng.build()
		if !ok {
			return lbResult{kind: lbInfeasible}
		}

		scaledUpper := core.ScaleDistance(inc.upperBound())
		treeCost := lagrangianValue(eng, tree)

		if treeCost > bestLB {
			bestLB = treeCost
		}
		if treeCost >= scaledUpper {
			// The bound already matches the incumbent: prune.
			break
		}

		// Degree deviations δ[v] = 2 − deg_T(v) and their squared norm.
		var squareSum int64
		for v = 0; v < eng.n; v++ {
			delta = 2 - eng.deg[v]
			squareSum += int64(delta) * int64(delta)
		}
		if squareSum == 0 {
			// Every node has degree 2: the 1-tree is a tour. Its true cost
			// uses the unpenalised integer distances.
			var cost int64
			edges := make([]core.Edge, len(tree))
			for i = 0; i < len(tree); i++ {
				edges[i] = tree[i]
				cost += int64(dist.GetRowBigger(tree[i].U, tree[i].V))
			}

			return lbResult{
				kind: lbTour,
				tour: core.Tour{Edges: edges, Cost: core.Distance(cost)},
			}
		}

		iterCount++
		if iterCount >= maxIterations {
			break
		}

		if scaledUpper == core.ScaledMax {
			// No incumbent yet: the step formula needs a finite gap, and a
			// saturated one would only thrash the penalties. Keep the pure
			// 1-tree bound.
			break
		}

		// Subgradient step: ⌊α · gap / Σδ²⌋, computed in float64 but
		// floored into an integer step so the penalty path stays integral.
		gap := float64(int64(scaledUpper) - int64(treeCost))
		step := int64(alpha * gap / float64(squareSum))
		if step > math.MaxInt32 {
			step = math.MaxInt32
		}
		if step <= minStep {
			break
		}
		alpha *= beta

		for v = 0; v < eng.n; v++ {
			delta = 2 - eng.deg[v]
			if delta != 0 {
				eng.pen[v] = eng.pen[v].Add(core.ScaledProduct(int32(step), delta))
			}
		}
	}

	return lbResult{
		kind:  lbBound,
		bound: bestLB.DistanceRoundedUp(),
		tree:  tree,
	}
}

// lagrangianValue computes L(π) for a 1-tree under the engine's current
// penalties: 2·Σπ plus each edge's reduced cost. All arithmetic saturates.
func lagrangianValue(eng *oneTreeEngine, tree []core.Edge) core.ScaledDistance {
	penaltySum := core.SumScaled(eng.pen)
	cost := penaltySum.Add(penaltySum)

	var i int
	for i = 0; i < len(tree); i++ {
		cost = cost.
			Add(eng.scaled[tree[i].U*eng.n+tree[i].V]).
			Sub(eng.pen[tree[i].U]).
			Sub(eng.pen[tree[i].V])
	}

	return cost
}
