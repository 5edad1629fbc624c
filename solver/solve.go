// Package solver — top-level solve entry point.
package solver

import (
	"sync"

	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/symmat"
)

// Solve finds an optimal Hamiltonian tour over the given symmetric
// distance matrix, honouring any pre-excluded edges in opts.
//
// The search seeds the incumbent with the trivial ring 0→1→…→n-1→0 when no
// pre-exclusion blocks it, then explores the edge-inclusion tree with up to
// opts.MaxWorkers parallel workers. Worker lifetimes are bounded by this
// call; on return the incumbent holds the optimum.
//
// Errors:
//   - ErrTooSmall for n < 3.
//   - ErrInvalidEdge for malformed entries in opts.Excluded.
//   - ErrNoTour when the exclusions admit no Hamiltonian cycle.
//
// Complexity: exponential worst case; memory O(MaxWorkers · n²).
func Solve(dist *symmat.Sym[core.Distance], opts Options) (core.Tour, error) {
	var n = dist.Dim()
	if n < 3 {
		return core.Tour{}, ErrTooSmall
	}
	if opts.MaxWorkers < 1 {
		opts.MaxWorkers = 1
	}

	// Per-branch root state: everything Available, zero penalties.
	states, err := symmat.New(n, EdgeAvailable)
	if err != nil {
		return core.Tour{}, err
	}

	var (
		i int
		e core.Edge
	)
	for i = 0; i < len(opts.Excluded); i++ {
		e = opts.Excluded[i]
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			return core.Tour{}, ErrInvalidEdge
		}
		states.Set(e.U, e.V, EdgeExcluded)
	}

	// Immutable dense scaled mirror for the Prim row sweeps.
	scaled := denseScaled(dist)

	var (
		inc incumbent
		wg  sync.WaitGroup
	)
	if ring, ok := trivialRing(dist, states, n); ok {
		inc.seed(ring)
	}

	ctx := &searchCtx{
		n:           n,
		dist:        dist,
		scaled:      scaled,
		inc:         &inc,
		workers:     &workerCounter{spawned: 1}, // the root is the first worker
		wg:          &wg,
		maxWorkers:  opts.MaxWorkers,
		branchLimit: opts.BranchLimit,
	}

	root := &branchState{
		states:   states,
		pen:      make([]core.ScaledDistance, n),
		fixedDeg: make([]uint8, n),
	}

	ctx.explore(root, 0)
	wg.Wait()

	tour, found := inc.snapshot()
	if !found {
		return core.Tour{}, ErrNoTour
	}

	return tour.Normalize(), nil
}

// denseScaled converts the triangular distance store into its dense n×n
// scaled mirror, the immutable read surface of every 1-tree build.
func denseScaled(dist *symmat.Sym[core.Distance]) []core.ScaledDistance {
	var (
		n      = dist.Dim()
		scaled = make([]core.ScaledDistance, n*n)
		r, c   int
		s      core.ScaledDistance
	)
	for r = 0; r < n; r++ {
		for c = 0; c < r; c++ {
			s = core.ScaleDistance(dist.GetRowBigger(r, c))
			scaled[r*n+c] = s
			scaled[c*n+r] = s
		}
	}

	return scaled
}

// trivialRing builds the 0→1→…→n-1→0 tour as the initial upper bound.
// ok=false when a ring edge is pre-excluded; the search then starts without
// an incumbent.
func trivialRing(dist *symmat.Sym[core.Distance], states *symmat.Sym[EdgeState], n int) (core.Tour, bool) {
	var (
		edges = make([]core.Edge, 0, n)
		cost  int64
		i, j  int
	)
	for i = 0; i < n; i++ {
		j = (i + 1) % n
		if states.Get(i, j) == EdgeExcluded {
			return core.Tour{}, false
		}
		edges = append(edges, core.NewEdge(i, j))
		cost += int64(dist.Get(i, j))
	}

	return core.Tour{Edges: edges, Cost: core.Distance(cost)}, true
}
