// Package solver — the branch-and-bound controller.
//
// Each search node computes a Lagrangian lower bound, prunes against the
// shared incumbent, then splits on one edge of the last 1-tree: an
// exclude child (always legal) and an include child (legal while both
// endpoints carry fewer than two Fixed edges). Per-branch state — edge
// states, penalties, fixed-degree counters — is mutated in place; edge
// states and fixed-degree counters are restored on the way out, while
// penalties are not restored and carry over as the warm start of the next
// node on the same worker. A spawned worker clones the state exactly once.
//
// Fan-out: while the spawn budget lasts and both children are legal, the
// exclude child moves to a fresh goroutine and the include child continues
// on the current one. Past the budget the node degrades to sequential DFS.
package solver

import (
	"sync"

	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/symmat"
)

// searchCtx is the read-mostly context shared by all workers of one solve.
type searchCtx struct {
	n      int
	dist   *symmat.Sym[core.Distance]
	scaled []core.ScaledDistance // dense mirror, immutable after setup

	inc     *incumbent
	workers *workerCounter
	wg      *sync.WaitGroup

	maxWorkers  int
	branchLimit int
}

// branchState is the mutable per-branch search state. Exactly one worker
// owns a branchState at any time.
type branchState struct {
	states   *symmat.Sym[EdgeState]
	pen      []core.ScaledDistance
	fixedDeg []uint8
	counter  int // per-worker branch-and-bound node counter
}

// clone deep-copies the state for a spawned worker.
func (s *branchState) clone() *branchState {
	var (
		pen = make([]core.ScaledDistance, len(s.pen))
		fd  = make([]uint8, len(s.fixedDeg))
	)
	copy(pen, s.pen)
	copy(fd, s.fixedDeg)

	return &branchState{
		states:   s.states.Clone(),
		pen:      pen,
		fixedDeg: fd,
		counter:  s.counter,
	}
}

// explore runs one branch-and-bound node and recurses depth-first.
func (ctx *searchCtx) explore(st *branchState, depth int) {
	st.counter++
	if ctx.branchLimit > 0 && st.counter >= ctx.branchLimit {
		return
	}

	// Root runs the long schedule; deeper nodes re-bound cheaply on the
	// penalties their ancestors shaped.
	var (
		maxIterations = deepMaxIterations
		beta          = deepBeta
	)
	if depth == 0 {
		maxIterations = initialMaxIterations
		beta = initialBeta
	}

	eng := newOneTreeEngine(ctx.n, ctx.scaled, st.states, st.pen)
	res := heldKarpLowerBound(eng, ctx.dist, ctx.inc, maxIterations, beta)

	switch res.kind {
	case lbTour:
		ctx.inc.updateIfBetter(res.tour)

		return
	case lbInfeasible:
		return
	case lbBound:
		if res.bound >= ctx.inc.upperBound() {
			return
		}
	}

	branch, ok := edgeToBranchOn(eng, res.tree)
	if !ok {
		return
	}

	includeLegal := st.fixedDeg[branch.U] < 2 && st.fixedDeg[branch.V] < 2

	if includeLegal && ctx.workers.tryReserve(ctx.maxWorkers) {
		// Exclude child on a fresh worker with cloned state.
		excl := st.clone()
		excl.states.SetRowBigger(branch.U, branch.V, EdgeExcluded)
		ctx.wg.Add(1)
		go func() {
			defer ctx.wg.Done()
			ctx.explore(excl, depth+1)
		}()

		// Include child continues on this worker.
		ctx.includeChild(st, branch, depth)

		return
	}

	// Sequential DFS: exclude first, then include if legal.
	st.states.SetRowBigger(branch.U, branch.V, EdgeExcluded)
	ctx.explore(st, depth+1)
	st.states.SetRowBigger(branch.U, branch.V, EdgeAvailable)

	if includeLegal {
		ctx.includeChild(st, branch, depth)
	}
}

// includeChild fixes the branching edge, recurses, and backtracks.
func (ctx *searchCtx) includeChild(st *branchState, branch core.Edge, depth int) {
	st.states.SetRowBigger(branch.U, branch.V, EdgeFixed)
	st.fixedDeg[branch.U]++
	st.fixedDeg[branch.V]++

	ctx.explore(st, depth+1)

	st.states.SetRowBigger(branch.U, branch.V, EdgeAvailable)
	st.fixedDeg[branch.U]--
	st.fixedDeg[branch.V]--
}
