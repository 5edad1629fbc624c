// Package solver — minimum 1-tree construction.
//
// A 1-tree is a spanning tree over nodes {1..n-1} plus the two cheapest
// edges incident to node 0. Its minimum cost under penalty-adjusted edge
// costs is the workhorse lower bound of the Held–Karp relaxation.
//
// The MST part is Prim O(n²) with an array key vector and no heap: the
// instances are complete graphs, so every extraction scans all frontier
// nodes anyway and a heap would only add allocations. The inner relaxation
// sweeps a row of the dense scaled-cost mirror, which is why the mirror
// exists at all.
//
// Edge states shape the selection: Excluded edges price at +∞, Fixed edges
// at −∞ (so Prim adopts them greedily), Available edges at their reduced
// cost scaled(u,v) − penalty[u] − penalty[v]. Sentinel pricing affects
// selection only; the lower-bound loop recomputes true costs from the
// returned edge set.
package solver

import (
	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/symmat"
)

// oneTreeEngine carries the reusable working state for 1-tree builds.
// One engine serves all iterations of a single lower-bound call; buffers
// are reset in O(n) per build, not reallocated.
type oneTreeEngine struct {
	n      int
	scaled []core.ScaledDistance // dense n×n mirror, shared read-only
	states *symmat.Sym[EdgeState]
	pen    []core.ScaledDistance

	// Working buffers.
	inTree []bool
	key    []core.ScaledDistance
	parent []int
	deg    []int32
	edges  []core.Edge
	mark   []bool // edge-membership marker, indexed by triangular index
}

// newOneTreeEngine allocates an engine for one branch-and-bound node.
func newOneTreeEngine(
	n int,
	scaled []core.ScaledDistance,
	states *symmat.Sym[EdgeState],
	pen []core.ScaledDistance,
) *oneTreeEngine {
	return &oneTreeEngine{
		n:      n,
		scaled: scaled,
		states: states,
		pen:    pen,
		inTree: make([]bool, n),
		key:    make([]core.ScaledDistance, n),
		parent: make([]int, n),
		deg:    make([]int32, n),
		edges:  make([]core.Edge, 0, n),
		mark:   make([]bool, symmat.TriLen(n)),
	}
}

// reduced returns the penalty-adjusted cost of edge {u, v}.
func (e *oneTreeEngine) reduced(u, v int) core.ScaledDistance {
	return e.scaled[u*e.n+v].Sub(e.pen[u]).Sub(e.pen[v])
}

// selectionCost prices edge {u, v} for Prim: Excluded +∞, Fixed −∞,
// Available at its reduced cost.
func (e *oneTreeEngine) selectionCost(u, v int) core.ScaledDistance {
	switch e.states.Get(u, v) {
	case EdgeExcluded:
		return core.ScaledMax
	case EdgeFixed:
		return core.ScaledMin
	}

	return e.reduced(u, v)
}

// build computes a minimum 1-tree under the engine's penalties and edge
// states. It fills e.deg and e.edges and reports ok=false when the
// constraints admit no 1-tree: a frontier node with no non-excluded edge,
// a Fixed edge that could not enter the tree (early cycle), or node 0
// lacking two legal incident edges.
//
// Determinism: ties break by smaller node id at every selection.
//
// Complexity: O(n²) time, O(1) allocations after engine construction.
func (e *oneTreeEngine) build() ([]core.Edge, bool) {
	var (
		n = e.n
		v int
	)
	e.edges = e.edges[:0]
	for v = 0; v < n; v++ {
		e.inTree[v] = false
		e.key[v] = core.ScaledMax
		e.parent[v] = -1
		e.deg[v] = 0
	}

	// ---- Prim over {1..n-1}, seeded at node 1.
	e.key[1] = core.ScaledZero

	var (
		iter, best, u int
		c             core.ScaledDistance
	)
	for iter = 0; iter < n-1; iter++ {
		// Extract the frontier node of minimum key; ascending scan with a
		// strict < keeps the smallest id on ties.
		best = -1
		for v = 1; v < n; v++ {
			if e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] {
				best = v
			}
		}
		if best == -1 || e.key[best] == core.ScaledMax {
			// Exclusions disconnected the frontier: no spanning tree.
			return nil, false
		}

		e.inTree[best] = true
		if u = e.parent[best]; u != -1 {
			e.addEdge(u, best)
		}

		// Relax through edges of 'best'; strict < keeps the first (lower-id)
		// parent on ties.
		for v = 1; v < n; v++ {
			if e.inTree[v] {
				continue
			}
			c = e.selectionCost(best, v)
			if c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Every Fixed edge inside {1..n-1} must have been adopted; a missing
	// one means the fixed set closes a cycle and the branch is infeasible.
	var r, cc int
	for r = 2; r < n; r++ {
		for cc = 1; cc < r; cc++ {
			if e.states.GetRowBigger(r, cc) == EdgeFixed && !e.mark[symmat.IndexRowBigger(r, cc)] {
				e.clearMarks()

				return nil, false
			}
		}
	}

	if !e.addRootEdges() {
		e.clearMarks()

		return nil, false
	}

	e.clearMarks()

	return e.edges, true
}

// addEdge records a tree edge and updates degrees and the membership marker.
func (e *oneTreeEngine) addEdge(u, v int) {
	e.edges = append(e.edges, core.NewEdge(u, v))
	e.deg[u]++
	e.deg[v]++
	e.mark[symmat.Index(u, v)] = true
}

// clearMarks resets the membership marker for the edges recorded so far.
func (e *oneTreeEngine) clearMarks() {
	var i int
	for i = 0; i < len(e.edges); i++ {
		e.mark[symmat.IndexRowBigger(e.edges[i].U, e.edges[i].V)] = false
	}
}

// addRootEdges attaches node 0 with its two cheapest legal edges, forcing
// Fixed edges first. Ascending scans keep the smaller endpoint on ties.
func (e *oneTreeEngine) addRootEdges() bool {
	var (
		n     = e.n
		slots = 2
		v     int
	)

	// Fixed edges at node 0 are forced, in ascending endpoint order.
	for v = 1; v < n; v++ {
		if e.states.Get(v, 0) != EdgeFixed {
			continue
		}
		if slots == 0 {
			// Three or more fixed edges at node 0: no 1-tree honours them.
			return false
		}
		e.addEdge(0, v)
		slots--
	}

	// Fill the remaining slots with the cheapest Available edges.
	var (
		b1, b2 = -1, -1
		c      core.ScaledDistance
		c1, c2 core.ScaledDistance
	)
	c1, c2 = core.ScaledMax, core.ScaledMax
	for v = 1; v < n; v++ {
		if e.states.Get(v, 0) != EdgeAvailable {
			continue
		}
		c = e.reduced(0, v)
		if c < c1 {
			c2, b2 = c1, b1
			c1, b1 = c, v
		} else if c < c2 {
			c2, b2 = c, v
		}
	}

	if slots >= 1 {
		if b1 == -1 {
			return false
		}
		e.addEdge(0, b1)
	}
	if slots == 2 {
		if b2 == -1 {
			return false
		}
		e.addEdge(0, b2)
	}

	return true
}
