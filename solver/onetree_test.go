// Package solver — minimum 1-tree tests over a hand-checked 5-node metric.
//
// The fixture's pairwise distances make the MST over {1..4} unique (its
// three edges carry the three smallest, distinct weights), so the expected
// edge sets are implementation-independent.
package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/solver"
	"github.com/katalvlaran/heldkarp/symmat"
)

// dist5 is the EUC_2D projection of (0,0), (31,7), (13,29), (40,23),
// (23,42); the optimal tour costs 123 and happens to coincide with the
// zero-penalty 1-tree.
var dist5 = [][]core.Distance{
	{0, 32, 32, 46, 48},
	{32, 0, 28, 18, 36},
	{32, 28, 0, 28, 16},
	{46, 18, 28, 0, 25},
	{48, 36, 16, 25, 0},
}

func mkDist(t *testing.T, rows [][]core.Distance) *symmat.Sym[core.Distance] {
	t.Helper()

	s, err := symmat.NewFromFunc(len(rows), func(r, c int) core.Distance { return rows[r][c] })
	require.NoError(t, err)

	return s
}

func allAvailable(t *testing.T, n int) *symmat.Sym[solver.EdgeState] {
	t.Helper()

	s, err := symmat.New(n, solver.EdgeAvailable)
	require.NoError(t, err)

	return s
}

func edgeSet(edges []core.Edge) map[core.Edge]struct{} {
	m := make(map[core.Edge]struct{}, len(edges))
	for _, e := range edges {
		m[e] = struct{}{}
	}

	return m
}

func TestOneTreeZeroPenalties(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)

	edges, deg, value, ok := solver.OneTreeForTest(dist, states, pen)
	require.True(t, ok)
	require.Len(t, edges, 5)

	want := edgeSet([]core.Edge{
		core.NewEdge(1, 3), core.NewEdge(3, 4), core.NewEdge(2, 4),
		core.NewEdge(0, 1), core.NewEdge(0, 2),
	})
	assert.Equal(t, want, edgeSet(edges))

	// This 1-tree is the optimal tour itself: every degree is 2 and the
	// Lagrangian value equals 123 in the scaled domain.
	assert.Equal(t, core.ScaleDistance(123), value)
	for v, d := range deg {
		assert.Equal(t, int32(2), d, "degree of node %d", v)
	}
}

func TestOneTreeHonoursExcluded(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)
	states.Set(0, 1, solver.EdgeExcluded)

	edges, deg, value, ok := solver.OneTreeForTest(dist, states, pen)
	require.True(t, ok)

	set := edgeSet(edges)
	_, has := set[core.NewEdge(0, 1)]
	assert.False(t, has, "excluded edge must not appear")

	// Node 0 now takes its two cheapest remaining edges: (0,2) and (0,3).
	_, has = set[core.NewEdge(0, 2)]
	assert.True(t, has)
	_, has = set[core.NewEdge(0, 3)]
	assert.True(t, has)

	// 59 (MST) + 32 + 46 (root edges), scaled.
	assert.Equal(t, core.ScaleDistance(137), value)
	assert.Equal(t, int32(3), deg[3])
	assert.Equal(t, int32(1), deg[1])
}

func TestOneTreeHonoursFixed(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)
	// Force the most expensive root edge; the 1-tree must carry it.
	states.Set(0, 4, solver.EdgeFixed)

	edges, _, _, ok := solver.OneTreeForTest(dist, states, pen)
	require.True(t, ok)

	set := edgeSet(edges)
	_, has := set[core.NewEdge(0, 4)]
	assert.True(t, has, "fixed edge must be forced in")
	_, has = set[core.NewEdge(0, 1)]
	assert.True(t, has, "remaining slot goes to the cheapest available edge")
}

func TestOneTreeInfeasibleIsolatedNode(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)
	// Cut node 2 off entirely.
	for _, v := range []int{0, 1, 3, 4} {
		states.Set(2, v, solver.EdgeExcluded)
	}

	_, _, _, ok := solver.OneTreeForTest(dist, states, pen)
	assert.False(t, ok)
}

func TestOneTreeInfeasibleFixedCycle(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)
	// A fixed triangle inside {1..4} closes a cycle no tree can honour,
	// while every node still respects the two-fixed-edges-per-node cap.
	states.Set(1, 2, solver.EdgeFixed)
	states.Set(2, 3, solver.EdgeFixed)
	states.Set(1, 3, solver.EdgeFixed)

	_, _, _, ok := solver.OneTreeForTest(dist, states, pen)
	assert.False(t, ok)
}

func TestOneTreeInfeasibleRootStarved(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)
	// Node 0 keeps a single legal edge: fewer than the two a 1-tree needs.
	states.Set(0, 1, solver.EdgeExcluded)
	states.Set(0, 2, solver.EdgeExcluded)
	states.Set(0, 3, solver.EdgeExcluded)

	_, _, _, ok := solver.OneTreeForTest(dist, states, pen)
	assert.False(t, ok)
}

// TestOneTreeLowerBoundProperty: for arbitrary penalty vectors the
// Lagrangian value never exceeds the scaled optimal tour cost (123).
func TestOneTreeLowerBoundProperty(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		rng    = rand.New(rand.NewSource(42))
		opt    = core.ScaleDistance(123)
	)

	for trial := 0; trial < 500; trial++ {
		pen := make([]core.ScaledDistance, 5)
		for v := range pen {
			pen[v] = core.ScaledDistance(rng.Intn(2001) - 1000)
		}

		_, _, value, ok := solver.OneTreeForTest(dist, states, pen)
		require.True(t, ok)
		require.LessOrEqual(t, value, opt, "penalties %v", pen)
	}
}

// TestBranchEdgeSelection: on the excluded-(0,1) 1-tree the policy must
// pick the most expensive available edge incident to a degree-violating
// node — here (0,3).
func TestBranchEdgeSelection(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)
	states.Set(0, 1, solver.EdgeExcluded)

	edge, ok := solver.BranchEdgeForTest(dist, states, pen)
	require.True(t, ok)
	assert.Equal(t, core.NewEdge(0, 3), edge)
}

// TestBranchEdgeNoneOnTour: the zero-penalty 1-tree of dist5 is a tour
// (all degrees 2), so no branching edge qualifies.
func TestBranchEdgeNoneOnTour(t *testing.T) {
	var (
		dist   = mkDist(t, dist5)
		states = allAvailable(t, 5)
		pen    = make([]core.ScaledDistance, 5)
	)

	_, ok := solver.BranchEdgeForTest(dist, states, pen)
	assert.False(t, ok)
}
