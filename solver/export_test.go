package solver

// Test-only bridges to package internals (white-box property tests).

import (
	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/symmat"
)

// OneTreeForTest builds a minimum 1-tree under the given edge states and
// penalties, returning the edge set, the node degrees, the Lagrangian
// value L(π), and whether a 1-tree exists.
func OneTreeForTest(
	dist *symmat.Sym[core.Distance],
	states *symmat.Sym[EdgeState],
	pen []core.ScaledDistance,
) (edges []core.Edge, deg []int32, value core.ScaledDistance, ok bool) {
	eng := newOneTreeEngine(dist.Dim(), denseScaled(dist), states, pen)

	tree, ok := eng.build()
	if !ok {
		return nil, nil, 0, false
	}

	edges = make([]core.Edge, len(tree))
	copy(edges, tree)
	deg = make([]int32, len(eng.deg))
	copy(deg, eng.deg)

	return edges, deg, lagrangianValue(eng, tree), true
}

// BranchEdgeForTest exposes the branching policy on a freshly built 1-tree.
func BranchEdgeForTest(
	dist *symmat.Sym[core.Distance],
	states *symmat.Sym[EdgeState],
	pen []core.ScaledDistance,
) (core.Edge, bool) {
	eng := newOneTreeEngine(dist.Dim(), denseScaled(dist), states, pen)

	tree, ok := eng.build()
	if !ok {
		return core.Edge{}, false
	}

	return edgeToBranchOn(eng, tree)
}

