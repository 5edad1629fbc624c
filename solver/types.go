// Package solver implements the exact Held–Karp branch-and-bound search
// for the symmetric TSP: minimum 1-trees over penalty-adjusted scaled
// costs, a subgradient lower-bound loop, and a parallel depth-first search
// pruning against a shared incumbent tour.
//
// Determinism: every selection step (Prim extraction, root-edge choice,
// branching-edge choice) breaks ties by vertex index, and all penalty
// arithmetic is saturating scaled-integer. A single-worker run reproduces
// the same optimal edge set across invocations; multi-worker runs return
// the same optimal cost.
package solver

import (
	"errors"

	"github.com/katalvlaran/heldkarp/core"
)

// Sentinel errors (validation and feasibility).
var (
	// ErrTooSmall indicates an instance with fewer than 3 nodes; no
	// Hamiltonian cycle exists below a triangle.
	ErrTooSmall = errors.New("solver: instance must have at least 3 nodes")

	// ErrInvalidEdge indicates a pre-excluded edge with out-of-range or
	// equal endpoints.
	ErrInvalidEdge = errors.New("solver: invalid edge")

	// ErrNoTour indicates that no Hamiltonian cycle exists under the given
	// edge constraints.
	ErrNoTour = errors.New("solver: no tour exists under the given constraints")
)

// EdgeState is the per-edge search state of a branch.
//
// Excluded edges are forbidden, Fixed edges are forced into every 1-tree of
// the current subtree, Available edges are free. The branching controller
// maintains the invariant of at most two Fixed edges per node.
type EdgeState int8

// Edge states. The numeric values mirror the search's sign convention:
// flipping Available↔Fixed is negation, Excluded is the fixpoint.
const (
	EdgeExcluded  EdgeState = 0
	EdgeAvailable EdgeState = 1
	EdgeFixed     EdgeState = -1
)

// Subgradient schedule constants. The root node runs a long, gently
// decaying schedule; deeper nodes re-bound cheaply because their parents
// already shaped the penalties.
const (
	initialMaxIterations = 1_000
	deepMaxIterations    = 10

	initialAlpha = 2.0
	initialBeta  = 0.99
	deepBeta     = 0.9

	// minStep: a scaled step of ≤ 3 units moves penalties by at most
	// 0.03 distance units per degree deviation — no meaningful progress.
	minStep = 3
)

// defaultMaxWorkers caps parallel fan-out; deeper subtrees prune heavily,
// so oversubscribing workers there wastes cache and state clones.
const defaultMaxWorkers = 8

// Options configures a solve. The zero value is not meaningful; use
// DefaultOptions and override fields as needed.
type Options struct {
	// MaxWorkers bounds the number of spawned search workers (≥ 1).
	MaxWorkers int

	// BranchLimit caps the number of branch-and-bound nodes each worker
	// explores; 0 means unlimited. The limit is per worker, not global.
	BranchLimit int

	// Excluded lists edges forbidden before the search starts. Used to
	// encode side constraints; an over-constrained instance yields
	// ErrNoTour.
	Excluded []core.Edge
}

// DefaultOptions returns the production defaults: 8-worker fan-out,
// unlimited branching, no pre-excluded edges.
func DefaultOptions() Options {
	return Options{MaxWorkers: defaultMaxWorkers}
}
