// Package solver — shared incumbent tour and worker accounting.
//
// The incumbent is the single piece of cross-worker mutable state: a
// mutex-guarded cell holding the best tour found so far. Readers lock
// briefly to snapshot the cost between Lagrangian iterations; writers lock,
// compare, and replace only on strict improvement, so the cell is monotone
// for the lifetime of the solve. Contention is negligible — no finer
// discipline is warranted.
package solver

import (
	"sync"

	"github.com/katalvlaran/heldkarp/core"
)

// incumbent is the shared best-tour cell.
type incumbent struct {
	mu    sync.Mutex
	found bool
	tour  core.Tour
}

// seed installs an initial feasible tour (the trivial ring) before the
// search starts; no locking needed, workers do not exist yet.
func (b *incumbent) seed(t core.Tour) {
	b.found = true
	b.tour = t
}

// upperBound returns the incumbent cost, or DistanceMax when no tour is
// known yet.
func (b *incumbent) upperBound() core.Distance {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.found {
		return core.DistanceMax
	}

	return b.tour.Cost
}

// updateIfBetter replaces the incumbent iff t improves it strictly.
// Reports whether the replacement happened.
func (b *incumbent) updateIfBetter(t core.Tour) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.found && t.Cost >= b.tour.Cost {
		return false
	}
	b.found = true
	b.tour = t

	return true
}

// snapshot returns a deep copy of the incumbent, if any.
func (b *incumbent) snapshot() (core.Tour, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.found {
		return core.Tour{}, false
	}

	return b.tour.Clone(), true
}

// workerCounter throttles parallel fan-out. The count covers workers
// spawned over the whole solve (the root counts as the first); it is never
// decremented — deep subtrees prune heavily, so replacing finished workers
// buys little and costs clones.
type workerCounter struct {
	mu      sync.Mutex
	spawned int
}

// tryReserve claims a worker slot while the spawn budget lasts.
// maxWorkers counts all workers including the root, so MaxWorkers == 1
// degrades to a fully sequential search.
func (w *workerCounter) tryReserve(maxWorkers int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.spawned >= maxWorkers {
		return false
	}
	w.spawned++

	return true
}
