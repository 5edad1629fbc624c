// Package solver — incumbent monotonicity and fan-out throttle tests.
package solver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/core"
)

func mkTour(cost core.Distance) core.Tour {
	return core.Tour{
		Edges: []core.Edge{core.NewEdge(0, 1), core.NewEdge(1, 2), core.NewEdge(2, 0)},
		Cost:  cost,
	}
}

func TestIncumbentStartsUnbounded(t *testing.T) {
	var inc incumbent

	assert.Equal(t, core.DistanceMax, inc.upperBound())
	_, found := inc.snapshot()
	assert.False(t, found)
}

// TestIncumbentMonotone: across any update sequence the upper bound never
// increases, and equal-cost tours do not replace the incumbent.
func TestIncumbentMonotone(t *testing.T) {
	var inc incumbent

	assert.True(t, inc.updateIfBetter(mkTour(100)))
	assert.Equal(t, core.Distance(100), inc.upperBound())

	// Worse and equal candidates are rejected.
	assert.False(t, inc.updateIfBetter(mkTour(120)))
	assert.False(t, inc.updateIfBetter(mkTour(100)))
	assert.Equal(t, core.Distance(100), inc.upperBound())

	assert.True(t, inc.updateIfBetter(mkTour(93)))
	assert.Equal(t, core.Distance(93), inc.upperBound())

	got, found := inc.snapshot()
	require.True(t, found)
	assert.Equal(t, core.Distance(93), got.Cost)
}

// TestIncumbentMonotoneConcurrent hammers the cell from many goroutines;
// the final cost must be the global minimum of all offers.
func TestIncumbentMonotoneConcurrent(t *testing.T) {
	var (
		inc incumbent
		wg  sync.WaitGroup
	)

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for c := 200 + seed; c > seed; c-- {
				inc.updateIfBetter(mkTour(core.Distance(c)))
			}
		}(w)
	}
	wg.Wait()

	// The goroutine with seed 0 eventually offers cost 1, the global minimum.
	assert.Equal(t, core.Distance(1), inc.upperBound())
}

func TestIncumbentSnapshotIsDeepCopy(t *testing.T) {
	var inc incumbent
	inc.seed(mkTour(50))

	got, found := inc.snapshot()
	require.True(t, found)
	got.Edges[0] = core.NewEdge(0, 2)

	again, _ := inc.snapshot()
	assert.Equal(t, core.NewEdge(0, 1), again.Edges[0], "snapshot must not alias the cell")
}

// TestWorkerCounter: reservations succeed exactly until the cap, and the
// count never recycles.
func TestWorkerCounter(t *testing.T) {
	var wc workerCounter

	assert.True(t, wc.tryReserve(3))
	assert.True(t, wc.tryReserve(3))
	assert.True(t, wc.tryReserve(3))
	assert.False(t, wc.tryReserve(3))
	assert.False(t, wc.tryReserve(3))
}
