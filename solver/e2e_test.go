// Package solver — full-pipeline scenarios: TSPLIB file → distance build →
// optimal tour, one instance per supported metric. Expected optima were
// certified against an independent exact dynamic program.
package solver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/core"
	"github.com/katalvlaran/heldkarp/solver"
	"github.com/katalvlaran/heldkarp/tsplib"
)

func solveFile(t *testing.T, path string, want core.Distance) {
	t.Helper()

	inst, err := tsplib.ParseFile(path)
	require.NoError(t, err)

	tour, err := solver.Solve(inst.Dist, solver.DefaultOptions())
	require.NoError(t, err)
	require.True(t, tour.Validate(inst.Meta.Dimension))
	assert.Equal(t, want, tour.Cost)
}

func TestEndToEndEuc2D(t *testing.T) {
	solveFile(t, "testdata/grid8.tsp", 80)
}

func TestEndToEndGeo(t *testing.T) {
	solveFile(t, "testdata/geo7.tsp", 3507)
}

func TestEndToEndAtt(t *testing.T) {
	solveFile(t, "testdata/att6.tsp", 93)
}

func TestEndToEndCeil2D(t *testing.T) {
	solveFile(t, "testdata/pent5.tsp", 474)
}

// The Manhattan and maximum metrics ride on the same five points; both
// instances are small enough to keep inline.
const manMaxCoords = `DIMENSION : 5
NODE_COORD_SECTION
1 0 0
2 10 0
3 10 10
4 0 10
5 5 20
EOF
`

func TestEndToEndMan2D(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(
		"NAME : man5\nTYPE : TSP\nEDGE_WEIGHT_TYPE : MAN_2D\n" + manMaxCoords))
	require.NoError(t, err)

	tour, err := solver.Solve(inst.Dist, solver.DefaultOptions())
	require.NoError(t, err)
	require.True(t, tour.Validate(5))
	assert.Equal(t, core.Distance(60), tour.Cost)
}

func TestEndToEndMax2D(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(
		"NAME : max5\nTYPE : TSP\nEDGE_WEIGHT_TYPE : MAX_2D\n" + manMaxCoords))
	require.NoError(t, err)

	tour, err := solver.Solve(inst.Dist, solver.DefaultOptions())
	require.NoError(t, err)
	require.True(t, tour.Validate(5))
	assert.Equal(t, core.Distance(50), tour.Cost)
}
