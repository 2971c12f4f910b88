package sweep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/solver"
	"github.com/katalvlaran/modesolve/sweep"
)

// TestGroupIndex_NonDispersive uses the exactly solvable case: a uniform
// medium under mirror boundaries has n_eff = n at every wavelength, so the
// dispersion term vanishes and n_g must equal n_eff.
func TestGroupIndex_NonDispersive(t *testing.T) {
	const n0 = 1.5
	g, err := grid.NewUniform(grid.RectOptions{
		WindowWidth: 2.0, WindowHeight: 2.0,
		Step: 0.2,
	}, n0)
	require.NoError(t, err)

	bnd, err := solver.NewBoundary("SSSS")
	require.NoError(t, err)
	ms := solver.New(solver.SemiVectorialEx, solver.WithBoundary(bnd))

	ngs, err := sweep.GroupIndex(ms, g, g, g, 1.55, 0.01)
	require.NoError(t, err)
	require.Len(t, ngs, 1)
	assert.InDelta(t, n0, ngs[0], 1e-7)
}

// TestGroupIndex_ExceedsPhaseIndex checks the guided-waveguide inequality
// n_g > n_eff: waveguide dispersion makes the derivative dn_eff/dλ negative,
// which the central difference must pick up.
func TestGroupIndex_ExceedsPhaseIndex(t *testing.T) {
	g := sweepSlab(t)
	ms := solver.New(solver.SemiVectorialEx)

	ctr, err := ms.Solve(g, 1.55, solver.Guess{})
	require.NoError(t, err)

	ngs, err := sweep.GroupIndex(ms, g, g, g, 1.55, 0.01)
	require.NoError(t, err)
	require.Len(t, ngs, 1)
	assert.Greater(t, ngs[0], real(ctr.NEffs[0]))
}

// TestGroupIndex_LegFailure surfaces the failing sub-solve without partial
// results.
func TestGroupIndex_LegFailure(t *testing.T) {
	fs := newFakeSolver(solver.SemiVectorialEx)
	fs.failAt = 1 // backward leg

	ngs, err := sweep.GroupIndex(fs, nil, nil, nil, 1.55, 0.01)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, ngs)
}
