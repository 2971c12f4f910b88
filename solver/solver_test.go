package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/solver"
)

const testWavelength = 1.55

// testSlab builds a high-contrast slab: the core spans the full window width,
// so the fundamental mode is strongly confined and cleanly polarized.
func testSlab(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewRectWaveguide(grid.RectOptions{
		WindowWidth: 2.4, WindowHeight: 2.4,
		CoreWidth: 2.4, CoreHeight: 0.8,
		NCore: 3.0, NClad: 1.5,
		Step: 0.2,
	})
	require.NoError(t, err)

	return g
}

// testUniform builds a uniform window of index n0 at the slab's resolution.
func testUniform(t *testing.T, n0 float64) *grid.Grid {
	t.Helper()
	g, err := grid.NewUniform(grid.RectOptions{
		WindowWidth: 2.4, WindowHeight: 2.4,
		Step: 0.2,
	}, n0)
	require.NoError(t, err)

	return g
}

// TestSolve_SemiVectorialFundamental checks that the fundamental effective
// index of a guided structure lies strictly between the cladding and core
// indices, and that the magnitude profile matches the grid shape.
func TestSolve_SemiVectorialFundamental(t *testing.T) {
	g := testSlab(t)
	ms := solver.New(solver.SemiVectorialEx)

	res, err := ms.Solve(g, testWavelength, solver.Guess{})
	require.NoError(t, err)
	require.Len(t, res.NEffs, 1)

	neff := real(res.NEffs[0])
	assert.Greater(t, neff, 1.5, "effective index must exceed the cladding index")
	assert.Less(t, neff, 3.0, "effective index must stay below the core index")

	require.Len(t, res.FundamentalMagnitude, g.NY())
	for _, row := range res.FundamentalMagnitude {
		require.Len(t, row, g.NX())
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
	assert.Greater(t, res.Iterations, 0)
}

// TestSolve_GridTooSmall rejects grids below the stencil's minimum extent.
func TestSolve_GridTooSmall(t *testing.T) {
	g, err := grid.NewUniform(grid.RectOptions{
		WindowWidth: 0.4, WindowHeight: 0.4,
		Step: 0.2,
	}, 1.5)
	require.NoError(t, err)

	ms := solver.New(solver.SemiVectorialEx)
	_, err = ms.Solve(g, testWavelength, solver.Guess{})
	assert.ErrorIs(t, err, solver.ErrGridTooSmall)
}

// TestSolve_GuessShapeMismatch rejects warm-start fields that do not match
// the grid shape.
func TestSolve_GuessShapeMismatch(t *testing.T) {
	g := testSlab(t)
	ms := solver.New(solver.SemiVectorialEx)

	bad := make([][]float64, g.NY()-1)
	for i := range bad {
		bad[i] = make([]float64, g.NX())
	}
	_, err := ms.Solve(g, testWavelength, solver.Guess{Field: bad})
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)

	ragged := make([][]float64, g.NY())
	for i := range ragged {
		ragged[i] = make([]float64, g.NX())
	}
	ragged[2] = ragged[2][:g.NX()-1]
	_, err = ms.Solve(g, testWavelength, solver.Guess{Field: ragged})
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
}

// TestSolve_WavelengthPanics treats a non-positive wavelength as programmer
// error.
func TestSolve_WavelengthPanics(t *testing.T) {
	g := testSlab(t)
	ms := solver.New(solver.SemiVectorialEx)
	for _, wl := range []float64{0, -1.55, math.Inf(1)} {
		assert.Panics(t, func() { _, _ = ms.Solve(g, wl, solver.Guess{}) })
	}
}

// TestSolve_Ordering extracts two eigenpairs and checks the descending
// effective-index convention.
func TestSolve_Ordering(t *testing.T) {
	g := testSlab(t)
	ms := solver.New(solver.SemiVectorialEx,
		solver.WithNEigs(2),
		solver.WithTolerance(1e-6),
		solver.WithMaxIterations(5000))

	res, err := ms.Solve(g, testWavelength, solver.Guess{})
	require.NoError(t, err)
	require.Len(t, res.NEffs, 2)
	require.Len(t, res.Modes, 2)
	assert.Greater(t, real(res.NEffs[0]), real(res.NEffs[1]),
		"modes must be ordered by descending effective index")
	assert.Greater(t, real(res.NEffs[1]), 1.0)
}

// TestSolve_UniformExactIndex exercises the degenerate case: in a uniform
// medium with mirror boundaries everywhere, the constant field is an exact
// eigenvector and the fundamental effective index equals the medium index.
func TestSolve_UniformExactIndex(t *testing.T) {
	const n0 = 1.5
	g := testUniform(t, n0)
	bnd, err := solver.NewBoundary("SSSS")
	require.NoError(t, err)

	for _, form := range []solver.Formulation{
		solver.SemiVectorialEx,
		solver.SemiVectorialEy,
		solver.FullyVectorial,
	} {
		t.Run(form.String(), func(t *testing.T) {
			ms := solver.New(form, solver.WithBoundary(bnd))
			res, serr := ms.Solve(g, testWavelength, solver.Guess{})
			require.NoError(t, serr)
			assert.InDelta(t, n0, real(res.NEffs[0]), 1e-9)
		})
	}
}

// TestSolve_FormulationAgreement checks that semi- and fully-vectorial
// effective indices coincide when the index profile carries no contrast.
func TestSolve_FormulationAgreement(t *testing.T) {
	g := testUniform(t, 2.0)

	semi, err := solver.New(solver.SemiVectorialEx).Solve(g, testWavelength, solver.Guess{})
	require.NoError(t, err)
	full, err := solver.New(solver.FullyVectorial).Solve(g, testWavelength, solver.Guess{})
	require.NoError(t, err)

	assert.InDelta(t, real(semi.NEffs[0]), real(full.NEffs[0]), 1e-8)
}

// TestSolve_Classification solves the slab fully-vectorially and checks the
// fundamental mode's polarization: the warm start favors the x-polarized
// block, so the classifier must report a dominant qTE fraction.
func TestSolve_Classification(t *testing.T) {
	g := testSlab(t)
	ms := solver.New(solver.FullyVectorial)

	// aim just below the core index so the fundamental is the nearest pair
	res, err := ms.Solve(g, testWavelength, solver.Guess{NEff: 2.9})
	require.NoError(t, err)
	require.Len(t, res.Types, 1)
	require.Len(t, res.Overlaps, 1)

	assert.Equal(t, solver.LabelQTE, res.Types[0].Label)
	assert.Greater(t, res.Types[0].Fraction, 90.0)

	// six fields per mode, grid-shaped each
	m := res.Modes[0]
	for _, name := range solver.FieldOrder {
		f, ok := m.Fields[name]
		require.True(t, ok, "missing component %s", name)
		require.Len(t, f, g.NY())
		require.Len(t, f[0], g.NX())
	}
}

// TestSolve_OverlapSums checks that each triplet of the overlap vector sums
// to 100 within rounding slack.
func TestSolve_OverlapSums(t *testing.T) {
	g := testSlab(t)
	res, err := solver.New(solver.FullyVectorial).Solve(g, testWavelength, solver.Guess{})
	require.NoError(t, err)

	for _, ov := range res.Overlaps {
		require.Len(t, ov, len(solver.FieldOrder))
		sumE := ov[0] + ov[1] + ov[2]
		sumH := ov[3] + ov[4] + ov[5]
		assert.InDelta(t, 100, sumE, 0.5)
		assert.InDelta(t, 100, sumH, 0.5)
	}
}

// TestSolve_WarmStart reuses the previous magnitude profile as the next
// guess: the eigenvalue must not move, and convergence must not get slower.
func TestSolve_WarmStart(t *testing.T) {
	g := testSlab(t)
	ms := solver.New(solver.SemiVectorialEx)

	cold, err := ms.Solve(g, testWavelength, solver.Guess{})
	require.NoError(t, err)

	warm, err := ms.Solve(g, testWavelength, solver.Guess{
		NEff:  real(cold.NEffs[0]),
		Field: cold.FundamentalMagnitude,
	})
	require.NoError(t, err)

	assert.InDelta(t, real(cold.NEffs[0]), real(warm.NEffs[0]), 1e-8)
	assert.LessOrEqual(t, warm.Iterations, cold.Iterations)
}

// TestSolve_InsufficientEigenpairs requests more modes than the operator
// dimension can yield.
func TestSolve_InsufficientEigenpairs(t *testing.T) {
	g, err := grid.NewUniform(grid.RectOptions{
		WindowWidth: 0.6, WindowHeight: 0.6,
		Step: 0.2,
	}, 1.5)
	require.NoError(t, err)
	require.Equal(t, 4, g.NX())

	ms := solver.New(solver.SemiVectorialEx, solver.WithNEigs(17))
	_, err = ms.Solve(g, testWavelength, solver.Guess{})
	assert.ErrorIs(t, err, solver.ErrInsufficientEigenpairs)
}
