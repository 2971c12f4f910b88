package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modesolve/matrix"
)

// denseOf builds a Dense from rows, failing the test on any error.
func denseOf(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// TestFactorize_NonSquare rejects rectangular input.
func TestFactorize_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.Factorize(m)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFactorize_Singular rejects a rank-deficient matrix.
func TestFactorize_Singular(t *testing.T) {
	m := denseOf(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, err := matrix.Factorize(m)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestLU_SolveNeedsPivoting solves a system whose leading pivot is zero,
// which a non-pivoting Doolittle scheme cannot factorize.
func TestLU_SolveNeedsPivoting(t *testing.T) {
	a := denseOf(t, [][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 0, 3},
	})
	lu, err := matrix.Factorize(a)
	require.NoError(t, err)

	// b chosen so that x = (1, 2, 3).
	x, err := lu.Solve([]float64{7, 6, 11})
	require.NoError(t, err)
	require.Len(t, x, 3)
	assert.InDelta(t, 1, x[0], 1e-12)
	assert.InDelta(t, 2, x[1], 1e-12)
	assert.InDelta(t, 3, x[2], 1e-12)
}

// TestLU_SolveReuse reuses one factorization across right-hand sides and
// checks A·x == b each time; Factorize must not mutate the caller's matrix.
func TestLU_SolveReuse(t *testing.T) {
	a := denseOf(t, [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	orig := a.Clone()

	lu, err := matrix.Factorize(a)
	require.NoError(t, err)

	for _, b := range [][]float64{{1, 0, 0}, {0, 1, 0}, {5, -2, 3.5}} {
		x, serr := lu.Solve(b)
		require.NoError(t, serr)

		back := make([]float64, len(b))
		require.NoError(t, orig.MulVecTo(back, x))
		for i := range b {
			assert.InDelta(t, b[i], back[i], 1e-12)
		}
	}

	// the original matrix is untouched by Factorize
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := orig.At(i, j)
			got, _ := a.At(i, j)
			assert.Equal(t, want, got)
		}
	}

	_, err = lu.Solve([]float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
