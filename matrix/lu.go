package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when no usable pivot remains during factorization.
var ErrSingular = errors.New("matrix: singular matrix")

// pivotFloor is the smallest pivot magnitude accepted during factorization.
// Shift-and-invert deliberately works close to singularity; anything above
// this floor still yields a usable (if ill-conditioned) factorization.
const pivotFloor = 1e-300

// LU holds an in-place PA = LU factorization with partial (row) pivoting.
// L is unit lower triangular, U upper triangular; both share lu's storage.
type LU struct {
	lu   *Dense // combined L (below diagonal) and U (diagonal and above)
	perm []int  // row permutation: perm[i] is the source row of pivot row i
	n    int
}

// Factorize computes the pivoted LU factorization of a square matrix m.
// m is cloned; the caller's matrix is untouched.
// Returns ErrDimensionMismatch for non-square input and ErrSingular when a
// column has no pivot above the numeric floor.
// Complexity: O(n³) time, O(n²) memory.
func Factorize(m *Dense) (*LU, error) {
	// Stage 1: Validate input is square
	n, cols := m.Rows(), m.Cols()
	if n != cols {
		return nil, fmt.Errorf("Factorize: non-square %dx%d: %w", n, cols, ErrDimensionMismatch)
	}

	// Stage 2: Prepare working copy and identity permutation
	f := &LU{lu: m.Clone(), perm: make([]int, n), n: n}
	for i := range f.perm {
		f.perm[i] = i
	}
	data := f.lu.data

	// Stage 3: Execute elimination with partial pivoting
	var (
		k, i, j, p int
		maxAbs, v  float64
	)
	for k = 0; k < n; k++ {
		// pick pivot row p maximizing |data[i][k]| for i >= k
		p, maxAbs = k, math.Abs(data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(data[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs < pivotFloor {
			return nil, fmt.Errorf("Factorize: column %d: %w", k, ErrSingular)
		}
		if p != k {
			// swap rows p and k in storage and permutation
			for j = 0; j < n; j++ {
				data[p*n+j], data[k*n+j] = data[k*n+j], data[p*n+j]
			}
			f.perm[p], f.perm[k] = f.perm[k], f.perm[p]
		}
		// eliminate below the pivot; store multipliers in place of zeros
		piv := data[k*n+k]
		for i = k + 1; i < n; i++ {
			mult := data[i*n+k] / piv
			data[i*n+k] = mult
			for j = k + 1; j < n; j++ {
				data[i*n+j] -= mult * data[k*n+j]
			}
		}
	}

	return f, nil
}

// Solve computes x such that A·x = b for the factorized A, writing into a
// freshly allocated slice. b is not modified.
// Returns ErrDimensionMismatch when len(b) != n.
// Complexity: O(n²) per right-hand side.
func (f *LU) Solve(b []float64) ([]float64, error) {
	if len(b) != f.n {
		return nil, fmt.Errorf("LU.Solve: len(b)=%d want %d: %w", len(b), f.n, ErrDimensionMismatch)
	}
	var (
		n    = f.n
		data = f.lu.data
		x    = make([]float64, n)
		i, j int
		sum  float64
	)
	// forward substitution on the permuted right-hand side (Ly = Pb)
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for j = 0; j < i; j++ {
			sum -= data[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// back substitution (Ux = y)
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= data[i*n+j] * x[j]
		}
		x[i] = sum / data[i*n+i]
	}

	return x, nil
}
