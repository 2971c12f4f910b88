package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDimensionMismatch indicates incompatible dimensions between operands.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrIndexOutOfBounds on invalid indices. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Add accumulates v onto the element at (row, col); the operator builders
// touch each stencil cell several times, so accumulation is the hot path.
// Complexity: O(1).
func (m *Dense) Add(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Add", row, col, err)
	}
	m.data[idx] += v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// MulVecTo writes m·x into dst. Both dst and x must have length matching the
// matrix shape; dst and x must not alias.
// Returns ErrDimensionMismatch on length disagreement.
// Complexity: O(r*c).
func (m *Dense) MulVecTo(dst, x []float64) error {
	if len(x) != m.c || len(dst) != m.r {
		return fmt.Errorf("Dense.MulVecTo: len(dst)=%d len(x)=%d for %dx%d: %w",
			len(dst), len(x), m.r, m.c, ErrDimensionMismatch)
	}
	var (
		i, j int
		sum  float64
		row  []float64
	)
	for i = 0; i < m.r; i++ {
		row = m.data[i*m.c : (i+1)*m.c]
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += row[j] * x[j]
		}
		dst[i] = sum
	}

	return nil
}
