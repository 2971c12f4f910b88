package solver

import "fmt"

// Boundary edge symbols. Each selects the ghost-point rule applied to
// stencil legs that reach past the corresponding window edge.
const (
	// BoundZero forces the field to zero outside the window (Dirichlet).
	BoundZero = '0'
	// BoundSymmetric mirrors the field across the edge (even extension).
	BoundSymmetric = 'S'
	// BoundAntisymmetric mirrors with sign flip (odd extension).
	BoundAntisymmetric = 'A'
)

// boundaryCodeLen is the fixed symbol count: one per window edge.
const boundaryCodeLen = 4

// DefaultBoundaryCode zeroes the field on all four edges.
const DefaultBoundaryCode = "0000"

// Boundary is a validated 4-symbol edge code in (left, right, top, bottom)
// order. The zero value behaves as DefaultBoundaryCode.
type Boundary struct {
	code string
}

// NewBoundary validates and wraps a 4-symbol boundary code.
// Returns ErrIllPosedBoundary for a wrong length or an unknown symbol.
// Complexity: O(1).
func NewBoundary(code string) (Boundary, error) {
	if len(code) != boundaryCodeLen {
		return Boundary{}, fmt.Errorf("NewBoundary(%q): length %d, want %d: %w",
			code, len(code), boundaryCodeLen, ErrIllPosedBoundary)
	}
	for i := 0; i < boundaryCodeLen; i++ {
		switch code[i] {
		case BoundZero, BoundSymmetric, BoundAntisymmetric:
		default:
			return Boundary{}, fmt.Errorf("NewBoundary(%q): symbol %q at edge %d: %w",
				code, code[i], i, ErrIllPosedBoundary)
		}
	}

	return Boundary{code: code}, nil
}

// Code returns the effective 4-symbol code. Complexity: O(1).
func (b Boundary) Code() string {
	if b.code == "" {
		return DefaultBoundaryCode
	}

	return b.code
}

// Left returns the left-edge symbol.
func (b Boundary) Left() byte { return b.Code()[0] }

// Right returns the right-edge symbol.
func (b Boundary) Right() byte { return b.Code()[1] }

// Top returns the top-edge symbol.
func (b Boundary) Top() byte { return b.Code()[2] }

// Bottom returns the bottom-edge symbol.
func (b Boundary) Bottom() byte { return b.Code()[3] }
