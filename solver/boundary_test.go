package solver_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/modesolve/solver"
)

// TestNewBoundary_Validation rejects malformed codes with ErrIllPosedBoundary
// and accepts every symbol of the alphabet on every edge.
func TestNewBoundary_Validation(t *testing.T) {
	cases := []struct {
		name string
		code string
		ok   bool
	}{
		{"AllZero", "0000", true},
		{"MixedSymbols", "0SA0", true},
		{"AllSymmetric", "SSSS", true},
		{"TooShort", "000", false},
		{"TooLong", "00000", false},
		{"Empty", "", false},
		{"UnknownSymbol", "00X0", false},
		{"LowercaseSymbol", "00s0", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := solver.NewBoundary(tc.code)
			if tc.ok {
				if err != nil {
					t.Fatalf("NewBoundary(%q) error = %v; want nil", tc.code, err)
				}
				if b.Code() != tc.code {
					t.Errorf("Code() = %q; want %q", b.Code(), tc.code)
				}

				return
			}
			if !errors.Is(err, solver.ErrIllPosedBoundary) {
				t.Errorf("NewBoundary(%q) error = %v; want ErrIllPosedBoundary", tc.code, err)
			}
		})
	}
}

// TestBoundary_ZeroValue behaves as the all-zero default code.
func TestBoundary_ZeroValue(t *testing.T) {
	var b solver.Boundary
	if b.Code() != solver.DefaultBoundaryCode {
		t.Errorf("zero value Code() = %q; want %q", b.Code(), solver.DefaultBoundaryCode)
	}
	if b.Left() != '0' || b.Right() != '0' || b.Top() != '0' || b.Bottom() != '0' {
		t.Errorf("zero value edges = %c%c%c%c; want 0000", b.Left(), b.Right(), b.Top(), b.Bottom())
	}
}
