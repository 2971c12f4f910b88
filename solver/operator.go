package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/matrix"
)

// minPointsPerAxis is the smallest grid extent the 5-point stencils (and the
// mirror ghost rules, which reach one point past the edge) can operate on.
const minPointsPerAxis = 4

// stencil bundles everything the finite-difference assembly needs:
// grid geometry, squared free-space wavenumber, and the boundary code.
type stencil struct {
	s      grid.Structure
	b      Boundary
	nx, ny int
	dx, dy float64
	k2     float64 // k0² = (2π/λ)²
}

func newStencil(s grid.Structure, wavelength float64, b Boundary) stencil {
	k0 := 2 * math.Pi / wavelength

	return stencil{
		s:  s,
		b:  b,
		nx: s.NX(), ny: s.NY(),
		dx: s.XStep(), dy: s.YStep(),
		k2: k0 * k0,
	}
}

// eps returns the relative permittivity n² at (ix, iy), clamping out-of-window
// lookups to the edge value (the cladding is assumed to continue outward).
func (st *stencil) eps(ix, iy int) float64 {
	if ix < 0 {
		ix = 0
	} else if ix >= st.nx {
		ix = st.nx - 1
	}
	if iy < 0 {
		iy = 0
	} else if iy >= st.ny {
		iy = st.ny - 1
	}
	n := st.s.Index(ix, iy)

	return n * n
}

// deposit folds coefficient v for the neighbor at (ix, iy) into row `row` of
// A (column block at colOffset), honoring the boundary ghost rules: legs that
// reach past the window are dropped ('0'), folded onto the mirror point ('S'),
// or folded with a sign flip ('A'). Edge order is (left, right, top, bottom)
// with top at maximal y.
func (st *stencil) deposit(A *matrix.Dense, row, ix, iy, colOffset int, v float64) error {
	sign := 1.0
	if ix < 0 {
		switch st.b.Left() {
		case BoundZero:
			return nil
		case BoundAntisymmetric:
			sign = -sign
		}
		ix = -ix
	} else if ix >= st.nx {
		switch st.b.Right() {
		case BoundZero:
			return nil
		case BoundAntisymmetric:
			sign = -sign
		}
		ix = 2*(st.nx-1) - ix
	}
	if iy < 0 {
		switch st.b.Bottom() {
		case BoundZero:
			return nil
		case BoundAntisymmetric:
			sign = -sign
		}
		iy = -iy
	} else if iy >= st.ny {
		switch st.b.Top() {
		case BoundZero:
			return nil
		case BoundAntisymmetric:
			sign = -sign
		}
		iy = 2*(st.ny-1) - iy
	}

	return A.Add(row, colOffset+iy*st.nx+ix, sign*v)
}

// addScalarRow writes one row of the scalar Helmholtz operator for grid point
// (ix, iy): second differences along both axes plus k0²n² on the diagonal.
// weightX selects the permittivity-weighted stencil on the x axis (dominant
// component Ex) versus the y axis (Ey); the weighting enforces continuity of
// the normal displacement field across index steps and degenerates to the
// plain 1/h² stencil wherever the index is locally uniform.
func (st *stencil) addScalarRow(A *matrix.Dense, row, ix, iy, colOffset int, weightX bool) error {
	var (
		epsP = st.eps(ix, iy)
		epsE = st.eps(ix+1, iy)
		epsW = st.eps(ix-1, iy)
		epsN = st.eps(ix, iy+1)
		epsS = st.eps(ix, iy-1)
		cE, cW, cN, cS float64
		diag           = st.k2 * epsP
	)

	if weightX {
		cE = 2 * epsE / (st.dx * st.dx * (epsP + epsE))
		cW = 2 * epsW / (st.dx * st.dx * (epsP + epsW))
		diag -= 2 * epsP / (st.dx * st.dx * (epsP + epsE))
		diag -= 2 * epsP / (st.dx * st.dx * (epsP + epsW))
		cN = 1 / (st.dy * st.dy)
		cS = cN
		diag -= 2 / (st.dy * st.dy)
	} else {
		cN = 2 * epsN / (st.dy * st.dy * (epsP + epsN))
		cS = 2 * epsS / (st.dy * st.dy * (epsP + epsS))
		diag -= 2 * epsP / (st.dy * st.dy * (epsP + epsN))
		diag -= 2 * epsP / (st.dy * st.dy * (epsP + epsS))
		cE = 1 / (st.dx * st.dx)
		cW = cE
		diag -= 2 / (st.dx * st.dx)
	}

	if err := st.deposit(A, row, ix, iy, colOffset, diag); err != nil {
		return err
	}
	if err := st.deposit(A, row, ix+1, iy, colOffset, cE); err != nil {
		return err
	}
	if err := st.deposit(A, row, ix-1, iy, colOffset, cW); err != nil {
		return err
	}
	if err := st.deposit(A, row, ix, iy+1, colOffset, cN); err != nil {
		return err
	}

	return st.deposit(A, row, ix, iy-1, colOffset, cS)
}

// addCouplingRow writes the polarization-coupling row acting on the other
// transverse component: ∂/∂a[(1/ε)∂(ε f)/∂b] − ∂²f/∂a∂b discretized on the
// four diagonal neighbors. The two terms cancel exactly wherever the index is
// locally uniform, so the coupling vanishes for separable/uniform profiles.
// viaX selects which axis carries the permittivity division (Axy vs Ayx).
func (st *stencil) addCouplingRow(A *matrix.Dense, row, ix, iy, colOffset int, viaX bool) error {
	scale := 1 / (4 * st.dx * st.dy)
	for _, sx := range [2]int{1, -1} {
		for _, sy := range [2]int{1, -1} {
			var ratio float64
			if viaX {
				// Axy: inner y-derivative of (ε Ey), divided by ε at (ix+sx, iy).
				ratio = st.eps(ix+sx, iy+sy) / st.eps(ix+sx, iy)
			} else {
				// Ayx: inner x-derivative of (ε Ex), divided by ε at (ix, iy+sy).
				ratio = st.eps(ix+sx, iy+sy) / st.eps(ix, iy+sy)
			}
			cf := float64(sx*sy) * scale * (ratio - 1)
			if cf == 0 {
				continue
			}
			if err := st.deposit(A, row, ix+sx, iy+sy, colOffset, cf); err != nil {
				return err
			}
		}
	}

	return nil
}

// assembleSemiVectorial builds the N×N scalar operator whose eigenvalues are
// β² for the chosen dominant component.
// Complexity: O(N) assembly into O(N²) storage, N = NX×NY.
func assembleSemiVectorial(st stencil, form Formulation) (*matrix.Dense, error) {
	n := st.nx * st.ny
	A, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("assembleSemiVectorial: %w", err)
	}
	weightX := form == SemiVectorialEx
	for iy := 0; iy < st.ny; iy++ {
		for ix := 0; ix < st.nx; ix++ {
			if err = st.addScalarRow(A, iy*st.nx+ix, ix, iy, 0, weightX); err != nil {
				return nil, fmt.Errorf("assembleSemiVectorial: %w", err)
			}
		}
	}

	return A, nil
}

// assembleFullyVectorial builds the coupled 2N×2N block operator
//
//	[ Axx  Axy ] [Ex]        [Ex]
//	[ Ayx  Ayy ] [Ey] =  β²  [Ey]
//
// over both transverse components; they cannot be decoupled once the index
// varies along both axes.
// Complexity: O(N) assembly into O(4N²) storage.
func assembleFullyVectorial(st stencil) (*matrix.Dense, error) {
	n := st.nx * st.ny
	A, err := matrix.NewDense(2*n, 2*n)
	if err != nil {
		return nil, fmt.Errorf("assembleFullyVectorial: %w", err)
	}
	for iy := 0; iy < st.ny; iy++ {
		for ix := 0; ix < st.nx; ix++ {
			idx := iy*st.nx + ix
			// Ex rows: Axx block + Axy coupling.
			if err = st.addScalarRow(A, idx, ix, iy, 0, true); err != nil {
				return nil, fmt.Errorf("assembleFullyVectorial: %w", err)
			}
			if err = st.addCouplingRow(A, idx, ix, iy, n, true); err != nil {
				return nil, fmt.Errorf("assembleFullyVectorial: %w", err)
			}
			// Ey rows: Ayy block + Ayx coupling.
			if err = st.addScalarRow(A, n+idx, ix, iy, n, false); err != nil {
				return nil, fmt.Errorf("assembleFullyVectorial: %w", err)
			}
			if err = st.addCouplingRow(A, n+idx, ix, iy, 0, false); err != nil {
				return nil, fmt.Errorf("assembleFullyVectorial: %w", err)
			}
		}
	}

	return A, nil
}
