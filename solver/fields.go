package solver

import "math"

// ghost samples a real field at (ix, iy), extending past the window edges
// according to the boundary code: zero ('0'), mirrored ('S'), or mirrored
// with sign flip ('A'). The same rules shape the assembled operator, so the
// derived components stay consistent with the eigenproblem.
func (st *stencil) ghost(f [][]float64, ix, iy int) float64 {
	sign := 1.0
	if ix < 0 {
		switch st.b.Left() {
		case BoundZero:
			return 0
		case BoundAntisymmetric:
			sign = -sign
		}
		ix = -ix
	} else if ix >= st.nx {
		switch st.b.Right() {
		case BoundZero:
			return 0
		case BoundAntisymmetric:
			sign = -sign
		}
		ix = 2*(st.nx-1) - ix
	}
	if iy < 0 {
		switch st.b.Bottom() {
		case BoundZero:
			return 0
		case BoundAntisymmetric:
			sign = -sign
		}
		iy = -iy
	} else if iy >= st.ny {
		switch st.b.Top() {
		case BoundZero:
			return 0
		case BoundAntisymmetric:
			sign = -sign
		}
		iy = 2*(st.ny-1) - iy
	}

	return sign * f[iy][ix]
}

// dX returns the central x-derivative of f on the full grid.
func (st *stencil) dX(f [][]float64) [][]float64 {
	out := newRealField(st.nx, st.ny)
	for iy := 0; iy < st.ny; iy++ {
		for ix := 0; ix < st.nx; ix++ {
			out[iy][ix] = (st.ghost(f, ix+1, iy) - st.ghost(f, ix-1, iy)) / (2 * st.dx)
		}
	}

	return out
}

// dY returns the central y-derivative of f on the full grid.
func (st *stencil) dY(f [][]float64) [][]float64 {
	out := newRealField(st.nx, st.ny)
	for iy := 0; iy < st.ny; iy++ {
		for ix := 0; ix < st.nx; ix++ {
			out[iy][ix] = (st.ghost(f, ix, iy+1) - st.ghost(f, ix, iy-1)) / (2 * st.dy)
		}
	}

	return out
}

func newRealField(nx, ny int) [][]float64 {
	out := make([][]float64, ny)
	for iy := range out {
		out[iy] = make([]float64, nx)
	}

	return out
}

// unflatten reshapes v[offset:offset+nx*ny] into a [NY][NX] grid.
func (st *stencil) unflatten(v []float64, offset int) [][]float64 {
	out := newRealField(st.nx, st.ny)
	for iy := 0; iy < st.ny; iy++ {
		for ix := 0; ix < st.nx; ix++ {
			out[iy][ix] = v[offset+iy*st.nx+ix]
		}
	}

	return out
}

func toComplex(f [][]float64, imaginary bool) [][]complex128 {
	out := make([][]complex128, len(f))
	for iy := range f {
		out[iy] = make([]complex128, len(f[iy]))
		for ix, v := range f[iy] {
			if imaginary {
				out[iy][ix] = complex(0, v)
			} else {
				out[iy][ix] = complex(v, 0)
			}
		}
	}

	return out
}

// reconstructSemiVectorial wraps each eigenvector as the single dominant
// field component.
func reconstructSemiVectorial(st stencil, form Formulation, pairs []eigenpair, k0 float64) ModeSet {
	modes := make(ModeSet, len(pairs))
	name := form.DominantComponent()
	for i, p := range pairs {
		modes[i] = Mode{
			NEff: complex(math.Sqrt(p.lambda)/k0, 0),
			Fields: map[string][][]complex128{
				name: toComplex(st.unflatten(p.vec, 0), false),
			},
		}
	}

	return modes
}

// reconstructFullyVectorial derives the remaining four components from each
// solved (Ex, Ey) pair via the discretized Maxwell relations on the same grid:
//
//	Ez from ∇·(εE) = 0, Hx/Hy/Hz from ∇×E = −ik₀H (normalized impedance).
//
// With real transverse fields, Ez and Hz come out purely imaginary and
// Hx/Hy purely real; phase across mode index is left as solved.
func reconstructFullyVectorial(st stencil, pairs []eigenpair, k0 float64) ModeSet {
	var (
		modes = make(ModeSet, len(pairs))
		n     = st.nx * st.ny
	)
	for m, p := range pairs {
		var (
			neff = math.Sqrt(p.lambda) / k0
			beta = neff * k0
			ex   = st.unflatten(p.vec, 0)
			ey   = st.unflatten(p.vec, n)
			epsX = newRealField(st.nx, st.ny) // ε·Ex
			epsY = newRealField(st.nx, st.ny) // ε·Ey
		)
		for iy := 0; iy < st.ny; iy++ {
			for ix := 0; ix < st.nx; ix++ {
				e := st.eps(ix, iy)
				epsX[iy][ix] = e * ex[iy][ix]
				epsY[iy][ix] = e * ey[iy][ix]
			}
		}

		// Ez = (∂x(εEx) + ∂y(εEy)) / (βε), carried as the imaginary part.
		var (
			dEpsX = st.dX(epsX)
			dEpsY = st.dY(epsY)
			ez    = newRealField(st.nx, st.ny)
		)
		for iy := 0; iy < st.ny; iy++ {
			for ix := 0; ix < st.nx; ix++ {
				ez[iy][ix] = (dEpsX[iy][ix] + dEpsY[iy][ix]) / (beta * st.eps(ix, iy))
			}
		}

		var (
			dEzY = st.dY(ez)
			dEzX = st.dX(ez)
			dEyX = st.dX(ey)
			dExY = st.dY(ex)
			hx   = newRealField(st.nx, st.ny)
			hy   = newRealField(st.nx, st.ny)
			hz   = newRealField(st.nx, st.ny)
		)
		for iy := 0; iy < st.ny; iy++ {
			for ix := 0; ix < st.nx; ix++ {
				hx[iy][ix] = -(beta*ey[iy][ix] + dEzY[iy][ix]) / k0
				hy[iy][ix] = (beta*ex[iy][ix] + dEzX[iy][ix]) / k0
				hz[iy][ix] = (dEyX[iy][ix] - dExY[iy][ix]) / k0
			}
		}

		modes[m] = Mode{
			NEff: complex(neff, 0),
			Fields: map[string][][]complex128{
				FieldEx: toComplex(ex, false),
				FieldEy: toComplex(ey, false),
				FieldEz: toComplex(ez, true),
				FieldHx: toComplex(hx, false),
				FieldHy: toComplex(hy, false),
				FieldHz: toComplex(hz, true),
			},
		}
	}

	return modes
}
