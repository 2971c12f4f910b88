// Package solver - single-point solve entry.
//
// This file provides the canonical path from (structure, wavelength, guess)
// to an immutable Result: validation, operator assembly, spectral targeting,
// eigen extraction, field reconstruction, and classification.
package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/matrix"
)

// ModeSolver computes guided modes under one formulation and option set.
// It carries no per-solve state: every Solve call takes its structure,
// wavelength, and guess explicitly and returns an independent Result, so a
// single ModeSolver may serve many sweeps.
type ModeSolver struct {
	form Formulation
	opts Options
}

// New builds a ModeSolver for the given formulation.
// Defaults: one eigenpair, DefaultTolerance, DefaultMaxIterations,
// DefaultBoundaryCode on all edges.
func New(form Formulation, opts ...Option) *ModeSolver {
	return &ModeSolver{form: form, opts: gatherOptions(opts...)}
}

// Formulation reports the solver's formulation tag.
func (ms *ModeSolver) Formulation() Formulation { return ms.form }

// NEigs reports the configured eigenpair count.
func (ms *ModeSolver) NEigs() int { return ms.opts.nEigs }

// Solve computes the opts.nEigs guided modes of s at the given wavelength.
//
// Contracts:
//   - s is immutable for the duration of the call; the solver only borrows it.
//   - guess biases the spectral target and the iteration start (see Guess);
//     it is read, copied where needed, and never mutated.
//   - wavelength must be positive and finite (programmer error ⇒ panic).
//
// Errors: ErrGridTooSmall, ErrDimensionMismatch, ErrNonConvergence,
// ErrInsufficientEigenpairs (all sentinel-wrapped with context).
//
// Complexity: O((cN)³) factorization + O(iters·(cN)²) iteration,
// N = NX×NY, c = 1 (semi-vectorial) or 2 (fully-vectorial).
func (ms *ModeSolver) Solve(s grid.Structure, wavelength float64, guess Guess) (Result, error) {
	if !(wavelength > 0) || math.IsInf(wavelength, 0) {
		panic(panicWavelengthInvalid)
	}

	// Stage 1: validate the grid and the guess shape.
	nx, ny := s.NX(), s.NY()
	if nx < minPointsPerAxis || ny < minPointsPerAxis {
		return Result{}, fmt.Errorf("Solve: grid %dx%d, need at least %dx%d: %w",
			nx, ny, minPointsPerAxis, minPointsPerAxis, ErrGridTooSmall)
	}
	if guess.Field != nil {
		if len(guess.Field) != ny {
			return Result{}, fmt.Errorf("Solve: guess has %d rows, grid has %d: %w",
				len(guess.Field), ny, ErrDimensionMismatch)
		}
		for iy, row := range guess.Field {
			if len(row) != nx {
				return Result{}, fmt.Errorf("Solve: guess row %d has %d columns, grid has %d: %w",
					iy, len(row), nx, ErrDimensionMismatch)
			}
		}
	}

	// Stage 2: assemble the finite-difference operator.
	var (
		st = newStencil(s, wavelength, ms.opts.boundary)
		k0 = 2 * math.Pi / wavelength
	)
	A, err := ms.assemble(st)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	// Stage 3: extract eigenpairs near the spectral target.
	pairs, iters, err := eigensolve(A, ms.target(s, k0, guess), ms.startVector(st, guess),
		ms.opts.nEigs, ms.opts.tol, ms.opts.maxIter)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	for _, p := range pairs {
		// λ = β² ≤ 0 means the pair nearest the target is not a propagating
		// guided mode; no silent fallback to an unguided target.
		if p.lambda <= 0 {
			return Result{}, fmt.Errorf("Solve: eigenvalue %g is not guided: %w",
				p.lambda, ErrInsufficientEigenpairs)
		}
	}

	// Stage 4: reconstruct fields and classify.
	res := Result{Iterations: iters}
	if ms.form == FullyVectorial {
		res.Modes = reconstructFullyVectorial(st, pairs, k0)
		res.Overlaps, res.Types = classify(res.Modes)
	} else {
		res.Modes = reconstructSemiVectorial(st, ms.form, pairs, k0)
		res.FundamentalMagnitude = magnitudeOf(res.Modes[0].Fields[ms.form.DominantComponent()])
	}
	res.NEffs = make([]complex128, len(res.Modes))
	for i, m := range res.Modes {
		res.NEffs[i] = m.NEff
	}

	return res, nil
}

// assemble dispatches operator assembly by formulation.
func (ms *ModeSolver) assemble(st stencil) (*matrix.Dense, error) {
	if ms.form == FullyVectorial {
		return assembleFullyVectorial(st)
	}

	return assembleSemiVectorial(st, ms.form)
}

// target derives the shift σ = (k₀·n_target)² biasing the eigensolver toward
// guided solutions: an explicit n_eff guess wins, then a field-weighted mean
// index from the warm-start profile, then the grid's maximum index as the
// safe upper bound.
func (ms *ModeSolver) target(s grid.Structure, k0 float64, guess Guess) float64 {
	if guess.NEff > 0 {
		return k0 * k0 * guess.NEff * guess.NEff
	}
	if guess.Field != nil {
		var num, den float64
		for iy, row := range guess.Field {
			for ix, v := range row {
				n := s.Index(ix, iy)
				num += v * v * n * n
				den += v * v
			}
		}
		if den > 0 {
			return k0 * k0 * num / den
		}
	}
	nMax := s.MaxIndex()

	return k0 * k0 * nMax * nMax
}

// startVector flattens the warm-start field into the operator's unknown
// ordering (row-major; duplicated across both transverse blocks for the
// fully-vectorial operator). Returns nil when no field guess is present.
func (ms *ModeSolver) startVector(st stencil, guess Guess) []float64 {
	if guess.Field == nil {
		return nil
	}
	n := st.nx * st.ny
	size := n
	if ms.form == FullyVectorial {
		size = 2 * n
	}
	v := make([]float64, size)
	for iy := 0; iy < st.ny; iy++ {
		for ix := 0; ix < st.nx; ix++ {
			v[iy*st.nx+ix] = guess.Field[iy][ix]
			if ms.form == FullyVectorial {
				v[n+iy*st.nx+ix] = guess.Field[iy][ix]
			}
		}
	}

	return v
}

// magnitudeOf copies |f| into a fresh real array, leaving f untouched for
// downstream consumers of the complex mode.
func magnitudeOf(f [][]complex128) [][]float64 {
	out := make([][]float64, len(f))
	for iy, row := range f {
		out[iy] = make([]float64, len(row))
		for ix, v := range row {
			out[iy][ix] = math.Hypot(real(v), imag(v))
		}
	}

	return out
}
