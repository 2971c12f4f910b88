package solver

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/modesolve/matrix"
)

// eigenSeed keeps restart vectors deterministic across runs.
const eigenSeed = 42

// sigmaNudge is the relative shift perturbation applied when the factorized
// A−σI turns out exactly singular (σ landed on an eigenvalue).
const sigmaNudge = 1e-9

// eigenpair is one converged (β², vector) pair; vectors are unit L2 norm.
type eigenpair struct {
	lambda float64
	vec    []float64
}

// eigensolve extracts the nEigs eigenpairs of A nearest the spectral target
// sigma using shift-and-invert inverse iteration with deflation.
//
// Stage 1: factorize A−σI once (LU with partial pivoting); a σ that lands
// exactly on an eigenvalue is nudged and refactorized.
// Stage 2: per eigenpair, iterate w ← (A−σI)⁻¹v, deflating against already
// converged vectors; the Rayleigh quotient estimates λ and the relative
// residual ‖Av−λv‖/max(|λ|,1) gates convergence.
// Stage 3: order pairs by descending λ (fundamental mode first).
//
// start seeds the first iteration when non-nil (warm start); restarts use a
// seeded generator, never time-based randomness.
// Returns the pairs, the total iteration count, and ErrNonConvergence when
// any pair exhausts maxIter, or ErrInsufficientEigenpairs when nEigs exceeds
// the operator dimension.
// Complexity: O(n³) factorization + O(iters·n²) iteration.
func eigensolve(A *matrix.Dense, sigma float64, start []float64, nEigs int, tol float64, maxIter int) ([]eigenpair, int, error) {
	n := A.Rows()
	if nEigs > n {
		return nil, 0, fmt.Errorf("eigensolve: %d eigenpairs from a %d-dim operator: %w",
			nEigs, n, ErrInsufficientEigenpairs)
	}

	// Stage 1: factorize the shifted operator.
	lu, err := factorizeShifted(A, sigma)
	if err != nil {
		return nil, 0, err
	}

	var (
		rng        = rand.New(rand.NewSource(eigenSeed))
		found      = make([]eigenpair, 0, nEigs)
		av         = make([]float64, n) // scratch for A·v
		totalIters int
	)

	// Stage 2: extract eigenpairs one by one, deflating previous ones.
	for m := 0; m < nEigs; m++ {
		v := startVector(n, m, start, rng)
		deflate(v, found)
		if normalize(v) == 0 {
			// start vector lies entirely in the converged subspace
			fillRandom(v, rng)
			deflate(v, found)
			normalize(v)
		}

		converged := false
		for it := 0; it < maxIter; it++ {
			totalIters++
			w, serr := lu.Solve(v)
			if serr != nil {
				return nil, totalIters, fmt.Errorf("eigensolve: %w", serr)
			}
			deflate(w, found)
			if normalize(w) == 0 {
				fillRandom(w, rng)
				deflate(w, found)
				normalize(w)
			}
			v = w

			// Rayleigh quotient and residual on the unshifted operator.
			if serr = A.MulVecTo(av, v); serr != nil {
				return nil, totalIters, fmt.Errorf("eigensolve: %w", serr)
			}
			lambda := dot(v, av)
			if residual(av, v, lambda) <= tol*math.Max(math.Abs(lambda), 1) {
				found = append(found, eigenpair{lambda: lambda, vec: v})
				converged = true

				break
			}
		}
		if !converged {
			return nil, totalIters, fmt.Errorf("eigensolve: eigenpair %d after %d iterations (tol %g): %w",
				m, totalIters, tol, ErrNonConvergence)
		}
	}

	// Stage 3: fundamental mode first.
	sort.Slice(found, func(i, j int) bool { return found[i].lambda > found[j].lambda })

	return found, totalIters, nil
}

// factorizeShifted computes LU of A−σI, nudging σ once if it is singular.
func factorizeShifted(A *matrix.Dense, sigma float64) (*matrix.LU, error) {
	for attempt := 0; ; attempt++ {
		shifted := A.Clone()
		for i := 0; i < shifted.Rows(); i++ {
			if err := shifted.Add(i, i, -sigma); err != nil {
				return nil, fmt.Errorf("eigensolve: %w", err)
			}
		}
		lu, err := matrix.Factorize(shifted)
		if err == nil {
			return lu, nil
		}
		if attempt > 0 {
			return nil, fmt.Errorf("eigensolve: shift %g: %w", sigma, err)
		}
		// σ hit an eigenvalue exactly; move it off by a relative nudge.
		sigma *= 1 + sigmaNudge
		if sigma == 0 {
			sigma = sigmaNudge
		}
	}
}

// startVector picks the initial iterate: the caller's warm-start field for
// the fundamental pair, all-ones for a cold fundamental (strong overlap with
// nodeless modes), seeded randomness for higher pairs.
func startVector(n, m int, start []float64, rng *rand.Rand) []float64 {
	v := make([]float64, n)
	if m == 0 && start != nil {
		copy(v, start)

		return v
	}
	if m == 0 {
		for i := range v {
			v[i] = 1
		}

		return v
	}
	fillRandom(v, rng)

	return v
}

func fillRandom(v []float64, rng *rand.Rand) {
	for i := range v {
		v[i] = rng.Float64() - 0.5
	}
}

// deflate removes the components of v along all converged eigenvectors
// (modified Gram–Schmidt).
func deflate(v []float64, found []eigenpair) {
	for _, p := range found {
		d := dot(v, p.vec)
		for i := range v {
			v[i] -= d * p.vec[i]
		}
	}
}

// normalize scales v to unit L2 norm and returns the original norm.
func normalize(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	nrm := math.Sqrt(sum)
	if nrm == 0 {
		return 0
	}
	for i := range v {
		v[i] /= nrm
	}

	return nrm
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// residual computes ‖av − λv‖₂ without mutating its inputs.
func residual(av, v []float64, lambda float64) float64 {
	var sum float64
	for i := range v {
		d := av[i] - lambda*v[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}
