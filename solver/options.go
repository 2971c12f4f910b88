// Package solver: functional configuration for ModeSolver.
//
// Design goals (shared across the module):
//   - Deterministic behavior: no global state, no time-based randomness.
//   - Safe by construction: panic only on nonsensical values (programmer error);
//     data-driven failures (boundary codes, guess shapes) are errors instead.
//   - Options fields are unexported; public APIs consume ...Option.
package solver

import "math"

// Documented defaults — single source of truth for zero-value behavior.
const (
	// DefaultNEigs is the number of eigenpairs extracted per solve.
	DefaultNEigs = 1

	// DefaultTolerance bounds the relative eigenvalue residual.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps inverse iterations per eigenpair.
	DefaultMaxIterations = 500
)

// Internal panic messages (programmer errors only; no magic strings).
const (
	panicNEigsInvalid      = "solver: WithNEigs: n must be >= 1"
	panicToleranceInvalid  = "solver: WithTolerance: tol must be finite, non-negative"
	panicIterationsInvalid = "solver: WithMaxIterations: n must be >= 1"
	panicWavelengthInvalid = "solver: Solve: wavelength must be positive and finite"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	nEigs    int
	tol      float64
	maxIter  int
	boundary Boundary
}

// WithNEigs sets the number of eigenpairs to extract (fundamental first).
// Panics when n < 1.
func WithNEigs(n int) Option {
	if n < 1 {
		panic(panicNEigsInvalid)
	}

	return func(o *Options) { o.nEigs = n }
}

// WithTolerance sets the relative eigenvalue residual bound.
// tol == 0 requests the default. Panics on negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		if tol == 0 {
			tol = DefaultTolerance
		}
		o.tol = tol
	}
}

// WithMaxIterations caps the inverse-iteration budget per eigenpair.
// Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithBoundary installs a validated Boundary (see NewBoundary).
func WithBoundary(b Boundary) Option {
	return func(o *Options) { o.boundary = b }
}

// gatherOptions resolves defaults then applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		nEigs:   DefaultNEigs,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
