// Package sweep defines collaborator contracts, result carriers, and
// sentinel errors for the sweep subpackage of github.com/katalvlaran/modesolve.
package sweep

import (
	"errors"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/solver"
)

// Sentinel errors for sweep-level validation.
var (
	// ErrNoSteps indicates an empty structure or wavelength sequence.
	ErrNoSteps = errors.New("sweep: sequence must contain at least one step")
	// ErrShapeMismatch indicates an array whose shape disagrees with its axes.
	ErrShapeMismatch = errors.New("sweep: array shape does not match axes")
)

// Solver is the single-point solve contract the drivers orchestrate;
// *solver.ModeSolver satisfies it.
type Solver interface {
	// Solve computes the modes of s at the given wavelength under guess.
	Solve(s grid.Structure, wavelength float64, guess solver.Guess) (solver.Result, error)
	// Formulation reports the solver's formulation tag (it selects the
	// default warm-start policy).
	Formulation() solver.Formulation
}

// Compile-time conformance check.
var _ Solver = (*solver.ModeSolver)(nil)

// StepResult pairs one step's solve outcome with its independent variable
// (structure index or wavelength).
type StepResult struct {
	Variable float64
	Result   solver.Result
}

// GuessPolicy decides the guess handed to the next sweep step, given the
// guess used for the current step and its result. Modeling this as an
// explicit value (rather than hidden solver state) keeps the sequential
// dependency visible and overridable.
type GuessPolicy func(current solver.Guess, res solver.Result) solver.Guess

// ChainFundamental is the semi-vectorial default: the magnitude of the
// fundamental mode becomes the next field guess (the scalar n_eff target,
// if any, persists).
func ChainFundamental(current solver.Guess, res solver.Result) solver.Guess {
	current.Field = res.FundamentalMagnitude

	return current
}

// ResetField is the fully-vectorial default: the field guess is cleared
// after each solve; only a caller-supplied n_eff target persists.
func ResetField(current solver.Guess, _ solver.Result) solver.Guess {
	current.Field = nil

	return current
}

// KeepGuess disables warm-start threading entirely: every step receives the
// sweep's initial guess unchanged.
func KeepGuess(current solver.Guess, _ solver.Result) solver.Guess {
	return current
}

// defaultPolicy selects the warm-start rule per formulation.
func defaultPolicy(form solver.Formulation) GuessPolicy {
	if form == solver.FullyVectorial {
		return ResetField
	}

	return ChainFundamental
}
