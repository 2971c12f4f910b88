// Package solver: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...) for context); tests match them via errors.Is.
// Panics are reserved for programmer errors in option constructors.
package solver

import "errors"

var (
	// ErrIllPosedBoundary indicates an invalid or unsupported boundary code
	// for the chosen formulation. Raised before any operator assembly.
	ErrIllPosedBoundary = errors.New("solver: ill-posed boundary code")

	// ErrGridTooSmall indicates the structure grid has too few points per
	// axis for the finite-difference stencils to reach their neighbors.
	ErrGridTooSmall = errors.New("solver: grid too small for stencil")

	// ErrNonConvergence indicates the eigensolver exhausted its iteration
	// budget before the residual reached tolerance. Not retried internally;
	// callers may retry with a different guess or a looser tolerance.
	ErrNonConvergence = errors.New("solver: eigensolver did not converge")

	// ErrInsufficientEigenpairs indicates fewer physically guided eigenpairs
	// than requested were found near the target.
	ErrInsufficientEigenpairs = errors.New("solver: insufficient guided eigenpairs")

	// ErrDimensionMismatch indicates a supplied initial guess whose shape
	// does not match the current grid.
	ErrDimensionMismatch = errors.New("solver: guess shape does not match grid")
)
