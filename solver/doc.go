// Package solver computes guided optical modes of a waveguide cross-section:
// given a refractive-index grid and a wavelength it finds the eigenpairs
// (effective index + transverse field profile) of the finite-difference
// discretization of Maxwell's equations.
//
// What:
//
//   - Boundary: 4-symbol edge code over {'0','S','A'} (left, right, top, bottom).
//   - ModeSolver: formulation-tagged solver (SemiVectorialEx, SemiVectorialEy,
//     FullyVectorial) with functional options (eigenpair count, tolerance,
//     iteration budget, boundary).
//   - Solve: one (structure, wavelength, guess) → immutable Result. The guess
//     is an explicit parameter, never hidden solver state; warm-start threading
//     across repeated solves lives in package sweep.
//
// How:
//
//	The cross-section is discretized on the structure's uniform grid
//	(row-major, iy*NX+ix). Semi-vectorial formulations assemble one scalar
//	Helmholtz operator with permittivity-weighted stencils along the dominant
//	axis; the fully-vectorial formulation assembles the coupled 2N×2N block
//	operator over both transverse E-components. Eigenpairs nearest the target
//	β² are extracted by shift-and-invert inverse iteration with deflation;
//	targeting near the physically expected index keeps the iteration away
//	from the far more numerous unguided eigenpairs. Fully-vectorial results
//	carry all six field components, energy overlaps, and qTE/qTM labels.
//
// Errors:
//
//   - ErrIllPosedBoundary: invalid boundary code for the formulation.
//   - ErrGridTooSmall: fewer grid points than the stencils require.
//   - ErrNonConvergence: iteration budget exhausted before tolerance.
//   - ErrInsufficientEigenpairs: fewer guided eigenpairs than requested.
//   - ErrDimensionMismatch: initial-guess shape disagrees with the grid.
package solver
