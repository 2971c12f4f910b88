// Package matrix provides the dense linear algebra primitives backing the
// mode solver: a row-major float64 matrix with safe accessors, matrix-vector
// products, and LU factorization with partial pivoting for repeated
// linear solves against a fixed operator.
//
// What:
//
//   - Dense: cache-friendly row-major storage, explicit index formula i*cols+j.
//   - LU: PA = LU factorization, reusable across many right-hand sides —
//     the shape of a shift-and-invert eigensolver's inner loop.
//
// Why partial pivoting:
//
//	Shift-and-invert factorizes A−σI with σ deliberately close to an
//	eigenvalue, so near-zero pivots are the expected regime, not a corner
//	case. Row pivoting keeps the factorization usable there.
//
// Complexity:
//
//   - NewDense: O(r×c); At/Set/MulVecTo row ops: O(1)/O(r×c).
//   - Factorize: O(n³); Solve: O(n²) per right-hand side.
//
// Errors:
//
//   - ErrInvalidDimensions, ErrIndexOutOfBounds, ErrDimensionMismatch, ErrSingular.
package matrix
