// Package grid describes the discretized waveguide cross-section consumed by
// the mode solver: uniform coordinate axes, window bounds, and a refractive-index
// lookup over the grid points.
//
// What:
//
//   - Structure is the read-only contract the solver borrows for one solve.
//   - Grid is the concrete immutable carrier (deep-copied on construction).
//   - NewRectWaveguide builds a step-index rectangular guide on a uniform grid,
//     the canonical test substrate.
//
// Conventions:
//
//   - Index arrays are indexed [iy][ix]: rows run along y, columns along x.
//   - Flat (row-major) ordering of grid points is iy*NX() + ix.
//   - Coordinates ascend strictly; steps are uniform per axis.
//
// Errors:
//
//   - ErrEmptyGrid: an axis has no points.
//   - ErrNonRectangular: index rows have differing lengths.
//   - ErrShapeMismatch: index shape does not match the coordinate axes.
//   - ErrNonMonotonic: a coordinate axis is not strictly ascending.
package grid
