// Package grid defines the Structure contract and sentinel errors
// for the grid subpackage of github.com/katalvlaran/modesolve.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates an axis with no points.
	ErrEmptyGrid = errors.New("grid: axes must have at least one point each")
	// ErrNonRectangular indicates index rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all index rows must have the same length")
	// ErrShapeMismatch indicates the index shape disagrees with the coordinate axes.
	ErrShapeMismatch = errors.New("grid: index shape does not match coordinate axes")
	// ErrNonMonotonic indicates a coordinate axis that is not strictly ascending.
	ErrNonMonotonic = errors.New("grid: coordinate axes must ascend strictly")
)

// Structure is the read-only view of a waveguide cross-section that the
// solver borrows for the duration of one solve. Implementations must be
// immutable while a solve or sweep is running.
type Structure interface {
	// XC returns the ascending x coordinates (length NX).
	XC() []float64
	// YC returns the ascending y coordinates (length NY).
	YC() []float64
	// NX returns the number of grid points along x.
	NX() int
	// NY returns the number of grid points along y.
	NY() int
	// XStep returns the uniform grid step along x.
	XStep() float64
	// YStep returns the uniform grid step along y.
	YStep() float64
	// Bounds returns the window extents (xmin, xmax, ymin, ymax).
	Bounds() (xmin, xmax, ymin, ymax float64)
	// Index returns the refractive index at grid point (ix, iy).
	Index(ix, iy int) float64
	// MaxIndex returns the largest refractive index on the grid.
	MaxIndex() float64
}
