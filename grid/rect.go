package grid

import (
	"fmt"
	"math"
)

// RectOptions describes a rectangular step-index waveguide centered in a
// uniform simulation window. All lengths share one unit (typically µm).
type RectOptions struct {
	// WindowWidth and WindowHeight are the simulation window extents.
	WindowWidth, WindowHeight float64
	// CoreWidth and CoreHeight are the guiding core extents.
	CoreWidth, CoreHeight float64
	// CoreOffsetY shifts the core center vertically from the window center.
	CoreOffsetY float64
	// NCore and NClad are the core and cladding refractive indices.
	NCore, NClad float64
	// Step is the uniform grid step applied to both axes.
	Step float64
}

// NewRectWaveguide samples a rectangular step-index guide onto a uniform
// grid. The window is centered at the origin; a point belongs to the core
// when it lies inside the (possibly offset) core rectangle.
// Returns the same sentinels as New.
// Complexity: O(NX×NY) time and memory.
func NewRectWaveguide(o RectOptions) (*Grid, error) {
	// The window and step must describe a finite, non-empty sampling before
	// any conversion or allocation happens.
	if !(o.Step > 0) || math.IsInf(o.Step, 0) ||
		!(o.WindowWidth > 0) || math.IsInf(o.WindowWidth, 0) ||
		!(o.WindowHeight > 0) || math.IsInf(o.WindowHeight, 0) {
		return nil, fmt.Errorf("NewRectWaveguide: window %gx%g, step %g: %w",
			o.WindowWidth, o.WindowHeight, o.Step, ErrEmptyGrid)
	}

	nx := int(o.WindowWidth/o.Step) + 1
	ny := int(o.WindowHeight/o.Step) + 1

	xc := make([]float64, nx)
	for i := range xc {
		xc[i] = -o.WindowWidth/2 + float64(i)*o.Step
	}
	yc := make([]float64, ny)
	for i := range yc {
		yc[i] = -o.WindowHeight/2 + float64(i)*o.Step
	}

	n := make([][]float64, ny)
	for iy := range n {
		n[iy] = make([]float64, nx)
		for ix := range n[iy] {
			inCore := xc[ix] >= -o.CoreWidth/2 && xc[ix] <= o.CoreWidth/2 &&
				yc[iy] >= o.CoreOffsetY-o.CoreHeight/2 && yc[iy] <= o.CoreOffsetY+o.CoreHeight/2
			if inCore {
				n[iy][ix] = o.NCore
			} else {
				n[iy][ix] = o.NClad
			}
		}
	}

	return New(xc, yc, n)
}

// NewUniform samples a uniform (non-guiding) medium of index n0 onto the
// window described by o; core parameters of o are ignored.
// Useful for degenerate-case verification, where semi- and fully-vectorial
// formulations must coincide.
func NewUniform(o RectOptions, n0 float64) (*Grid, error) {
	o.NCore, o.NClad = n0, n0

	return NewRectWaveguide(o)
}
