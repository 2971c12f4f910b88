package sweep

import (
	"fmt"
	"math"
)

// GaussFit summarizes a Gaussian approximation of a field magnitude:
// peak amplitude, intensity centroid, and mode field diameters (1/e² of
// intensity, i.e. 4σ of the intensity distribution) per axis.
// Used purely for plot annotation; it never feeds back into the solve.
type GaussFit struct {
	Amplitude        float64
	CenterX, CenterY float64
	MFDX, MFDY       float64
}

// FitGaussian estimates a Gaussian fit of mag (shape [len(yc)][len(xc)])
// by intensity moments: the centroid is the |mag|²-weighted mean position
// and the widths follow from the second central moments.
// Returns ErrShapeMismatch when mag does not match the axes, or when the
// field carries no energy.
// Complexity: O(NX×NY).
func FitGaussian(xc, yc []float64, mag [][]float64) (GaussFit, error) {
	if len(mag) != len(yc) {
		return GaussFit{}, fmt.Errorf("FitGaussian: %d rows for %d y points: %w",
			len(mag), len(yc), ErrShapeMismatch)
	}

	var fit GaussFit
	var total float64
	for iy, row := range mag {
		if len(row) != len(xc) {
			return GaussFit{}, fmt.Errorf("FitGaussian: row %d has %d columns for %d x points: %w",
				iy, len(row), len(xc), ErrShapeMismatch)
		}
		for ix, v := range row {
			w := v * v
			total += w
			fit.CenterX += w * xc[ix]
			fit.CenterY += w * yc[iy]
			if v > fit.Amplitude {
				fit.Amplitude = v
			}
		}
	}
	if total == 0 {
		return GaussFit{}, fmt.Errorf("FitGaussian: zero field energy: %w", ErrShapeMismatch)
	}
	fit.CenterX /= total
	fit.CenterY /= total

	var varX, varY float64
	for iy, row := range mag {
		for ix, v := range row {
			w := v * v
			varX += w * (xc[ix] - fit.CenterX) * (xc[ix] - fit.CenterX)
			varY += w * (yc[iy] - fit.CenterY) * (yc[iy] - fit.CenterY)
		}
	}
	fit.MFDX = 4 * math.Sqrt(varX/total)
	fit.MFDY = 4 * math.Sqrt(varY/total)

	return fit, nil
}
