package sweep

import (
	"fmt"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/solver"
)

// GroupIndex estimates the group index per mode via a central finite
// difference over wavelength:
//
//	n_g[i] = n_eff_center[i] − λ·(n_eff_forward[i] − n_eff_backward[i]) / (2δ)
//
// center is solved at λ, backward at λ−δ, forward at λ+δ. The three solves
// are independent — they sit at different wavelengths around one structure,
// so no warm-start chain applies. δ must be small against the dispersion
// curvature; no adaptive step selection is performed.
//
// The first failing sub-solve is surfaced as-is (wrapped with which leg
// failed); no partial result is returned.
// Complexity: three single-point solves.
func GroupIndex(ms Solver, center, backward, forward grid.Structure, wavelength, step float64) ([]float64, error) {
	ctr, err := ms.Solve(center, wavelength, solver.Guess{})
	if err != nil {
		return nil, fmt.Errorf("group index: center solve: %w", err)
	}
	bck, err := ms.Solve(backward, wavelength-step, solver.Guess{})
	if err != nil {
		return nil, fmt.Errorf("group index: backward solve: %w", err)
	}
	frw, err := ms.Solve(forward, wavelength+step, solver.Guess{})
	if err != nil {
		return nil, fmt.Errorf("group index: forward solve: %w", err)
	}

	n := len(ctr.NEffs)
	if len(bck.NEffs) < n {
		n = len(bck.NEffs)
	}
	if len(frw.NEffs) < n {
		n = len(frw.NEffs)
	}
	ngs := make([]float64, n)
	for i := 0; i < n; i++ {
		ngs[i] = real(ctr.NEffs[i]) - wavelength*(real(frw.NEffs[i])-real(bck.NEffs[i]))/(2*step)
	}

	return ngs, nil
}
