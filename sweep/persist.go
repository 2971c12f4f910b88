// Package sweep - flat-file artifacts.
//
// All persistence is delimited text: one summary line per sweep step, and
// one grid-shaped magnitude array per mode field component. Rendering, when
// requested, goes through the Grapher collaborator and never affects the
// numerical results.
package sweep

import (
	"fmt"
	"math/cmplx"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/solver"
)

// Summary line formats: structure sweeps key by integer step index,
// wavelength sweeps by the wavelength itself.
const (
	summaryIndexFormat      = "%d,%.6f\n"
	summaryWavelengthFormat = "%.4f,%.6f\n"
)

// WriteSummary persists one "variable,n_eff_real" line per step, using the
// fundamental (first) effective index. indexVariable selects the integer
// format used by structure sweeps.
// Complexity: O(steps).
func WriteSummary(path string, results []StepResult, indexVariable bool) error {
	var sb strings.Builder
	for i, r := range results {
		if len(r.Result.NEffs) == 0 {
			continue
		}
		nEff := real(r.Result.NEffs[0])
		if indexVariable {
			fmt.Fprintf(&sb, summaryIndexFormat, i, nEff)
		} else {
			fmt.Fprintf(&sb, summaryWavelengthFormat, r.Variable, nEff)
		}
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// ModeFilename derives the artifact name for one field of one mode:
// "<prefix>_<field>_<modeIndex><ext>" next to base.
func ModeFilename(base, field string, modeIndex int) string {
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext)

	return fmt.Sprintf("%s_%s_%d%s", prefix, field, modeIndex, ext)
}

// WriteMode writes |f| as comma-delimited rows, top row first (reversed y,
// matching image orientation). The complex input is read only; magnitudes
// are computed into the artifact, never back into the mode.
// Complexity: O(NX×NY).
func WriteMode(path string, f [][]complex128) error {
	var sb strings.Builder
	for iy := len(f) - 1; iy >= 0; iy-- {
		row := f[iy]
		for ix, v := range row {
			if ix > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(cmplx.Abs(v), 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// WriteModes persists every requested field component of every mode under
// dir (created if absent), naming artifacts via ModeFilename. When a Grapher
// is supplied each written component is also rendered as a heatmap over the
// window extents; the fundamental mode's plot is annotated with its Gaussian
// mode-size fit. fields filters the components; empty means "all present".
func WriteModes(dir, base string, s grid.Structure, modes solver.ModeSet, g Grapher, fields ...string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("WriteModes: %w", err)
	}
	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	xmin, xmax, ymin, ymax := s.Bounds()
	for i, mode := range modes {
		for _, name := range solver.FieldOrder {
			f, ok := mode.Fields[name]
			if !ok || (len(fields) > 0 && !wanted[name]) {
				continue
			}
			path := filepath.Join(dir, ModeFilename(base, name, i))
			if err := WriteMode(path, f); err != nil {
				return fmt.Errorf("WriteModes: mode %d %s: %w", i, name, err)
			}
			if g == nil {
				continue
			}
			title := fmt.Sprintf("Mode %d |%s| Profile, n_eff: %.3f", i, name, real(mode.NEff))
			if i == 0 {
				if fit, err := FitGaussian(s.XC(), s.YC(), magnitude(f)); err == nil {
					title += fmt.Sprintf("\nMFD_x = %.3f, MFD_y = %.3f", fit.MFDX, fit.MFDY)
				}
			}
			err := g.HeatMap(HeatMapPlot{
				Title: title,
				XMin:  xmin, XMax: xmax, YMin: ymin, YMax: ymax,
				DataPath:  path,
				ImagePath: imagePathFor(path),
			})
			if err != nil {
				return fmt.Errorf("WriteModes: render mode %d %s: %w", i, name, err)
			}
		}
	}

	return nil
}

// magnitude copies |f| into a fresh real array.
func magnitude(f [][]complex128) [][]float64 {
	out := make([][]float64, len(f))
	for iy, row := range f {
		out[iy] = make([]float64, len(row))
		for ix, v := range row {
			out[iy][ix] = cmplx.Abs(v)
		}
	}

	return out
}
