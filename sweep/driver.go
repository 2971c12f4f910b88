// Package sweep - serial sweep drivers.
//
// Both drivers share one loop: resolve the step's (structure, wavelength),
// solve, accumulate, then thread the guess forward through the GuessPolicy.
// Steps run strictly in sequence order; see the package comment for why.
package sweep

import (
	"context"
	"fmt"

	"github.com/katalvlaran/modesolve/grid"
	"github.com/katalvlaran/modesolve/solver"
)

// Summary axis labels handed to the Grapher.
const (
	structureAxisLabel  = "Structure number"
	wavelengthAxisLabel = "Wavelength"
	nEffAxisLabel       = "n_eff"
)

// OverStructures solves each structure in order at a fixed wavelength,
// warm-starting each step from the previous one per the guess policy.
// The step variable is the structure's position in the sequence.
//
// On a step failure or cancellation it returns the completed prior results
// plus the error; the caller decides whether to resume.
// Complexity: sum of per-step solve costs; strictly serial.
func OverStructures(ctx context.Context, ms Solver, structures []grid.Structure, wavelength float64, opts ...Option) ([]StepResult, error) {
	if len(structures) == 0 {
		return nil, ErrNoSteps
	}
	o := gatherOptions(opts...)
	results, err := runSteps(ctx, ms, o, len(structures),
		func(i int) (grid.Structure, float64, float64) {
			return structures[i], wavelength, float64(i)
		})
	if err != nil {
		return results, err
	}
	if err = finishSummary(o, results, true, structureAxisLabel, "n_eff vs structure"); err != nil {
		return results, err
	}

	return results, nil
}

// OverWavelengths solves a fixed structure at each wavelength in order,
// warm-starting each step per the guess policy. The step variable echoes the
// input wavelength exactly.
func OverWavelengths(ctx context.Context, ms Solver, s grid.Structure, wavelengths []float64, opts ...Option) ([]StepResult, error) {
	if len(wavelengths) == 0 {
		return nil, ErrNoSteps
	}
	o := gatherOptions(opts...)
	results, err := runSteps(ctx, ms, o, len(wavelengths),
		func(i int) (grid.Structure, float64, float64) {
			return s, wavelengths[i], wavelengths[i]
		})
	if err != nil {
		return results, err
	}
	if err = finishSummary(o, results, false, wavelengthAxisLabel, "n_eff vs wavelength"); err != nil {
		return results, err
	}

	return results, nil
}

// runSteps is the shared serial loop. step(i) resolves the i-th
// (structure, wavelength, variable) triple.
func runSteps(ctx context.Context, ms Solver, o Options, total int, step func(int) (grid.Structure, float64, float64)) ([]StepResult, error) {
	var (
		policy  = o.policy
		guess   = o.initial
		results = make([]StepResult, 0, total)
	)
	if policy == nil {
		policy = defaultPolicy(ms.Formulation())
	}
	if ms.Formulation() == solver.FullyVectorial {
		// Field guesses never enter a fully-vectorial solve chain.
		guess.Field = nil
	}

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("sweep: aborted before step %d of %d: %w", i, total, err)
		}
		s, wavelength, variable := step(i)
		res, err := ms.Solve(s, wavelength, guess)
		if err != nil {
			return results, fmt.Errorf("sweep: step %d of %d: %w", i, total, err)
		}
		results = append(results, StepResult{Variable: variable, Result: res})
		if o.progress != nil {
			o.progress(i+1, total)
		}
		guess = policy(guess, res)
	}

	return results, nil
}

// finishSummary persists the n_eff summary and, when a Grapher is installed,
// requests a rendering of the written data file.
func finishSummary(o Options, results []StepResult, indexVariable bool, xLabel, title string) error {
	if o.summaryPath == "" {
		return nil
	}
	if err := WriteSummary(o.summaryPath, results, indexVariable); err != nil {
		return fmt.Errorf("sweep: summary: %w", err)
	}
	if o.grapher == nil {
		return nil
	}
	err := o.grapher.Line(LinePlot{
		Title:     title,
		XLabel:    xLabel,
		YLabel:    nEffAxisLabel,
		DataPath:  o.summaryPath,
		ImagePath: imagePathFor(o.summaryPath),
	})
	if err != nil {
		return fmt.Errorf("sweep: render: %w", err)
	}

	return nil
}
