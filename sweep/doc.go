// Package sweep orchestrates repeated single-point mode solves across an
// ordered sequence of structures (fixed wavelength) or wavelengths (fixed
// structure), threading each step's solution into the next step's initial
// guess for convergence speed and stability.
//
// What:
//
//   - OverStructures / OverWavelengths: serial sweep drivers. The warm-start
//     chain is a deliberate sequential dependency: steps must run in order,
//     and a parallel re-execution must either disable warm starts or
//     serialize guess propagation.
//   - GuessPolicy: the explicit rule deciding what the next step's guess is.
//     Semi-vectorial sweeps chain |fundamental mode|; fully-vectorial sweeps
//     clear the field guess after every step and keep only a caller-supplied
//     n_eff target.
//   - GroupIndex: central-difference group index from three independent
//     solves at λ−δ, λ, λ+δ (no warm-start chain between them).
//   - WriteSummary / WriteModes: delimited text artifacts; Grapher is the
//     abstract rendering collaborator (see package render).
//   - FitGaussian: mode-size estimate used purely for plot annotation.
//
// Cancellation:
//
//	Sweeps honor context cancellation between steps and return the results
//	accumulated so far together with the aborting error; a failing step is
//	never swallowed, and nothing after it is attempted.
//
// Errors: step failures and cancellations are wrapped with the step index;
// match underlying causes with errors.Is against the solver sentinels.
package sweep
