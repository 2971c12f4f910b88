package sweep

import "github.com/katalvlaran/modesolve/solver"

// Option mutates internal sweep options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective sweep configuration.
type Options struct {
	summaryPath string
	grapher     Grapher
	progress    func(done, total int)
	policy      GuessPolicy
	initial     solver.Guess
}

// WithSummaryFile persists the per-step fundamental n_eff to path as
// delimited text (one "variable,n_eff" line per step). Empty path disables
// persistence (the default).
func WithSummaryFile(path string) Option {
	return func(o *Options) { o.summaryPath = path }
}

// WithGrapher requests a rendering of the summary through the external
// graphing collaborator once the sweep completes. Requires WithSummaryFile.
func WithGrapher(g Grapher) Option {
	return func(o *Options) { o.grapher = g }
}

// WithProgress installs a progress callback invoked after each completed
// step with (done, total). The callback must not block; it runs on the
// sweep goroutine between steps.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) { o.progress = fn }
}

// WithGuessPolicy overrides the formulation's default warm-start rule
// (see ChainFundamental, ResetField, KeepGuess).
func WithGuessPolicy(p GuessPolicy) Option {
	return func(o *Options) { o.policy = p }
}

// WithInitialGuess seeds the first step. For fully-vectorial sweeps any
// field component of the guess is discarded before the first solve; the
// n_eff target survives.
func WithInitialGuess(g solver.Guess) Option {
	return func(o *Options) { o.initial = g }
}

// gatherOptions applies setters over the zero defaults.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
