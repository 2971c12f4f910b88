// Package render implements the sweep.Grapher collaborator on
// gonum.org/v1/plot: n_eff-vs-variable line plots and mode-profile heatmaps,
// both read from the solver's delimited text artifacts and written as PNG
// images next to the data.
//
// Rendering is strictly downstream of the numerics: it consumes files the
// sweep already wrote and can be deferred or batched without affecting
// results.
package render
