// Package modesolve computes guided optical modes of waveguide
// cross-sections: given a refractive-index grid and a wavelength, it finds
// the propagation eigenmodes (effective index + transverse field profile)
// by discretizing Maxwell's equations on a finite-difference grid and
// solving the resulting eigenvalue problem.
//
// 🚀 What is modesolve?
//
//	A deterministic, pure-Go mode-solving engine with:
//		• Semi-vectorial solves: one dominant transverse component (Ex or Ey)
//		• Fully-vectorial solves: coupled transverse system, six derived fields
//		• Shift-and-invert eigen extraction biased toward guided solutions
//		• qTE/qTM classification via field-energy overlap
//		• Warm-started parameter sweeps over structures or wavelengths
//		• Group-index estimation by central difference over wavelength
//
// ✨ Why choose modesolve?
//
//   - Explicit state – every solve takes its grid, wavelength, and guess as
//     parameters and returns an immutable result; sweeps thread guesses
//     visibly through a GuessPolicy
//   - Strict sentinels – every failure mode is a package-level error matched
//     with errors.Is
//   - Deterministic – seeded restarts, no global state, no time-based randomness
//
// Everything is organized under five subpackages:
//
//	grid/   — cross-section description: axes, bounds, index lookup
//	matrix/ — dense linear algebra: row-major storage, pivoted LU
//	solver/ — operator assembly, eigen extraction, fields, classification
//	sweep/  — sweep drivers, group index, flat-file artifacts
//	render/ — gonum/plot implementation of the graphing collaborator
package modesolve
