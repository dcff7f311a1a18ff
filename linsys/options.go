// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for the solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults then setters.
//
// Notes:
//   - Options are resolved once at construction and stored on the System;
//     Solve never re-reads caller state.
//   - A nil logger is replaced by slog.Default() at resolution time, so the
//     solvers always log through a non-nil *slog.Logger.
package linsys

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the smallest pivot magnitude the direct solver accepts.
	DefaultPivotTolerance = 1e-10

	// DefaultTolerance is the conjugate-gradient stopping threshold on ‖r‖₂.
	DefaultTolerance = 1e-10

	// DefaultSymmetryTolerance bounds |A[i,j] − A[j,i]| for ConjugateGradient systems.
	DefaultSymmetryTolerance = 1e-10

	// DefaultMaxIterations = 0 means "2·n", the classic CG budget.
	DefaultMaxIterations = 0

	// cgIterationsPerDim is the multiplier behind the 2·n budget.
	cgIterationsPerDim = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid = "linsys: WithPivotTolerance: eps must be finite, non-negative"
	panicTolInvalid      = "linsys: WithTolerance: eps must be finite, positive"
	panicSymTolInvalid   = "linsys: WithSymmetryTolerance: eps must be finite, non-negative"
	panicMaxIterInvalid  = "linsys: WithMaxIterations: k must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pivotTol float64      // >= 0; DefaultPivotTolerance
	tol      float64      // > 0; DefaultTolerance
	symTol   float64      // >= 0; DefaultSymmetryTolerance
	maxIter  int          // >= 0; 0 ⇒ 2·n
	logger   *slog.Logger // never nil after gatherOptions
}

// WithPivotTolerance sets the direct solver's zero-pivot threshold.
// Panics when eps is negative or non-finite.
func WithPivotTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = eps }
}

// WithTolerance sets the conjugate-gradient residual-norm threshold.
// Panics when eps is not strictly positive and finite.
func WithTolerance(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// WithSymmetryTolerance sets the absolute tolerance of the construction-time
// symmetry check for ConjugateGradient systems.
func WithSymmetryTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicSymTolInvalid)
	}

	return func(o *Options) { o.symTol = eps }
}

// WithMaxIterations caps conjugate-gradient iterations; 0 restores the 2·n default.
func WithMaxIterations(k int) Option {
	if k < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = k }
}

// WithLogger routes solver diagnostics to l. A nil l selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol: DefaultPivotTolerance,
		tol:      DefaultTolerance,
		symTol:   DefaultSymmetryTolerance,
		maxIter:  DefaultMaxIterations,
	}
}

// gatherOptions applies setters over the defaults (last writer wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// iterationBudget resolves the CG iteration cap for a system of size n.
func (o Options) iterationBudget(n int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return cgIterationsPerDim * n
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
