// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
//
// Design goals:
//   - One place for every threshold used by the elimination kernels.
//   - Defaults are constants; nothing here is mutable at runtime.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the singularity threshold used by Det and Inverse:
	// a pivot (or determinant) whose magnitude is below it is treated as zero.
	DefaultEpsilon = 1e-9

	// DefaultSymmetryTol is the absolute tolerance used by IsSymmetric when callers
	// do not pass their own.
	DefaultSymmetryTol = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and builders.
	DefaultValidateNaNInf = true
)

// Accumulator seeds kept as named constants to avoid magic numbers in loops.
const (
	// ZeroSum is the initial sum value for inner products and substitutions.
	ZeroSum = 0.0

	// unitDiag is the value written on the diagonal of identity blocks.
	unitDiag = 1.0
)

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
