// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (wrapped with an operation tag) and
// tests check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Kernels wrap with matrixErrorf(op, ErrX); callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates a literal builder received an empty or ragged shape.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0 and rectangular")

	// ErrOutOfRange indicates that an index (row, column or vector element) is outside valid bounds.
	// Public indexers (At/Set/Index/SetIndex) return this instead of falling back to another element.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, or vectors of different length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the requested tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrSingular is returned when the matrix is (numerically) singular: a pivot or the
	// determinant fell below DefaultEpsilon during inversion.
	ErrSingular = errors.New("matrix: singular matrix")
)
