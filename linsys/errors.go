// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.
// Solvers wrap these with an operation tag; callers match with errors.Is.

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

var (
	// ErrNilInput indicates a nil matrix or right-hand side was passed to a constructor or solver.
	ErrNilInput = errors.New("linsys: nil matrix or vector")

	// ErrNotSquare indicates the system matrix is not square.
	ErrNotSquare = errors.New("linsys: matrix is not square")

	// ErrSizeMismatch indicates len(b) differs from the number of rows of A.
	ErrSizeMismatch = errors.New("linsys: matrix and vector sizes differ")

	// ErrNotSymmetric indicates ConjugateGradient was requested for a non-symmetric matrix.
	ErrNotSymmetric = errors.New("linsys: matrix is not symmetric")

	// ErrSingular is matrix.ErrSingular re-exported, so callers need only one import
	// and either name matches with errors.Is.
	ErrSingular = matrix.ErrSingular

	// ErrNotConverged indicates conjugate gradient stopped before reaching the tolerance.
	// The accompanying solution is the last iterate, not garbage.
	ErrNotConverged = errors.New("linsys: conjugate gradient did not converge")

	// ErrBadAlpha indicates a non-positive or non-finite regularization parameter.
	ErrBadAlpha = errors.New("linsys: regularization parameter must be positive and finite")

	// ErrUnknownKind indicates a Kind outside the declared set.
	ErrUnknownKind = errors.New("linsys: unknown solver kind")
)

// Operation tags used in error wrapping.
const (
	opNew          = "New"
	opNewPosSym    = "NewPosSym"
	opNewWithKind  = "NewWithKind"
	opSolve        = "Solve"
	opDirect       = "Direct"
	opCG           = "ConjugateGradient"
	opPseudo       = "SolvePseudoinverse"
	opTikhonov     = "SolveTikhonov"
	opResidual     = "Residual"
	opResidualNorm = "ResidualNorm"
)

// linsysErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func linsysErrorf(op string, err error) error {
	return fmt.Errorf("linsys.%s: %w", op, err)
}
