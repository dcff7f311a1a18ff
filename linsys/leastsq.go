// SPDX-License-Identifier: MIT

// Package linsys - rectangular (ill-posed) systems.
//
//   - SolvePseudoinverse: x = A⁺·b. Over-determined A gives the least-squares
//     solution, under-determined A the minimum-norm one. Rank-deficient A
//     surfaces ErrSingular from the normal equations.
//   - SolveTikhonov: (AᵀA + α²I)·x = Aᵀb through the Direct solver. For α > 0
//     the regularized matrix is SPD, so the solve succeeds even for rank-deficient A.
package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// checkRect validates a rectangular problem: non-nil inputs and b.Len() == a.Rows().
func checkRect(a matrix.Matrix, b *matrix.Vector) error {
	if matrix.ValidateNotNil(a) != nil || b == nil {
		return ErrNilInput
	}
	if a.Rows() != b.Len() {
		return fmt.Errorf("A has %d rows, b has %d entries: %w", a.Rows(), b.Len(), ErrSizeMismatch)
	}

	return nil
}

// SolvePseudoinverse returns x = A⁺·b for any shape of A.
//
// Errors:
//   - ErrNilInput, ErrSizeMismatch, ErrSingular (rank-deficient A).
func SolvePseudoinverse(a matrix.Matrix, b *matrix.Vector) (*matrix.Vector, error) {
	if err := checkRect(a, b); err != nil {
		return nil, linsysErrorf(opPseudo, err)
	}
	pinv, err := matrix.PseudoInverse(a)
	if err != nil {
		return nil, linsysErrorf(opPseudo, err)
	}
	x, err := matrix.MulVec(pinv, b)
	if err != nil {
		return nil, linsysErrorf(opPseudo, err)
	}

	return x, nil
}

// SolveTikhonov returns the regularized solution of A·x ≈ b:
//
//	(AᵀA + α²I)·x = Aᵀb
//
// The normal system is solved with a Direct System built with opts.
//
// Errors:
//   - ErrBadAlpha for α ≤ 0 or non-finite α.
//   - ErrNilInput, ErrSizeMismatch, ErrSingular.
func SolveTikhonov(a matrix.Matrix, b *matrix.Vector, alpha float64, opts ...Option) (*matrix.Vector, error) {
	if isNonFinite(alpha) || alpha <= 0 {
		return nil, linsysErrorf(opTikhonov, fmt.Errorf("alpha = %g: %w", alpha, ErrBadAlpha))
	}
	if err := checkRect(a, b); err != nil {
		return nil, linsysErrorf(opTikhonov, err)
	}

	gram, err := matrix.Gram(a)
	if err != nil {
		return nil, linsysErrorf(opTikhonov, err)
	}
	reg, err := matrix.AddScaledIdentity(gram, alpha*alpha)
	if err != nil {
		return nil, linsysErrorf(opTikhonov, err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, linsysErrorf(opTikhonov, err)
	}
	atb, err := matrix.MulVec(at, b)
	if err != nil {
		return nil, linsysErrorf(opTikhonov, err)
	}

	sys, err := New(reg, atb, opts...)
	if err != nil {
		return nil, linsysErrorf(opTikhonov, err)
	}
	x, err := sys.Solve()
	if err != nil {
		return nil, linsysErrorf(opTikhonov, err)
	}

	return x, nil
}

// Residual returns b − A·x.
//
// Errors:
//   - ErrNilInput for nil operands; ErrSizeMismatch when x.Len() != A.Cols()
//     or b.Len() != A.Rows().
func Residual(a matrix.Matrix, x, b *matrix.Vector) (*matrix.Vector, error) {
	if x == nil {
		return nil, linsysErrorf(opResidual, ErrNilInput)
	}
	if err := checkRect(a, b); err != nil {
		return nil, linsysErrorf(opResidual, err)
	}
	if x.Len() != a.Cols() {
		return nil, linsysErrorf(opResidual, fmt.Errorf("A has %d columns, x has %d entries: %w", a.Cols(), x.Len(), ErrSizeMismatch))
	}
	ax, err := matrix.MulVec(a, x)
	if err != nil {
		return nil, linsysErrorf(opResidual, err)
	}
	r, err := b.Sub(ax)
	if err != nil {
		return nil, linsysErrorf(opResidual, err)
	}

	return r, nil
}

// ResidualNorm returns ‖b − A·x‖₂.
func ResidualNorm(a matrix.Matrix, x, b *matrix.Vector) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, linsysErrorf(opResidualNorm, err)
	}

	return r.Norm(), nil
}
