// SPDX-License-Identifier: MIT

// Package linsys - System: construction, validation and the single Solve entry point.
//
// Ownership:
//   - Constructors copy A and b. The System never aliases caller storage, so a
//     caller mutating its matrix after New cannot corrupt a later Solve.
//
// Validation order (fail fast, first violation wins):
//   - nil A or nil b          ⇒ ErrNilInput
//   - A not square            ⇒ ErrNotSquare
//   - b.Len() != A.Rows()     ⇒ ErrSizeMismatch
//   - ConjugateGradient only: |A[i,j] − A[j,i]| > symTol for some i<j ⇒ ErrNotSymmetric
package linsys

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linsys/matrix"
)

// System is an owned square linear system A·x = b bound to a solution strategy.
type System struct {
	kind Kind
	n    int
	a    *matrix.Dense
	b    *matrix.Vector
	opts Options
}

// New builds a Direct system. See NewWithKind for the validation rules.
func New(a matrix.Matrix, b *matrix.Vector, opts ...Option) (*System, error) {
	s, err := newSystem(Direct, a, b, opts)
	if err != nil {
		return nil, linsysErrorf(opNew, err)
	}

	return s, nil
}

// NewPosSym builds a ConjugateGradient system. A must be symmetric within the
// symmetry tolerance; positive-definiteness is the caller's responsibility.
func NewPosSym(a matrix.Matrix, b *matrix.Vector, opts ...Option) (*System, error) {
	s, err := newSystem(ConjugateGradient, a, b, opts)
	if err != nil {
		return nil, linsysErrorf(opNewPosSym, err)
	}

	return s, nil
}

// NewWithKind builds a system for an explicit strategy.
//
// Errors:
//   - ErrUnknownKind, ErrNilInput, ErrNotSquare, ErrSizeMismatch, ErrNotSymmetric.
func NewWithKind(kind Kind, a matrix.Matrix, b *matrix.Vector, opts ...Option) (*System, error) {
	s, err := newSystem(kind, a, b, opts)
	if err != nil {
		return nil, linsysErrorf(opNewWithKind, err)
	}

	return s, nil
}

// newSystem validates the inputs, copies them and resolves options.
func newSystem(kind Kind, a matrix.Matrix, b *matrix.Vector, opts []Option) (*System, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownKind)
	}
	if matrix.ValidateNotNil(a) != nil || b == nil {
		return nil, ErrNilInput
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("%dx%d: %w", a.Rows(), a.Cols(), ErrNotSquare)
	}
	if a.Rows() != b.Len() {
		return nil, fmt.Errorf("A has %d rows, b has %d entries: %w", a.Rows(), b.Len(), ErrSizeMismatch)
	}

	o := gatherOptions(opts...)
	if kind == ConjugateGradient {
		if err := matrix.ValidateSymmetric(a, o.symTol); err != nil {
			if errors.Is(err, matrix.ErrAsymmetry) {
				return nil, fmt.Errorf("%w: %w", ErrNotSymmetric, err)
			}

			return nil, err
		}
	}

	owned, err := matrix.Plus(a)
	if err != nil {
		return nil, err
	}

	return &System{
		kind: kind,
		n:    owned.Rows(),
		a:    owned,
		b:    b.Clone(),
		opts: o,
	}, nil
}

// Size returns n, the number of unknowns.
func (s *System) Size() int { return s.n }

// Kind returns the solution strategy.
func (s *System) Kind() Kind { return s.kind }

// Matrix returns a copy of the owned coefficient matrix.
func (s *System) Matrix() *matrix.Dense {
	cp, _ := matrix.Plus(s.a) // s.a is never nil

	return cp
}

// Vector returns a copy of the owned right-hand side.
func (s *System) Vector() *matrix.Vector { return s.b.Clone() }

// Solve computes x with the system's strategy.
//
// Direct errors with ErrSingular when a pivot falls below the pivot tolerance.
// ConjugateGradient that exhausts its budget returns the last iterate together
// with an error wrapping ErrNotConverged.
// Repeated calls recompute from the owned copies and return equal results.
func (s *System) Solve() (*matrix.Vector, error) {
	rep, err := s.solve()
	if rep == nil {
		return nil, linsysErrorf(opSolve, err)
	}
	if err != nil {
		return rep.X, linsysErrorf(opSolve, err)
	}

	return rep.X, nil
}

// SolveReport is Solve plus diagnostics: iterations, convergence and ‖b − A·x‖₂.
// For a non-converged CG run the report is returned alongside the error.
func (s *System) SolveReport() (*Report, error) {
	rep, err := s.solve()
	if rep == nil {
		return nil, linsysErrorf(opSolve, err)
	}
	res, rerr := ResidualNorm(s.a, rep.X, s.b)
	if rerr != nil {
		return nil, linsysErrorf(opSolve, rerr)
	}
	rep.Residual = res
	if err != nil {
		return rep, linsysErrorf(opSolve, err)
	}

	return rep, nil
}

// solve dispatches on the tag. A nil report means no usable solution exists.
func (s *System) solve() (*Report, error) {
	switch s.kind {
	case Direct:
		x, err := solveDirect(s.a, s.b, s.opts.pivotTol)
		if err != nil {
			return nil, linsysErrorf(opDirect, err)
		}
		s.opts.logger.Debug("direct solve finished", slog.Int("n", s.n))

		return &Report{X: x, Kind: Direct, Converged: true}, nil
	case ConjugateGradient:
		return solveCG(s.a, s.b, s.opts)
	default:
		return nil, ErrUnknownKind
	}
}
