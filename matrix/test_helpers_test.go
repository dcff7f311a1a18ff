// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
)

// Tolerances shared by the algebra tests.
const (
	tolExact   = 1e-12
	tolAlgebra = 1e-9
	tolInverse = 1e-6
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels down the At-based materialization path.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads the one-based (i,j) element or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes the one-based (i,j) element or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// CompareClose asserts that a and b share a shape and match element-wise within tol.
func CompareClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 1; i <= want.Rows(); i++ {
		for j = 1; j <= want.Cols(); j++ {
			require.InDelta(t, MustAt(t, want, i, j), MustAt(t, got, i, j), tol, "element [%d,%d]", i, j)
		}
	}
}

// RandomDense fills an r×c matrix with uniform values in [-1, 1) from a seeded source.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewDense(r, c)
	var i, j int
	for i = 1; i <= r; i++ {
		for j = 1; j <= c; j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}

	return m
}

// DiagDominant returns a random n×n matrix made strictly diagonally dominant,
// which guarantees it is well-conditioned and invertible.
func DiagDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandomDense(t, n, n, seed)
	for i := 1; i <= n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n)+1)
	}

	return m
}
