// SPDX-License-Identifier: MIT
// Package linsys_test contains shared fixtures for the solver tests.

package linsys_test

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
)

const (
	tolSolve = 1e-9
	tolCG    = 1e-6
)

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// quietLogger discards every record; keeps test output readable.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureLogger records everything down to Debug into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// randomSPD returns MᵀM + n·I for a seeded random M: symmetric positive-definite.
func randomSPD(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := randomDense(t, n, n, seed)
	g, err := matrix.Gram(m)
	require.NoError(t, err)
	spd, err := matrix.AddScaledIdentity(g, float64(n))
	require.NoError(t, err)

	return spd
}

// randomDense fills an r×c matrix with uniform values in [-1, 1).
func randomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewDense(r, c)
	var i, j int
	for i = 1; i <= r; i++ {
		for j = 1; j <= c; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// randomVector returns a length-n vector with uniform values in [-1, 1).
func randomVector(n int, seed int64) *matrix.Vector {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}

	return matrix.NewVectorFrom(vals...)
}

// requireVecClose asserts equal length and element-wise closeness.
func requireVecClose(t *testing.T, want, got *matrix.Vector, tol float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Len(), got.Len(), "length")
	w, g := want.Values(), got.Values()
	for i := range w {
		require.InDelta(t, w[i], g[i], tol, "element %d", i+1)
	}
}
