// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
)

func TestAPI_Aliases(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{5, 6}, {7, 8}})

	s1, err := matrix.Sum(a, b)
	require.NoError(t, err)
	s2, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareClose(t, s2, s1, 0)

	d1, err := matrix.Diff(a, b)
	require.NoError(t, err)
	d2, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareClose(t, d2, d1, 0)

	p1, err := matrix.Product(a, b)
	require.NoError(t, err)
	p2, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, p2, p1, 0)

	z := matrix.NewZeros(2, 3)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())
}

func TestAPI_LikeConstructors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())

	_, err = matrix.IdentityLike(a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	I, err := matrix.IdentityLike(matrix.NewDense(3, 3))
	require.NoError(t, err)
	CompareClose(t, matrix.NewIdentity(3), I, 0)
}

func TestAPI_GramIsSymmetric(t *testing.T) {
	t.Parallel()
	g, err := matrix.Gram(RandomDense(t, 5, 3, 4))
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.True(t, matrix.IsSymmetric(g, tolExact))
}

func TestAPI_AddScaledIdentity(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	got, err := matrix.AddScaledIdentity(a, 0.5)
	require.NoError(t, err)
	CompareClose(t, MustDense(t, [][]float64{{1.5, 2}, {3, 4.5}}), got, 0)
	_, err = matrix.AddScaledIdentity(matrix.NewDense(2, 3), 1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAPI_Symmetrize(t *testing.T) {
	t.Parallel()
	got, err := matrix.Symmetrize(MustDense(t, [][]float64{{4, 1}, {2, 3}}))
	require.NoError(t, err)
	CompareClose(t, MustDense(t, [][]float64{{4, 1.5}, {1.5, 3}}), got, 0)
}
