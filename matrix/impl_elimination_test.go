// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
)

func TestDet_Table(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{2, 1}, {1, 3}}, 5},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		// cofactor expansion along the first row: 4·(−27) − 3·(−3) + 8·33
		{"3x3", [][]float64{{4, 3, 8}, {9, 4, 7}, {3, 5, 2}}, 165},
		{"needs pivot", [][]float64{{0, 1}, {1, 0}}, -1},
		{"tiny leading entry", [][]float64{{1e-20, 1}, {1, 1}}, -1},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"zero column", [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Det(MustDense(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tolAlgebra)
		})
	}
}

func TestDet_NonSquare(t *testing.T) {
	t.Parallel()
	_, err := matrix.Det(matrix.NewDense(2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDet_Multiplicative checks det(AB) = det(A)·det(B).
func TestDet_Multiplicative(t *testing.T) {
	t.Parallel()
	a := DiagDominant(t, 4, 1)
	b := DiagDominant(t, 4, 2)
	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	da, err := matrix.Det(a)
	require.NoError(t, err)
	db, err := matrix.Det(b)
	require.NoError(t, err)
	dab, err := matrix.Determinant(ab)
	require.NoError(t, err)
	require.InEpsilon(t, da*db, dab, 1e-9)
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	t.Parallel()
	fixed := MustDense(t, [][]float64{{4, 3, 8}, {9, 4, 7}, {3, 5, 2}})
	for name, a := range map[string]*matrix.Dense{
		"3x3 fixed": fixed,
		"5x5 random": DiagDominant(t, 5, 3),
		"8x8 random": DiagDominant(t, 8, 4),
	} {
		a := a
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			prod, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			CompareClose(t, matrix.NewIdentity(a.Rows()), prod, tolInverse)
		})
	}
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()
	for _, rows := range [][][]float64{
		{{1, 2}, {2, 4}},
		{{0, 0}, {0, 0}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	} {
		inv, err := matrix.InverseOf(MustDense(t, rows))
		require.ErrorIs(t, err, matrix.ErrSingular)
		require.Nil(t, inv)
	}
	_, err := matrix.Inverse(matrix.NewDense(2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverse_AbsoluteThreshold pins the absolute determinant test:
// 1e-4·I₃ has det 1e-12 and is reported singular although it is well-conditioned.
func TestInverse_AbsoluteThreshold(t *testing.T) {
	t.Parallel()
	small, err := matrix.Scale(matrix.NewIdentity(3), 1e-4)
	require.NoError(t, err)
	_, err = matrix.Inverse(small)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestPseudoInverse_Penrose checks A·A⁺·A = A for tall, wide and square inputs.
func TestPseudoInverse_Penrose(t *testing.T) {
	t.Parallel()
	for _, shape := range [][2]int{{5, 3}, {3, 5}, {4, 4}, {6, 1}} {
		shape := shape
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			t.Parallel()
			a := RandomDense(t, shape[0], shape[1], int64(shape[0]*10+shape[1]))
			pinv, err := matrix.PseudoInverse(a)
			require.NoError(t, err)
			require.Equal(t, shape[1], pinv.Rows())
			require.Equal(t, shape[0], pinv.Cols())

			apa, err := matrix.Mul(a, pinv)
			require.NoError(t, err)
			apa, err = matrix.Mul(apa, a)
			require.NoError(t, err)
			CompareClose(t, a, apa, tolInverse)
		})
	}
}

func TestPseudoInverse_SquareEqualsInverse(t *testing.T) {
	t.Parallel()
	a := DiagDominant(t, 3, 9)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	pinv, err := matrix.PInv(a)
	require.NoError(t, err)
	CompareClose(t, inv, pinv, tolInverse)
}

func TestPseudoInverse_RankDeficient(t *testing.T) {
	t.Parallel()
	// second column is twice the first: AᵀA is singular
	a := MustDense(t, [][]float64{{1, 2}, {2, 4}, {3, 6}})
	_, err := matrix.PseudoInverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}
