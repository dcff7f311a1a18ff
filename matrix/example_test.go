// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ExampleDet computes a 3×3 determinant with partial pivoting.
func ExampleDet() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 3, 8},
		{9, 4, 7},
		{3, 5, 2},
	})
	det, _ := matrix.Det(a)
	fmt.Printf("det = %.0f\n", det)
	// Output:
	// det = 165
}

// ExampleInverse shows that A·A⁻¹ recovers the identity.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	inv, _ := matrix.Inverse(a)
	prod, _ := matrix.Mul(a, inv)
	ok, _ := matrix.AllClose(prod, matrix.NewIdentity(2), 0, 1e-12)
	fmt.Println("identity:", ok)
	// Output:
	// identity: true
}

// ExampleMulVec multiplies a matrix by a column vector.
func ExampleMulVec() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	y, _ := matrix.MulVec(a, matrix.NewVectorFrom(1, 3))
	fmt.Println(y)
	// Output:
	// [5, 10]
}

// ExampleDense_At demonstrates one-based addressing and the out-of-range error.
func ExampleDense_At() {
	a := matrix.NewIdentity(2)
	v, _ := a.At(2, 2)
	fmt.Println(v)
	_, err := a.At(0, 1)
	fmt.Println(err)
	// Output:
	// 1
	// Dense.At(0,1): matrix: index out of range
}
