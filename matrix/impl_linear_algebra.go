// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// matrix-vector product, transpose, negation and scalar scaling. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches; operands are never mutated.
//
// Notes:
//   - Every kernel reads its operands once through asDense, so the hot loops
//     always walk flat row-major buffers.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opMulVec        = "MulVec"
	opTranspose     = "Transpose"
	opScale         = "Scale"
	opNeg           = "Neg"
	opPlus          = "Plus"
	opTrace         = "Trace"
	opAllClose      = "AllClose"
	opDet           = "Det"
	opInverse       = "Inverse"
	opPseudoInverse = "PseudoInverse"
	opFromRows      = "NewDenseFromRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize both operands as Dense and walk 0..r*c-1 once.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := NewDense(da.r, da.c)
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Shapes must be identical (ErrDimensionMismatch otherwise).
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Shapes must be identical (ErrDimensionMismatch otherwise).
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: triple loop i→j→k accumulating the inner product into a scalar.
//
// Returns:
//   - *Dense of shape a.Rows × b.Cols.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := da.r, da.c, db.c
	res := NewDense(r, c)
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < r; i++ {
		rowA := i * n
		for j = 0; j < c; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += da.data[rowA+k] * db.data[k*c+j]
			}
			res.data[i*c+j] = sum
		}
	}

	return res, nil
}

// MulVec computes y = m·v for a column vector v.
// Requires m.Cols() == v.Len(); the result has length m.Rows().
//
// Errors:
//   - ErrNilMatrix for nil operands, ErrDimensionMismatch for length mismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec(m Matrix, v *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	out := NewVector(d.r)
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < d.r; i++ {
		base := i * d.c
		sum = ZeroSum
		for j = 0; j < d.c; j++ {
			sum += d.data[base+j] * v.data[j]
		}
		out.data[i] = sum
	}

	return out, nil
}

// Transpose returns a new cols×rows matrix with T[j,i] = M[i,j].
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := NewDense(d.c, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return scaleTagged(m, alpha, opScale)
}

// Neg returns −m (elementwise negation) as a new matrix.
func Neg(m Matrix) (*Dense, error) {
	return scaleTagged(m, -1, opNeg)
}

// Plus returns +m, i.e. an independent copy of m.
func Plus(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPlus, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPlus, err)
	}

	return d.clone(), nil
}

// scaleTagged is the shared kernel behind Scale and Neg.
func scaleTagged(m Matrix, alpha float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := NewDense(d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square matrix.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < d.r; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close. rtol and atol are used as |rtol|, |atol|.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for idx, x := range da.data {
		y := db.data[idx]
		if x == y {
			continue // covers equal infinities
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
