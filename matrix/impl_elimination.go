// SPDX-License-Identifier: MIT
// Package matrix - elimination kernels: determinant, inverse, pseudoinverse.
//
// Purpose:
//   - Det: Gaussian elimination with max-magnitude partial pivoting on a private copy.
//   - Inverse: Gauss-Jordan on the augmented [A | I] with partial pivoting.
//   - PseudoInverse: Moore-Penrose via the normal equations.
//
// Numeric policy:
//   - A pivot whose magnitude is below DefaultEpsilon (1e-9) is treated as zero.
//   - Inverse additionally rejects |det(A)| < DefaultEpsilon up front. The test is
//     absolute, so strongly scaled-down matrices (e.g. 1e-4·I₃) are reported singular.
//   - The normal-equations pseudoinverse squares the condition number; it is adequate
//     for well-conditioned inputs and reports rank deficiency as ErrSingular.

package matrix

import (
	"fmt"
	"math"
)

// swapRows exchanges rows p and q of a row-major buffer with row length w.
func swapRows(data []float64, w, p, q int) {
	rp, rq := p*w, q*w
	for k := 0; k < w; k++ {
		data[rp+k], data[rq+k] = data[rq+k], data[rp+k]
	}
}

// pivotRow returns the row index in [from, n) holding the largest |data[row, col]|.
// Ties keep the first (lowest) row.
func pivotRow(data []float64, w, n, from, col int) int {
	best := from
	bestAbs := math.Abs(data[from*w+col])
	for r := from + 1; r < n; r++ {
		if v := math.Abs(data[r*w+col]); v > bestAbs {
			best, bestAbs = r, v
		}
	}

	return best
}

// Det computes the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare; copy A into a private working buffer (A is never mutated).
//   - Stage 2: for each column i, pick the row ≥ i with the largest |a[r,i]|.
//     If that magnitude is below DefaultEpsilon the matrix is singular: return 0 at once.
//   - Stage 3: swap the pivot row into place (counting swaps) and eliminate below it.
//   - Stage 4: det = (−1)^swaps · Π diag.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := d.r
	a := make([]float64, len(d.data))
	copy(a, d.data)

	swaps := 0
	var i, r, k, p int
	for i = 0; i < n; i++ {
		p = pivotRow(a, n, n, i, i)
		if math.Abs(a[p*n+i]) < DefaultEpsilon {
			return 0, nil
		}
		if p != i {
			swapRows(a, n, i, p)
			swaps++
		}
		pivot := a[i*n+i]
		for r = i + 1; r < n; r++ {
			factor := a[r*n+i] / pivot
			if factor == 0 {
				continue
			}
			for k = i; k < n; k++ {
				a[r*n+k] -= factor * a[i*n+k]
			}
		}
	}

	det := 1.0
	if swaps%2 == 1 {
		det = -1.0
	}
	for i = 0; i < n; i++ {
		det *= a[i*n+i]
	}

	return det, nil
}

// Inverse computes A⁻¹ by Gauss-Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare; reject |Det(A)| < DefaultEpsilon with ErrSingular.
//   - Stage 2: build the n×2n augmented buffer [A | I].
//   - Stage 3: for each column i: select the max-magnitude pivot among rows ≥ i and swap it
//     in; a pivot still below DefaultEpsilon is ErrSingular. Normalize the pivot row, then
//     eliminate column i from EVERY other row (reduced row-echelon form directly).
//   - Stage 4: the right half of the buffer is A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	det, err := Det(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) < DefaultEpsilon {
		return nil, matrixErrorf(opInverse, fmt.Errorf("|det| = %g: %w", math.Abs(det), ErrSingular))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	w := 2 * n
	aug := make([]float64, n*w)
	var i, j, r, k, p int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], d.data[i*n:i*n+n])
		aug[i*w+n+i] = unitDiag
	}

	for i = 0; i < n; i++ {
		p = pivotRow(aug, w, n, i, i)
		if p != i {
			swapRows(aug, w, i, p)
		}
		pivot := aug[i*w+i]
		if math.Abs(pivot) < DefaultEpsilon {
			return nil, matrixErrorf(opInverse, fmt.Errorf("zero pivot in column %d: %w", i+1, ErrSingular))
		}
		for k = 0; k < w; k++ {
			aug[i*w+k] /= pivot
		}
		for r = 0; r < n; r++ {
			if r == i {
				continue
			}
			factor := aug[r*w+i]
			if factor == 0 {
				continue
			}
			for k = 0; k < w; k++ {
				aug[r*w+k] -= factor * aug[i*w+k]
			}
		}
	}

	inv := NewDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			inv.data[i*n+j] = aug[i*w+n+j]
		}
	}

	return inv, nil
}

// PseudoInverse computes the Moore-Penrose pseudoinverse A⁺ through the normal equations.
//
// Implementation:
//   - rows < cols (wide, underdetermined): A⁺ = Aᵀ·(A·Aᵀ)⁻¹ (right inverse).
//   - rows ≥ cols (tall or square):        A⁺ = (Aᵀ·A)⁻¹·Aᵀ (left inverse).
//
// Returns:
//   - *Dense of shape cols×rows satisfying A·A⁺·A = A for full-rank A.
//
// Errors:
//   - ErrNilMatrix; ErrSingular when the normal-equations matrix is singular (rank-deficient A).
//
// Complexity:
//   - Time O(r·c·min(r,c) + min(r,c)³), Space O(r·c).
func PseudoInverse(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	at, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	if m.Rows() < m.Cols() {
		aat, err := Mul(m, at)
		if err != nil {
			return nil, matrixErrorf(opPseudoInverse, err)
		}
		aatInv, err := Inverse(aat)
		if err != nil {
			return nil, matrixErrorf(opPseudoInverse, err)
		}
		pinv, err := Mul(at, aatInv)
		if err != nil {
			return nil, matrixErrorf(opPseudoInverse, err)
		}

		return pinv, nil
	}

	ata, err := Mul(at, m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	ataInv, err := Inverse(ata)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	pinv, err := Mul(ataInv, at)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	return pinv, nil
}
