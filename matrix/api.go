// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) *Dense { return NewDense(rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols()), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows()), nil
}

// ---------- Linear Algebra aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Determinant is an alias for Det.
func Determinant(m Matrix) (float64, error) { return Det(m) }

// InverseOf is an alias for Inverse (Gauss-Jordan with partial pivoting).
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// PInv is an alias for PseudoInverse.
func PInv(m Matrix) (*Dense, error) { return PseudoInverse(m) }

// ---------- Compositions (no loop duplication) ----------

// Gram returns AᵀA, the normal-equations matrix of A (symmetric, cols×cols).
// Composition: Transpose → Mul.
func Gram(m Matrix) (*Dense, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return Mul(mt, m)
}

// AddScaledIdentity returns m + alpha·I for a square m.
// Composition: IdentityLike → Scale → Add.
func AddScaledIdentity(m Matrix, alpha float64) (*Dense, error) {
	I, err := IdentityLike(m)
	if err != nil {
		return nil, matrixErrorf("AddScaledIdentity", err)
	}
	aI, err := Scale(I, alpha)
	if err != nil {
		return nil, matrixErrorf("AddScaledIdentity", err)
	}

	return Add(m, aI)
}

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
// Useful to repair rounding drift before handing a matrix to an SPD solver.
func Symmetrize(m Matrix) (*Dense, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale(sum, 0.5)
}
