// SPDX-License-Identifier: MIT

// Package matrix - Vector value type.
//
// Purpose:
//   - Fixed-length ordered sequence of float64 with arithmetic and dot product.
//   - Value semantics: Clone/CopyFrom deep-copy; no two Vectors share storage.
//   - Both zero-based (Index/SetIndex) and one-based (At/Set) addressing, each
//     bounds-checked and returning ErrOutOfRange instead of aliasing element 0.
//
// Kernels delegate the tight loops to gonum/floats after the length checks;
// floats panics on mismatched lengths, so every call is guarded first.

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxIndex    = "Index"
	ctxSetIndex = "SetIndex"
	opVecAdd    = "Vector.Add"
	opVecSub    = "Vector.Sub"
	opVecDot    = "Vector.Dot"
	opVecCopy   = "Vector.CopyFrom"
)

// vectorErrorf wraps an error with a uniform Vector context and callsite index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a dense vector of float64 values with length ≥ 1.
// The length only changes through CopyFrom (whole-object assignment).
type Vector struct {
	data []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector returns a zero vector of the given size.
// size ≤ 0 is not an error: a length-1 vector is returned instead.
func NewVector(size int) *Vector {
	if size <= 0 {
		size = 1
	}

	return &Vector{data: make([]float64, size)}
}

// NewVectorFrom returns a vector holding a copy of values.
// An empty argument list yields a length-1 zero vector, matching NewVector(0).
func NewVectorFrom(values ...float64) *Vector {
	v := NewVector(len(values))
	copy(v.data, values)

	return v
}

// Len returns the current length.
func (v *Vector) Len() int { return len(v.data) }

// Clone returns a deep copy with independent storage.
func (v *Vector) Clone() *Vector {
	return NewVectorFrom(v.data...)
}

// CopyFrom makes v a deep copy of src, resizing v to src.Len().
func (v *Vector) CopyFrom(src *Vector) error {
	if src == nil {
		return matrixErrorf(opVecCopy, ErrNilMatrix)
	}
	if src == v {
		return nil
	}
	if len(v.data) != len(src.data) {
		v.data = make([]float64, len(src.data))
	}
	copy(v.data, src.data)

	return nil
}

// Values returns a copy of the elements (zero-based slice) for enumeration.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Index returns element i using zero-based addressing (0 ≤ i < Len).
func (v *Vector) Index(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxIndex, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// SetIndex stores x at zero-based position i.
func (v *Vector) SetIndex(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxSetIndex, i, ErrOutOfRange)
	}
	if DefaultValidateNaNInf && isNonFinite(x) {
		return vectorErrorf(ctxSetIndex, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// At returns element i using one-based addressing (1 ≤ i ≤ Len).
func (v *Vector) At(i int) (float64, error) {
	if i < 1 || i > len(v.data) {
		return 0, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i-1], nil
}

// Set stores x at one-based position i.
func (v *Vector) Set(i int, x float64) error {
	if i < 1 || i > len(v.data) {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	if DefaultValidateNaNInf && isNonFinite(x) {
		return vectorErrorf(ctxSet, i, ErrNaNInf)
	}
	v.data[i-1] = x

	return nil
}

// Neg returns −v as a new vector; v is unchanged.
func (v *Vector) Neg() *Vector {
	return v.Scale(-1)
}

// Scale returns alpha·v as a new vector.
func (v *Vector) Scale(alpha float64) *Vector {
	out := NewVector(len(v.data))
	floats.ScaleTo(out.data, alpha, v.data)

	return out
}

// Add returns v + o elementwise.
// Lengths must match; otherwise ErrDimensionMismatch is returned with a nil result.
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if err := ValidateVecLen(o, len(v.data)); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}
	out := NewVector(len(v.data))
	floats.AddTo(out.data, v.data, o.data)

	return out, nil
}

// Sub returns v − o elementwise.
// Lengths must match; otherwise ErrDimensionMismatch is returned with a nil result.
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if err := ValidateVecLen(o, len(v.data)); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}
	out := NewVector(len(v.data))
	floats.SubTo(out.data, v.data, o.data)

	return out, nil
}

// Dot returns Σ v[i]·o[i]. On length mismatch it returns (0, ErrDimensionMismatch).
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := ValidateVecLen(o, len(v.data)); err != nil {
		return 0, matrixErrorf(opVecDot, err)
	}

	return floats.Dot(v.data, o.data), nil
}

// Norm returns the Euclidean norm ‖v‖₂.
func (v *Vector) Norm() float64 {
	return floats.Norm(v.data, 2)
}

// EqualApprox reports whether v and o have the same length and every element
// pair is within tol (absolute or relative, as gonum/floats defines it).
func (v *Vector) EqualApprox(o *Vector, tol float64) bool {
	if o == nil || len(o.data) != len(v.data) {
		return false
	}

	return floats.EqualApprox(v.data, o.data, tol)
}

// Do visits each element with its one-based index; stops when f returns false.
func (v *Vector) Do(f func(i int, x float64) bool) {
	for i, x := range v.data {
		if !f(i+1, x) {
			return
		}
	}
}

// String renders the vector as "[a, b, c]" using %g.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}
