// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Both libraries store dense matrices row-major, so conversion is a single
// buffer copy. The copy is deliberate: mat.NewDense adopts the slice it is
// given, and Dense must never share storage with another value.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum returns a *mat.Dense holding a copy of m.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense.
// Non-finite entries are rejected with ErrNaNInf under the default policy.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	out := NewDense(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := out.Set(i+1, j+1, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// VectorToGonum returns a *mat.VecDense holding a copy of v.
func VectorToGonum(v *Vector) (*mat.VecDense, error) {
	if v == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}

	return mat.NewVecDense(v.Len(), v.Values()), nil
}

// VectorFromGonum copies a gonum vector into a new Vector.
func VectorFromGonum(g mat.Vector) (*Vector, error) {
	if g == nil || g.Len() == 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	out := NewVector(g.Len())
	for i := 0; i < g.Len(); i++ {
		if err := out.SetIndex(i, g.AtVec(i)); err != nil {
			return nil, matrixErrorf(opFromGonum, err)
		}
	}

	return out, nil
}
