// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula (i-1)*cols + (j-1).
//   - Keep ONE-BASED addressing at the public surface as a thin translation layer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking
//     and never fall back to another element.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = (i-1)*c + (j-1)).
//   - validateNaNInf enables NaN/Inf rejection in Set.
//
// Dense has value semantics through Clone/CopyFrom: no two Dense values share storage.
type Dense struct {
	r, c           int       // row and column counts (>= 1)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: if rows ≤ 0 or cols ≤ 0, substitute a 1×1 shape.
//   - Stage 2: allocate a zero-filled buffer and set the default numeric policy.
//
// Behavior highlights:
//   - Non-positive shapes are NOT an error: the constructor floors them to 1×1,
//     so a Dense never exists with an empty buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		rows, cols = 1, 1
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewDenseFromRows builds a Dense from a literal slice of rows.
//
// Implementation:
//   - Stage 1: reject empty input or ragged rows (ErrInvalidDimensions).
//   - Stage 2: copy values row by row, rejecting NaN/Inf (ErrNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := NewDense(r, c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(rows[i]), c, ErrInvalidDimensions))
		}
		for j, v := range rows[i] {
			if isNonFinite(v) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i+1, j+1, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// n ≤ 0 yields the 1×1 identity, consistent with NewDense.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) *Dense {
	I := NewDense(n, n)
	for i := 0; i < I.r; i++ {
		I.data[i*I.c+i] = unitDiag
	}

	return I
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf bounds-checks one-based (row,col) and returns the flat offset.
//
// Implementation:
//   - Stage 1: validate 1 ≤ row ≤ m.r and 1 ≤ col ≤ m.c.
//   - Stage 2: compute (row-1)*m.c + (col-1).
//
// Notes:
//   - Returns the bare sentinel; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.r {
		return 0, ErrOutOfRange
	}
	if col < 1 || col > m.c {
		return 0, ErrOutOfRange
	}

	return (row-1)*m.c + (col - 1), nil
}

// At returns the value at one-based (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at one-based (row, col) or returns an error.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under the default policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used inside the package.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// CopyFrom makes m a deep copy of src (assignment semantics).
//
// Implementation:
//   - Stage 1: reject nil src.
//   - Stage 2: reallocate the buffer when the shape differs; reuse it otherwise.
//   - Stage 3: copy every element.
//
// Behavior highlights:
//   - After the call m and src share no storage; later writes to either are independent.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) when reallocating.
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf("Dense."+ctxCopyFrom, err)
	}
	if d, ok := src.(*Dense); ok && d == m {
		return nil // self-assignment
	}
	r, c := src.Rows(), src.Cols()
	if r != m.r || c != m.c {
		m.r, m.c = r, c
		m.data = make([]float64, r*c)
	}
	if d, ok := src.(*Dense); ok {
		copy(m.data, d.data)

		return nil
	}
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return matrixErrorf("Dense."+ctxCopyFrom, err)
			}
			m.data[(i-1)*c+(j-1)] = v
		}
	}

	return nil
}

// Row returns a copy of row i (one-based) as a Vector.
func (m *Dense) Row(i int) (*Vector, error) {
	if i < 1 || i > m.r {
		return nil, denseErrorf(ctxRow, i, 1, ErrOutOfRange)
	}
	base := (i - 1) * m.c

	return NewVectorFrom(m.data[base : base+m.c]...), nil
}

// Col returns a copy of column j (one-based) as a Vector.
func (m *Dense) Col(j int) (*Vector, error) {
	if j < 1 || j > m.c {
		return nil, denseErrorf(ctxCol, 1, j, ErrOutOfRange)
	}
	out := NewVector(m.r)
	for i := 0; i < m.r; i++ {
		out.data[i] = m.data[i*m.c+(j-1)]
	}

	return out, nil
}

// Do visits each element in row-major order and calls f(i, j, v) with
// one-based coordinates. Iteration stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i+1, j+1, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as lines with comma-separated %g values:
//
//	[1, 2]
//	[3, 4]
//
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read through At.
// Kernels call it once so that their inner loops always run on a flat buffer.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	out := NewDense(r, c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 1; i <= r; i++ {
		for j = 1; j <= c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[(i-1)*c+(j-1)] = v
		}
	}

	return out, nil
}
