// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by kernels and solvers.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values with
// ONE-BASED element addressing: valid indices are 1..Rows() and 1..Cols().
//
// Kernels in this package accept any Matrix and return *Dense. Passing *Dense
// operands unlocks the flat-buffer fast path; other implementations are
// materialized once via At.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j), one-based.
	// Returns ErrOutOfRange if i<1, i>Rows(), j<1 or j>Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j), one-based.
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
