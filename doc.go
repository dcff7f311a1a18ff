// Package linsys is a small dense linear-algebra toolkit: value-semantic
// matrices and vectors plus solvers for A·x = b.
//
// What's inside:
//
//	matrix/   - Dense (row-major, one-based At/Set) and Vector types; Add, Sub, Mul,
//	            MulVec, Transpose, Scale, Det, Inverse, PseudoInverse; validators;
//	            gonum interop
//	linsys/   - System with two strategies (Direct elimination, ConjugateGradient for
//	            SPD matrices), SolveReport diagnostics, SolvePseudoinverse,
//	            SolveTikhonov, residual helpers
//	examples/ - runnable programs: ill-posed systems, SPD direct-vs-CG comparison
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	s, _ := linsys.New(a, matrix.NewVectorFrom(5, 10))
//	x, _ := s.Solve() // [1, 3]
//
// Guarantees:
//
//   - Out-of-range indices and dimension mismatches are returned as errors, never
//     silently replaced by a neighbouring element or a zero vector.
//   - Systems own copies of their inputs; Solve is idempotent.
//   - Singular matrices surface ErrSingular instead of aborting the process.
//
//	go get github.com/katalvlaran/linsys
package linsys
