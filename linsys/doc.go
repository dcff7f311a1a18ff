// Package linsys solves square linear systems A·x = b and their ill-posed
// (rectangular) relatives on top of the dense types in package matrix.
//
// A System is a tagged variant with one entry point:
//
//   - Direct: Gaussian elimination with max-magnitude partial pivoting on the
//     augmented [A | b], followed by back-substitution. Any non-singular A.
//   - ConjugateGradient: iterative Krylov solver for symmetric positive-definite A.
//     Symmetry is verified at construction; positive-definiteness is not.
//
// Construction copies the inputs, so later changes to the caller's matrix or
// vector never leak into a System, and Solve is idempotent.
//
// For rectangular systems the package offers SolvePseudoinverse (minimum-norm /
// least-squares x = A⁺·b through the normal equations) and SolveTikhonov
// ((AᵀA + α²I)·x = Aᵀb, solved directly).
//
// Errors are package sentinels (errors.go) wrapped with an operation tag; match
// them with errors.Is. Solver progress is reported through an injected
// *slog.Logger (WithLogger), defaulting to slog.Default().
package linsys
