// Package matrix provides the dense value types and kernels behind the linsys solvers.
//
// The matrix package provides:
//
//   - Dense: a rows×cols float64 matrix stored in one contiguous row-major buffer,
//     addressed ONE-BASED through bounds-checked At/Set.
//   - Vector: a fixed-length float64 vector with zero-based (Index/SetIndex) and
//     one-based (At/Set) accessors, arithmetic and dot product.
//   - Kernels: Add, Sub, Mul, MulVec, Scale, Neg, Transpose, Det, Inverse,
//     PseudoInverse, plus validators and gonum interop.
//
// Every fallible operation returns an error wrapping one of the sentinels in
// errors.go; nothing falls back to a plausible-looking value. Det/Inverse use
// partial pivoting with a fixed singularity threshold (DefaultEpsilon).
//
// Matrices and vectors have value semantics: Clone and CopyFrom deep-copy, and
// kernels always return freshly allocated results.
package matrix
