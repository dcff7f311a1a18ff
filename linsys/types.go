// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// Kind selects the solution strategy of a System.
type Kind int

const (
	// Direct is Gaussian elimination with partial pivoting and back-substitution.
	Direct Kind = iota
	// ConjugateGradient is the iterative solver for symmetric positive-definite systems.
	ConjugateGradient
)

// String returns the strategy name.
func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case ConjugateGradient:
		return "conjugate-gradient"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// valid reports whether k is a declared strategy.
func (k Kind) valid() bool {
	return k == Direct || k == ConjugateGradient
}

// Report describes one solve.
//   - X is the solution (for a non-converged CG run, the last iterate).
//   - Iterations is 0 for Direct.
//   - Residual is ‖b − A·X‖₂ recomputed from the owned system.
type Report struct {
	X          *matrix.Vector
	Kind       Kind
	Iterations int
	Residual   float64
	Converged  bool
}
