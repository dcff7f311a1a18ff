// SPDX-License-Identifier: MIT

// Package linsys - direct solver.
//
// Implementation:
//   - Stage 1: copy A and b into an n×(n+1) row-major augmented buffer [A | b].
//   - Stage 2: forward elimination; for column k pick the row ≥ k with the largest
//     |a[r,k]|, swap it in, reject |pivot| < pivotTol with ErrSingular, and
//     eliminate column k below the pivot.
//   - Stage 3: back-substitution from the last row up.
//
// Complexity:
//   - Time O(n³), Space O(n²).
package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// solveDirect solves a·x = b. Inputs are read only; a is n×n, b has length n.
func solveDirect(a *matrix.Dense, b *matrix.Vector, pivotTol float64) (*matrix.Vector, error) {
	n := a.Rows()
	w := n + 1
	aug := make([]float64, n*w)
	a.Do(func(i, j int, v float64) bool {
		aug[(i-1)*w+(j-1)] = v
		return true
	})
	b.Do(func(i int, v float64) bool {
		aug[(i-1)*w+n] = v
		return true
	})

	var (
		i, k, r, c int
		p          int
		best       float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(aug[k*w+k])
		for r = k + 1; r < n; r++ {
			if v := math.Abs(aug[r*w+k]); v > best {
				p, best = r, v
			}
		}
		if best < pivotTol {
			return nil, fmt.Errorf("pivot %g in column %d: %w", best, k+1, ErrSingular)
		}
		if p != k {
			for c = k; c < w; c++ {
				aug[k*w+c], aug[p*w+c] = aug[p*w+c], aug[k*w+c]
			}
		}
		pivot := aug[k*w+k]
		for r = k + 1; r < n; r++ {
			factor := aug[r*w+k] / pivot
			if factor == 0 {
				continue
			}
			for c = k; c < w; c++ {
				aug[r*w+c] -= factor * aug[k*w+c]
			}
		}
	}

	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum := aug[i*w+n]
		for c = i + 1; c < n; c++ {
			sum -= aug[i*w+c] * x[c]
		}
		x[i] = sum / aug[i*w+i]
	}

	return matrix.NewVectorFrom(x...), nil
}
