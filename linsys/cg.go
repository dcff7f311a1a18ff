// SPDX-License-Identifier: MIT

// Package linsys - conjugate gradient.
//
// Recurrence (x₀ = 0):
//
//	r = b, p = r, rsold = r·r
//	repeat up to budget:
//	    Ap = A·p
//	    α  = rsold / (p·Ap)
//	    x += α·p
//	    r −= α·Ap
//	    rsnew = r·r
//	    stop if √rsnew < tol
//	    p = r + (rsnew/rsold)·p
//	    rsold = rsnew
//
// Notes:
//   - b = 0 converges at iteration 0 with x = 0.
//   - p·Ap = 0 (or non-finite) is a breakdown, typical of indefinite A; iteration
//     stops and the run is reported as not converged.
package linsys

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// solveCG runs conjugate gradient on the owned system. The returned report is
// non-nil whenever an iterate exists, including on ErrNotConverged.
func solveCG(a *matrix.Dense, b *matrix.Vector, o Options) (*Report, error) {
	n := a.Rows()
	budget := o.iterationBudget(n)
	log := o.logger.With(slog.String("solver", ConjugateGradient.String()), slog.Int("n", n))

	x := matrix.NewVector(n)
	r := b.Clone()
	p := r.Clone()
	rsold, err := r.Dot(r)
	if err != nil {
		return nil, linsysErrorf(opCG, err)
	}
	rep := &Report{X: x, Kind: ConjugateGradient}
	if math.Sqrt(rsold) < o.tol {
		rep.Converged = true
		log.Info("conjugate gradient converged", slog.Int("iterations", 0), slog.Float64("residual", math.Sqrt(rsold)))

		return rep, nil
	}

	var (
		ap         *matrix.Vector
		pAp, rsnew float64
		resid      = math.Sqrt(rsold)
	)
	for iter := 1; iter <= budget; iter++ {
		if ap, err = matrix.MulVec(a, p); err != nil {
			return nil, linsysErrorf(opCG, err)
		}
		if pAp, err = p.Dot(ap); err != nil {
			return nil, linsysErrorf(opCG, err)
		}
		if pAp == 0 || isNonFinite(pAp) {
			log.Warn("conjugate gradient breakdown", slog.Int("iterations", iter-1), slog.Float64("pAp", pAp))

			return rep, linsysErrorf(opCG, fmt.Errorf("breakdown after %d iterations (p·Ap = %g): %w", iter-1, pAp, ErrNotConverged))
		}
		alpha := rsold / pAp

		if x, err = x.Add(p.Scale(alpha)); err != nil {
			return nil, linsysErrorf(opCG, err)
		}
		if r, err = r.Sub(ap.Scale(alpha)); err != nil {
			return nil, linsysErrorf(opCG, err)
		}
		if rsnew, err = r.Dot(r); err != nil {
			return nil, linsysErrorf(opCG, err)
		}
		resid = math.Sqrt(rsnew)
		rep.X, rep.Iterations = x, iter
		log.Debug("conjugate gradient iteration", slog.Int("iter", iter), slog.Float64("residual", resid))

		if resid < o.tol {
			rep.Converged = true
			log.Info("conjugate gradient converged", slog.Int("iterations", iter), slog.Float64("residual", resid))

			return rep, nil
		}

		if p, err = r.Add(p.Scale(rsnew / rsold)); err != nil {
			return nil, linsysErrorf(opCG, err)
		}
		rsold = rsnew
	}

	log.Warn("conjugate gradient did not converge", slog.Int("iterations", budget), slog.Float64("residual", resid))

	return rep, linsysErrorf(opCG, fmt.Errorf("%d iterations, residual %g: %w", budget, resid, ErrNotConverged))
}
