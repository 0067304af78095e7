package calculus

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"go.uber.org/zap"
)

var (
	// ErrDerivativeVanished means Newton-Raphson met a derivative too
	// small to safely divide by. The search stops with a zero result.
	ErrDerivativeVanished = errors.New("derivative too small to continue root finding")

	// ErrNoConvergence means the iteration cap was reached while the step
	// size was still large. The initial guess is likely outside any basin
	// of attraction.
	ErrNoConvergence = errors.New("root finding did not converge within the iteration cap")
)

// FindRoot searches for a root of f with Newton-Raphson starting from
// guess. Convergence is local: it depends entirely on the initial guess,
// and divergence is possible.
//
// Iterations are hard-capped at MaxIter. At the cap, a step already
// smaller than the differential step counts as near-stagnation and the
// current estimate is returned with StatusDegraded; otherwise the search
// fails with ErrNoConvergence.
func (e *Engine) FindRoot(f Func, guess complex128) (complex128, Status, error) {
	lastStep := math.Inf(1)

	for iteration := 0; iteration < e.params.MaxIter; iteration++ {
		value, err := f(guess)
		if err != nil {
			return 0, StatusDegraded, fmt.Errorf("evaluating function at %v: %w", guess, err)
		}

		derivative, diffStatus := e.ComplexDiff(f, guess)
		if diffStatus == StatusDegraded || cmplx.Abs(derivative) < e.params.Tol {
			e.log.Warn("root finding stopped on vanishing derivative",
				zap.Complex128("guess", guess),
				zap.Int("iteration", iteration))
			return 0, StatusDegraded, ErrDerivativeVanished
		}

		next := guess - value/derivative
		lastStep = cmplx.Abs(next - guess)
		if lastStep < e.params.Tol {
			return next, StatusExact, nil
		}
		guess = next
	}

	if lastStep < e.params.Step {
		// Near-stagnation at the cap: accept the estimate.
		e.log.Warn("root finding hit the iteration cap while nearly stagnant",
			zap.Complex128("estimate", guess))
		return guess, StatusDegraded, nil
	}
	return 0, StatusDegraded, ErrNoConvergence
}
