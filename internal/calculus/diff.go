package calculus

import (
	"go.uber.org/zap"
)

// RealDiff computes f'(x) for a point on the real line.
//
// The primary method is the complex-step trick: f evaluated at x + i*Step
// has derivative Im(f)/Step, accurate to machine precision for analytic f
// because there is no subtractive cancellation. If that evaluation fails,
// the central finite difference (f(x+h) - f(x-h)) / 2h is used instead
// (StatusFallback). If that fails too, the result degrades to zero
// (StatusDegraded) so callers building on top can keep progressing.
func (e *Engine) RealDiff(f Func, x float64) (float64, Status) {
	h := e.params.Step

	if v, err := f(complex(x, h)); err == nil {
		return imag(v) / h, StatusExact
	}

	hi, err1 := f(complex(x+h, 0))
	lo, err2 := f(complex(x-h, 0))
	if err1 == nil && err2 == nil {
		return real(hi-lo) / (2 * h), StatusFallback
	}

	e.log.Warn("real differentiation degraded to zero",
		zap.Float64("point", x))
	return 0, StatusDegraded
}

// ComplexDiff computes f'(z) with a central difference along the diagonal
// step Step + i*Step. Unlike the complex-step trick this does not assume f
// is safe to probe off the real line in a special direction, so it covers
// functions that are not holomorphic-friendly. Evaluation failure degrades
// to zero.
func (e *Engine) ComplexDiff(f Func, z complex128) (complex128, Status) {
	delta := complex(e.params.Step, e.params.Step)

	hi, err1 := f(z + delta)
	lo, err2 := f(z - delta)
	if err1 != nil || err2 != nil {
		e.log.Warn("complex differentiation degraded to zero",
			zap.Complex128("point", z))
		return 0, StatusDegraded
	}
	return (hi - lo) / (2 * delta), StatusExact
}

// curveTangent estimates curve'(t) for the contour integrator. The step is
// scaled to the discretization width but bounded by a multiple of the
// engine step; the first and last sample use one-sided differences so the
// curve is never probed outside [low, high].
func (e *Engine) curveTangent(curve Func, t, dtSmall float64, position samplePosition) (complex128, error) {
	switch position {
	case sampleFirst:
		hi, err := curve(complex(t+dtSmall, 0))
		if err != nil {
			return 0, err
		}
		lo, err := curve(complex(t, 0))
		if err != nil {
			return 0, err
		}
		return (hi - lo) / complex(dtSmall, 0), nil
	case sampleLast:
		hi, err := curve(complex(t, 0))
		if err != nil {
			return 0, err
		}
		lo, err := curve(complex(t-dtSmall, 0))
		if err != nil {
			return 0, err
		}
		return (hi - lo) / complex(dtSmall, 0), nil
	default:
		hi, err := curve(complex(t+dtSmall, 0))
		if err != nil {
			return 0, err
		}
		lo, err := curve(complex(t-dtSmall, 0))
		if err != nil {
			return 0, err
		}
		return (hi - lo) / complex(2*dtSmall, 0), nil
	}
}

type samplePosition int

const (
	sampleFirst samplePosition = iota
	sampleInterior
	sampleLast
)
