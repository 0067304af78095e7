package calculus

import (
	"fmt"
	"math"
)

// ErrInvalidSteps rejects a non-positive contour discretization before any
// numeric work happens.
var ErrInvalidSteps = fmt.Errorf("contour step count must be positive")

// ContourIntegrate computes the integral of f along the parametrized curve
// over [low, high], discretized into steps equal sub-intervals.
//
// The accumulation is a trapezoid rule over the samples: weight-half
// endpoints, weight-one interior, each contributing
// f(curve(t)) * curve'(t) * dt. The tangent comes from the differentiation
// engine with a step scaled to the discretization width but bounded by a
// multiple of the engine step. Samples whose evaluation fails anywhere in
// that chain are skipped, matching the quadrature skip policy.
func (e *Engine) ContourIntegrate(f, curve Func, low, high float64, steps int) (complex128, Status, error) {
	if steps <= 0 {
		return 0, StatusDegraded, ErrInvalidSteps
	}

	dt := (high - low) / float64(steps)
	dtSmall := math.Min(math.Abs(dt)*0.001, e.params.Step*100)
	status := StatusExact

	var total complex128
	for i := 0; i <= steps; i++ {
		t := low + float64(i)*dt

		position := sampleInterior
		weight := 1.0
		switch i {
		case 0:
			position, weight = sampleFirst, 0.5
		case steps:
			position, weight = sampleLast, 0.5
		}

		z, err := curve(complex(t, 0))
		if err != nil {
			status = StatusDegraded
			continue
		}
		tangent, err := e.curveTangent(curve, t, dtSmall, position)
		if err != nil {
			status = StatusDegraded
			continue
		}
		v, err := f(z)
		if err != nil {
			status = StatusDegraded
			continue
		}

		total += complex(weight, 0) * v * tangent
	}

	return total * complex(dt, 0), status, nil
}
