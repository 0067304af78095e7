package calculus

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestIntegrate(t *testing.T) {
	e := NewDefault()

	t.Run("polynomial exactness", func(t *testing.T) {
		got, status := e.Integrate(pure(func(z complex128) complex128 { return z }), 0, 1)
		assert.Equal(t, StatusExact, status)
		assert.True(t, scalar.EqualWithinAbs(real(got), 0.5, 1e-12))

		got, status = e.Integrate(pure(func(z complex128) complex128 { return z * z }), 0, 1)
		assert.Equal(t, StatusExact, status)
		assert.True(t, scalar.EqualWithinAbs(real(got), 1.0/3.0, 1e-12))
	})

	t.Run("trigonometric", func(t *testing.T) {
		got, _ := e.Integrate(pure(cmplx.Cos), 0, math.Pi/2)
		assert.True(t, scalar.EqualWithinRel(real(got), 1.0, 1e-12),
			"got %v", real(got))
	})

	t.Run("degenerate interval", func(t *testing.T) {
		for _, c := range []float64{-3, 0, 2.5} {
			got, status := e.Integrate(pure(cmplx.Exp), c, c)
			assert.Equal(t, StatusExact, status)
			assert.Zero(t, got)
		}
	})

	t.Run("orientation reversal", func(t *testing.T) {
		f := pure(func(z complex128) complex128 { return cmplx.Exp(-z * z) })
		forward, _ := e.Integrate(f, -1, 2)
		backward, _ := e.Integrate(f, 2, -1)
		assert.Equal(t, forward, -backward)
	})

	t.Run("complex valued integrand", func(t *testing.T) {
		// ∫ e^{ix} dx over [0, π] = 2i
		f := pure(func(z complex128) complex128 { return cmplx.Exp(complex(0, 1) * z) })
		got, _ := e.Integrate(f, 0, math.Pi)
		assert.True(t, scalar.EqualWithinAbs(real(got), 0, 1e-10))
		assert.True(t, scalar.EqualWithinAbs(imag(got), 2, 1e-10))
	})

	t.Run("skips failing nodes", func(t *testing.T) {
		// log has a pole at zero; the node there is dropped, the rest of
		// the integral still comes out close.
		f := func(z complex128) (complex128, error) {
			if real(z) <= 0 {
				return 0, fmt.Errorf("domain error")
			}
			return cmplx.Log(z), nil
		}
		got, status := e.Integrate(f, 0, 1)
		assert.Equal(t, StatusDegraded, status)
		// ∫0..1 ln(x) dx = -1
		assert.InDelta(t, -1.0, real(got), 1e-3)
	})

	t.Run("depth cap produces estimate not failure", func(t *testing.T) {
		shallow := New(Params{Tol: 1e-15, Step: 1e-12, MaxIter: 100, MaxDepth: 2}, nil)
		// Oscillatory enough that depth 2 cannot converge.
		f := pure(func(z complex128) complex128 { return cmplx.Sin(complex(50, 0) * z) })
		_, status := shallow.Integrate(f, 0, 10)
		assert.Equal(t, StatusDegraded, status)
	})

	t.Run("alternate tolerances are honored", func(t *testing.T) {
		loose := New(Params{Tol: 1e-6, Step: 1e-12, MaxIter: 100, MaxDepth: 50}, nil)
		got, status := loose.Integrate(pure(cmplx.Cos), 0, math.Pi/2)
		assert.Equal(t, StatusExact, status)
		assert.True(t, scalar.EqualWithinRel(real(got), 1.0, 1e-5))
	})
}
