package calculus

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	e := NewDefault()

	t.Run("quadratic from positive guess", func(t *testing.T) {
		f := pure(func(z complex128) complex128 { return z*z - 4 })
		root, status, err := e.FindRoot(f, complex(3, 0))
		require.NoError(t, err)
		assert.Equal(t, StatusExact, status)
		assert.InDelta(t, 2.0, real(root), 1e-8)
		assert.InDelta(t, 0.0, imag(root), 1e-8)
	})

	t.Run("quadratic from negative guess finds the other root", func(t *testing.T) {
		f := pure(func(z complex128) complex128 { return z*z - 4 })
		root, _, err := e.FindRoot(f, complex(-3, 0))
		require.NoError(t, err)
		assert.InDelta(t, -2.0, real(root), 1e-8)
	})

	t.Run("complex root", func(t *testing.T) {
		// z^2 + 1 has roots at ±i; a guess off the real axis converges.
		f := pure(func(z complex128) complex128 { return z*z + 1 })
		root, _, err := e.FindRoot(f, complex(0.5, 0.8))
		require.NoError(t, err)
		assert.Less(t, cmplx.Abs(root-complex(0, 1)), 1e-8)
	})

	t.Run("transcendental", func(t *testing.T) {
		f := pure(func(z complex128) complex128 { return cmplx.Cos(z) - z })
		root, _, err := e.FindRoot(f, complex(1, 0))
		require.NoError(t, err)
		assert.InDelta(t, 0.7390851332151607, real(root), 1e-8)
	})

	t.Run("vanishing derivative", func(t *testing.T) {
		// f' is zero at the guess and the search cannot safely divide.
		f := pure(func(z complex128) complex128 { return z*z + 1 })
		root, status, err := e.FindRoot(f, 0)
		assert.ErrorIs(t, err, ErrDerivativeVanished)
		assert.Equal(t, StatusDegraded, status)
		assert.Zero(t, root)
	})

	t.Run("iteration cap reports non-convergence", func(t *testing.T) {
		capped := New(Params{Tol: 1e-15, Step: 1e-12, MaxIter: 8, MaxDepth: 50}, nil)
		// Newton on z^2+1 from a real guess oscillates along the real axis
		// forever; the hard cap turns that into an explicit failure.
		f := pure(func(z complex128) complex128 { return z*z + 1 })
		_, _, err := capped.FindRoot(f, complex(2, 0))
		assert.ErrorIs(t, err, ErrNoConvergence)
	})

	t.Run("propagates evaluation errors", func(t *testing.T) {
		f := func(complex128) (complex128, error) { return 0, assert.AnError }
		_, status, err := e.FindRoot(f, complex(1, 0))
		require.Error(t, err)
		assert.Equal(t, StatusDegraded, status)
	})
}
