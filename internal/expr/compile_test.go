package expr

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func evalAt(t *testing.T, src, variable string, z complex128) complex128 {
	t.Helper()
	c, err := Compile(src, variable)
	require.NoError(t, err)
	v, err := c.Eval(z)
	require.NoError(t, err)
	return v
}

func TestCompileEval(t *testing.T) {
	t.Run("polynomial", func(t *testing.T) {
		v := evalAt(t, "2x^2 + 3x - 1", "x", complex(2, 0))
		assert.InDelta(t, 13.0, real(v), 1e-12)
		assert.Zero(t, imag(v))
	})

	t.Run("implicit multiplication chain", func(t *testing.T) {
		v := evalAt(t, "2(1+2)x", "x", complex(5, 0))
		assert.InDelta(t, 30.0, real(v), 1e-12)
	})

	t.Run("python power spelling", func(t *testing.T) {
		v := evalAt(t, "x**3", "x", complex(2, 0))
		assert.InDelta(t, 8.0, real(v), 1e-12)
	})

	t.Run("constants", func(t *testing.T) {
		v := evalAt(t, "sin(pi/2)", "x", 0)
		assert.True(t, scalar.EqualWithinAbs(real(v), 1.0, 1e-12))

		v = evalAt(t, "log(e)", "x", 0)
		assert.True(t, scalar.EqualWithinAbs(real(v), 1.0, 1e-12))
	})

	t.Run("complex arithmetic", func(t *testing.T) {
		// (1+i)^2 = 2i
		v := evalAt(t, "x^2", "x", complex(1, 1))
		assert.InDelta(t, 0.0, real(v), 1e-12)
		assert.InDelta(t, 2.0, imag(v), 1e-12)
	})

	t.Run("imaginary unit", func(t *testing.T) {
		v := evalAt(t, "exp(i*pi)", "x", 0)
		assert.InDelta(t, -1.0, real(v), 1e-12)
		assert.InDelta(t, 0.0, imag(v), 1e-12)
	})

	t.Run("custom variable", func(t *testing.T) {
		v := evalAt(t, "t^2+1", "t", complex(3, 0))
		assert.InDelta(t, 10.0, real(v), 1e-12)
	})

	t.Run("right associative power", func(t *testing.T) {
		v := evalAt(t, "2^-2", "x", 0)
		assert.InDelta(t, 0.25, real(v), 1e-12)
	})

	t.Run("two argument log", func(t *testing.T) {
		v := evalAt(t, "log(8, 2)", "x", 0)
		assert.InDelta(t, 3.0, real(v), 1e-12)
	})

	t.Run("unary minus", func(t *testing.T) {
		v := evalAt(t, "-x^2", "x", complex(3, 0))
		assert.InDelta(t, -9.0, real(v), 1e-12)
	})
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unknown name", "2*y+3"},
		{"unknown function", "frob(x)"},
		{"unbalanced paren", "2*(x+1"},
		{"trailing operator", "x+"},
		{"double dot number", "1.2.3"},
		{"bad arity", "sin(x, 2)"},
		{"function without call", "sin + 2"},
		{"bad character", "x & 2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.src, "x")
			require.Error(t, err)
			assert.True(t, IsCompileError(err))
		})
	}

	t.Run("variable cannot shadow builtins", func(t *testing.T) {
		_, err := Compile("sin+1", "sin")
		require.Error(t, err)
		_, err = Compile("i+1", "i")
		require.Error(t, err)
	})
}

func TestEvalErrors(t *testing.T) {
	t.Run("log of zero", func(t *testing.T) {
		c, err := Compile("log(x)", "x")
		require.NoError(t, err)
		_, err = c.Eval(0)
		require.Error(t, err)
		assert.False(t, IsCompileError(err))
	})

	t.Run("division by zero", func(t *testing.T) {
		c, err := Compile("1/x", "x")
		require.NoError(t, err)
		_, err = c.Eval(0)
		require.Error(t, err)
	})

	t.Run("real only function on complex point", func(t *testing.T) {
		c, err := Compile("floor(x)", "x")
		require.NoError(t, err)
		_, err = c.Eval(complex(1, 1))
		require.Error(t, err)
	})

	t.Run("evaluation is deterministic", func(t *testing.T) {
		c, err := Compile("sin(x)*exp(x)", "x")
		require.NoError(t, err)
		a, err := c.Eval(complex(0.7, 0.3))
		require.NoError(t, err)
		b, err := c.Eval(complex(0.7, 0.3))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestEvalMatchesStdlib(t *testing.T) {
	c, err := Compile("tan(x)", "x")
	require.NoError(t, err)
	for _, x := range []float64{-1.2, -0.5, 0.1, 0.9, 1.4} {
		v, err := c.EvalReal(x)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbsOrRel(real(v), math.Tan(x), 1e-12, 1e-12))
	}

	c, err = Compile("sqrt(x)", "x")
	require.NoError(t, err)
	v, err := c.Eval(complex(-4, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, real(v), 1e-12)
	assert.InDelta(t, 2.0, imag(v), 1e-12)
	assert.Equal(t, cmplx.Sqrt(complex(-4, 0)), v)
}
