package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImplicitMul(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2x+3", "2*x+3"},
		{"30x", "30*x"},
		{"(1+2)x", "(1+2)*x"},
		{"2(1+2)", "2*(1+2)"},
		{"x2", "x*2"},
		{"2(1+2)x", "2*(1+2)*x"},
		{"(x)(x)", "(x)*(x)"},
		{"2*x", "2*x"},
		{"x + 1", "x + 1"},
		{"sin(x)", "sin(x)"},
		{"2sin(3x)", "2*sin(3*x)"},
		{"xsin", "xsin"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ImplicitMul(tc.in))
		})
	}
}

func TestNormalizePower(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"x**2", "x^2"},
		{"x**(2+1)", "x^(2+1)"},
		{"x^2", "x^2"},
		{"2**x", "2^x"},
		{"x** 2", "x** 2"}, // not between operand characters
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePower(tc.in))
		})
	}
}
