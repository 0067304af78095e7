package expr

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"
)

// The permitted vocabulary is a closed set: the constants and builtins below
// plus the single free variable chosen at compile time. Nothing else is
// resolvable, which keeps untrusted expressions away from host capabilities.

var constants = map[string]complex128{
	"pi":  complex(math.Pi, 0),
	"e":   complex(math.E, 0),
	"tau": complex(2*math.Pi, 0),
	"phi": complex(math.Phi, 0),
	"i":   complex(0, 1),
	"j":   complex(0, 1),
}

type builtin struct {
	minArgs int
	maxArgs int
	apply   func(args []complex128) (complex128, error)
}

func unary(f func(complex128) complex128) builtin {
	return builtin{1, 1, func(args []complex128) (complex128, error) {
		return f(args[0]), nil
	}}
}

func unaryErr(f func(complex128) (complex128, error)) builtin {
	return builtin{1, 1, func(args []complex128) (complex128, error) {
		return f(args[0])
	}}
}

// realUnary restricts a function to arguments on the real line.
func realUnary(f func(float64) float64) builtin {
	return builtin{1, 1, func(args []complex128) (complex128, error) {
		x, err := asReal(args[0])
		if err != nil {
			return 0, err
		}
		return complex(f(x), 0), nil
	}}
}

func asReal(z complex128) (float64, error) {
	if imag(z) != 0 {
		return 0, fmt.Errorf("requires a real argument, got %v", z)
	}
	return real(z), nil
}

func logComplex(z complex128) (complex128, error) {
	if z == 0 {
		return 0, fmt.Errorf("log of zero")
	}
	return cmplx.Log(z), nil
}

var builtins = map[string]builtin{
	"sin":   unary(cmplx.Sin),
	"cos":   unary(cmplx.Cos),
	"tan":   unary(cmplx.Tan),
	"asin":  unary(cmplx.Asin),
	"acos":  unary(cmplx.Acos),
	"atan":  unary(cmplx.Atan),
	"sinh":  unary(cmplx.Sinh),
	"cosh":  unary(cmplx.Cosh),
	"tanh":  unary(cmplx.Tanh),
	"asinh": unary(cmplx.Asinh),
	"acosh": unary(cmplx.Acosh),
	"atanh": unary(cmplx.Atanh),
	"exp":   unary(cmplx.Exp),
	"sqrt":  unary(cmplx.Sqrt),
	"conj":  unary(cmplx.Conj),

	"abs":   unary(func(z complex128) complex128 { return complex(cmplx.Abs(z), 0) }),
	"phase": unary(func(z complex128) complex128 { return complex(cmplx.Phase(z), 0) }),
	"arg":   unary(func(z complex128) complex128 { return complex(cmplx.Phase(z), 0) }),
	"real":  unary(func(z complex128) complex128 { return complex(real(z), 0) }),
	"imag":  unary(func(z complex128) complex128 { return complex(imag(z), 0) }),

	"log": {1, 2, func(args []complex128) (complex128, error) {
		v, err := logComplex(args[0])
		if err != nil || len(args) == 1 {
			return v, err
		}
		base, err := logComplex(args[1])
		if err != nil {
			return 0, err
		}
		if base == 0 {
			return 0, fmt.Errorf("log base one")
		}
		return v / base, nil
	}},
	"ln": unaryErr(logComplex),
	"log10": unaryErr(func(z complex128) (complex128, error) {
		v, err := logComplex(z)
		if err != nil {
			return 0, err
		}
		return v / complex(math.Ln10, 0), nil
	}),
	"log2": unaryErr(func(z complex128) (complex128, error) {
		v, err := logComplex(z)
		if err != nil {
			return 0, err
		}
		return v / complex(math.Ln2, 0), nil
	}),

	"pow": {2, 2, func(args []complex128) (complex128, error) {
		return cmplx.Pow(args[0], args[1]), nil
	}},
	"rect": {2, 2, func(args []complex128) (complex128, error) {
		r, err := asReal(args[0])
		if err != nil {
			return 0, err
		}
		theta, err := asReal(args[1])
		if err != nil {
			return 0, err
		}
		return cmplx.Rect(r, theta), nil
	}},

	"floor":   realUnary(math.Floor),
	"ceil":    realUnary(math.Ceil),
	"round":   realUnary(math.Round),
	"gamma":   realUnary(math.Gamma),
	"erf":     realUnary(math.Erf),
	"erfc":    realUnary(math.Erfc),
	"radians": realUnary(func(x float64) float64 { return x * math.Pi / 180 }),
	"degrees": realUnary(func(x float64) float64 { return x * 180 / math.Pi }),
}

// Names returns the permitted vocabulary (constants and functions), sorted
// lexically. Callers use it for help output and boundary validation.
func Names() []string {
	names := make([]string, 0, len(constants)+len(builtins))
	for name := range constants {
		names = append(names, name)
	}
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lower(s string) string { return strings.ToLower(s) }
