package expr

import (
	"fmt"
	"math/cmplx"
)

// node is a single expression tree node. Evaluation threads the bound
// variable value through env; every node yields a complex128 so real and
// complex expressions share one result type.
type node interface {
	eval(env *env) (complex128, error)
}

type env struct {
	variable string
	value    complex128
}

type numNode struct {
	value complex128
}

func (n *numNode) eval(*env) (complex128, error) { return n.value, nil }

type varNode struct {
	name string
}

func (n *varNode) eval(e *env) (complex128, error) {
	if n.name == e.variable {
		return e.value, nil
	}
	if c, ok := constants[lower(n.name)]; ok {
		return c, nil
	}
	// Unreachable after compile-time validation; kept as a guard for
	// hand-built trees.
	return 0, fmt.Errorf("unknown name %q", n.name)
}

type unaryNode struct {
	op tokenKind
	x  node
}

func (n *unaryNode) eval(e *env) (complex128, error) {
	v, err := n.x.eval(e)
	if err != nil {
		return 0, err
	}
	if n.op == tokenMinus {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op   tokenKind
	x, y node
}

func (n *binaryNode) eval(e *env) (complex128, error) {
	a, err := n.x.eval(e)
	if err != nil {
		return 0, err
	}
	b, err := n.y.eval(e)
	if err != nil {
		return 0, err
	}

	var v complex128
	switch n.op {
	case tokenPlus:
		v = a + b
	case tokenMinus:
		v = a - b
	case tokenStar:
		v = a * b
	case tokenSlash:
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		v = a / b
	case tokenCaret:
		v = cmplx.Pow(a, b)
	default:
		return 0, fmt.Errorf("bad operator")
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("result overflows")
	}
	return v, nil
}

type callNode struct {
	name string
	args []node
}

func (n *callNode) eval(e *env) (complex128, error) {
	fn := builtins[lower(n.name)]
	args := make([]complex128, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(e)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	v, err := fn.apply(args)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", n.name, err)
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("%s: result overflows", n.name)
	}
	return v, nil
}

func isFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
