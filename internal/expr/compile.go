package expr

import "fmt"

// Compiled is an expression compiled against one free variable. It is a pure
// mapping from a complex input to a complex output: no hidden state, no
// access to anything outside the builtin vocabulary, deterministic on
// re-evaluation.
type Compiled struct {
	source   string
	variable string
	root     node
}

// Compile rewrites, parses, and validates src against the chosen variable
// name. The variable defaults to "x". Every identifier in the expression
// must resolve to the variable, a constant, or a builtin function; anything
// else fails compilation, never evaluation.
func Compile(src, variable string) (*Compiled, error) {
	if variable == "" {
		variable = "x"
	}
	if !validVariable(variable) {
		return nil, &Error{Pos: 0, Msg: fmt.Sprintf("invalid variable name %q", variable)}
	}

	normalized := Normalize(src)
	toks, err := lex(normalized)
	if err != nil {
		return nil, err
	}
	root, err := parse(toks)
	if err != nil {
		return nil, err
	}

	c := &Compiled{source: normalized, variable: variable, root: root}
	if err := c.validate(root); err != nil {
		return nil, err
	}
	return c, nil
}

// Eval evaluates the expression with the variable bound to z.
func (c *Compiled) Eval(z complex128) (complex128, error) {
	return c.root.eval(&env{variable: c.variable, value: z})
}

// EvalReal evaluates at a point on the real line.
func (c *Compiled) EvalReal(x float64) (complex128, error) {
	return c.Eval(complex(x, 0))
}

// Source returns the normalized expression text.
func (c *Compiled) Source() string { return c.source }

// Variable returns the bound variable name.
func (c *Compiled) Variable() string { return c.variable }

// validate walks the tree rejecting identifiers outside the closed
// vocabulary and calls with the wrong shape.
func (c *Compiled) validate(n node) error {
	switch v := n.(type) {
	case *numNode:
		return nil
	case *varNode:
		if v.name == c.variable {
			return nil
		}
		if _, ok := constants[lower(v.name)]; ok {
			return nil
		}
		if _, ok := builtins[lower(v.name)]; ok {
			return &Error{Msg: fmt.Sprintf("%s is a function and needs arguments", v.name)}
		}
		return &Error{Msg: fmt.Sprintf("unknown name %q", v.name)}
	case *unaryNode:
		return c.validate(v.x)
	case *binaryNode:
		if err := c.validate(v.x); err != nil {
			return err
		}
		return c.validate(v.y)
	case *callNode:
		fn, ok := builtins[lower(v.name)]
		if !ok {
			return &Error{Msg: fmt.Sprintf("unknown function %q", v.name)}
		}
		if len(v.args) < fn.minArgs || len(v.args) > fn.maxArgs {
			want := fmt.Sprintf("%d", fn.minArgs)
			if fn.maxArgs != fn.minArgs {
				want = fmt.Sprintf("%d to %d", fn.minArgs, fn.maxArgs)
			}
			return &Error{Msg: fmt.Sprintf("%s expects %s arguments, got %d",
				v.name, want, len(v.args))}
		}
		for _, arg := range v.args {
			if err := c.validate(arg); err != nil {
				return err
			}
		}
		return nil
	default:
		return &Error{Msg: "malformed expression tree"}
	}
}

// validVariable accepts letter-only names that do not shadow a builtin
// function or constant. The imaginary units i and j are deliberately
// excluded so complex literals keep their meaning.
func validVariable(name string) bool {
	for _, r := range name {
		if !isLetter(r) {
			return false
		}
	}
	if _, ok := builtins[lower(name)]; ok {
		return false
	}
	if _, ok := constants[lower(name)]; ok {
		return false
	}
	return true
}
