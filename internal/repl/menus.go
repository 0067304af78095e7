package repl

// argKind selects the parser for one prompted argument.
type argKind int

const (
	argComplex argKind = iota
	argNumber
	argInt
	argText
)

// arg describes one prompted tool argument.
type arg struct {
	name     string
	prompt   string
	kind     argKind
	optional bool
}

// item is one selectable operation inside a category menu.
type item struct {
	label string
	tool  string
	args  []arg
}

// category groups operations under one menu key.
type category struct {
	key   string
	title string
	items []item
}

func operands() []arg {
	return []arg{
		{name: "a", prompt: "first value", kind: argComplex},
		{name: "b", prompt: "second value", kind: argComplex},
	}
}

func one(name, prompt string, kind argKind) []arg {
	return []arg{{name: name, prompt: prompt, kind: kind}}
}

func exprArgs(extra ...arg) []arg {
	args := []arg{
		{name: "expression", prompt: "expression", kind: argText},
		{name: "variable", prompt: "variable (blank for x)", kind: argText, optional: true},
	}
	return append(args, extra...)
}

var categories = []category{
	{
		key:   "1",
		title: "Arithmetic",
		items: []item{
			{label: "Add", tool: "sci.add", args: operands()},
			{label: "Subtract", tool: "sci.subtract", args: operands()},
			{label: "Multiply", tool: "sci.multiply", args: operands()},
			{label: "Divide", tool: "sci.divide", args: operands()},
			{label: "Floor divide", tool: "sci.floordiv", args: operands()},
			{label: "Modulo", tool: "sci.mod", args: operands()},
			{label: "Absolute value", tool: "sci.abs", args: one("x", "value", argComplex)},
		},
	},
	{
		key:   "2",
		title: "Powers and Roots",
		items: []item{
			{label: "Power", tool: "sci.power", args: []arg{
				{name: "base", prompt: "base", kind: argComplex},
				{name: "exponent", prompt: "exponent", kind: argComplex},
			}},
			{label: "Square root", tool: "sci.sqrt", args: one("x", "value", argComplex)},
			{label: "Nth root", tool: "sci.nthroot", args: []arg{
				{name: "x", prompt: "value", kind: argComplex},
				{name: "n", prompt: "root degree", kind: argComplex},
			}},
			{label: "Exponential", tool: "sci.exp", args: one("x", "exponent", argComplex)},
		},
	},
	{
		key:   "3",
		title: "Trigonometry",
		items: []item{
			{label: "Sine", tool: "sci.sin", args: one("x", "angle (radians)", argComplex)},
			{label: "Cosine", tool: "sci.cos", args: one("x", "angle (radians)", argComplex)},
			{label: "Tangent", tool: "sci.tan", args: one("x", "angle (radians)", argComplex)},
			{label: "Secant", tool: "sci.sec", args: one("x", "angle (radians)", argComplex)},
			{label: "Cosecant", tool: "sci.csc", args: one("x", "angle (radians)", argComplex)},
			{label: "Cotangent", tool: "sci.cot", args: one("x", "angle (radians)", argComplex)},
			{label: "Arcsine", tool: "sci.asin", args: one("x", "value", argComplex)},
			{label: "Arccosine", tool: "sci.acos", args: one("x", "value", argComplex)},
			{label: "Arctangent", tool: "sci.atan", args: one("x", "value", argComplex)},
			{label: "Arcsecant", tool: "sci.asec", args: one("x", "value", argComplex)},
			{label: "Arccosecant", tool: "sci.acsc", args: one("x", "value", argComplex)},
			{label: "Arccotangent", tool: "sci.acot", args: one("x", "value", argComplex)},
			{label: "Atan2", tool: "sci.atan2", args: []arg{
				{name: "y", prompt: "ordinate", kind: argNumber},
				{name: "x", prompt: "abscissa", kind: argNumber},
			}},
			{label: "Degrees to radians", tool: "sci.radians", args: one("x", "degrees", argNumber)},
			{label: "Radians to degrees", tool: "sci.degrees", args: one("x", "radians", argNumber)},
		},
	},
	{
		key:   "4",
		title: "Hyperbolic",
		items: []item{
			{label: "Sinh", tool: "sci.sinh", args: one("x", "value", argComplex)},
			{label: "Cosh", tool: "sci.cosh", args: one("x", "value", argComplex)},
			{label: "Tanh", tool: "sci.tanh", args: one("x", "value", argComplex)},
			{label: "Sech", tool: "sci.sech", args: one("x", "value", argComplex)},
			{label: "Csch", tool: "sci.csch", args: one("x", "value", argComplex)},
			{label: "Coth", tool: "sci.coth", args: one("x", "value", argComplex)},
			{label: "Asinh", tool: "sci.asinh", args: one("x", "value", argComplex)},
			{label: "Acosh", tool: "sci.acosh", args: one("x", "value", argComplex)},
			{label: "Atanh", tool: "sci.atanh", args: one("x", "value", argComplex)},
		},
	},
	{
		key:   "5",
		title: "Logarithms",
		items: []item{
			{label: "Natural log", tool: "sci.ln", args: one("x", "value", argComplex)},
			{label: "Log base 10", tool: "sci.log10", args: one("x", "value", argComplex)},
			{label: "Log base 2", tool: "sci.log2", args: one("x", "value", argComplex)},
			{label: "Ten to the x", tool: "sci.exp10", args: one("x", "exponent", argComplex)},
			{label: "Log base b", tool: "sci.logb", args: []arg{
				{name: "x", prompt: "value", kind: argComplex},
				{name: "base", prompt: "base", kind: argComplex},
			}},
		},
	},
	{
		key:   "6",
		title: "Special Functions",
		items: []item{
			{label: "Factorial", tool: "sci.factorial", args: one("x", "non-negative integer", argNumber)},
			{label: "Gamma", tool: "sci.gamma", args: one("x", "value", argNumber)},
			{label: "Beta", tool: "sci.beta", args: []arg{
				{name: "a", prompt: "first argument", kind: argNumber},
				{name: "b", prompt: "second argument", kind: argNumber},
			}},
			{label: "Digamma", tool: "sci.digamma", args: one("x", "value", argNumber)},
			{label: "Zeta", tool: "sci.zeta", args: []arg{
				{name: "s", prompt: "exponent (> 1)", kind: argNumber},
				{name: "q", prompt: "offset (blank for 1)", kind: argNumber, optional: true},
			}},
			{label: "Error function", tool: "sci.erf", args: one("x", "value", argNumber)},
			{label: "Complementary erf", tool: "sci.erfc", args: one("x", "value", argNumber)},
			{label: "Conjugate", tool: "sci.conjugate", args: one("x", "value", argComplex)},
			{label: "Phase", tool: "sci.phase", args: one("x", "value", argComplex)},
			{label: "To polar", tool: "sci.polar", args: one("x", "value", argComplex)},
			{label: "From polar", tool: "sci.rect", args: []arg{
				{name: "r", prompt: "modulus", kind: argNumber},
				{name: "theta", prompt: "argument (radians)", kind: argNumber},
			}},
		},
	},
	{
		key:   "7",
		title: "Constants",
		items: []item{
			{label: "Pi", tool: "sci.pi"},
			{label: "E", tool: "sci.e"},
			{label: "Tau", tool: "sci.tau"},
			{label: "Phi", tool: "sci.phi"},
		},
	},
	{
		key:   "8",
		title: "Numerical Calculus",
		items: []item{
			{label: "Evaluate at a point", tool: "calc.evaluate", args: exprArgs(
				arg{name: "value", prompt: "point", kind: argComplex},
			)},
			{label: "Differentiate", tool: "calc.differentiate", args: exprArgs(
				arg{name: "point", prompt: "point", kind: argComplex},
			)},
			{label: "Integrate", tool: "calc.integrate", args: exprArgs(
				arg{name: "low", prompt: "lower limit", kind: argNumber},
				arg{name: "high", prompt: "upper limit", kind: argNumber},
			)},
			{label: "Contour integrate", tool: "calc.contour", args: []arg{
				{name: "expression", prompt: "integrand (in z)", kind: argText},
				{name: "curve", prompt: "curve (in t)", kind: argText},
				{name: "low", prompt: "parameter start", kind: argNumber},
				{name: "high", prompt: "parameter end", kind: argNumber},
				{name: "steps", prompt: "steps (blank for 1000)", kind: argInt, optional: true},
			}},
			{label: "Find root", tool: "calc.root", args: exprArgs(
				arg{name: "guess", prompt: "initial guess", kind: argComplex},
			)},
		},
	},
}
