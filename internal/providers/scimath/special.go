package scimath

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mathext"

	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// SpecialOps handles factorial, the gamma family, error functions, and the
// complex structure helpers (conjugate, phase, polar, rect).
type SpecialOps struct{}

func realTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "x", Type: "number", Description: "Value", Required: true},
		},
		Returns: "number",
	}
}

// GetTools returns special-function tool definitions.
func (s *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		realTool("sci.factorial", "Factorial", "Factorial of a non-negative integer"),
		realTool("sci.gamma", "Gamma", "Gamma function of x"),
		{
			ID:          "sci.beta",
			Name:        "Beta",
			Description: "Beta function B(a, b) for positive a and b",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First argument", Required: true},
				{Name: "b", Type: "number", Description: "Second argument", Required: true},
			},
			Returns: "number",
		},
		realTool("sci.digamma", "Digamma", "Logarithmic derivative of the gamma function"),
		{
			ID:          "sci.zeta",
			Name:        "Hurwitz Zeta",
			Description: "Hurwitz zeta function zeta(s, q) for s > 1",
			Parameters: []types.Parameter{
				{Name: "s", Type: "number", Description: "Exponent, must exceed 1", Required: true},
				{Name: "q", Type: "number", Description: "Offset (1 gives the Riemann zeta)", Required: false},
			},
			Returns: "number",
		},
		realTool("sci.erf", "Error Function", "Gauss error function of x"),
		realTool("sci.erfc", "Complementary Error Function", "1 - erf(x)"),
		{
			ID:          "sci.conjugate",
			Name:        "Conjugate",
			Description: "Complex conjugate of x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Value", Required: true},
			},
			Returns: "complex",
		},
		{
			ID:          "sci.phase",
			Name:        "Phase",
			Description: "Argument of x in radians, in (-pi, pi]",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "sci.polar",
			Name:        "To Polar",
			Description: "Modulus and argument of x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Value", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "sci.rect",
			Name:        "From Polar",
			Description: "Complex value with the given modulus and argument",
			Parameters: []types.Parameter{
				{Name: "r", Type: "number", Description: "Modulus", Required: true},
				{Name: "theta", Type: "number", Description: "Argument in radians", Required: true},
			},
			Returns: "complex",
		},
	}
}

func getReal(params map[string]interface{}, key string) (float64, *types.Result) {
	x, ok := common.GetNumber(params, key)
	if !ok {
		res, _ := common.Failuref("%s parameter required", key)
		return 0, res
	}
	return x, nil
}

// Factorial computes n! for non-negative integer n.
func (s *SpecialOps) Factorial(params map[string]interface{}) (*types.Result, error) {
	x, fail := getReal(params, "x")
	if fail != nil {
		return fail, nil
	}
	if x < 0 || x != math.Trunc(x) {
		return common.Failure("factorial requires a non-negative integer")
	}
	v := math.Gamma(x + 1)
	if math.IsInf(v, 0) {
		return common.Failure("factorial overflows")
	}
	return common.Success(map[string]interface{}{"result": v})
}

// Gamma computes the gamma function.
func (s *SpecialOps) Gamma(params map[string]interface{}) (*types.Result, error) {
	x, fail := getReal(params, "x")
	if fail != nil {
		return fail, nil
	}
	v := math.Gamma(x)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return common.Failure("gamma undefined at this point")
	}
	return common.Success(map[string]interface{}{"result": v})
}

// Beta computes the beta function.
func (s *SpecialOps) Beta(params map[string]interface{}) (*types.Result, error) {
	a, fail := getReal(params, "a")
	if fail != nil {
		return fail, nil
	}
	b, fail := getReal(params, "b")
	if fail != nil {
		return fail, nil
	}
	if a <= 0 || b <= 0 {
		return common.Failure("beta requires positive arguments")
	}
	return common.Success(map[string]interface{}{"result": mathext.Beta(a, b)})
}

// Digamma computes the logarithmic derivative of gamma.
func (s *SpecialOps) Digamma(params map[string]interface{}) (*types.Result, error) {
	x, fail := getReal(params, "x")
	if fail != nil {
		return fail, nil
	}
	if x <= 0 && x == math.Trunc(x) {
		return common.Failure("digamma has poles at non-positive integers")
	}
	return common.Success(map[string]interface{}{"result": mathext.Digamma(x)})
}

// Zeta computes the Hurwitz zeta function; q defaults to 1, which gives
// the Riemann zeta.
func (s *SpecialOps) Zeta(params map[string]interface{}) (*types.Result, error) {
	sv, fail := getReal(params, "s")
	if fail != nil {
		return fail, nil
	}
	q, ok := common.GetNumber(params, "q")
	if !ok {
		q = 1
	}
	if sv <= 1 {
		return common.Failure("zeta requires s > 1")
	}
	if q <= 0 {
		return common.Failure("zeta requires q > 0")
	}
	return common.Success(map[string]interface{}{"result": mathext.Zeta(sv, q)})
}

// Erf computes the Gauss error function.
func (s *SpecialOps) Erf(params map[string]interface{}) (*types.Result, error) {
	x, fail := getReal(params, "x")
	if fail != nil {
		return fail, nil
	}
	return common.Success(map[string]interface{}{"result": math.Erf(x)})
}

// Erfc computes the complementary error function.
func (s *SpecialOps) Erfc(params map[string]interface{}) (*types.Result, error) {
	x, fail := getReal(params, "x")
	if fail != nil {
		return fail, nil
	}
	return common.Success(map[string]interface{}{"result": math.Erfc(x)})
}

// Conjugate computes the complex conjugate.
func (s *SpecialOps) Conjugate(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(common.ComplexData(cmplx.Conj(x)))
}

// Phase computes the argument.
func (s *SpecialOps) Phase(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(map[string]interface{}{"result": cmplx.Phase(x)})
}

// Polar decomposes x into modulus and argument.
func (s *SpecialOps) Polar(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	r, theta := cmplx.Polar(x)
	return common.Success(map[string]interface{}{"r": r, "theta": theta})
}

// Rect builds a complex value from modulus and argument.
func (s *SpecialOps) Rect(params map[string]interface{}) (*types.Result, error) {
	r, fail := getReal(params, "r")
	if fail != nil {
		return fail, nil
	}
	theta, fail := getReal(params, "theta")
	if fail != nil {
		return fail, nil
	}
	return common.Success(common.ComplexData(cmplx.Rect(r, theta)))
}
