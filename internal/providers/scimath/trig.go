package scimath

import (
	"math"
	"math/cmplx"

	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// TrigOps handles circular and hyperbolic functions and their inverses.
// Arguments are radians.
type TrigOps struct{}

func valueParam() []types.Parameter {
	return []types.Parameter{
		{Name: "x", Type: "complex", Description: "Angle or value", Required: true},
	}
}

func trigTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters:  valueParam(),
		Returns:     "complex",
	}
}

// GetTools returns trig and hyperbolic tool definitions.
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		trigTool("sci.sin", "Sine", "Sine of x"),
		trigTool("sci.cos", "Cosine", "Cosine of x"),
		trigTool("sci.tan", "Tangent", "Tangent of x"),
		trigTool("sci.sec", "Secant", "Secant of x (1/cos)"),
		trigTool("sci.csc", "Cosecant", "Cosecant of x (1/sin)"),
		trigTool("sci.cot", "Cotangent", "Cotangent of x (1/tan)"),
		trigTool("sci.asin", "Arcsine", "Inverse sine of x"),
		trigTool("sci.acos", "Arccosine", "Inverse cosine of x"),
		trigTool("sci.atan", "Arctangent", "Inverse tangent of x"),
		trigTool("sci.asec", "Arcsecant", "Inverse secant of x"),
		trigTool("sci.acsc", "Arccosecant", "Inverse cosecant of x"),
		trigTool("sci.acot", "Arccotangent", "Inverse cotangent of x"),
		{
			ID:          "sci.atan2",
			Name:        "Two-Argument Arctangent",
			Description: "Angle of the point (x, y) in radians (real arguments only)",
			Parameters: []types.Parameter{
				{Name: "y", Type: "number", Description: "Ordinate", Required: true},
				{Name: "x", Type: "number", Description: "Abscissa", Required: true},
			},
			Returns: "number",
		},
		trigTool("sci.sinh", "Hyperbolic Sine", "Hyperbolic sine of x"),
		trigTool("sci.cosh", "Hyperbolic Cosine", "Hyperbolic cosine of x"),
		trigTool("sci.tanh", "Hyperbolic Tangent", "Hyperbolic tangent of x"),
		trigTool("sci.sech", "Hyperbolic Secant", "Hyperbolic secant of x (1/cosh)"),
		trigTool("sci.csch", "Hyperbolic Cosecant", "Hyperbolic cosecant of x (1/sinh)"),
		trigTool("sci.coth", "Hyperbolic Cotangent", "Hyperbolic cotangent of x (1/tanh)"),
		trigTool("sci.asinh", "Inverse Hyperbolic Sine", "Inverse hyperbolic sine of x"),
		trigTool("sci.acosh", "Inverse Hyperbolic Cosine", "Inverse hyperbolic cosine of x"),
		trigTool("sci.atanh", "Inverse Hyperbolic Tangent", "Inverse hyperbolic tangent of x"),
		{
			ID:          "sci.radians",
			Name:        "Degrees to Radians",
			Description: "Convert degrees to radians",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "sci.degrees",
			Name:        "Radians to Degrees",
			Description: "Convert radians to degrees",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
	}
}

// apply is the shared body for the unary complex functions.
func (t *TrigOps) apply(params map[string]interface{}, f func(complex128) complex128) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	v := f(x)
	if cmplx.IsInf(v) || cmplx.IsNaN(v) {
		return common.Failure("result undefined at this point")
	}
	return common.Success(common.ComplexData(v))
}

// reciprocal builds sec/csc/cot from the underlying function.
func (t *TrigOps) reciprocal(params map[string]interface{}, f func(complex128) complex128) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	v := f(x)
	if v == 0 {
		return common.Failure("result undefined at this point")
	}
	return common.Success(common.ComplexData(1 / v))
}

// inverseReciprocal builds asec/acsc/acot as inverse(1/x).
func (t *TrigOps) inverseReciprocal(params map[string]interface{}, f func(complex128) complex128) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if x == 0 {
		return common.Failure("result undefined at this point")
	}
	return common.Success(common.ComplexData(f(1 / x)))
}

// Sin computes the sine.
func (t *TrigOps) Sin(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Sin)
}

// Cos computes the cosine.
func (t *TrigOps) Cos(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Cos)
}

// Tan computes the tangent.
func (t *TrigOps) Tan(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Tan)
}

// Sec computes the secant.
func (t *TrigOps) Sec(params map[string]interface{}) (*types.Result, error) {
	return t.reciprocal(params, cmplx.Cos)
}

// Csc computes the cosecant.
func (t *TrigOps) Csc(params map[string]interface{}) (*types.Result, error) {
	return t.reciprocal(params, cmplx.Sin)
}

// Cot computes the cotangent.
func (t *TrigOps) Cot(params map[string]interface{}) (*types.Result, error) {
	return t.reciprocal(params, cmplx.Tan)
}

// Asin computes the inverse sine.
func (t *TrigOps) Asin(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Asin)
}

// Acos computes the inverse cosine.
func (t *TrigOps) Acos(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Acos)
}

// Atan computes the inverse tangent.
func (t *TrigOps) Atan(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Atan)
}

// Asec computes the inverse secant.
func (t *TrigOps) Asec(params map[string]interface{}) (*types.Result, error) {
	return t.inverseReciprocal(params, cmplx.Acos)
}

// Acsc computes the inverse cosecant.
func (t *TrigOps) Acsc(params map[string]interface{}) (*types.Result, error) {
	return t.inverseReciprocal(params, cmplx.Asin)
}

// Acot computes the inverse cotangent.
func (t *TrigOps) Acot(params map[string]interface{}) (*types.Result, error) {
	return t.inverseReciprocal(params, cmplx.Atan)
}

// Atan2 computes the angle of (x, y).
func (t *TrigOps) Atan2(params map[string]interface{}) (*types.Result, error) {
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(map[string]interface{}{"result": math.Atan2(y, x)})
}

// Sinh computes the hyperbolic sine.
func (t *TrigOps) Sinh(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Sinh)
}

// Cosh computes the hyperbolic cosine.
func (t *TrigOps) Cosh(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Cosh)
}

// Tanh computes the hyperbolic tangent.
func (t *TrigOps) Tanh(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Tanh)
}

// Sech computes the hyperbolic secant.
func (t *TrigOps) Sech(params map[string]interface{}) (*types.Result, error) {
	return t.reciprocal(params, cmplx.Cosh)
}

// Csch computes the hyperbolic cosecant.
func (t *TrigOps) Csch(params map[string]interface{}) (*types.Result, error) {
	return t.reciprocal(params, cmplx.Sinh)
}

// Coth computes the hyperbolic cotangent.
func (t *TrigOps) Coth(params map[string]interface{}) (*types.Result, error) {
	return t.reciprocal(params, cmplx.Tanh)
}

// Asinh computes the inverse hyperbolic sine.
func (t *TrigOps) Asinh(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Asinh)
}

// Acosh computes the inverse hyperbolic cosine.
func (t *TrigOps) Acosh(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Acosh)
}

// Atanh computes the inverse hyperbolic tangent.
func (t *TrigOps) Atanh(params map[string]interface{}) (*types.Result, error) {
	return t.apply(params, cmplx.Atanh)
}

// DegreesToRadians converts degrees to radians.
func (t *TrigOps) DegreesToRadians(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(map[string]interface{}{"result": x * math.Pi / 180})
}

// RadiansToDegrees converts radians to degrees.
func (t *TrigOps) RadiansToDegrees(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(map[string]interface{}{"result": x * 180 / math.Pi})
}
