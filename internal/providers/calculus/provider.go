// Package calculus exposes the numerical engine as a service provider:
// point evaluation, differentiation, definite integration, contour
// integration, and root finding over compiled expressions.
package calculus

import (
	"context"

	"github.com/grignard-labs/calcd/internal/calculus"
	"github.com/grignard-labs/calcd/internal/expr"
	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// Provider wires expression compilation to the engine's five operations.
type Provider struct {
	engine *calculus.Engine
}

// NewProvider creates the calculus provider around an engine.
func NewProvider(engine *calculus.Engine) *Provider {
	return &Provider{engine: engine}
}

// Definition returns service metadata for every calculus tool.
func (p *Provider) Definition() types.Service {
	exprParams := []types.Parameter{
		{Name: "expression", Type: "string", Description: "Formula in one free variable", Required: true},
		{Name: "variable", Type: "string", Description: "Variable name (default x)", Required: false},
	}

	return types.Service{
		ID:          "calc",
		Name:        "Numerical Calculus",
		Description: "Evaluation, differentiation, integration, contour integration, and root finding for user expressions",
		Category:    types.CategoryCalculus,
		Capabilities: []string{
			"evaluation",
			"differentiation",
			"quadrature",
			"contour_integration",
			"root_finding",
		},
		Tools: []types.Tool{
			{
				ID:          "calc.evaluate",
				Name:        "Evaluate",
				Description: "Evaluate an expression at a point",
				Parameters: append(exprParams[:2:2], types.Parameter{
					Name: "value", Type: "complex", Description: "Point to evaluate at", Required: true,
				}),
				Returns: "complex",
			},
			{
				ID:          "calc.differentiate",
				Name:        "Differentiate",
				Description: "Numerical derivative at a point (complex-step for real points, diagonal central difference for complex)",
				Parameters: append(exprParams[:2:2],
					types.Parameter{Name: "point", Type: "complex", Description: "Point to differentiate at", Required: true},
					types.Parameter{Name: "mode", Type: "string", Description: "real or complex (default inferred from the point)", Required: false},
				),
				Returns: "complex",
			},
			{
				ID:          "calc.integrate",
				Name:        "Integrate",
				Description: "Adaptive Gauss-Kronrod definite integral over [low, high]",
				Parameters: append(exprParams[:2:2],
					types.Parameter{Name: "low", Type: "number", Description: "Lower limit", Required: true},
					types.Parameter{Name: "high", Type: "number", Description: "Upper limit", Required: true},
				),
				Returns: "complex",
			},
			{
				ID:          "calc.contour",
				Name:        "Contour Integrate",
				Description: "Integral of an expression along a parametrized curve",
				Parameters: []types.Parameter{
					{Name: "expression", Type: "string", Description: "Integrand in one free variable", Required: true},
					{Name: "variable", Type: "string", Description: "Integrand variable (default z)", Required: false},
					{Name: "curve", Type: "string", Description: "Curve expression in the parameter variable", Required: true},
					{Name: "parameter", Type: "string", Description: "Curve parameter name (default t)", Required: false},
					{Name: "low", Type: "number", Description: "Parameter lower limit", Required: true},
					{Name: "high", Type: "number", Description: "Parameter upper limit", Required: true},
					{Name: "steps", Type: "number", Description: "Sub-interval count (default 1000)", Required: false},
				},
				Returns: "complex",
			},
			{
				ID:          "calc.root",
				Name:        "Find Root",
				Description: "Newton-Raphson root search from an initial guess",
				Parameters: append(exprParams[:2:2], types.Parameter{
					Name: "guess", Type: "complex", Description: "Initial guess", Required: true,
				}),
				Returns: "complex",
			},
		},
	}
}

// Execute routes a calc.* tool ID.
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "calc.evaluate":
		return p.evaluate(params)
	case "calc.differentiate":
		return p.differentiate(params)
	case "calc.integrate":
		return p.integrate(params)
	case "calc.contour":
		return p.contour(params)
	case "calc.root":
		return p.root(params)
	default:
		return common.Failuref("unknown tool: %s", toolID)
	}
}

// compileParam compiles the expression named by exprKey/varKey with a
// fallback variable name.
func compileParam(params map[string]interface{}, exprKey, varKey, defaultVar string) (*expr.Compiled, *types.Result) {
	source, ok := common.GetString(params, exprKey)
	if !ok || source == "" {
		res, _ := common.Failuref("%s parameter required", exprKey)
		return nil, res
	}
	variable, _ := common.GetString(params, varKey)
	if variable == "" {
		variable = defaultVar
	}
	compiled, err := expr.Compile(source, variable)
	if err != nil {
		res, _ := common.Failure(err.Error())
		return nil, res
	}
	return compiled, nil
}

func (p *Provider) evaluate(params map[string]interface{}) (*types.Result, error) {
	compiled, fail := compileParam(params, "expression", "variable", "x")
	if fail != nil {
		return fail, nil
	}
	value, ok := common.GetComplex(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}

	result, err := compiled.Eval(value)
	if err != nil {
		return common.Failuref("evaluation failed: %v", err)
	}
	return common.Success(common.ComplexData(result))
}

func (p *Provider) differentiate(params map[string]interface{}) (*types.Result, error) {
	compiled, fail := compileParam(params, "expression", "variable", "x")
	if fail != nil {
		return fail, nil
	}
	point, ok := common.GetComplex(params, "point")
	if !ok {
		return common.Failure("point parameter required")
	}

	mode, _ := common.GetString(params, "mode")
	if mode == "" {
		if imag(point) == 0 {
			mode = "real"
		} else {
			mode = "complex"
		}
	}

	f := compiled.Eval
	switch mode {
	case "real":
		derivative, status := p.engine.RealDiff(f, real(point))
		data := common.ComplexData(complex(derivative, 0))
		data["status"] = status.String()
		data["mode"] = mode
		return common.Success(data)
	case "complex":
		derivative, status := p.engine.ComplexDiff(f, point)
		data := common.ComplexData(derivative)
		data["status"] = status.String()
		data["mode"] = mode
		return common.Success(data)
	default:
		return common.Failuref("mode must be real or complex, got %q", mode)
	}
}

func (p *Provider) integrate(params map[string]interface{}) (*types.Result, error) {
	compiled, fail := compileParam(params, "expression", "variable", "x")
	if fail != nil {
		return fail, nil
	}
	low, ok := common.GetNumber(params, "low")
	if !ok {
		return common.Failure("low parameter required")
	}
	high, ok := common.GetNumber(params, "high")
	if !ok {
		return common.Failure("high parameter required")
	}

	value, status := p.engine.Integrate(compiled.Eval, low, high)
	data := common.ComplexData(value)
	data["status"] = status.String()
	return common.Success(data)
}

func (p *Provider) contour(params map[string]interface{}) (*types.Result, error) {
	integrand, fail := compileParam(params, "expression", "variable", "z")
	if fail != nil {
		return fail, nil
	}
	curve, fail := compileParam(params, "curve", "parameter", "t")
	if fail != nil {
		return fail, nil
	}
	low, ok := common.GetNumber(params, "low")
	if !ok {
		return common.Failure("low parameter required")
	}
	high, ok := common.GetNumber(params, "high")
	if !ok {
		return common.Failure("high parameter required")
	}
	steps, ok := common.GetInt(params, "steps")
	if !ok {
		steps = 1000
	}

	value, status, err := p.engine.ContourIntegrate(integrand.Eval, curve.Eval, low, high, steps)
	if err != nil {
		return common.Failure(err.Error())
	}
	data := common.ComplexData(value)
	data["status"] = status.String()
	return common.Success(data)
}

func (p *Provider) root(params map[string]interface{}) (*types.Result, error) {
	compiled, fail := compileParam(params, "expression", "variable", "x")
	if fail != nil {
		return fail, nil
	}
	guess, ok := common.GetComplex(params, "guess")
	if !ok {
		return common.Failure("guess parameter required")
	}

	root, status, err := p.engine.FindRoot(compiled.Eval, guess)
	if err != nil {
		return common.Failuref("root finding failed: %v", err)
	}
	data := common.ComplexData(root)
	data["status"] = status.String()
	return common.Success(data)
}
