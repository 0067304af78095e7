package scimath

import (
	"math/cmplx"

	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// PowerOps handles exponentiation and roots. Roots of negative reals come
// back complex instead of failing.
type PowerOps struct{}

// GetTools returns power and root tool definitions.
func (p *PowerOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "sci.power",
			Name:        "Power",
			Description: "Raise base to exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "complex", Description: "Base", Required: true},
				{Name: "exponent", Type: "complex", Description: "Exponent", Required: true},
			},
			Returns: "complex",
		},
		{
			ID:          "sci.sqrt",
			Name:        "Square Root",
			Description: "Principal square root",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Value", Required: true},
			},
			Returns: "complex",
		},
		{
			ID:          "sci.nthroot",
			Name:        "Nth Root",
			Description: "Principal nth root of x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Value", Required: true},
				{Name: "n", Type: "complex", Description: "Root degree", Required: true},
			},
			Returns: "complex",
		},
		{
			ID:          "sci.exp",
			Name:        "Exponential",
			Description: "e raised to x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Exponent", Required: true},
			},
			Returns: "complex",
		},
	}
}

// Power raises base to exponent.
func (p *PowerOps) Power(params map[string]interface{}) (*types.Result, error) {
	base, ok := common.GetComplex(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	exponent, ok := common.GetComplex(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}
	return common.Success(common.ComplexData(cmplx.Pow(base, exponent)))
}

// Sqrt computes the principal square root.
func (p *PowerOps) Sqrt(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(common.ComplexData(cmplx.Sqrt(x)))
}

// NthRoot computes the principal nth root.
func (p *PowerOps) NthRoot(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	n, ok := common.GetComplex(params, "n")
	if !ok {
		return common.Failure("n parameter required")
	}
	if n == 0 {
		return common.Failure("zeroth root undefined")
	}
	return common.Success(common.ComplexData(cmplx.Pow(x, 1/n)))
}

// Exp computes e raised to x.
func (p *PowerOps) Exp(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(common.ComplexData(cmplx.Exp(x)))
}
