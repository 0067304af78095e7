package scimath

import (
	"math"
	"math/cmplx"

	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// LogOps handles logarithms over the complex plane. Only zero is outside
// the domain; negative reals produce a complex principal value.
type LogOps struct{}

func logTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "x", Type: "complex", Description: "Value", Required: true},
		},
		Returns: "complex",
	}
}

// GetTools returns logarithm tool definitions.
func (l *LogOps) GetTools() []types.Tool {
	return []types.Tool{
		logTool("sci.ln", "Natural Logarithm", "Principal natural logarithm of x"),
		logTool("sci.log10", "Base-10 Logarithm", "Base-10 logarithm of x"),
		logTool("sci.log2", "Base-2 Logarithm", "Base-2 logarithm of x"),
		logTool("sci.exp10", "Base-10 Exponential", "10 raised to x"),
		{
			ID:          "sci.logb",
			Name:        "Arbitrary-Base Logarithm",
			Description: "Logarithm of x in the given base",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Value", Required: true},
				{Name: "base", Type: "complex", Description: "Base", Required: true},
			},
			Returns: "complex",
		},
	}
}

func (l *LogOps) principal(params map[string]interface{}, divisor complex128) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if x == 0 {
		return common.Failure("logarithm of zero")
	}
	return common.Success(common.ComplexData(cmplx.Log(x) / divisor))
}

// Ln computes the principal natural logarithm.
func (l *LogOps) Ln(params map[string]interface{}) (*types.Result, error) {
	return l.principal(params, 1)
}

// Log10 computes the base-10 logarithm.
func (l *LogOps) Log10(params map[string]interface{}) (*types.Result, error) {
	return l.principal(params, complex(math.Ln10, 0))
}

// Log2 computes the base-2 logarithm.
func (l *LogOps) Log2(params map[string]interface{}) (*types.Result, error) {
	return l.principal(params, complex(math.Ln2, 0))
}

// Exp10 computes 10 raised to x.
func (l *LogOps) Exp10(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	v := cmplx.Pow(10, x)
	if cmplx.IsInf(v) {
		return common.Failure("result overflows")
	}
	return common.Success(common.ComplexData(v))
}

// LogBase computes the logarithm of x in an arbitrary base.
func (l *LogOps) LogBase(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	base, ok := common.GetComplex(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	if x == 0 || base == 0 {
		return common.Failure("logarithm of zero")
	}
	den := cmplx.Log(base)
	if den == 0 {
		return common.Failure("logarithm base one")
	}
	return common.Success(common.ComplexData(cmplx.Log(x) / den))
}
