package scimath

import (
	"math"
	"math/cmplx"

	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// ArithmeticOps handles the basic binary operations over complex operands.
type ArithmeticOps struct{}

func operandParams() []types.Parameter {
	return []types.Parameter{
		{Name: "a", Type: "complex", Description: "First operand", Required: true},
		{Name: "b", Type: "complex", Description: "Second operand", Required: true},
	}
}

// GetTools returns arithmetic tool definitions.
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "sci.add",
			Name:        "Add",
			Description: "Add two values",
			Parameters:  operandParams(),
			Returns:     "complex",
		},
		{
			ID:          "sci.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters:  operandParams(),
			Returns:     "complex",
		},
		{
			ID:          "sci.multiply",
			Name:        "Multiply",
			Description: "Multiply two values",
			Parameters:  operandParams(),
			Returns:     "complex",
		},
		{
			ID:          "sci.divide",
			Name:        "Divide",
			Description: "Divide a by b",
			Parameters:  operandParams(),
			Returns:     "complex",
		},
		{
			ID:          "sci.floordiv",
			Name:        "Floor Divide",
			Description: "Integer quotient of a divided by b (real operands only)",
			Parameters:  operandParams(),
			Returns:     "number",
		},
		{
			ID:          "sci.mod",
			Name:        "Modulo",
			Description: "Remainder of a divided by b (real operands only)",
			Parameters:  operandParams(),
			Returns:     "number",
		},
		{
			ID:          "sci.abs",
			Name:        "Absolute Value",
			Description: "Modulus of a value",
			Parameters: []types.Parameter{
				{Name: "x", Type: "complex", Description: "Value", Required: true},
			},
			Returns: "number",
		},
	}
}

func getOperands(params map[string]interface{}) (complex128, complex128, *types.Result) {
	a, ok := common.GetComplex(params, "a")
	if !ok {
		res, _ := common.Failure("a parameter required")
		return 0, 0, res
	}
	b, ok := common.GetComplex(params, "b")
	if !ok {
		res, _ := common.Failure("b parameter required")
		return 0, 0, res
	}
	return a, b, nil
}

// getRealOperands extracts a and b and rejects complex input.
func getRealOperands(params map[string]interface{}) (float64, float64, *types.Result) {
	a, b, fail := getOperands(params)
	if fail != nil {
		return 0, 0, fail
	}
	if imag(a) != 0 || imag(b) != 0 {
		res, _ := common.Failure("operation not defined for complex operands")
		return 0, 0, res
	}
	return real(a), real(b), nil
}

// Add adds two values.
func (a *ArithmeticOps) Add(params map[string]interface{}) (*types.Result, error) {
	x, y, fail := getOperands(params)
	if fail != nil {
		return fail, nil
	}
	return common.Success(common.ComplexData(x + y))
}

// Subtract subtracts b from a.
func (a *ArithmeticOps) Subtract(params map[string]interface{}) (*types.Result, error) {
	x, y, fail := getOperands(params)
	if fail != nil {
		return fail, nil
	}
	return common.Success(common.ComplexData(x - y))
}

// Multiply multiplies two values.
func (a *ArithmeticOps) Multiply(params map[string]interface{}) (*types.Result, error) {
	x, y, fail := getOperands(params)
	if fail != nil {
		return fail, nil
	}
	return common.Success(common.ComplexData(x * y))
}

// Divide divides a by b.
func (a *ArithmeticOps) Divide(params map[string]interface{}) (*types.Result, error) {
	x, y, fail := getOperands(params)
	if fail != nil {
		return fail, nil
	}
	if y == 0 {
		return common.Failure("division by zero")
	}
	return common.Success(common.ComplexData(x / y))
}

// FloorDiv computes the integer quotient of two real values.
func (a *ArithmeticOps) FloorDiv(params map[string]interface{}) (*types.Result, error) {
	x, y, fail := getRealOperands(params)
	if fail != nil {
		return fail, nil
	}
	if y == 0 {
		return common.Failure("division by zero")
	}
	return common.Success(map[string]interface{}{"result": math.Floor(x / y)})
}

// Mod computes the remainder of two real values with the sign of the
// divisor, matching floored division.
func (a *ArithmeticOps) Mod(params map[string]interface{}) (*types.Result, error) {
	x, y, fail := getRealOperands(params)
	if fail != nil {
		return fail, nil
	}
	if y == 0 {
		return common.Failure("division by zero")
	}
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return common.Success(map[string]interface{}{"result": r})
}

// Abs computes the modulus.
func (a *ArithmeticOps) Abs(params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetComplex(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(map[string]interface{}{"result": cmplx.Abs(x)})
}
