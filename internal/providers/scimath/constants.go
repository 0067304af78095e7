package scimath

import (
	"math"

	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// ConstantsOps serves the named mathematical constants.
type ConstantsOps struct{}

func constantTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters:  []types.Parameter{},
		Returns:     "number",
	}
}

// GetTools returns constant tool definitions.
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		constantTool("sci.pi", "Pi", "The circle constant pi"),
		constantTool("sci.e", "E", "Euler's number"),
		constantTool("sci.tau", "Tau", "2*pi"),
		constantTool("sci.phi", "Phi", "The golden ratio"),
	}
}

// Pi returns pi.
func (c *ConstantsOps) Pi(params map[string]interface{}) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": math.Pi})
}

// E returns Euler's number.
func (c *ConstantsOps) E(params map[string]interface{}) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": math.E})
}

// Tau returns 2*pi.
func (c *ConstantsOps) Tau(params map[string]interface{}) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": 2 * math.Pi})
}

// Phi returns the golden ratio.
func (c *ConstantsOps) Phi(params map[string]interface{}) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": math.Phi})
}
