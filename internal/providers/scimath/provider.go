// Package scimath is the scientific-calculator surface: direct function
// application over complex operands, parsed from "a+bi" literals. Tools
// that only make sense over the reals (floordiv, mod, factorial, atan2)
// reject complex input instead of guessing.
package scimath

import (
	"context"

	"github.com/grignard-labs/calcd/internal/providers/common"
	"github.com/grignard-labs/calcd/internal/types"
)

// Provider implements the scientific function surface as modular op groups.
type Provider struct {
	arithmetic *ArithmeticOps
	powers     *PowerOps
	trig       *TrigOps
	logs       *LogOps
	special    *SpecialOps
	constants  *ConstantsOps
}

// NewProvider creates a modular scientific provider.
func NewProvider() *Provider {
	return &Provider{
		arithmetic: &ArithmeticOps{},
		powers:     &PowerOps{},
		trig:       &TrigOps{},
		logs:       &LogOps{},
		special:    &SpecialOps{},
		constants:  &ConstantsOps{},
	}
}

// Definition returns service metadata with all module tools.
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.powers.GetTools()...)
	tools = append(tools, p.trig.GetTools()...)
	tools = append(tools, p.logs.GetTools()...)
	tools = append(tools, p.special.GetTools()...)
	tools = append(tools, p.constants.GetTools()...)

	return types.Service{
		ID:          "sci",
		Name:        "Scientific Functions",
		Description: "Complex-aware scientific calculator (arithmetic, powers, trigonometry, logarithms, special functions)",
		Category:    types.CategoryScientific,
		Capabilities: []string{
			"arithmetic",
			"powers",
			"trigonometry",
			"hyperbolic",
			"logarithms",
			"special",
			"constants",
		},
		Tools: tools,
	}
}

// Execute routes to the owning op group.
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	// Arithmetic
	case "sci.add":
		return p.arithmetic.Add(params)
	case "sci.subtract":
		return p.arithmetic.Subtract(params)
	case "sci.multiply":
		return p.arithmetic.Multiply(params)
	case "sci.divide":
		return p.arithmetic.Divide(params)
	case "sci.floordiv":
		return p.arithmetic.FloorDiv(params)
	case "sci.mod":
		return p.arithmetic.Mod(params)
	case "sci.abs":
		return p.arithmetic.Abs(params)

	// Powers and roots
	case "sci.power":
		return p.powers.Power(params)
	case "sci.sqrt":
		return p.powers.Sqrt(params)
	case "sci.nthroot":
		return p.powers.NthRoot(params)
	case "sci.exp":
		return p.powers.Exp(params)

	// Trigonometry
	case "sci.sin":
		return p.trig.Sin(params)
	case "sci.cos":
		return p.trig.Cos(params)
	case "sci.tan":
		return p.trig.Tan(params)
	case "sci.sec":
		return p.trig.Sec(params)
	case "sci.csc":
		return p.trig.Csc(params)
	case "sci.cot":
		return p.trig.Cot(params)
	case "sci.asin":
		return p.trig.Asin(params)
	case "sci.acos":
		return p.trig.Acos(params)
	case "sci.atan":
		return p.trig.Atan(params)
	case "sci.asec":
		return p.trig.Asec(params)
	case "sci.acsc":
		return p.trig.Acsc(params)
	case "sci.acot":
		return p.trig.Acot(params)
	case "sci.atan2":
		return p.trig.Atan2(params)
	case "sci.sinh":
		return p.trig.Sinh(params)
	case "sci.cosh":
		return p.trig.Cosh(params)
	case "sci.tanh":
		return p.trig.Tanh(params)
	case "sci.sech":
		return p.trig.Sech(params)
	case "sci.csch":
		return p.trig.Csch(params)
	case "sci.coth":
		return p.trig.Coth(params)
	case "sci.asinh":
		return p.trig.Asinh(params)
	case "sci.acosh":
		return p.trig.Acosh(params)
	case "sci.atanh":
		return p.trig.Atanh(params)
	case "sci.radians":
		return p.trig.DegreesToRadians(params)
	case "sci.degrees":
		return p.trig.RadiansToDegrees(params)

	// Logarithms
	case "sci.ln":
		return p.logs.Ln(params)
	case "sci.log10":
		return p.logs.Log10(params)
	case "sci.log2":
		return p.logs.Log2(params)
	case "sci.exp10":
		return p.logs.Exp10(params)
	case "sci.logb":
		return p.logs.LogBase(params)

	// Special functions
	case "sci.factorial":
		return p.special.Factorial(params)
	case "sci.gamma":
		return p.special.Gamma(params)
	case "sci.beta":
		return p.special.Beta(params)
	case "sci.digamma":
		return p.special.Digamma(params)
	case "sci.zeta":
		return p.special.Zeta(params)
	case "sci.erf":
		return p.special.Erf(params)
	case "sci.erfc":
		return p.special.Erfc(params)
	case "sci.conjugate":
		return p.special.Conjugate(params)
	case "sci.phase":
		return p.special.Phase(params)
	case "sci.polar":
		return p.special.Polar(params)
	case "sci.rect":
		return p.special.Rect(params)

	// Constants
	case "sci.pi":
		return p.constants.Pi(params)
	case "sci.e":
		return p.constants.E(params)
	case "sci.tau":
		return p.constants.Tau(params)
	case "sci.phi":
		return p.constants.Phi(params)

	default:
		return common.Failuref("unknown tool: %s", toolID)
	}
}
