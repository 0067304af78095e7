// Command calc is the terminal front end: an interactive menu calculator
// plus one-shot subcommands for scripting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grignard-labs/calcd/internal/calculus"
	"github.com/grignard-labs/calcd/internal/config"
	calcprovider "github.com/grignard-labs/calcd/internal/providers/calculus"
	"github.com/grignard-labs/calcd/internal/providers/scimath"
	"github.com/grignard-labs/calcd/internal/repl"
	"github.com/grignard-labs/calcd/internal/service"
	"github.com/grignard-labs/calcd/internal/shared/num"
)

func newRegistry() (*service.Registry, error) {
	cfg := config.LoadOrDefault()
	engine := calculus.New(calculus.Params{
		Tol:      cfg.Engine.Tolerance,
		Step:     cfg.Engine.Step,
		MaxIter:  cfg.Engine.MaxIterations,
		MaxDepth: cfg.Engine.MaxDepth,
	}, nil)

	registry := service.NewRegistry()
	if err := registry.Register(calcprovider.NewProvider(engine)); err != nil {
		return nil, err
	}
	if err := registry.Register(scimath.NewProvider()); err != nil {
		return nil, err
	}
	return registry, nil
}

// runTool executes one tool and prints its result line, exiting nonzero on
// failure so scripts can branch on it.
func runTool(cmd *cobra.Command, toolID string, params map[string]interface{}) error {
	registry, err := newRegistry()
	if err != nil {
		return err
	}

	result, err := registry.Execute(cmd.Context(), toolID, params)
	if err != nil {
		return err
	}
	if !result.Success {
		if result.Error != nil {
			return fmt.Errorf("%s", *result.Error)
		}
		return fmt.Errorf("operation failed")
	}

	if s, ok := result.Data["result"].(string); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	} else if x, ok := result.Data["result"].(float64); ok {
		fmt.Fprintln(cmd.OutOrStdout(), num.Format(complex(x, 0)))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result.Data)
	}
	if status, ok := result.Data["status"].(string); ok && status != "exact" {
		fmt.Fprintln(cmd.ErrOrStderr(), "accuracy:", status)
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Complex-aware scientific calculator",
		Long:  "Interactive scientific calculator with numerical calculus: differentiation, integration, contour integrals, and root finding over user expressions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := newRegistry()
			if err != nil {
				return err
			}
			return repl.New(registry, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	evalCmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression at a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, _ := cmd.Flags().GetString("variable")
			at, _ := cmd.Flags().GetString("at")
			return runTool(cmd, "calc.evaluate", map[string]interface{}{
				"expression": args[0],
				"variable":   variable,
				"value":      at,
			})
		},
	}
	evalCmd.Flags().String("variable", "", "free variable name (default x)")
	evalCmd.Flags().String("at", "0", "point to evaluate at")

	diffCmd := &cobra.Command{
		Use:   "diff <expression>",
		Short: "Differentiate an expression at a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, _ := cmd.Flags().GetString("variable")
			at, _ := cmd.Flags().GetString("at")
			return runTool(cmd, "calc.differentiate", map[string]interface{}{
				"expression": args[0],
				"variable":   variable,
				"point":      at,
			})
		},
	}
	diffCmd.Flags().String("variable", "", "free variable name (default x)")
	diffCmd.Flags().String("at", "0", "point to differentiate at")

	integrateCmd := &cobra.Command{
		Use:   "integrate <expression>",
		Short: "Definite integral over [low, high]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, _ := cmd.Flags().GetString("variable")
			low, _ := cmd.Flags().GetFloat64("low")
			high, _ := cmd.Flags().GetFloat64("high")
			return runTool(cmd, "calc.integrate", map[string]interface{}{
				"expression": args[0],
				"variable":   variable,
				"low":        low,
				"high":       high,
			})
		},
	}
	integrateCmd.Flags().String("variable", "", "free variable name (default x)")
	integrateCmd.Flags().Float64("low", 0, "lower limit")
	integrateCmd.Flags().Float64("high", 1, "upper limit")

	rootFindCmd := &cobra.Command{
		Use:   "root <expression>",
		Short: "Newton-Raphson root search from a guess",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, _ := cmd.Flags().GetString("variable")
			guess, _ := cmd.Flags().GetString("guess")
			return runTool(cmd, "calc.root", map[string]interface{}{
				"expression": args[0],
				"variable":   variable,
				"guess":      guess,
			})
		},
	}
	rootFindCmd.Flags().String("variable", "", "free variable name (default x)")
	rootFindCmd.Flags().String("guess", "1", "initial guess")

	rootCmd.AddCommand(evalCmd, diffCmd, integrateCmd, rootFindCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
