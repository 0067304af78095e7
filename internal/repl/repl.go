// Package repl implements the interactive terminal calculator. It drives
// the same provider registry as the HTTP surface, so every tool behaves
// identically in both front ends.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grignard-labs/calcd/internal/service"
	"github.com/grignard-labs/calcd/internal/shared/num"
)

// Mode restricts what input literals are accepted.
type Mode int

const (
	// ModeComplex accepts full complex literals.
	ModeComplex Mode = iota
	// ModeReal rejects values with an imaginary part.
	ModeReal
)

// Repl is one interactive session.
type Repl struct {
	registry *service.Registry
	in       *bufio.Scanner
	out      io.Writer
	mode     Mode
}

// New creates a session reading from in and printing to out.
func New(registry *service.Registry, in io.Reader, out io.Writer) *Repl {
	return &Repl{
		registry: registry,
		in:       bufio.NewScanner(in),
		out:      out,
		mode:     ModeComplex,
	}
}

// Run loops on the main menu until the user quits or input ends.
func (r *Repl) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, styles.Banner.Render("calcd interactive calculator"))
	r.printMainMenu()

	for {
		choice, ok := r.readLine("> ")
		if !ok {
			return nil
		}

		switch strings.ToLower(choice) {
		case "q", "quit", "exit":
			fmt.Fprintln(r.out, styles.Muted.Render("bye"))
			return nil
		case "m", "mode":
			r.toggleMode()
		case "h", "help", "?":
			r.printHelp()
		case "":
			r.printMainMenu()
		default:
			cat, found := findCategory(choice)
			if !found {
				fmt.Fprintln(r.out, styles.Error.Render("unknown choice, press h for help"))
				continue
			}
			r.runCategory(ctx, cat)
		}
	}
}

func findCategory(key string) (category, bool) {
	for _, cat := range categories {
		if cat.key == key {
			return cat, true
		}
	}
	return category{}, false
}

func (r *Repl) printMainMenu() {
	fmt.Fprintln(r.out, styles.Title.Render("Main menu"))
	for _, cat := range categories {
		fmt.Fprintln(r.out, styles.Item.Render(cat.key+") "+cat.title))
	}
	fmt.Fprintln(r.out, styles.Item.Render("m) Toggle real/complex mode"))
	fmt.Fprintln(r.out, styles.Item.Render("h) Help"))
	fmt.Fprintln(r.out, styles.Item.Render("q) Quit"))
}

func (r *Repl) printHelp() {
	fmt.Fprintln(r.out, styles.Title.Render("Help"))
	fmt.Fprintln(r.out, styles.Item.Render("Pick a category by number, then an operation."))
	fmt.Fprintln(r.out, styles.Item.Render("Values accept complex literals: 3, -2.5, 3+4i, 2j, pi, e."))
	fmt.Fprintln(r.out, styles.Item.Render("Expressions use one free variable: 2x^2 + sin(x)."))
	fmt.Fprintln(r.out, styles.Item.Render("Real mode rejects any value with an imaginary part."))
	fmt.Fprintln(r.out, styles.Item.Render("Press Enter on an empty line to reshow the menu."))
}

func (r *Repl) toggleMode() {
	if r.mode == ModeComplex {
		r.mode = ModeReal
		fmt.Fprintln(r.out, styles.Warn.Render("real mode: complex input disabled"))
	} else {
		r.mode = ModeComplex
		fmt.Fprintln(r.out, styles.Warn.Render("complex mode: full complex input enabled"))
	}
}

// runCategory shows one category menu and executes a single choice.
func (r *Repl) runCategory(ctx context.Context, cat category) {
	fmt.Fprintln(r.out, styles.Title.Render(cat.title))
	for i, it := range cat.items {
		fmt.Fprintln(r.out, styles.Item.Render(fmt.Sprintf("%d) %s", i+1, it.label)))
	}
	fmt.Fprintln(r.out, styles.Item.Render("b) Back"))

	choice, ok := r.readLine("> ")
	if !ok || strings.EqualFold(choice, "b") {
		return
	}
	index, err := strconv.Atoi(choice)
	if err != nil || index < 1 || index > len(cat.items) {
		fmt.Fprintln(r.out, styles.Error.Render("unknown operation"))
		return
	}

	it := cat.items[index-1]
	params, ok := r.promptArgs(it.args)
	if !ok {
		return
	}

	r.invoke(ctx, it.tool, params)
}

// promptArgs collects every argument, reprompting on parse errors. A false
// return means input ended.
func (r *Repl) promptArgs(args []arg) (map[string]interface{}, bool) {
	params := make(map[string]interface{})
	for _, a := range args {
		for {
			line, ok := r.readLine(a.prompt + ": ")
			if !ok {
				return nil, false
			}
			line = strings.TrimSpace(line)
			if line == "" {
				if a.optional {
					break
				}
				fmt.Fprintln(r.out, styles.Error.Render("value required"))
				continue
			}

			value, err := r.parseArg(a, line)
			if err != nil {
				fmt.Fprintln(r.out, styles.Error.Render(err.Error()))
				continue
			}
			params[a.name] = value
			break
		}
	}
	return params, true
}

func (r *Repl) parseArg(a arg, line string) (interface{}, error) {
	switch a.kind {
	case argComplex:
		z, err := num.Parse(line)
		if err != nil {
			return nil, err
		}
		if r.mode == ModeReal && imag(z) != 0 {
			return nil, fmt.Errorf("complex input disabled in real mode")
		}
		return map[string]interface{}{"re": real(z), "im": imag(z)}, nil
	case argNumber:
		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %s", line)
		}
		return x, nil
	case argInt:
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %s", line)
		}
		return n, nil
	default:
		return line, nil
	}
}

// invoke executes a tool and renders its envelope.
func (r *Repl) invoke(ctx context.Context, toolID string, params map[string]interface{}) {
	result, err := r.registry.Execute(ctx, toolID, params)
	if err != nil {
		fmt.Fprintln(r.out, styles.Error.Render(err.Error()))
		return
	}
	if !result.Success {
		msg := "operation failed"
		if result.Error != nil {
			msg = *result.Error
		}
		fmt.Fprintln(r.out, styles.Error.Render(msg))
		return
	}

	fmt.Fprintln(r.out, styles.Result.Render("= "+renderData(result.Data)))
	if status, ok := result.Data["status"].(string); ok && status != "exact" {
		fmt.Fprintln(r.out, styles.Warn.Render("accuracy: "+status))
	}
}

// renderData picks the human-readable value out of a result map.
func renderData(data map[string]interface{}) string {
	if s, ok := data["result"].(string); ok {
		return s
	}
	if x, ok := data["result"].(float64); ok {
		return num.Format(complex(x, 0))
	}
	if rMod, ok := data["r"].(float64); ok {
		if theta, ok := data["theta"].(float64); ok {
			return fmt.Sprintf("r = %s, theta = %s",
				num.Format(complex(rMod, 0)), num.Format(complex(theta, 0)))
		}
	}
	return fmt.Sprintf("%v", data)
}

func (r *Repl) readLine(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}
