// Package num parses and formats the numeric literals the calculator
// exchanges with users: plain reals, the constants pi and e, and complex
// numbers written a+bi (either i or j marks the imaginary unit).
package num

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// tol is the magnitude below which a displayed component is treated
	// as zero, hiding float dust in results like sin(pi).
	tol = 1e-15
	// precisionEpsilon is the relative slack used to snap a value that is
	// a hair away from an integer back onto it for display.
	precisionEpsilon = 1e-9
)

// Parse reads a numeric literal. Accepted forms: "pi", "e", decimal reals
// ("3.14", "-5"), pure imaginaries ("4i", "-2j", "i"), and full complex
// values ("3+4i", "2.5-0.5j"). Case is ignored for the constants.
func Parse(input string) (complex128, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("empty input")
	}

	switch strings.ToLower(s) {
	case "pi":
		return complex(math.Pi, 0), nil
	case "e":
		return complex(math.E, 0), nil
	case "i", "j":
		return complex(0, 1), nil
	case "-i", "-j":
		return complex(0, -1), nil
	}

	if !strings.ContainsAny(s, "ij") {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", input)
		}
		return complex(x, 0), nil
	}
	return parseComplex(s, input)
}

// parseComplex handles a+bi shapes. The imaginary marker must be the final
// character; the split point is the last sign that is not an exponent sign
// and not the leading sign.
func parseComplex(s, original string) (complex128, error) {
	if !strings.HasSuffix(s, "i") && !strings.HasSuffix(s, "j") {
		return 0, fmt.Errorf("invalid complex number %q", original)
	}
	body := s[:len(s)-1]

	split := -1
	for idx := len(body) - 1; idx > 0; idx-- {
		c := body[idx]
		if (c == '+' || c == '-') && body[idx-1] != 'e' && body[idx-1] != 'E' {
			split = idx
			break
		}
	}

	if split < 0 {
		// Pure imaginary: "4i", "-2.5j".
		im, err := parseSignedPart(body)
		if err != nil {
			return 0, fmt.Errorf("invalid complex number %q", original)
		}
		return complex(0, im), nil
	}

	re, err := strconv.ParseFloat(body[:split], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid complex number %q", original)
	}
	im, err := parseSignedPart(body[split:])
	if err != nil {
		return 0, fmt.Errorf("invalid complex number %q", original)
	}
	return complex(re, im), nil
}

// parseSignedPart parses the imaginary coefficient, where a bare sign (or
// nothing) means one: "+i" is +1, "-i" is -1.
func parseSignedPart(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseFloat(s, 64)
}

// Format renders a result the way the calculator displays it: tiny
// components snap to zero, near-integers snap to integers, and complex
// values render as "a + bi" / "a - bi" / "bi" as appropriate.
func Format(z complex128) string {
	re := snap(real(z))
	im := snap(imag(z))

	switch {
	case im == 0:
		return formatReal(re)
	case re == 0:
		return formatReal(im) + "i"
	case im > 0:
		return fmt.Sprintf("%s + %si", formatReal(re), formatReal(im))
	default:
		return fmt.Sprintf("%s - %si", formatReal(re), formatReal(math.Abs(im)))
	}
}

// IsReal reports whether z displays as a pure real after snapping.
func IsReal(z complex128) bool { return snap(imag(z)) == 0 }

func snap(x float64) float64 {
	if math.Abs(x) < tol {
		return 0
	}
	nearest := math.Round(x)
	if nearest != 0 && math.Abs(x-nearest) < math.Abs(nearest)*precisionEpsilon {
		return nearest
	}
	return x
}

func formatReal(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
