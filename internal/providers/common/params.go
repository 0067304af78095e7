// Package common holds the parameter plumbing shared by providers:
// result constructors and typed extraction from the loosely-typed params
// map that arrives over the wire.
package common

import (
	"fmt"

	"github.com/grignard-labs/calcd/internal/shared/num"
	"github.com/grignard-labs/calcd/internal/types"
)

// Success wraps data in a successful result.
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure wraps a message in a failed result.
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Failuref formats a failure message.
func Failuref(format string, args ...interface{}) (*types.Result, error) {
	return Failure(fmt.Sprintf(format, args...))
}

// GetNumber extracts a float64, coercing the integer types JSON decoding
// may produce.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts an integer-valued number.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	x, ok := GetNumber(params, key)
	if !ok || x != float64(int(x)) {
		return 0, false
	}
	return int(x), true
}

// GetString extracts a string.
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetComplex extracts a complex value. Three shapes are accepted: a plain
// number, a literal string ("3+4i", "pi"), or an {"re": .., "im": ..}
// object.
func GetComplex(params map[string]interface{}, key string) (complex128, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return ToComplex(val)
}

// ToComplex converts a raw decoded value to a complex number using the
// same shapes GetComplex accepts.
func ToComplex(val interface{}) (complex128, bool) {
	switch v := val.(type) {
	case string:
		z, err := num.Parse(v)
		if err != nil {
			return 0, false
		}
		return z, true
	case map[string]interface{}:
		re, okRe := GetNumber(v, "re")
		im, okIm := GetNumber(v, "im")
		if !okRe && !okIm {
			return 0, false
		}
		return complex(re, im), true
	default:
		if x, ok := toFloat(val); ok {
			return complex(x, 0), true
		}
		return 0, false
	}
}

// ComplexData renders a complex result for the Data map: formatted text
// plus the raw parts.
func ComplexData(z complex128) map[string]interface{} {
	return map[string]interface{}{
		"result": num.Format(z),
		"re":     real(z),
		"im":     imag(z),
	}
}
