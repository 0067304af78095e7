package calculus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grignard-labs/calcd/internal/calculus"
)

func newTestProvider() *Provider {
	return NewProvider(calculus.NewDefault())
}

func TestDefinition(t *testing.T) {
	p := newTestProvider()
	def := p.Definition()

	assert.Equal(t, "calc", def.ID)
	assert.Len(t, def.Tools, 5)

	ids := make(map[string]bool)
	for _, tool := range def.Tools {
		ids[tool.ID] = true
	}
	for _, want := range []string{"calc.evaluate", "calc.differentiate", "calc.integrate", "calc.contour", "calc.root"} {
		assert.True(t, ids[want], "missing tool %s", want)
	}
}

func TestEvaluate(t *testing.T) {
	p := newTestProvider()

	tests := []struct {
		name     string
		params   map[string]interface{}
		wantRe   float64
		wantIm   float64
	}{
		{"polynomial", map[string]interface{}{"expression": "x^2+1", "value": 3.0}, 10, 0},
		{"implicit multiplication", map[string]interface{}{"expression": "2x+3", "value": 5.0}, 13, 0},
		{"complex point", map[string]interface{}{"expression": "x^2", "value": "1+i"}, 0, 2},
		{"custom variable", map[string]interface{}{"expression": "t^3", "variable": "t", "value": 2.0}, 8, 0},
		{"constants", map[string]interface{}{"expression": "sin(pi/2)", "value": 0.0}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Execute(context.Background(), "calc.evaluate", tt.params)
			require.NoError(t, err)
			require.True(t, result.Success, "error: %v", result.Error)
			assert.InDelta(t, tt.wantRe, result.Data["re"], 1e-9)
			assert.InDelta(t, tt.wantIm, result.Data["im"], 1e-9)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	p := newTestProvider()

	tests := []struct {
		name   string
		params map[string]interface{}
	}{
		{"missing expression", map[string]interface{}{"value": 1.0}},
		{"missing value", map[string]interface{}{"expression": "x"}},
		{"compile error", map[string]interface{}{"expression": "x+*2", "value": 1.0}},
		{"unknown name", map[string]interface{}{"expression": "x+y", "value": 1.0}},
		{"division by zero", map[string]interface{}{"expression": "1/x", "value": 0.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Execute(context.Background(), "calc.evaluate", tt.params)
			require.NoError(t, err)
			assert.False(t, result.Success)
			require.NotNil(t, result.Error)
		})
	}
}

func TestDifferentiate(t *testing.T) {
	p := newTestProvider()

	t.Run("real mode", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "calc.differentiate", map[string]interface{}{
			"expression": "x^3",
			"point":      2.0,
		})
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 12, result.Data["re"], 1e-6)
		assert.Equal(t, "real", result.Data["mode"])
		assert.Equal(t, "exact", result.Data["status"])
	})

	t.Run("complex mode inferred", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "calc.differentiate", map[string]interface{}{
			"expression": "x^2",
			"point":      "1+i",
		})
		require.NoError(t, err)
		require.True(t, result.Success)
		// d/dz z^2 = 2z = 2+2i
		assert.InDelta(t, 2, result.Data["re"].(float64), 1e-2)
		assert.InDelta(t, 2, result.Data["im"].(float64), 1e-2)
		assert.Equal(t, "complex", result.Data["mode"])
	})

	t.Run("bad mode", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "calc.differentiate", map[string]interface{}{
			"expression": "x",
			"point":      1.0,
			"mode":       "sideways",
		})
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestIntegrate(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "calc.integrate", map[string]interface{}{
		"expression": "x^2",
		"low":        0.0,
		"high":       1.0,
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.InDelta(t, 1.0/3.0, result.Data["re"], 1e-12)
	assert.Equal(t, "exact", result.Data["status"])
}

func TestContour(t *testing.T) {
	p := newTestProvider()

	// Closed contour of an entire function vanishes.
	result, err := p.Execute(context.Background(), "calc.contour", map[string]interface{}{
		"expression": "z^2",
		"curve":      "exp(i*t)",
		"low":        0.0,
		"high":       2 * 3.141592653589793,
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.InDelta(t, 0, result.Data["re"].(float64), 1e-5)
	assert.InDelta(t, 0, result.Data["im"].(float64), 1e-5)

	// Invalid step count is a failure, not a panic.
	result, err = p.Execute(context.Background(), "calc.contour", map[string]interface{}{
		"expression": "z",
		"curve":      "t",
		"low":        0.0,
		"high":       1.0,
		"steps":      -1,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestRoot(t *testing.T) {
	p := newTestProvider()

	t.Run("real root", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "calc.root", map[string]interface{}{
			"expression": "x^2-4",
			"guess":      3.0,
		})
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 2, result.Data["re"], 1e-8)
	})

	t.Run("complex root", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "calc.root", map[string]interface{}{
			"expression": "x^2+1",
			"guess":      "0.5+0.8i",
		})
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 0, result.Data["re"].(float64), 1e-8)
		assert.InDelta(t, 1, result.Data["im"].(float64), 1e-8)
	})

	t.Run("vanishing derivative", func(t *testing.T) {
		result, err := p.Execute(context.Background(), "calc.root", map[string]interface{}{
			"expression": "x^2+1",
			"guess":      0.0,
		})
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestUnknownTool(t *testing.T) {
	p := newTestProvider()
	result, err := p.Execute(context.Background(), "calc.bogus", nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
