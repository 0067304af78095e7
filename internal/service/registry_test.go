package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grignard-labs/calcd/internal/types"
)

type mockProvider struct {
	id       string
	category types.Category
	lastTool string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:          m.id,
		Name:        "Mock Service",
		Description: "A mock provider",
		Category:    m.category,
		Tools: []types.Tool{
			{ID: m.id + ".echo", Name: "Echo", Returns: "string"},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	m.lastTool = toolID
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "ok"},
	}, nil
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "mock", category: types.CategoryCalculus}))

	_, ok := r.Get("mock")
	assert.True(t, ok)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&mockProvider{id: ""}))
}

func TestListFiltersByCategory(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "a", category: types.CategoryCalculus}))
	require.NoError(t, r.Register(&mockProvider{id: "b", category: types.CategoryScientific}))

	assert.Len(t, r.List(nil), 2)

	cat := types.CategoryCalculus
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func TestExecuteRoutesByPrefix(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "mock", category: types.CategoryCalculus}
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "mock.echo", nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "mock.echo", p.lastTool)
}

func TestExecuteRejectsMalformedToolID(t *testing.T) {
	r := NewRegistry()

	result, err := r.Execute(context.Background(), "noseparator", nil)
	assert.Error(t, err)
	assert.False(t, result.Success)
}

func TestExecuteUnknownService(t *testing.T) {
	r := NewRegistry()

	result, err := r.Execute(context.Background(), "ghost.echo", nil)
	assert.Error(t, err)
	assert.False(t, result.Success)
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "a", category: types.CategoryCalculus}))
	require.NoError(t, r.Register(&mockProvider{id: "b", category: types.CategoryScientific}))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
}
