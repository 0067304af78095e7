// Package service hosts the provider registry: the narrow functional
// interface between the numerical engine and its callers (HTTP handlers,
// the websocket stream, the interactive calculator).
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/grignard-labs/calcd/internal/types"
)

// Provider is a service implementation: a definition plus a tool
// dispatcher. Tool IDs are namespaced "<service>.<tool>".
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error)
}

// Registry maps service IDs to providers. Registration happens once at
// startup; lookups and execution are concurrent.
type Registry struct {
	services sync.Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a provider under its definition ID.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	r.services.Store(def.ID, provider)
	return nil
}

// Get retrieves a provider by service ID.
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered service definitions, optionally filtered by
// category.
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	return services
}

// Execute routes a namespaced tool ID to its provider.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		msg := fmt.Sprintf("invalid tool ID format: %s", toolID)
		return &types.Result{Success: false, Error: &msg}, fmt.Errorf("%s", msg)
	}

	provider, ok := r.Get(parts[0])
	if !ok {
		msg := fmt.Sprintf("service not found: %s", parts[0])
		return &types.Result{Success: false, Error: &msg}, fmt.Errorf("%s", msg)
	}

	return provider.Execute(ctx, toolID, params)
}

// Stats summarizes what is registered.
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}
