package registry

import (
	"strings"
	"sync"

	"github.com/GopalTomar/Cloud-Connect/internal/core"
)

// Factory builds a resource of one concrete type from a generic field bag.
type Factory func(name string, params map[string]interface{}) (core.Resource, error)

// Registry maps resource type names to their factories, so new variants can
// plug in without touching manager code. Registration happens once at
// startup; after that the registry is read-mostly.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	order     []string
}

func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under typeName. Registering an already known name
// is rejected instead of silently overwriting it.
func (r *Registry) Register(typeName string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[typeName]; exists {
		return &core.DuplicateTypeError{Type: typeName}
	}
	r.factories[typeName] = factory
	r.order = append(r.order, typeName)
	return nil
}

// Create delegates construction to the factory registered under typeName.
func (r *Registry) Create(typeName, name string, params map[string]interface{}) (core.Resource, error) {
	r.mu.RLock()
	factory, exists := r.factories[typeName]
	r.mu.RUnlock()

	if !exists {
		return nil, &core.UnknownTypeError{Type: typeName}
	}
	if name == "" {
		return nil, &core.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	// Names become log file names, so path separators are out
	if strings.ContainsAny(name, `/\`) {
		return nil, &core.ValidationError{Field: "name", Reason: "must not contain path separators"}
	}
	if params == nil {
		params = make(map[string]interface{})
	}
	return factory(name, params)
}

// Types returns the registered type names in registration order. The console
// menu relies on this order being stable.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, len(r.order))
	copy(types, r.order)
	return types
}
