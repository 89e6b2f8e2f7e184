package plugins

import (
	"fmt"
	"sync"
)

// Registry holds the instantiated plugins for one drift process. It preserves
// registration order because the compiler processes plugin contributions in
// declaration order.
type Registry struct {
	mu     sync.RWMutex
	order  []Plugin
	byName map[string]Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Plugin),
	}
}

// Register adds a plugin. Registering two plugins with the same module
// reference is a configuration error.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("plugin %s already registered", name)
	}

	r.byName[name] = p
	r.order = append(r.order, p)
	return nil
}

// Get retrieves a plugin by module reference.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	return p, ok
}

// List returns all registered plugins in registration order.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Plugin, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
