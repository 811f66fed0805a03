package target

import (
	"fmt"
	"sync"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// Registry holds the fixed, enumerable set of adapters in registration order
// and a per-target mutex table. Writes to one target's config must be
// serialized; writes to different targets are independent.
type Registry struct {
	order    []string
	adapters map[string]Adapter

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
		locks:    make(map[string]*sync.Mutex),
	}
}

// DefaultRegistry returns the registry with all shipped adapters registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ClaudeCodeAdapter{})
	r.Register(&ClaudeDesktopAdapter{})
	r.Register(&CursorAdapter{})
	r.Register(&VSCodeAdapter{})
	r.Register(&ZedAdapter{})
	r.Register(&CodexAdapter{})
	return r
}

// Register adds an adapter. Registering a duplicate name replaces the
// previous adapter but keeps its position.
func (r *Registry) Register(a Adapter) {
	name := a.Name()
	if _, ok := r.adapters[name]; !ok {
		r.order = append(r.order, name)
	}
	r.adapters[name] = a
}

// Get returns the adapter with the given name.
func (r *Registry) Get(name string) (Adapter, error) {
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: target %q", artifact.ErrNotFound, name)
	}
	return a, nil
}

// All returns the adapters in registration order.
func (r *Registry) All() []Adapter {
	result := make([]Adapter, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.adapters[name])
	}
	return result
}

// Names returns the adapter names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Lock returns the mutex serializing writes to the named target.
func (r *Registry) Lock(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	return l
}

// Describe computes descriptors for every registered adapter at a scope.
func (r *Registry) Describe(projectPath string) []Descriptor {
	result := make([]Descriptor, 0, len(r.order))
	for _, a := range r.All() {
		result = append(result, Describe(a, projectPath))
	}
	return result
}
