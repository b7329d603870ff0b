package vm

import (
	"sort"
	"sync"
)

// Registry tracks live contexts by ID.
//
// The registry exists for tooling - the REPL and scenario runner need
// to enumerate contexts and switch between them. The core storage
// mechanism never consults it: a context reaches its own table
// directly.
//
// Thread-safety: all methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	contexts map[string]*Context
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{contexts: make(map[string]*Context)}
}

// Add registers a context under its ID.
func (r *Registry) Add(c *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contexts[c.ID()] = c
}

// Get returns the context with the given ID, if registered.
func (r *Registry) Get(id string) (*Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contexts[id]
	return c, ok
}

// Remove unregisters a context. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contexts, id)
}

// Len returns the number of registered contexts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contexts)
}

// IDs returns the registered context IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.contexts))
	for id := range r.contexts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
