package param

import (
	"sort"
	"sync"

	"github.com/quillvm/quill/internal/tlocal"
	"github.com/quillvm/quill/internal/value"
	"github.com/quillvm/quill/internal/vm"
)

// Namespace maps names to parameter callables. It stands in for the
// runtime's module/binding system as far as this subsystem is
// concerned.
//
// Thread-safety: all methods are safe for concurrent use.
type Namespace struct {
	mu       sync.RWMutex
	bindings map[string]*Callable
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{bindings: make(map[string]*Callable)}
}

// Define binds c under name, replacing any previous binding.
func (ns *Namespace) Define(name string, c *Callable) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.bindings[name] = c
}

// Lookup returns the callable bound under name.
func (ns *Namespace) Lookup(name string) (*Callable, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	c, ok := ns.bindings[name]
	return c, ok
}

// Names returns the bound names in sorted order.
func (ns *Namespace) Names() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	names := make([]string, 0, len(ns.bindings))
	for name := range ns.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind creates a direct parameter, wraps it in a callable, and binds
// the callable under name. This is the one-stop construction path the
// embedding runtime uses for built-in parameters.
func Bind(ns *Namespace, alloc *tlocal.Allocator, ctx *vm.Context, name string, initial value.Value, flags tlocal.Flags) *Parameter {
	p := New(alloc, ctx, name, initial, flags)
	ns.Define(name, NewCallable(p))
	return p
}

// BindGuarded is Bind for guarded parameters.
func BindGuarded(ns *Namespace, alloc *tlocal.Allocator, ctx *vm.Context, name string, initial value.Value, flags tlocal.Flags, hook SetHook) *Parameter {
	p := NewGuarded(alloc, ctx, name, initial, flags, hook)
	ns.Define(name, NewCallable(p))
	return p
}
