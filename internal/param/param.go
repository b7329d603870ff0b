package param

import (
	"fmt"

	"github.com/quillvm/quill/internal/tlocal"
	"github.com/quillvm/quill/internal/value"
	"github.com/quillvm/quill/internal/vm"
)

// Key is the internal identity a scoped-rebinding layer uses to key a
// parameter's dynamic bindings. Keys compare by pointer identity; each
// parameter owns exactly one.
type Key struct {
	owner *Parameter
}

// Owner returns the parameter this key belongs to.
func (k *Key) Owner() *Parameter { return k.owner }

// SetHook is the entry point a guarded parameter's writes are routed
// through. It belongs to the higher dynamic-binding layer; the hook is
// responsible for eventually storing the value (typically via
// Parameter.SetDirect) and returns what the call should hand back.
type SetHook func(ctx *vm.Context, p *Parameter, v value.Value) (value.Value, error)

// Parameter is a thread-local plus the pieces that make it a callable
// dynamic variable: a rebinding key and a write strategy.
type Parameter struct {
	local  *tlocal.Local
	key    *Key
	setter setter
}

// setter is the write strategy fixed at construction.
type setter interface {
	set(ctx *vm.Context, p *Parameter, v value.Value) (value.Value, error)
}

// directSetter writes straight through the accessor protocol.
type directSetter struct{}

func (directSetter) set(ctx *vm.Context, p *Parameter, v value.Value) (value.Value, error) {
	return ctx.Set(p.local, v)
}

// guardedSetter redirects writes through the dynamic-binding layer's
// own entry point so guard/observer behavior added there is honored.
type guardedSetter struct {
	hook SetHook
}

func (s guardedSetter) set(ctx *vm.Context, p *Parameter, v value.Value) (value.Value, error) {
	return s.hook(ctx, p, v)
}

// New creates a direct parameter: reads and writes both go straight to
// the accessor protocol. ctx is the declaring context, whose table is
// grown to cover the new index.
func New(alloc *tlocal.Allocator, ctx *vm.Context, name string, initial value.Value, flags tlocal.Flags) *Parameter {
	return newParameter(alloc, ctx, name, initial, flags, directSetter{})
}

// NewGuarded creates a parameter whose writes are redirected through
// hook. Reads still go straight to storage.
func NewGuarded(alloc *tlocal.Allocator, ctx *vm.Context, name string, initial value.Value, flags tlocal.Flags, hook SetHook) *Parameter {
	if hook == nil {
		panic("param: NewGuarded requires a non-nil hook")
	}
	return newParameter(alloc, ctx, name, initial, flags, guardedSetter{hook: hook})
}

func newParameter(alloc *tlocal.Allocator, ctx *vm.Context, name string, initial value.Value, flags tlocal.Flags, s setter) *Parameter {
	p := &Parameter{
		local:  ctx.NewLocal(alloc, name, initial, flags),
		setter: s,
	}
	p.key = &Key{owner: p}
	return p
}

// Local returns the underlying thread-local descriptor.
func (p *Parameter) Local() *tlocal.Local { return p.local }

// Key returns the parameter's rebinding key.
func (p *Parameter) Key() *Key { return p.key }

// Name returns the parameter's display name, empty if anonymous.
func (p *Parameter) Name() string { return p.local.Name() }

// Ref reads the parameter's value in ctx.
func (p *Parameter) Ref(ctx *vm.Context) (value.Value, error) {
	return ctx.Ref(p.local)
}

// Set writes the parameter's value in ctx through its write strategy
// and returns the previous value.
func (p *Parameter) Set(ctx *vm.Context, v value.Value) (value.Value, error) {
	return p.setter.set(ctx, p, v)
}

// SetDirect writes through the raw accessor protocol, bypassing any
// guarded strategy. This is the storage entry point a guard hook calls
// once its own checks have passed.
func (p *Parameter) SetDirect(ctx *vm.Context, v value.Value) (value.Value, error) {
	return ctx.Set(p.local, v)
}

// String renders the parameter for diagnostics.
func (p *Parameter) String() string {
	name := p.Name()
	if name == "" {
		name = "(anonymous)"
	}
	return fmt.Sprintf("#<parameter %s @%d>", name, p.local.Index())
}
