package param

import (
	"github.com/quillvm/quill/internal/value"
	"github.com/quillvm/quill/internal/vm"
)

// Callable adapts a parameter to the runtime's procedure-call
// convention: zero arguments reads, one argument writes, anything else
// is an arity error.
type Callable struct {
	p *Parameter
}

// NewCallable wraps p in the calling convention.
func NewCallable(p *Parameter) *Callable {
	return &Callable{p: p}
}

// Parameter returns the wrapped parameter, for introspection.
func (c *Callable) Parameter() *Parameter { return c.p }

// Call invokes the parameter in ctx.
//
// With no arguments it returns the current value. With one argument it
// writes through the parameter's strategy and returns the previous
// value; the embedding layer decides whether to surface that to program
// code. Two or more arguments yield an *ArityError.
func (c *Callable) Call(ctx *vm.Context, args ...value.Value) (value.Value, error) {
	switch len(args) {
	case 0:
		return c.p.Ref(ctx)
	case 1:
		return c.p.Set(ctx, args[0])
	default:
		return nil, &ArityError{Param: c.p.Name(), Got: len(args)}
	}
}
