package vm

import (
	"github.com/quillvm/quill/internal/tlocal"
	"github.com/quillvm/quill/internal/value"
)

// Context is one execution context: an identity plus exclusive
// ownership of a thread-local table.
//
// A Context's table must only be touched from the context that owns it.
// The runtime embedding quill maps contexts onto its own threads or
// workers; nothing here schedules anything.
type Context struct {
	id       string
	parentID string
	gen      IDGenerator
	locals   *tlocal.Table
}

// NewRoot creates the primordial context with a fresh table at the
// fixed initial size. gen supplies this and every descendant context's
// ID.
func NewRoot(gen IDGenerator) *Context {
	return &Context{
		id:     gen.Generate(),
		gen:    gen,
		locals: tlocal.NewTable(),
	}
}

// Spawn creates a child context whose table is an element-wise snapshot
// of c's table at this moment (copy-on-spawn). The copy happens here,
// in the calling context, before the child can run; afterwards parent
// and child tables are fully independent.
func (c *Context) Spawn() *Context {
	return &Context{
		id:       c.gen.Generate(),
		parentID: c.id,
		gen:      c.gen,
		locals:   c.locals.Snapshot(),
	}
}

// ID returns the context's identifier.
func (c *Context) ID() string { return c.id }

// ParentID returns the spawning context's ID, empty for the root.
func (c *Context) ParentID() string { return c.parentID }

// Locals returns the context's thread-local table.
func (c *Context) Locals() *tlocal.Table { return c.locals }

// NewLocal declares a thread-local from within this context. The
// context's own table is grown up front so the new index is immediately
// addressable here.
func (c *Context) NewLocal(alloc *tlocal.Allocator, name string, initial value.Value, flags tlocal.Flags) *tlocal.Local {
	return tlocal.New(alloc, c.locals, name, initial, flags)
}

// Ref reads l's value in this context.
func (c *Context) Ref(l *tlocal.Local) (value.Value, error) {
	return tlocal.Ref(l, c.locals)
}

// Set writes l's value in this context and returns the previous value.
func (c *Context) Set(l *tlocal.Local, v value.Value) (value.Value, error) {
	return tlocal.Set(l, c.locals, v)
}
