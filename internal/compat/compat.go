// Package compat retains quill's legacy parameter API as thin forwards
// over param and tlocal. The superseded entry points emit a deprecation
// warning and then delegate; no state or algorithm lives here.
package compat

import (
	"log/slog"

	"github.com/quillvm/quill/internal/param"
	"github.com/quillvm/quill/internal/tlocal"
	"github.com/quillvm/quill/internal/value"
	"github.com/quillvm/quill/internal/vm"
)

// warn emits the deprecation warning for a legacy entry point.
// Overridable for tests.
var warn = func(msg string) {
	slog.Warn(msg)
}

// ParameterLoc is the legacy out-parameter handle. Old callers passed
// one in to receive the created parameter.
type ParameterLoc struct {
	P *param.Parameter
}

// DefineParameter creates and binds a parameter, storing it in loc.
//
// Deprecated: use param.Bind.
func DefineParameter(ns *param.Namespace, alloc *tlocal.Allocator, ctx *vm.Context, name string, initial value.Value, loc *ParameterLoc) {
	loc.P = param.Bind(ns, alloc, ctx, name, initial, 0)
}

// ParameterRef reads through a legacy location handle.
//
// Deprecated: use Parameter.Ref.
func ParameterRef(ctx *vm.Context, loc *ParameterLoc) (value.Value, error) {
	warn("ParameterRef is deprecated. Use Parameter.Ref.")
	return loc.P.Ref(ctx)
}

// ParameterSet writes through a legacy location handle.
//
// Deprecated: use Parameter.Set.
func ParameterSet(ctx *vm.Context, loc *ParameterLoc, v value.Value) (value.Value, error) {
	warn("ParameterSet is deprecated. Use Parameter.Set.")
	return loc.P.Set(ctx, v)
}

// InitParameterLoc fills loc with a fresh anonymous parameter.
//
// Deprecated: use param.New.
func InitParameterLoc(alloc *tlocal.Allocator, ctx *vm.Context, loc *ParameterLoc, initial value.Value) {
	warn("InitParameterLoc is deprecated. Use param.New.")
	loc.P = param.New(alloc, ctx, "", initial, 0)
}

// MakeParameterSlot fills loc with a fresh anonymous parameter whose
// initial value is null.
//
// Deprecated: use param.New.
func MakeParameterSlot(alloc *tlocal.Allocator, ctx *vm.Context, loc *ParameterLoc) {
	warn("MakeParameterSlot is deprecated. Use param.New.")
	loc.P = param.New(alloc, ctx, "", value.Null{}, 0)
}

// VMParameterTableInit is obsolete. Context tables are built by
// vm.NewRoot and Context.Spawn; nothing may call this.
func VMParameterTableInit() {
	panic("compat: VMParameterTableInit is obsoleted and must not be called")
}
