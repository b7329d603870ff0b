package tlocal

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/quillvm/quill/internal/value"
)

// Flags alter a Local's access behavior.
type Flags uint

const (
	// FlagLazy marks a local whose value is forced on read: if the slot
	// (or the initial value) holds a promise, Ref and the previous-value
	// return of Set resolve it before handing it to the caller.
	FlagLazy Flags = 1 << iota
)

// Local is a thread-local descriptor: shared, immutable-after-creation
// metadata for one slot index. It is not storage - each context's Table
// holds the per-context value.
type Local struct {
	name    string
	index   int
	initial value.Value
	flags   Flags
}

// New declares a thread-local, allocating its process-unique index.
//
// name may be empty for an anonymous local; non-empty names are
// NFC-normalized so that two spellings of the same display name render
// identically in traces. initial is the value every context observes
// until it first writes the slot.
//
// creator is the table of the context declaring the local. It is grown
// up front so the fresh index is addressable there before the
// descriptor is returned; other contexts grow lazily on first access.
func New(alloc *Allocator, creator *Table, name string, initial value.Value, flags Flags) *Local {
	index := alloc.Next()
	if creator != nil {
		creator.EnsureCapacity(index)
	}
	if name != "" {
		name = norm.NFC.String(name)
	}
	return &Local{
		name:    name,
		index:   index,
		initial: initial,
		flags:   flags,
	}
}

// Name returns the display name, empty for anonymous locals.
func (l *Local) Name() string { return l.name }

// Index returns the process-unique slot index.
func (l *Local) Index() int { return l.index }

// Initial returns the value observed before the first write.
func (l *Local) Initial() value.Value { return l.initial }

// Flags returns the behavior flags.
func (l *Local) Flags() Flags { return l.flags }

// Lazy reports whether reads force promises.
func (l *Local) Lazy() bool { return l.flags&FlagLazy != 0 }

// String renders the descriptor for diagnostics.
func (l *Local) String() string {
	name := l.name
	if name == "" {
		name = "(anonymous)"
	}
	return fmt.Sprintf("#<thread-local %s @%d>", name, l.index)
}
