package tlocal

import "github.com/quillvm/quill/internal/value"

// Table growth constants. A fresh root table starts at InitSize slots;
// growth rounds the new capacity up to the next multiple of GrowQuantum
// so repeated allocations stay amortized O(1).
const (
	InitSize    = 64
	GrowQuantum = 16
)

// Table is the per-context thread-local slot vector.
//
// A nil slot is the unset sentinel: the slot has never been written in
// this context and a read through it yields the descriptor's initial
// value. value.Null is not the sentinel - it is an ordinary storable
// value.
//
// A Table is exclusively owned by one execution context and takes no
// locks. Capacity is monotonically non-decreasing: once an index is
// addressable it stays addressable, and growth never reorders or drops
// existing slots.
type Table struct {
	slots []value.Value
}

// NewTable creates a root context's table with InitSize unset slots.
func NewTable() *Table {
	return &Table{slots: make([]value.Value, InitSize)}
}

// Cap returns the current slot capacity.
func (t *Table) Cap() int {
	return len(t.slots)
}

// EnsureCapacity grows the table, if needed, so that index is
// addressable. New slots are unset. Existing slots keep their position
// and contents.
func (t *Table) EnsureCapacity(index int) {
	if index < len(t.slots) {
		return
	}
	newSize := ((index + GrowQuantum) / GrowQuantum) * GrowQuantum
	newSlots := make([]value.Value, newSize)
	copy(newSlots, t.slots)
	// Drop references from the old backing array so values unreachable
	// through the new one do not linger.
	for i := range t.slots {
		t.slots[i] = nil
	}
	t.slots = newSlots
}

// Snapshot produces the table for a spawned context: same capacity,
// element-wise copy of the current contents. Values are shared, not
// deep-copied, and no link remains between the two tables - this is the
// sole inheritance mechanism.
//
// Must be called by the owning (parent) context before the child starts
// running.
func (t *Table) Snapshot() *Table {
	slots := make([]value.Value, len(t.slots))
	copy(slots, t.slots)
	return &Table{slots: slots}
}

// get returns the slot's content, or nil if index is beyond capacity.
func (t *Table) get(index int) value.Value {
	if index >= len(t.slots) {
		return nil
	}
	return t.slots[index]
}

// set stores v at index. The caller must have ensured capacity.
func (t *Table) set(index int, v value.Value) {
	t.slots[index] = v
}
