package tlocal

import "github.com/quillvm/quill/internal/value"

// Ref reads l's value from t.
//
// An index beyond t's capacity means the slot is conceptually unset;
// the initial value is returned without growing the table, so a pure
// read never mutates capacity. An unset slot within capacity is
// populated with the initial value as it is read, so a later
// read-modify-write sees a concrete previous value rather than the
// sentinel.
//
// For a lazy local the result is forced before being returned, and the
// forced value replaces the promise in the slot, so subsequent reads
// skip the promise entirely. Errors raised by the deferred computation
// itself propagate unchanged.
func Ref(l *Local, t *Table) (value.Value, error) {
	var result value.Value
	if l.index >= t.Cap() {
		result = l.initial
	} else {
		result = t.get(l.index)
		if result == nil {
			result = l.initial
			t.set(l.index, result)
		}
	}
	if !l.Lazy() {
		return result, nil
	}
	forced, err := value.Force(result)
	if err != nil {
		return nil, err
	}
	if l.index < t.Cap() {
		t.set(l.index, forced)
	}
	return forced, nil
}

// Set stores v into l's slot in t and returns the previous value.
//
// v is stored verbatim - a promise written through Set stays unforced
// in the slot. The previous value is the slot's content before the
// write, or the initial value if the slot was unset; for a lazy local
// that previous value is forced before being returned. The
// previous-value return is what makes the save/restore idiom of
// dynamic-scope rebinding layers work.
func Set(l *Local, t *Table, v value.Value) (value.Value, error) {
	var prev value.Value
	if l.index >= t.Cap() {
		t.EnsureCapacity(l.index)
	} else {
		prev = t.get(l.index)
	}
	if prev == nil {
		prev = l.initial
	}
	t.set(l.index, v)
	if !l.Lazy() {
		return prev, nil
	}
	return value.Force(prev)
}
