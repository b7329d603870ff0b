package value

import (
	"fmt"
	"strconv"
)

// Value is a sealed interface over the runtime's value types.
// Only Null, Bool, Int, Str, Sym, and *Promise implement it.
type Value interface {
	val() // Sealed - only these types implement it
}

// Null is the runtime's nil/empty value. Distinct from an unset storage
// slot: Null is a value a program can legitimately store and read back.
type Null struct{}

func (Null) val() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) val() {}

// Int represents an integer value. Always int64.
type Int int64

func (Int) val() {}

// Str represents a string value.
type Str string

func (Str) val() {}

// Sym represents a symbolic name. Two Syms are the same symbol iff
// their names are equal.
type Sym string

func (Sym) val() {}

// Format renders a value for traces and diagnostics.
//
// The encoding is deterministic: equal values always format to the same
// string. Strings are quoted so that Str("5") and Int(5) stay
// distinguishable in trace output.
func Format(v Value) string {
	switch val := v.(type) {
	case nil:
		return "#unset"
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Str:
		return strconv.Quote(string(val))
	case Sym:
		return string(val)
	case *Promise:
		return val.String()
	default:
		return fmt.Sprintf("#unknown[%T]", v)
	}
}

// Equal reports whether two values are the same runtime value.
// Promises compare by identity; everything else by content.
func Equal(a, b Value) bool {
	if pa, ok := a.(*Promise); ok {
		pb, ok := b.(*Promise)
		return ok && pa == pb
	}
	if _, ok := b.(*Promise); ok {
		return false
	}
	return a == b
}
