package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, "null"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"string is quoted", Str("5"), `"5"`},
		{"symbol is bare", Sym("depth"), "depth"},
		{"unset slot", nil, "#unset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.v))
		})
	}
}

func TestFormat_StringAndIntStayDistinguishable(t *testing.T) {
	assert.NotEqual(t, Format(Str("5")), Format(Int(5)))
}

func TestFormat_Promise(t *testing.T) {
	p := NewPromise(func() (Value, error) { return Int(42), nil })
	assert.Equal(t, "#promise", Format(p))

	_, err := p.Force()
	assert.NoError(t, err)
	assert.Equal(t, "#promise[42]", Format(p))
}

func TestEqual_Content(t *testing.T) {
	assert.True(t, Equal(Int(5), Int(5)))
	assert.True(t, Equal(Str("a"), Str("a")))
	assert.True(t, Equal(Null{}, Null{}))
	assert.False(t, Equal(Int(5), Int(6)))
	assert.False(t, Equal(Int(5), Str("5")))
	assert.False(t, Equal(Bool(true), Int(1)))
}

func TestEqual_PromisesByIdentity(t *testing.T) {
	thunk := func() (Value, error) { return Int(1), nil }
	p1 := NewPromise(thunk)
	p2 := NewPromise(thunk)

	assert.True(t, Equal(p1, p1))
	assert.False(t, Equal(p1, p2))
	assert.False(t, Equal(p1, Int(1)))
	assert.False(t, Equal(Int(1), p1))
}
