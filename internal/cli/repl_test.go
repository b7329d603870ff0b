package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillvm/quill/internal/value"
	"github.com/quillvm/quill/internal/vm"
)

func newTestRepl() *replState {
	return newReplState(vm.NewSeqGenerator("ctx"))
}

func eval(t *testing.T, s *replState, line string) string {
	t.Helper()
	out, err := s.eval(line)
	require.NoError(t, err, "eval %q", line)
	return out
}

func TestRepl_LocalDeclareGetSet(t *testing.T) {
	s := newTestRepl()

	assert.Equal(t, "#<thread-local depth @0>", eval(t, s, "local depth 0"))
	assert.Equal(t, "0", eval(t, s, "get depth"))
	assert.Equal(t, "previous: 0", eval(t, s, "set depth 5"))
	assert.Equal(t, "5", eval(t, s, "get depth"))
}

func TestRepl_ParamCall(t *testing.T) {
	s := newTestRepl()

	eval(t, s, "param verbosity 1")
	assert.Equal(t, "1", eval(t, s, "call verbosity"))
	assert.Equal(t, "1", eval(t, s, "call verbosity 3"), "one-arg call returns the previous value")
	assert.Equal(t, "3", eval(t, s, "call verbosity"))
}

func TestRepl_CallArityError(t *testing.T) {
	s := newTestRepl()
	eval(t, s, "param verbosity 1")

	_, err := s.eval("call verbosity 1 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 or 1 argument(s) expected")
}

func TestRepl_SpawnIsolation(t *testing.T) {
	s := newTestRepl()

	eval(t, s, "local depth 0")
	eval(t, s, "set depth 5")
	assert.Equal(t, "spawned child (ctx-2) from main", eval(t, s, "spawn child"))

	eval(t, s, "switch child")
	assert.Equal(t, "5", eval(t, s, "get depth"), "child inherits at spawn")
	eval(t, s, "set depth 9")

	eval(t, s, "switch main")
	assert.Equal(t, "5", eval(t, s, "get depth"), "parent unaffected by child write")
}

func TestRepl_CtxListsContexts(t *testing.T) {
	s := newTestRepl()
	eval(t, s, "spawn child")

	out := eval(t, s, "ctx")
	assert.Contains(t, out, "* main (ctx-1)")
	assert.Contains(t, out, "  child (ctx-2)")
}

func TestRepl_Errors(t *testing.T) {
	s := newTestRepl()

	_, err := s.eval("get ghost")
	assert.Error(t, err)

	_, err = s.eval("switch ghost")
	assert.Error(t, err)

	_, err = s.eval("frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	_, err = s.eval("local onlyname")
	assert.Error(t, err)

	eval(t, s, "local x 0")
	_, err = s.eval("local x 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already declared")
}

func TestRepl_Quit(t *testing.T) {
	s := newTestRepl()
	_, err := s.eval("quit")
	assert.ErrorIs(t, err, errQuit)
	_, err = s.eval("exit")
	assert.ErrorIs(t, err, errQuit)
}

func TestParseScalar(t *testing.T) {
	assert.Equal(t, value.Value(value.Null{}), parseScalar("null"))
	assert.Equal(t, value.Value(value.Bool(true)), parseScalar("true"))
	assert.Equal(t, value.Value(value.Bool(false)), parseScalar("false"))
	assert.Equal(t, value.Value(value.Int(-42)), parseScalar("-42"))
	assert.Equal(t, value.Value(value.Str("hello")), parseScalar("hello"))
	assert.Equal(t, value.Value(value.Str("quoted")), parseScalar(`"quoted"`))
}
