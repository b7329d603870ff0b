package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillvm/quill/internal/tlocal"
	"github.com/quillvm/quill/internal/value"
)

func TestNewRoot(t *testing.T) {
	root := NewRoot(NewFixedGenerator("ctx-1"))
	assert.Equal(t, "ctx-1", root.ID())
	assert.Empty(t, root.ParentID())
	assert.Equal(t, tlocal.InitSize, root.Locals().Cap())
}

func TestSpawn_IDsAndLineage(t *testing.T) {
	root := NewRoot(NewFixedGenerator("ctx-1", "ctx-2", "ctx-3"))

	child := root.Spawn()
	assert.Equal(t, "ctx-2", child.ID())
	assert.Equal(t, "ctx-1", child.ParentID())

	grandchild := child.Spawn()
	assert.Equal(t, "ctx-3", grandchild.ID())
	assert.Equal(t, "ctx-2", grandchild.ParentID())
}

func TestSpawn_InheritsValuesAtSpawnTime(t *testing.T) {
	alloc := tlocal.NewAllocator()
	root := NewRoot(NewSeqGenerator("ctx"))
	depth := root.NewLocal(alloc, "depth", value.Int(0), 0)

	_, err := root.Set(depth, value.Int(5))
	require.NoError(t, err)

	child := root.Spawn()
	got, err := child.Ref(depth)
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), got)
}

func TestSpawn_IsolationBothDirections(t *testing.T) {
	alloc := tlocal.NewAllocator()
	root := NewRoot(NewSeqGenerator("ctx"))
	d0 := root.NewLocal(alloc, "d0", value.Int(0), 0)

	prev, err := root.Set(d0, value.Int(5))
	require.NoError(t, err)
	assert.Equal(t, value.Int(0), prev)

	child := root.Spawn()

	// Parent mutates after spawn: child unaffected.
	_, err = root.Set(d0, value.Int(100))
	require.NoError(t, err)
	got, err := child.Ref(d0)
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), got)

	// Child mutates: parent unaffected.
	_, err = child.Set(d0, value.Int(9))
	require.NoError(t, err)
	got, err = root.Ref(d0)
	require.NoError(t, err)
	assert.Equal(t, value.Int(100), got)
}

func TestSpawn_FreshContextSeesInitialForUnwrittenLocal(t *testing.T) {
	alloc := tlocal.NewAllocator()
	root := NewRoot(NewSeqGenerator("ctx"))
	lang := root.NewLocal(alloc, "lang", value.Str("en"), 0)

	child := root.Spawn()
	got, err := child.Ref(lang)
	require.NoError(t, err)
	assert.Equal(t, value.Str("en"), got)
}

func TestNewLocal_GrowsOwnTableOnly(t *testing.T) {
	alloc := tlocal.NewAllocator()
	root := NewRoot(NewSeqGenerator("ctx"))
	other := NewRoot(NewSeqGenerator("other"))

	var last *tlocal.Local
	for i := 0; i <= tlocal.InitSize; i++ {
		last = root.NewLocal(alloc, "", value.Null{}, 0)
	}

	assert.Greater(t, root.Locals().Cap(), last.Index())
	assert.Equal(t, tlocal.InitSize, other.Locals().Cap(),
		"other contexts grow lazily on first access")
}
