package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func attached(t *testing.T) (*Backend, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendFile, DataDir: dir}))
	t.Cleanup(func() { _ = b.Detach() })
	return b, dir
}

func TestAttachCreatesDataDir(t *testing.T) {
	b, dir := attached(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.ErrorIs(t, b.Attach(types.Config{DataDir: dir}), types.ErrAlreadyAttached)
}

func TestDetachedOperations(t *testing.T) {
	b := NewBackend()

	_, _, err := b.Get("k")
	assert.ErrorIs(t, err, types.ErrDetached)
	assert.ErrorIs(t, b.Set("k", nil), types.ErrDetached)
	assert.ErrorIs(t, b.Remove("k"), types.ErrDetached)
	_, err = b.Keys()
	assert.ErrorIs(t, err, types.ErrDetached)
	require.NoError(t, b.Detach())
}

func TestSetGetRemove(t *testing.T) {
	b, dir := attached(t)

	_, ok, err := b.Get("cork-board-state")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set("cork-board-state", []byte(`{"pins":[]}`)))
	got, ok, err := b.Get("cork-board-state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"pins":[]}`, string(got))

	onDisk, err := os.ReadFile(filepath.Join(dir, "cork-board-state.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"pins":[]}`, string(onDisk))

	require.NoError(t, b.Set("cork-board-state", []byte(`{"pins":[1]}`)))
	got, _, _ = b.Get("cork-board-state")
	assert.Equal(t, `{"pins":[1]}`, string(got))

	require.NoError(t, b.Remove("cork-board-state"))
	require.NoError(t, b.Remove("cork-board-state"), "removing twice is fine")
	_, ok, err = b.Get("cork-board-state")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidKeys(t *testing.T) {
	b, _ := attached(t)

	for _, key := range []string{"", "../escape", "a/b", ".hidden", "sp ace"} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, b.Set(key, []byte("x")), types.ErrInvalidKey)
			_, _, err := b.Get(key)
			assert.ErrorIs(t, err, types.ErrInvalidKey)
			assert.ErrorIs(t, b.Remove(key), types.ErrInvalidKey)
		})
	}
}

func TestKeys(t *testing.T) {
	b, dir := attached(t)
	require.NoError(t, b.Set("cork-board-snapshots", []byte("[]")))
	require.NoError(t, b.Set("cork-board-state", []byte("{}")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	keys, err := b.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"cork-board-snapshots", "cork-board-state"}, keys)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	b, dir := attached(t)
	for range 5 {
		require.NoError(t, b.Set("k", []byte("v")))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestValuesSurviveReattach(t *testing.T) {
	dir := t.TempDir()
	first := NewBackend()
	require.NoError(t, first.Attach(types.Config{DataDir: dir}))
	require.NoError(t, first.Set("k", []byte("persisted")))
	require.NoError(t, first.Detach())

	second := NewBackend()
	require.NoError(t, second.Attach(types.Config{DataDir: dir}))
	got, ok, err := second.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", string(got))
}
