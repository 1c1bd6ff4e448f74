package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func TestBackendLifecycle(t *testing.T) {
	b := NewBackend()

	_, _, err := b.Get("k")
	assert.ErrorIs(t, err, types.ErrDetached)
	assert.ErrorIs(t, b.Set("k", []byte("v")), types.ErrDetached)
	assert.ErrorIs(t, b.Remove("k"), types.ErrDetached)

	require.NoError(t, b.Attach(types.Config{Backend: types.BackendMemory}))
	assert.ErrorIs(t, b.Attach(types.Config{Backend: types.BackendMemory}), types.ErrAlreadyAttached)

	require.NoError(t, b.Set("k", []byte("v")))
	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "detach is idempotent")

	require.NoError(t, b.Attach(types.Config{Backend: types.BackendMemory}))
	_, ok, err := b.Get("k")
	require.NoError(t, err)
	assert.False(t, ok, "values do not survive detach")
}

func TestBackendGetSetRemove(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Backend)
		key     string
		want    []byte
		wantOK  bool
		wantErr error
	}{
		{
			name:   "missing key",
			key:    "absent",
			wantOK: false,
		},
		{
			name:   "stored value",
			setup:  func(b *Backend) { _ = b.Set("board", []byte(`{"pins":[]}`)) },
			key:    "board",
			want:   []byte(`{"pins":[]}`),
			wantOK: true,
		},
		{
			name: "overwritten value",
			setup: func(b *Backend) {
				_ = b.Set("board", []byte("one"))
				_ = b.Set("board", []byte("two"))
			},
			key:    "board",
			want:   []byte("two"),
			wantOK: true,
		},
		{
			name: "removed value",
			setup: func(b *Backend) {
				_ = b.Set("board", []byte("one"))
				_ = b.Remove("board")
			},
			key:    "board",
			wantOK: false,
		},
		{
			name:    "empty key",
			key:     "",
			wantErr: types.ErrInvalidKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if tt.setup != nil {
				tt.setup(b)
			}
			got, ok, err := b.Get(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendCopiesValues(t *testing.T) {
	b := New()
	in := []byte("abc")
	require.NoError(t, b.Set("k", in))
	in[0] = 'x'

	got, _, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, _, _ := b.Get("k")
	assert.Equal(t, []byte("abc"), again)
}

func TestBackendKeys(t *testing.T) {
	b := New()
	require.NoError(t, b.Set("b", nil))
	require.NoError(t, b.Set("a", nil))
	keys, err := b.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
	require.NoError(t, b.Remove("missing"))

	require.NoError(t, b.Detach())
	_, err = b.Keys()
	assert.ErrorIs(t, err, types.ErrDetached)
}
