package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func pinsN(n int) []types.Pin {
	pins := make([]types.Pin, n)
	for i := range pins {
		pins[i] = types.Pin{ID: fmt.Sprintf("p%d", i), Type: types.PinText, ZIndex: i + 1, Tags: []string{}}
	}
	return pins
}

func TestNewLedger(t *testing.T) {
	l := New(0)
	assert.Equal(t, types.DefaultHistoryCapacity, l.Capacity())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 0, l.Cursor())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
	assert.Empty(t, l.Current())
}

func TestCommitUndoRedo(t *testing.T) {
	l := New(10)
	for i := 1; i <= 3; i++ {
		l.Commit(pinsN(i))
	}
	require.Equal(t, 4, l.Len())
	require.True(t, l.CanUndo())
	require.False(t, l.CanRedo())

	got, ok := l.Undo()
	require.True(t, ok)
	assert.Len(t, got, 2)

	got, ok = l.Undo()
	require.True(t, ok)
	assert.Len(t, got, 1)
	assert.True(t, l.CanRedo())

	got, ok = l.Redo()
	require.True(t, ok)
	assert.Equal(t, pinsN(2), got)

	got, ok = l.Redo()
	require.True(t, ok)
	assert.Equal(t, pinsN(3), got)

	_, ok = l.Redo()
	assert.False(t, ok, "redo at tail is a no-op")
	assert.Equal(t, 3, l.Cursor())
}

func TestUndoAtHeadIsNoop(t *testing.T) {
	l := New(5)
	got, ok := l.Undo()
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 0, l.Cursor())
}

func TestCommitAfterUndoTruncatesRedo(t *testing.T) {
	l := New(10)
	l.Commit(pinsN(1))
	l.Commit(pinsN(2))
	l.Commit(pinsN(3))

	l.Undo()
	l.Undo()
	require.True(t, l.CanRedo())

	l.Commit(pinsN(5))
	assert.False(t, l.CanRedo())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, pinsN(5), l.Current())

	got, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, pinsN(1), got)
}

func TestCapacityEvictsOldest(t *testing.T) {
	l := New(50)
	for i := 1; i <= 120; i++ {
		l.Commit(pinsN(i % 7))
		require.LessOrEqual(t, l.Len(), 50)
	}
	assert.Equal(t, 50, l.Len())
	assert.Equal(t, 49, l.Cursor())

	// The most recent 50 states stay reachable, newest first.
	for i := 119; i >= 71; i-- {
		got, ok := l.Undo()
		require.True(t, ok)
		assert.Len(t, got, i%7)
	}
	_, ok := l.Undo()
	assert.False(t, ok)
}

func TestCapacityOne(t *testing.T) {
	l := New(1)
	l.Commit(pinsN(2))
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.CanUndo())
	assert.Equal(t, pinsN(2), l.Current())
}

func TestEntriesAreIsolated(t *testing.T) {
	l := New(10)
	pins := pinsN(1)
	pins[0].ListItems = []types.ListItem{{ID: "i", Text: "a"}}
	l.Commit(pins)

	pins[0].Content = "changed after commit"
	pins[0].ListItems[0].Text = "changed after commit"

	l.Commit(pinsN(0))
	got, ok := l.Undo()
	require.True(t, ok)
	assert.Empty(t, got[0].Content)
	assert.Equal(t, "a", got[0].ListItems[0].Text)

	got[0].Tags = append(got[0].Tags, "mutated")
	got[0].ListItems[0].Text = "mutated"
	again := l.Current()
	assert.Empty(t, again[0].Tags)
	assert.Equal(t, "a", again[0].ListItems[0].Text)
}

func TestReset(t *testing.T) {
	l := New(10)
	l.Commit(pinsN(1))
	l.Commit(pinsN(2))
	l.Reset(pinsN(3))
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.CanUndo())
	assert.Equal(t, pinsN(3), l.Current())
}
