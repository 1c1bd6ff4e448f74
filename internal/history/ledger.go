// Package history implements the board's linear undo/redo ledger.
//
// The ledger stores full copies of the pin collection rather than diffs. Every
// entry going in and every entry coming out is deep-copied, so callers can
// mutate what they pass or receive without touching recorded history.
package history

import "github.com/mesh-intelligence/corkboard/pkg/types"

// Ledger is a bounded, branch-free sequence of pin-collection states with a
// cursor. It is not safe for concurrent use; the board serializes access.
type Ledger struct {
	entries  [][]types.Pin
	cursor   int
	capacity int
}

// New returns a ledger holding a single empty entry. A capacity below 1
// selects types.DefaultHistoryCapacity.
func New(capacity int) *Ledger {
	if capacity < 1 {
		capacity = types.DefaultHistoryCapacity
	}
	l := &Ledger{capacity: capacity}
	l.Reset(nil)
	return l
}

// Reset discards all entries and starts over from a single entry holding pins.
func (l *Ledger) Reset(pins []types.Pin) {
	l.entries = [][]types.Pin{types.ClonePins(pins)}
	l.cursor = 0
}

// Commit records pins as the newest entry. Entries after the cursor are
// discarded first. When the ledger exceeds capacity the oldest entry is
// evicted.
func (l *Ledger) Commit(pins []types.Pin) {
	l.entries = append(l.entries[:l.cursor+1], types.ClonePins(pins))
	if len(l.entries) > l.capacity {
		l.entries[0] = nil
		l.entries = l.entries[1:]
	}
	l.cursor = len(l.entries) - 1
}

// Undo moves the cursor back one entry and returns a copy of it.
// Returns false, leaving the cursor in place, at the first entry.
func (l *Ledger) Undo() ([]types.Pin, bool) {
	if !l.CanUndo() {
		return nil, false
	}
	l.cursor--
	return types.ClonePins(l.entries[l.cursor]), true
}

// Redo moves the cursor forward one entry and returns a copy of it.
// Returns false, leaving the cursor in place, at the last entry.
func (l *Ledger) Redo() ([]types.Pin, bool) {
	if !l.CanRedo() {
		return nil, false
	}
	l.cursor++
	return types.ClonePins(l.entries[l.cursor]), true
}

// Current returns a copy of the entry under the cursor.
func (l *Ledger) Current() []types.Pin {
	return types.ClonePins(l.entries[l.cursor])
}

// CanUndo reports whether an earlier entry exists.
func (l *Ledger) CanUndo() bool { return l.cursor > 0 }

// CanRedo reports whether a later entry exists.
func (l *Ledger) CanRedo() bool { return l.cursor < len(l.entries)-1 }

// Len returns the number of entries held.
func (l *Ledger) Len() int { return len(l.entries) }

// Cursor returns the index of the current entry.
func (l *Ledger) Cursor() int { return l.cursor }

// Capacity returns the maximum number of entries held.
func (l *Ledger) Capacity() int { return l.capacity }
