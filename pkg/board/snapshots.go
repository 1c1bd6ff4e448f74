package board

import (
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// SaveSnapshot stores a copy of the live pins under name. The snapshot list
// is persisted at once; the undo history is not touched. Returns the new
// snapshot's ID, or ErrInvalidName for a blank name.
func (e *Engine) SaveSnapshot(name string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.snapshots.Save(name, e.pins)
	if err != nil {
		return "", err
	}
	e.log.Debug("snapshot saved", "id", snap.ID, "name", snap.Name, "pins", len(snap.Pins))
	return snap.ID, nil
}

// LoadSnapshot replaces the live pins with a copy of the snapshot's pins,
// clears the selection and commits, so the load can be undone. The
// snapshot itself is unchanged.
//
// The z-index counter becomes the larger of its current value and the
// highest z-index in the snapshot, so later values stay above every value
// issued before. It is not reset to the snapshot's maximum alone: undo can
// bring back pins stacked above that maximum, and new pins must not tie or
// sink below them.
func (e *Engine) LoadSnapshot(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, ok := e.snapshots.Get(id)
	if !ok {
		return types.ErrNotFound
	}
	e.pins = snap.Pins
	e.highestZ = max(e.highestZ, types.MaxZIndex(snap.Pins))
	e.selectedID = ""
	e.gesture = nil
	e.commitLocked("load_snapshot")
	e.flushLocked()
	return nil
}

// DeleteSnapshot removes a snapshot.
func (e *Engine) DeleteSnapshot(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshots.Delete(id)
}

// RenameSnapshot changes a snapshot's name.
func (e *Engine) RenameSnapshot(id, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshots.Rename(id, name)
}

// Snapshot returns a copy of one snapshot.
func (e *Engine) Snapshot(id string) (types.Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshots.Get(id)
}

// Snapshots returns copies of all snapshots in creation order.
func (e *Engine) Snapshots() []types.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshots.List()
}
