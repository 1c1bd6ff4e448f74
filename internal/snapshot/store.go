// Package snapshot holds the named, user-saved board states. Snapshots live
// outside the undo history, are unbounded, and are written through to their
// own storage key on every change.
package snapshot

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Saver persists the full snapshot list.
type Saver interface {
	SaveSnapshots(snaps []types.Snapshot) error
}

// Store is the in-memory snapshot list plus its write-through persistence.
// It is not safe for concurrent use; the board serializes access.
type Store struct {
	items []types.Snapshot
	saver Saver
	newID func() string
	now   func() time.Time
	log   *slog.Logger

	// onSaveError, when set, is called after a failed write.
	onSaveError func(error)
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc sets the snapshot ID generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock sets the time source for CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithLogger sets the logger used to report write failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithSaveErrorHook registers fn to observe write failures.
func WithSaveErrorHook(fn func(error)) Option {
	return func(s *Store) { s.onSaveError = fn }
}

// New returns an empty Store writing through saver.
func New(saver Saver, opts ...Option) *Store {
	s := &Store{
		saver: saver,
		newID: func() string { return "" },
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Replace swaps in a loaded snapshot list without writing it back.
func (s *Store) Replace(snaps []types.Snapshot) {
	s.items = make([]types.Snapshot, 0, len(snaps))
	for _, snap := range snaps {
		s.items = append(s.items, snap.Clone())
	}
}

// Save records a copy of pins under name and persists the list.
// Returns ErrInvalidName if name is blank.
func (s *Store) Save(name string, pins []types.Pin) (types.Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Snapshot{}, types.ErrInvalidName
	}
	snap := types.Snapshot{
		ID:        s.newID(),
		Name:      name,
		Pins:      types.ClonePins(pins),
		CreatedAt: s.now(),
	}
	s.items = append(s.items, snap)
	s.persist()
	return snap.Clone(), nil
}

// Get returns a copy of the snapshot with the given ID.
func (s *Store) Get(id string) (types.Snapshot, bool) {
	i := s.index(id)
	if i < 0 {
		return types.Snapshot{}, false
	}
	return s.items[i].Clone(), true
}

// Delete removes the snapshot. Returns ErrNotFound for an unknown ID.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return types.ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.persist()
	return nil
}

// Rename changes a snapshot's name. Returns ErrInvalidName for a blank name
// and ErrNotFound for an unknown ID.
func (s *Store) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.ErrInvalidName
	}
	i := s.index(id)
	if i < 0 {
		return types.ErrNotFound
	}
	s.items[i].Name = name
	s.persist()
	return nil
}

// List returns copies of all snapshots in creation order.
func (s *Store) List() []types.Snapshot {
	out := make([]types.Snapshot, len(s.items))
	for i, snap := range s.items {
		out[i] = snap.Clone()
	}
	return out
}

// Len returns the number of snapshots.
func (s *Store) Len() int { return len(s.items) }

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(snap types.Snapshot) bool {
		return snap.ID == id
	})
}

// persist writes the list. Failures are logged and otherwise ignored; the
// in-memory list stays authoritative for the session.
func (s *Store) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.SaveSnapshots(s.items); err != nil {
		s.log.Error("saving snapshots failed", "count", len(s.items), "error", err)
		if s.onSaveError != nil {
			s.onSaveError(err)
		}
	}
}
