package types

import "time"

// Snapshot is a named, user-saved copy of the board's pins. Its pins are a
// frozen deep copy; only Name may change after creation.
type Snapshot struct {
	ID        string
	Name      string
	Pins      []Pin
	CreatedAt time.Time
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Pins = ClonePins(s.Pins)
	return out
}
