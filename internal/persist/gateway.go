// Package persist is the boundary between the board and its key-value
// medium. It encodes board state and the snapshot list as JSON blobs under
// two fixed keys and holds no board logic of its own.
package persist

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Storage keys.
const (
	BoardKey     = "cork-board-state"
	SnapshotsKey = "cork-board-snapshots"
)

// BoardState is the persisted part of the live board.
type BoardState struct {
	Pins []types.Pin
	Zoom float64
	PanX float64
	PanY float64
}

// Gateway reads and writes board blobs through a types.Store.
type Gateway struct {
	store types.Store
}

// New returns a Gateway over store.
func New(store types.Store) *Gateway {
	return &Gateway{store: store}
}

// LoadBoard reads the board blob. ok is false when no blob is stored.
// A blob that cannot be decoded is returned as an error.
func (g *Gateway) LoadBoard() (state BoardState, ok bool, err error) {
	data, ok, err := g.store.Get(BoardKey)
	if err != nil || !ok {
		return BoardState{}, false, err
	}
	state, err = DecodeBoard(data)
	if err != nil {
		return BoardState{}, false, err
	}
	return state, true, nil
}

// SaveBoard writes the board blob.
func (g *Gateway) SaveBoard(state BoardState) error {
	data, err := EncodeBoard(state)
	if err != nil {
		return err
	}
	return g.store.Set(BoardKey, data)
}

// RemoveBoard deletes the board blob.
func (g *Gateway) RemoveBoard() error {
	return g.store.Remove(BoardKey)
}

// LoadSnapshots reads the snapshot list. ok is false when no blob is stored.
func (g *Gateway) LoadSnapshots() (snaps []types.Snapshot, ok bool, err error) {
	data, ok, err := g.store.Get(SnapshotsKey)
	if err != nil || !ok {
		return nil, false, err
	}
	var recs []snapshotJSON
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", SnapshotsKey, err)
	}
	snaps = make([]types.Snapshot, 0, len(recs))
	for _, rec := range recs {
		if rec.ID == "" {
			continue
		}
		snaps = append(snaps, types.Snapshot{
			ID:        rec.ID,
			Name:      rec.Name,
			Pins:      fromPinsJSON(rec.Pins),
			CreatedAt: time.UnixMilli(rec.CreatedAt),
		})
	}
	return snaps, true, nil
}

// SaveSnapshots writes the snapshot list.
func (g *Gateway) SaveSnapshots(snaps []types.Snapshot) error {
	recs := make([]snapshotJSON, 0, len(snaps))
	for _, s := range snaps {
		recs = append(recs, snapshotJSON{
			ID:        s.ID,
			Name:      s.Name,
			Pins:      toPinsJSON(s.Pins),
			CreatedAt: s.CreatedAt.UnixMilli(),
		})
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", SnapshotsKey, err)
	}
	return g.store.Set(SnapshotsKey, data)
}

// EncodeBoard serializes state in the stored blob format.
func EncodeBoard(state BoardState) ([]byte, error) {
	data, err := json.Marshal(boardJSON{
		Pins: toPinsJSON(state.Pins),
		Zoom: state.Zoom,
		PanX: state.PanX,
		PanY: state.PanY,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", BoardKey, err)
	}
	return data, nil
}

// DecodeBoard parses a stored board blob. A zero or absent zoom decodes as 1.
func DecodeBoard(data []byte) (BoardState, error) {
	var rec boardJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return BoardState{}, fmt.Errorf("decoding %s: %w", BoardKey, err)
	}
	state := BoardState{
		Pins: fromPinsJSON(rec.Pins),
		Zoom: rec.Zoom,
		PanX: rec.PanX,
		PanY: rec.PanY,
	}
	if state.Zoom == 0 {
		state.Zoom = 1
	}
	return state, nil
}
