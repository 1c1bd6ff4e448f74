// Package board implements the corkboard state engine: the live pin
// collection, z-order counter, selection, viewport and undo history, plus the
// named snapshot list.
//
// Every operation runs under a single lock and completes before returning.
// Discrete edits (add, update, delete, duplicate, list item add/delete,
// snapshot load) commit an undo entry. Live edits (move, resize, toggle,
// item text, tags, view) do not; a gesture or an explicit Commit turns them
// into one undo step. After each change the board state is flushed to the
// Store on a best-effort basis: write failures are logged, never returned.
package board

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/mesh-intelligence/corkboard/internal/history"
	"github.com/mesh-intelligence/corkboard/internal/metrics"
	"github.com/mesh-intelligence/corkboard/internal/persist"
	"github.com/mesh-intelligence/corkboard/internal/snapshot"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Engine owns one board. Create it with New; the zero value is not usable.
// Engines are independent of each other and safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	pins       []types.Pin
	selectedID string
	zoom       float64
	panX       float64
	panY       float64
	highestZ   int
	gesture    *gesture

	ledger    *history.Ledger
	snapshots *snapshot.Store
	gateway   *persist.Gateway

	log      *slog.Logger
	now      func() time.Time
	newID    func() string
	intn     func(n int) int
	capacity int
	metrics  *metrics.Metrics
}

// New returns an empty board persisting into store. Call Load to restore
// previously saved state.
func New(store types.Store, opts ...Option) *Engine {
	e := &Engine{}
	defaultOptions(e)
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	e.gateway = persist.New(store)
	e.ledger = history.New(e.capacity)
	e.snapshots = snapshot.New(e.gateway,
		snapshot.WithIDFunc(e.newID),
		snapshot.WithClock(e.now),
		snapshot.WithLogger(e.log),
		snapshot.WithSaveErrorHook(func(error) { e.metrics.PersistFailure() }),
	)
	e.resetLocked()
	return e
}

// Load replaces the in-memory board and snapshot list with what the Store
// holds. A missing or unreadable blob leaves the corresponding part in its
// initial empty state; the problem is logged.
func (e *Engine) Load() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetLocked()

	state, ok, err := e.gateway.LoadBoard()
	switch {
	case err != nil:
		e.log.Warn("board state unreadable, starting empty", "key", persist.BoardKey, "error", err)
	case ok:
		e.pins = state.Pins
		e.zoom = clampZoom(state.Zoom)
		e.panX, e.panY = state.PanX, state.PanY
		e.highestZ = types.MaxZIndex(e.pins)
		e.ledger.Reset(e.pins)
	}

	snaps, ok, err := e.gateway.LoadSnapshots()
	switch {
	case err != nil:
		e.log.Warn("snapshots unreadable, starting empty", "key", persist.SnapshotsKey, "error", err)
		e.snapshots.Replace(nil)
	case ok:
		e.snapshots.Replace(snaps)
	default:
		e.snapshots.Replace(nil)
	}

	e.observeLocked()
	e.log.Debug("board loaded", "pins", len(e.pins), "snapshots", e.snapshots.Len())
}

// ClearBoard resets the board to its initial state and erases the stored
// board blob. Snapshots are kept.
func (e *Engine) ClearBoard() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetLocked()
	if err := e.gateway.RemoveBoard(); err != nil {
		e.log.Error("removing board state failed", "error", err)
		e.metrics.PersistFailure()
	}
	e.observeLocked()
}

// Undo restores the previous history entry and clears the selection.
// Returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	pins, ok := e.ledger.Undo()
	if !ok {
		return false
	}
	e.restoreLocked(pins)
	e.metrics.Undo()
	return true
}

// Redo restores the next history entry and clears the selection.
// Returns false when there is nothing to redo.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	pins, ok := e.ledger.Redo()
	if !ok {
		return false
	}
	e.restoreLocked(pins)
	e.metrics.Redo()
	return true
}

// CanUndo reports whether Undo would change the board.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.CanUndo()
}

// CanRedo reports whether Redo would change the board.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.CanRedo()
}

// Commit records the current pins as one undo step if they differ from the
// entry under the history cursor. Use it after live edits made outside a
// gesture. Returns true if an entry was added, or ErrGestureActive while a
// gesture is running; EndGesture commits that one.
func (e *Engine) Commit() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gesture != nil {
		return false, types.ErrGestureActive
	}
	if reflect.DeepEqual(e.pins, e.ledger.Current()) {
		return false, nil
	}
	e.commitLocked("commit")
	e.flushLocked()
	return true, nil
}

// Pins returns a copy of the live pins in collection order.
func (e *Engine) Pins() []types.Pin {
	e.mu.Lock()
	defer e.mu.Unlock()
	return types.ClonePins(e.pins)
}

// Pin returns a copy of the pin with the given ID.
func (e *Engine) Pin(id string) (types.Pin, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return types.Pin{}, false
	}
	return e.pins[i].Clone(), true
}

// SelectedID returns the selected pin ID, or "" when nothing is selected.
func (e *Engine) SelectedID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectedID
}

// HighestZIndex returns the last z-index issued.
func (e *Engine) HighestZIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highestZ
}

// HistoryLen returns the number of entries in the undo ledger.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Len()
}

func (e *Engine) resetLocked() {
	e.pins = []types.Pin{}
	e.selectedID = ""
	e.zoom = 1
	e.panX, e.panY = 0, 0
	e.highestZ = 0
	e.gesture = nil
	e.ledger.Reset(nil)
}

// restoreLocked installs pins taken from the ledger. The z-index counter is
// left alone so values issued later stay above everything issued before.
func (e *Engine) restoreLocked(pins []types.Pin) {
	e.pins = pins
	e.selectedID = ""
	e.gesture = nil
	e.observeLocked()
	e.flushLocked()
}

func (e *Engine) indexLocked(id string) int {
	return slices.IndexFunc(e.pins, func(p types.Pin) bool {
		return p.ID == id
	})
}

// commitLocked appends the live pins to the ledger. A gesture still running
// ends here: its geometry so far belongs to this entry, and EndGesture then
// reports ErrNoGesture.
func (e *Engine) commitLocked(op string) {
	e.gesture = nil
	e.ledger.Commit(e.pins)
	e.metrics.Commit(op)
	e.observeLocked()
}

func (e *Engine) observeLocked() {
	e.metrics.Observe(len(e.pins), e.ledger.Len())
}

// flushLocked writes {pins, zoom, pan} to the Store.
func (e *Engine) flushLocked() {
	err := e.gateway.SaveBoard(persist.BoardState{
		Pins: e.pins,
		Zoom: e.zoom,
		PanX: e.panX,
		PanY: e.panY,
	})
	if err != nil {
		e.log.Error("saving board state failed", "pins", len(e.pins), "error", err)
		e.metrics.PersistFailure()
	}
}
