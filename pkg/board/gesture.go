package board

import (
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// GestureKind is the kind of continuous edit a gesture performs.
type GestureKind int

// Gesture kinds.
const (
	GestureMove GestureKind = iota + 1
	GestureResize
)

func (k GestureKind) String() string {
	switch k {
	case GestureMove:
		return "move"
	case GestureResize:
		return "resize"
	default:
		return "unknown"
	}
}

// gesture tracks one in-progress move or resize of a single pin.
type gesture struct {
	kind  GestureKind
	pinID string

	// Geometry at BeginGesture, used by CancelGesture and to decide whether
	// EndGesture has anything to commit.
	x, y          float64
	width, height float64
	updatedAt     time.Time
}

// Gesture describes the active gesture.
type Gesture struct {
	Kind  GestureKind
	PinID string
}

// BeginGesture starts a move or resize of the pin. Only one gesture may be
// active at a time; starting another returns ErrGestureActive.
func (e *Engine) BeginGesture(kind GestureKind, pinID string) error {
	if kind != GestureMove && kind != GestureResize {
		return types.ErrInvalidKind
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gesture != nil {
		return types.ErrGestureActive
	}
	i := e.indexLocked(pinID)
	if i < 0 {
		return types.ErrNotFound
	}
	p := e.pins[i]
	e.gesture = &gesture{
		kind:      kind,
		pinID:     pinID,
		x:         p.X,
		y:         p.Y,
		width:     p.Width,
		height:    p.Height,
		updatedAt: p.UpdatedAt,
	}
	return nil
}

// UpdateGesture applies one frame of the active gesture: (a, b) is the new
// position for a move and the new size for a resize. Resizes are clamped to
// the pin's minimum. Nothing is committed or persisted. Non-finite values
// return ErrInvalidPatch and leave the gesture running.
func (e *Engine) UpdateGesture(a, b float64) error {
	if !types.Finite(a, b) {
		return types.ErrInvalidPatch
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	i, err := e.gestureLocked()
	if err != nil {
		return err
	}
	switch e.gesture.kind {
	case GestureMove:
		e.moveLocked(i, a, b)
	case GestureResize:
		e.resizeLocked(i, a, b)
	}
	return nil
}

// EndGesture finishes the active gesture. If the pin's geometry changed the
// result is committed as a single undo step. The board is persisted either
// way. Returns whether a commit happened.
func (e *Engine) EndGesture() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, err := e.gestureLocked()
	if err != nil {
		return false, err
	}
	g := e.gesture
	e.gesture = nil

	p := e.pins[i]
	changed := p.X != g.x || p.Y != g.y || p.Width != g.width || p.Height != g.height
	if changed {
		e.commitLocked(g.kind.String())
	}
	e.flushLocked()
	return changed, nil
}

// CancelGesture abandons the active gesture and puts the pin back where it
// was when the gesture began.
func (e *Engine) CancelGesture() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, err := e.gestureLocked()
	if err != nil {
		return err
	}
	g := e.gesture
	e.gesture = nil

	p := &e.pins[i]
	p.X, p.Y = g.x, g.y
	p.Width, p.Height = g.width, g.height
	p.UpdatedAt = g.updatedAt
	return nil
}

// ActiveGesture returns the gesture in progress, if any.
func (e *Engine) ActiveGesture() (Gesture, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gesture == nil {
		return Gesture{}, false
	}
	return Gesture{Kind: e.gesture.kind, PinID: e.gesture.pinID}, true
}

// gestureLocked returns the index of the gesture's pin. A gesture whose pin
// has disappeared is dropped.
func (e *Engine) gestureLocked() (int, error) {
	if e.gesture == nil {
		return -1, types.ErrNoGesture
	}
	i := e.indexLocked(e.gesture.pinID)
	if i < 0 {
		e.gesture = nil
		return -1, types.ErrNotFound
	}
	return i, nil
}
