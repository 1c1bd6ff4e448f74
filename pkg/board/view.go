package board

import (
	"math"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Zoom bounds.
const (
	MinZoom = 0.25
	MaxZoom = 3.0
)

// View is the viewport transform.
type View struct {
	Zoom float64
	PanX float64
	PanY float64
}

// View returns the current viewport.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return View{Zoom: e.zoom, PanX: e.panX, PanY: e.panY}
}

// SetZoom sets the zoom factor clamped to [MinZoom, MaxZoom]. NaN is
// ignored; infinities clamp to the nearest bound.
func (e *Engine) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.zoom = clampZoom(z)
	e.flushLocked()
}

// SetPan sets the pan offset. Non-finite offsets return ErrInvalidPatch.
func (e *Engine) SetPan(x, y float64) error {
	if !types.Finite(x, y) {
		return types.ErrInvalidPatch
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.panX, e.panY = x, y
	e.flushLocked()
	return nil
}

// ResetView restores zoom 1 and pan (0, 0).
func (e *Engine) ResetView() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.zoom = 1
	e.panX, e.panY = 0, 0
	e.flushLocked()
}

func clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return min(max(z, MinZoom), MaxZoom)
}
