package board

import (
	"slices"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// duplicateOffset is how far a duplicate is shifted from its source.
const duplicateOffset = 30

// AddPin creates a pin from d, places it above every other pin, selects it
// and commits. Returns the new pin's ID.
func (e *Engine) AddPin(d types.Draft) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.addLocked(d)
	e.commitLocked("add")
	e.flushLocked()
	return id, nil
}

// DuplicatePin adds a copy of the pin offset by (+30, +30) and commits.
// Returns the copy's ID.
func (e *Engine) DuplicatePin(id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return "", types.ErrNotFound
	}
	newID := e.addLocked(types.DraftFromPin(e.pins[i], duplicateOffset, duplicateOffset))
	e.commitLocked("duplicate")
	e.flushLocked()
	return newID, nil
}

// addLocked inserts a pin built from a validated draft.
func (e *Engine) addLocked(d types.Draft) string {
	tags, _ := types.NormalizeTags(d.Tags)
	now := e.now()
	e.highestZ++

	p := types.Pin{
		ID:        e.newID(),
		Type:      d.Type,
		X:         d.X,
		Y:         d.Y,
		Width:     d.Width,
		Height:    d.Height,
		Content:   d.Content,
		Color:     d.Color,
		Tags:      tags,
		ZIndex:    e.highestZ,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch d.Type {
	case types.PinList:
		p.ListItems = slices.Clone(d.ListItems)
		if p.ListItems == nil {
			p.ListItems = []types.ListItem{}
		}
	case types.PinImage:
		p.ImageURL = d.ImageURL
		p.ImageMinWidth, p.ImageMinHeight = d.ImageMinWidth, d.ImageMinHeight
	}
	if p.Color == "" {
		p.Color = types.PickColor(e.intn)
	}

	e.pins = append(e.pins, p)
	e.selectedID = p.ID
	return p.ID
}

// UpdatePin merges patch into the pin, refreshes UpdatedAt and commits.
// The patch is checked with PinPatch.Validate against the pin's type.
func (e *Engine) UpdatePin(id string, patch types.PinPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	p := &e.pins[i]
	if err := patch.Validate(p.Type); err != nil {
		return err
	}

	patch.Apply(p)
	p.UpdatedAt = e.now()
	e.commitLocked("update")
	e.flushLocked()
	return nil
}

// DeletePin removes the pin and commits. A selection or gesture on the pin
// is dropped.
func (e *Engine) DeletePin(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	e.pins = slices.Delete(e.pins, i, i+1)
	if e.selectedID == id {
		e.selectedID = ""
	}
	if e.gesture != nil && e.gesture.pinID == id {
		e.gesture = nil
	}
	e.commitLocked("delete")
	e.flushLocked()
	return nil
}

// MovePin sets the pin's position without committing. Callers tracking a
// drag should prefer BeginGesture, or call Commit when the drag ends.
// Non-finite coordinates return ErrInvalidPatch.
func (e *Engine) MovePin(id string, x, y float64) error {
	if !types.Finite(x, y) {
		return types.ErrInvalidPatch
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	e.moveLocked(i, x, y)
	e.flushLocked()
	return nil
}

// ResizePin sets the pin's size, clamped to its minimum, without committing.
// Non-finite sizes return ErrInvalidPatch.
func (e *Engine) ResizePin(id string, width, height float64) error {
	if !types.Finite(width, height) {
		return types.ErrInvalidPatch
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	e.resizeLocked(i, width, height)
	e.flushLocked()
	return nil
}

func (e *Engine) moveLocked(i int, x, y float64) {
	e.pins[i].X, e.pins[i].Y = x, y
	e.pins[i].UpdatedAt = e.now()
}

func (e *Engine) resizeLocked(i int, width, height float64) {
	minW, minH := e.pins[i].MinSize()
	e.pins[i].Width = max(width, minW)
	e.pins[i].Height = max(height, minH)
	e.pins[i].UpdatedAt = e.now()
}

// BringToFront gives the pin a z-index above every value issued so far.
// Not committed.
func (e *Engine) BringToFront(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	e.raiseLocked(i)
	e.flushLocked()
	return nil
}

func (e *Engine) raiseLocked(i int) {
	e.highestZ++
	e.pins[i].ZIndex = e.highestZ
}

// SelectPin selects the pin and brings it to front. An empty id clears the
// selection. Unknown IDs return ErrNotFound and keep the current selection.
func (e *Engine) SelectPin(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id == "" {
		e.selectedID = ""
		return nil
	}
	i := e.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	e.selectedID = id
	e.raiseLocked(i)
	e.flushLocked()
	return nil
}
