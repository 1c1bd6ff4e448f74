package board

import (
	"slices"
	"strings"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// AddListItem appends an unchecked item to a list pin and commits.
// Returns the item ID.
func (e *Engine) AddListItem(pinID, text string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, err := e.listPinLocked(pinID)
	if err != nil {
		return "", err
	}
	item := types.ListItem{ID: e.newID(), Text: text}
	e.pins[i].ListItems = append(e.pins[i].ListItems, item)
	e.pins[i].UpdatedAt = e.now()
	e.commitLocked("add_item")
	e.flushLocked()
	return item.ID, nil
}

// DeleteListItem removes an item from a list pin and commits.
func (e *Engine) DeleteListItem(pinID, itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, j, err := e.listItemLocked(pinID, itemID)
	if err != nil {
		return err
	}
	e.pins[i].ListItems = slices.Delete(e.pins[i].ListItems, j, j+1)
	e.pins[i].UpdatedAt = e.now()
	e.commitLocked("delete_item")
	e.flushLocked()
	return nil
}

// ToggleListItem flips an item's completed flag. Not committed.
func (e *Engine) ToggleListItem(pinID, itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, j, err := e.listItemLocked(pinID, itemID)
	if err != nil {
		return err
	}
	item := &e.pins[i].ListItems[j]
	item.Completed = !item.Completed
	e.pins[i].UpdatedAt = e.now()
	e.flushLocked()
	return nil
}

// UpdateListItem merges patch into an item. Not committed.
func (e *Engine) UpdateListItem(pinID, itemID string, patch types.ListItemPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, j, err := e.listItemLocked(pinID, itemID)
	if err != nil {
		return err
	}
	patch.Apply(&e.pins[i].ListItems[j])
	e.pins[i].UpdatedAt = e.now()
	e.flushLocked()
	return nil
}

func (e *Engine) listPinLocked(pinID string) (int, error) {
	i := e.indexLocked(pinID)
	if i < 0 {
		return -1, types.ErrNotFound
	}
	if e.pins[i].Type != types.PinList {
		return -1, types.ErrWrongPinType
	}
	return i, nil
}

func (e *Engine) listItemLocked(pinID, itemID string) (int, int, error) {
	i, err := e.listPinLocked(pinID)
	if err != nil {
		return -1, -1, err
	}
	j := e.pins[i].ItemIndex(itemID)
	if j < 0 {
		return -1, -1, types.ErrNotFound
	}
	return i, j, nil
}

// AddTag adds a tag to the pin. Surrounding space is trimmed; a blank tag
// returns ErrInvalidTag. Adding a present tag changes nothing. Not committed.
func (e *Engine) AddTag(pinID, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return types.ErrInvalidTag
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(pinID)
	if i < 0 {
		return types.ErrNotFound
	}
	if e.pins[i].AddTag(tag) {
		e.pins[i].UpdatedAt = e.now()
		e.flushLocked()
	}
	return nil
}

// RemoveTag removes a tag from the pin if present. Not committed.
func (e *Engine) RemoveTag(pinID, tag string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexLocked(pinID)
	if i < 0 {
		return types.ErrNotFound
	}
	if e.pins[i].RemoveTag(tag) {
		e.pins[i].UpdatedAt = e.now()
		e.flushLocked()
	}
	return nil
}
