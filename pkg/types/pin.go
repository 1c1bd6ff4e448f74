package types

import (
	"math"
	"slices"
	"time"
)

// PinType is the kind of object placed on the board. It is fixed at creation.
type PinType string

// Pin types.
const (
	PinText  PinType = "text"
	PinImage PinType = "image"
	PinList  PinType = "list"
)

// validPinTypes is the set of recognized pin types.
var validPinTypes = map[PinType]bool{
	PinText:  true,
	PinImage: true,
	PinList:  true,
}

// Valid reports whether t is one of the recognized pin types.
func (t PinType) Valid() bool {
	return validPinTypes[t]
}

// ListItem is one checklist entry. It is owned by its parent Pin.
type ListItem struct {
	ID        string
	Text      string
	Completed bool
}

// Pin is a placed object on the board.
type Pin struct {
	ID      string  // UUID v7, generated on creation.
	Type    PinType // One of the PinType constants.
	X       float64 // Board coordinates, unbounded.
	Y       float64
	Width   float64
	Height  float64
	Content string // Note body, image caption or checklist title.

	// ListItems is non-nil only for list pins. Order is display order.
	ListItems []ListItem

	// ImageURL references the image data of an image pin.
	ImageURL string

	// ImageMinWidth and ImageMinHeight floor resizing. Zero means unset and
	// the defaults apply (see MinSize).
	ImageMinWidth  float64
	ImageMinHeight float64

	Color     string
	Tags      []string
	ZIndex    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the pin.
func (p Pin) Clone() Pin {
	out := p
	if p.ListItems != nil {
		out.ListItems = slices.Clone(p.ListItems)
	}
	if p.Tags != nil {
		out.Tags = slices.Clone(p.Tags)
	}
	return out
}

// ClonePins returns a deep copy of pins. The result is never nil.
func ClonePins(pins []Pin) []Pin {
	out := make([]Pin, len(pins))
	for i := range pins {
		out[i] = pins[i].Clone()
	}
	return out
}

// MinSize returns the resize floor for the pin.
func (p Pin) MinSize() (width, height float64) {
	width, height = p.ImageMinWidth, p.ImageMinHeight
	if width <= 0 {
		width = DefaultMinWidth
	}
	if height <= 0 {
		height = DefaultMinHeight
	}
	return width, height
}

// HasTag reports whether the pin carries tag.
func (p Pin) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// AddTag appends tag unless it is already present.
// Returns true if the tag set changed.
func (p *Pin) AddTag(tag string) bool {
	if p.HasTag(tag) {
		return false
	}
	p.Tags = append(p.Tags, tag)
	return true
}

// RemoveTag removes tag if present. Returns true if the tag set changed.
func (p *Pin) RemoveTag(tag string) bool {
	i := slices.Index(p.Tags, tag)
	if i < 0 {
		return false
	}
	p.Tags = slices.Delete(p.Tags, i, i+1)
	return true
}

// ItemIndex returns the index of the list item with the given ID, or -1.
func (p Pin) ItemIndex(itemID string) int {
	return slices.IndexFunc(p.ListItems, func(it ListItem) bool {
		return it.ID == itemID
	})
}

// CompletedItems returns the number of completed list items.
func (p Pin) CompletedItems() int {
	n := 0
	for _, it := range p.ListItems {
		if it.Completed {
			n++
		}
	}
	return n
}

// MaxZIndex returns the largest ZIndex in pins, or 0 when pins is empty.
func MaxZIndex(pins []Pin) int {
	highest := 0
	for _, p := range pins {
		highest = max(highest, p.ZIndex)
	}
	return highest
}

// StackOrder returns a copy of pins sorted by ZIndex ascending, the order in
// which they are painted. Pins with equal ZIndex keep their relative order.
func StackOrder(pins []Pin) []Pin {
	out := ClonePins(pins)
	slices.SortStableFunc(out, func(a, b Pin) int {
		return a.ZIndex - b.ZIndex
	})
	return out
}

// Finite reports whether every value is a finite number.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
