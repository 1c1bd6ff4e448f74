package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Draft carries the caller-supplied fields of a new pin. The board assigns
// ID, ZIndex and timestamps.
type Draft struct {
	Type           PinType `validate:"required,oneof=text image list"`
	X              float64
	Y              float64
	Width          float64 `validate:"gt=0"`
	Height         float64 `validate:"gt=0"`
	Content        string
	ListItems      []ListItem
	ImageURL       string  `validate:"required_if=Type image"`
	ImageMinWidth  float64 `validate:"gte=0"`
	ImageMinHeight float64 `validate:"gte=0"`
	Color          string  // Empty picks a palette color.
	Tags           []string
}

// Validate checks the draft against the entity rules. Failures wrap
// ErrInvalidDraft.
func (d Draft) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	if !Finite(d.X, d.Y, d.Width, d.Height, d.ImageMinWidth, d.ImageMinHeight) {
		return fmt.Errorf("%w: coordinates and sizes must be finite", ErrInvalidDraft)
	}
	if _, err := NormalizeTags(d.Tags); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	return nil
}

// DraftFromPin returns a draft that recreates p, offset by (dx, dy).
// Used to duplicate pins.
func DraftFromPin(p Pin, dx, dy float64) Draft {
	d := Draft{
		Type:           p.Type,
		X:              p.X + dx,
		Y:              p.Y + dy,
		Width:          p.Width,
		Height:         p.Height,
		Content:        p.Content,
		ImageURL:       p.ImageURL,
		ImageMinWidth:  p.ImageMinWidth,
		ImageMinHeight: p.ImageMinHeight,
		Color:          p.Color,
		Tags:           slices.Clone(p.Tags),
	}
	if p.ListItems != nil {
		d.ListItems = slices.Clone(p.ListItems)
	}
	return d
}

// PinPatch holds a partial update. Nil fields are left untouched.
// ID, Type, ZIndex and timestamps are not patchable.
type PinPatch struct {
	X              *float64
	Y              *float64
	Width          *float64
	Height         *float64
	Content        *string
	ListItems      *[]ListItem
	ImageURL       *string
	ImageMinWidth  *float64
	ImageMinHeight *float64
	Color          *string
	Tags           *[]string
}

// Empty reports whether the patch sets no fields.
func (pp PinPatch) Empty() bool {
	return pp == PinPatch{}
}

// Validate checks the patch against a pin of type t. Non-finite numbers,
// a non-positive width or height and a negative image floor return
// ErrInvalidPatch. Blank tags return ErrInvalidTag. ListItems on a non-list
// pin and image fields on a non-image pin return ErrWrongPinType.
func (pp PinPatch) Validate(t PinType) error {
	for _, v := range []*float64{pp.X, pp.Y, pp.Width, pp.Height, pp.ImageMinWidth, pp.ImageMinHeight} {
		if v != nil && !Finite(*v) {
			return ErrInvalidPatch
		}
	}
	if (pp.Width != nil && *pp.Width <= 0) || (pp.Height != nil && *pp.Height <= 0) {
		return ErrInvalidPatch
	}
	if (pp.ImageMinWidth != nil && *pp.ImageMinWidth < 0) || (pp.ImageMinHeight != nil && *pp.ImageMinHeight < 0) {
		return ErrInvalidPatch
	}
	if pp.Tags != nil {
		if _, err := NormalizeTags(*pp.Tags); err != nil {
			return err
		}
	}
	if pp.ListItems != nil && t != PinList {
		return ErrWrongPinType
	}
	if t != PinImage && (pp.ImageURL != nil || pp.ImageMinWidth != nil || pp.ImageMinHeight != nil) {
		return ErrWrongPinType
	}
	if pp.ImageURL != nil && *pp.ImageURL == "" {
		return ErrInvalidPatch
	}
	return nil
}

// Apply merges the patch into p. Slices are copied. Call Validate first;
// tags that fail normalization are left untouched.
func (pp PinPatch) Apply(p *Pin) {
	setFloat(&p.X, pp.X)
	setFloat(&p.Y, pp.Y)
	setFloat(&p.Width, pp.Width)
	setFloat(&p.Height, pp.Height)
	setFloat(&p.ImageMinWidth, pp.ImageMinWidth)
	setFloat(&p.ImageMinHeight, pp.ImageMinHeight)
	if pp.Content != nil {
		p.Content = *pp.Content
	}
	if pp.ImageURL != nil {
		p.ImageURL = *pp.ImageURL
	}
	if pp.Color != nil {
		p.Color = *pp.Color
	}
	if pp.ListItems != nil {
		p.ListItems = slices.Clone(*pp.ListItems)
		if p.ListItems == nil {
			p.ListItems = []ListItem{}
		}
	}
	if pp.Tags != nil {
		if tags, err := NormalizeTags(*pp.Tags); err == nil {
			p.Tags = tags
		}
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ListItemPatch holds a partial list item update.
type ListItemPatch struct {
	Text      *string
	Completed *bool
}

// Apply merges the patch into it.
func (lp ListItemPatch) Apply(it *ListItem) {
	if lp.Text != nil {
		it.Text = *lp.Text
	}
	if lp.Completed != nil {
		it.Completed = *lp.Completed
	}
}

// NormalizeTags trims each tag and drops later duplicates, preserving order.
// A blank tag returns ErrInvalidTag. The result is never nil.
func NormalizeTags(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, ErrInvalidTag
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out, nil
}
