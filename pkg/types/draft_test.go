package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftValidate(t *testing.T) {
	text, err := NewDraft(PinText, 0, 0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		draft   Draft
		wantErr bool
	}{
		{name: "text default", draft: text},
		{name: "image with url", draft: NewImageDraft(0, 0, "data:image/png;base64,AA==", 100, 80)},
		{name: "missing type", draft: Draft{Width: 10, Height: 10}, wantErr: true},
		{name: "unknown type", draft: Draft{Type: "sketch", Width: 10, Height: 10}, wantErr: true},
		{name: "zero width", draft: Draft{Type: PinText, Height: 10}, wantErr: true},
		{name: "negative height", draft: Draft{Type: PinText, Width: 10, Height: -1}, wantErr: true},
		{name: "image without url", draft: Draft{Type: PinImage, Width: 10, Height: 10}, wantErr: true},
		{name: "negative image floor", draft: Draft{Type: PinText, Width: 10, Height: 10, ImageMinWidth: -5}, wantErr: true},
		{name: "NaN position", draft: Draft{Type: PinText, X: math.NaN(), Width: 10, Height: 10}, wantErr: true},
		{name: "infinite width", draft: Draft{Type: PinText, Width: math.Inf(1), Height: 10}, wantErr: true},
		{name: "blank tag", draft: Draft{Type: PinText, Width: 10, Height: 10, Tags: []string{" "}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDraft)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewDraftDefaults(t *testing.T) {
	text, err := NewDraft(PinText, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 250.0, text.Width)
	assert.Equal(t, 180.0, text.Height)
	assert.Empty(t, text.Content)
	assert.Nil(t, text.ListItems)

	list, err := NewDraft(PinList, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 250.0, list.Width)
	assert.Equal(t, 200.0, list.Height)
	assert.Equal(t, "New Checklist", list.Content)
	assert.NotNil(t, list.ListItems)

	_, err = NewDraft(PinImage, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestNewImageDraftSizing(t *testing.T) {
	tests := []struct {
		name               string
		natW, natH         float64
		wantW, wantH       float64
		wantMinW, wantMinH float64
	}{
		{name: "small image floored", natW: 100, natH: 80, wantW: 200, wantH: 210, wantMinW: 100, wantMinH: 140},
		{name: "mid image kept", natW: 300, natH: 240, wantW: 300, wantH: 300, wantMinW: 300, wantMinH: 300},
		{name: "large image capped", natW: 1200, natH: 50, wantW: 400, wantH: 210, wantMinW: 400, wantMinH: 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewImageDraft(0, 0, "u", tt.natW, tt.natH)
			assert.Equal(t, tt.wantW, d.Width)
			assert.Equal(t, tt.wantH, d.Height)
			assert.Equal(t, tt.wantMinW, d.ImageMinWidth)
			assert.Equal(t, tt.wantMinH, d.ImageMinHeight)
			assert.Equal(t, PinImage, d.Type)
		})
	}
}

func TestPinPatchApply(t *testing.T) {
	p := samplePin()
	content := "hello"
	x := 42.0
	tags := []string{"a", "b", "a"}
	patch := PinPatch{Content: &content, X: &x, Tags: &tags}
	require.False(t, patch.Empty())
	assert.True(t, PinPatch{}.Empty())

	patch.Apply(&p)
	assert.Equal(t, "hello", p.Content)
	assert.Equal(t, 42.0, p.X)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
	assert.Equal(t, 250.0, p.Width, "unset fields are untouched")

	tags[0] = "mutated"
	assert.Equal(t, "a", p.Tags[0], "patch slices are copied")
}

func TestListItemPatchApply(t *testing.T) {
	it := ListItem{ID: "i", Text: "a"}
	done := true
	ListItemPatch{Completed: &done}.Apply(&it)
	assert.Equal(t, ListItem{ID: "i", Text: "a", Completed: true}, it)
}

func TestDraftFromPin(t *testing.T) {
	p := samplePin()
	d := DraftFromPin(p, 30, 30)
	assert.Equal(t, p.X+30, d.X)
	assert.Equal(t, p.Y+30, d.Y)
	assert.Equal(t, p.Color, d.Color)
	d.ListItems[0].Text = "x"
	d.Tags[0] = "x"
	assert.Equal(t, "milk", p.ListItems[0].Text)
	assert.Equal(t, "home", p.Tags[0])
}

func TestPickColor(t *testing.T) {
	assert.Equal(t, Palette[3], PickColor(func(int) int { return 3 }))
}

func TestNormalizeTags(t *testing.T) {
	tags, err := NormalizeTags([]string{"a", " b ", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)

	tags, err = NormalizeTags(nil)
	require.NoError(t, err)
	assert.NotNil(t, tags)

	_, err = NormalizeTags([]string{"ok", "  "})
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestPinPatchValidate(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	url := "data:image/png;base64,AA=="
	empty := ""

	tests := []struct {
		name    string
		kind    PinType
		patch   PinPatch
		wantErr error
	}{
		{name: "content only", kind: PinText, patch: PinPatch{Content: &empty}},
		{name: "image fields on image pin", kind: PinImage, patch: PinPatch{ImageURL: &url, ImageMinWidth: ptrTo(10.0)}},
		{name: "list items on list pin", kind: PinList, patch: PinPatch{ListItems: &[]ListItem{}}},
		{name: "NaN x", kind: PinText, patch: PinPatch{X: &nan}, wantErr: ErrInvalidPatch},
		{name: "infinite y", kind: PinText, patch: PinPatch{Y: &inf}, wantErr: ErrInvalidPatch},
		{name: "NaN width", kind: PinText, patch: PinPatch{Width: &nan}, wantErr: ErrInvalidPatch},
		{name: "infinite height", kind: PinText, patch: PinPatch{Height: &inf}, wantErr: ErrInvalidPatch},
		{name: "zero width", kind: PinText, patch: PinPatch{Width: ptrTo(0.0)}, wantErr: ErrInvalidPatch},
		{name: "negative image floor", kind: PinImage, patch: PinPatch{ImageMinHeight: ptrTo(-1.0)}, wantErr: ErrInvalidPatch},
		{name: "empty image url", kind: PinImage, patch: PinPatch{ImageURL: &empty}, wantErr: ErrInvalidPatch},
		{name: "blank tag", kind: PinText, patch: PinPatch{Tags: &[]string{"ok", "  "}}, wantErr: ErrInvalidTag},
		{name: "list items on text pin", kind: PinText, patch: PinPatch{ListItems: &[]ListItem{}}, wantErr: ErrWrongPinType},
		{name: "image url on text pin", kind: PinText, patch: PinPatch{ImageURL: &url}, wantErr: ErrWrongPinType},
		{name: "image floor on list pin", kind: PinList, patch: PinPatch{ImageMinWidth: ptrTo(5.0)}, wantErr: ErrWrongPinType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate(tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite())
	assert.True(t, Finite(0, -1.5, 1e300))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}

func ptrTo[T any](v T) *T { return &v }
