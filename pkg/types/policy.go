package types

import "fmt"

// Resize floors for pins without an explicit image minimum.
const (
	DefaultMinWidth  = 150
	DefaultMinHeight = 100
)

// Image pin sizing. Natural image dimensions are capped at ImageMaxNatural,
// floored at ImageFloorWidth x ImageFloorHeight, and ImageHeaderHeight is
// added for the caption strip.
const (
	ImageMaxNatural   = 400
	ImageFloorWidth   = 200
	ImageFloorHeight  = 150
	ImageHeaderHeight = 60
)

// SizePolicy is the creation default for a pin type.
type SizePolicy struct {
	Width   float64
	Height  float64
	Content string
}

// SizePolicies holds creation defaults keyed by type. Image pins are sized
// from the image itself; see NewImageDraft.
var SizePolicies = map[PinType]SizePolicy{
	PinText: {Width: 250, Height: 180},
	PinList: {Width: 250, Height: 200, Content: "New Checklist"},
}

// Palette is the set of background colors assigned to new pins.
var Palette = []string{
	"#fef3c7", // amber
	"#fce7f3", // pink
	"#dbeafe", // blue
	"#dcfce7", // green
	"#f3e8ff", // purple
	"#ffedd5", // orange
	"#e0e7ff", // indigo
	"#fae8ff", // fuchsia
}

// PickColor returns a palette color chosen by intn, which must return a value
// in [0, n) like rand.IntN.
func PickColor(intn func(n int) int) string {
	return Palette[intn(len(Palette))]
}

// NewDraft returns a draft for a text or list pin at (x, y) with the default
// size for its type. Image pins need NewImageDraft.
func NewDraft(kind PinType, x, y float64) (Draft, error) {
	policy, ok := SizePolicies[kind]
	if !ok {
		return Draft{}, fmt.Errorf("%w: no default size for %q", ErrInvalidDraft, kind)
	}
	d := Draft{
		Type:    kind,
		X:       x,
		Y:       y,
		Width:   policy.Width,
		Height:  policy.Height,
		Content: policy.Content,
		Tags:    []string{},
	}
	if kind == PinList {
		d.ListItems = []ListItem{}
	}
	return d, nil
}

// NewImageDraft returns a draft for an image pin at (x, y) sized from the
// image's natural dimensions.
func NewImageDraft(x, y float64, imageURL string, naturalWidth, naturalHeight float64) Draft {
	w := min(naturalWidth, ImageMaxNatural)
	h := min(naturalHeight, ImageMaxNatural)
	return Draft{
		Type:           PinImage,
		X:              x,
		Y:              y,
		Width:          max(w, ImageFloorWidth),
		Height:         max(h, ImageFloorHeight) + ImageHeaderHeight,
		ImageURL:       imageURL,
		ImageMinWidth:  w,
		ImageMinHeight: h + ImageHeaderHeight,
		Tags:           []string{},
	}
}
