// Package imaging reads image files for image pins: it probes their natural
// size and wraps their bytes in a data URL.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// MaxFileSize bounds the images DraftFromFile accepts. The whole file ends up
// inside the board blob.
const MaxFileSize = 10 << 20

// Errors returned by this package.
var (
	ErrUnsupported = errors.New("unsupported image format")
	ErrTooLarge    = errors.New("image file too large")
)

// Info describes a decoded image header.
type Info struct {
	Format string // As registered with image: png, jpeg, gif, bmp, tiff, webp.
	Width  int
	Height int
}

// MIMEType returns the media type for the format.
func (i Info) MIMEType() string {
	return "image/" + i.Format
}

// Probe reads just enough of r to learn the image format and size.
func Probe(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if errors.Is(err, image.ErrFormat) {
		return Info{}, ErrUnsupported
	}
	if err != nil {
		return Info{}, fmt.Errorf("decode image header: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// DataURL encodes data as a base64 data URL of the given media type.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DraftFromBytes builds an image pin draft at (x, y) from encoded image data.
func DraftFromBytes(data []byte, x, y float64) (types.Draft, error) {
	if len(data) > MaxFileSize {
		return types.Draft{}, ErrTooLarge
	}
	info, err := Probe(bytes.NewReader(data))
	if err != nil {
		return types.Draft{}, err
	}
	url := DataURL(info.MIMEType(), data)
	return types.NewImageDraft(x, y, url, float64(info.Width), float64(info.Height)), nil
}

// DraftFromFile reads the image at path and builds an image pin draft at
// (x, y).
func DraftFromFile(path string, x, y float64) (types.Draft, error) {
	st, err := os.Stat(path)
	if err != nil {
		return types.Draft{}, err
	}
	if st.Size() > MaxFileSize {
		return types.Draft{}, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, st.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Draft{}, err
	}
	d, err := DraftFromBytes(data, x, y)
	if err != nil {
		return types.Draft{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
