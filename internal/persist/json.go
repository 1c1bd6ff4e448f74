// JSON record structures for persisted board blobs. Field names and
// epoch-millisecond timestamps follow the board's storage format so existing
// blobs load unchanged.
package persist

import (
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// listItemJSON is a list item inside a pin record.
type listItemJSON struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// pinJSON is one pin inside the board or a snapshot.
type pinJSON struct {
	ID             string         `json:"id"`
	Type           string         `json:"type"`
	X              float64        `json:"x"`
	Y              float64        `json:"y"`
	Width          float64        `json:"width"`
	Height         float64        `json:"height"`
	Content        string         `json:"content"`
	ListItems      []listItemJSON `json:"listItems,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	ImageMinWidth  float64        `json:"imageMinWidth,omitempty"`
	ImageMinHeight float64        `json:"imageMinHeight,omitempty"`
	Color          string         `json:"color"`
	Tags           []string       `json:"tags"`
	ZIndex         int            `json:"zIndex"`
	CreatedAt      int64          `json:"createdAt"`
	UpdatedAt      int64          `json:"updatedAt"`
}

// boardJSON is the blob stored under BoardKey.
type boardJSON struct {
	Pins []pinJSON `json:"pins"`
	Zoom float64   `json:"zoom"`
	PanX float64   `json:"panX"`
	PanY float64   `json:"panY"`
}

// snapshotJSON is one entry of the blob stored under SnapshotsKey.
type snapshotJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pins      []pinJSON `json:"pins"`
	CreatedAt int64     `json:"createdAt"`
}

func toPinJSON(p types.Pin) pinJSON {
	rec := pinJSON{
		ID:             p.ID,
		Type:           string(p.Type),
		X:              p.X,
		Y:              p.Y,
		Width:          p.Width,
		Height:         p.Height,
		Content:        p.Content,
		ImageURL:       p.ImageURL,
		ImageMinWidth:  p.ImageMinWidth,
		ImageMinHeight: p.ImageMinHeight,
		Color:          p.Color,
		Tags:           p.Tags,
		ZIndex:         p.ZIndex,
		CreatedAt:      p.CreatedAt.UnixMilli(),
		UpdatedAt:      p.UpdatedAt.UnixMilli(),
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	for _, it := range p.ListItems {
		rec.ListItems = append(rec.ListItems, listItemJSON(it))
	}
	return rec
}

// fromPinJSON converts a record to a Pin. Records with an unknown type are
// rejected (ok=false) so one bad entry does not poison the whole blob.
func fromPinJSON(rec pinJSON) (types.Pin, bool) {
	kind := types.PinType(rec.Type)
	if rec.ID == "" || !kind.Valid() {
		return types.Pin{}, false
	}
	p := types.Pin{
		ID:             rec.ID,
		Type:           kind,
		X:              rec.X,
		Y:              rec.Y,
		Width:          rec.Width,
		Height:         rec.Height,
		Content:        rec.Content,
		ImageURL:       rec.ImageURL,
		ImageMinWidth:  rec.ImageMinWidth,
		ImageMinHeight: rec.ImageMinHeight,
		Color:          rec.Color,
		Tags:           rec.Tags,
		ZIndex:         rec.ZIndex,
		CreatedAt:      time.UnixMilli(rec.CreatedAt),
		UpdatedAt:      time.UnixMilli(rec.UpdatedAt),
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if kind == types.PinList {
		p.ListItems = make([]types.ListItem, 0, len(rec.ListItems))
		for _, it := range rec.ListItems {
			p.ListItems = append(p.ListItems, types.ListItem(it))
		}
	}
	return p, true
}

func toPinsJSON(pins []types.Pin) []pinJSON {
	out := make([]pinJSON, 0, len(pins))
	for _, p := range pins {
		out = append(out, toPinJSON(p))
	}
	return out
}

func fromPinsJSON(recs []pinJSON) []types.Pin {
	out := make([]types.Pin, 0, len(recs))
	for _, rec := range recs {
		if p, ok := fromPinJSON(rec); ok {
			out = append(out, p)
		}
	}
	return out
}
