package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// shortIDLen is how many ID characters text output shows.
const shortIDLen = 8

// itemOut is the JSON shape of a list item.
type itemOut struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// pinOut is the JSON shape of a pin.
type pinOut struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	X              float64   `json:"x"`
	Y              float64   `json:"y"`
	Width          float64   `json:"width"`
	Height         float64   `json:"height"`
	Content        string    `json:"content"`
	ListItems      []itemOut `json:"listItems,omitempty"`
	HasImage       bool      `json:"hasImage,omitempty"`
	ImageMinWidth  float64   `json:"imageMinWidth,omitempty"`
	ImageMinHeight float64   `json:"imageMinHeight,omitempty"`
	Color          string    `json:"color"`
	Tags           []string  `json:"tags"`
	ZIndex         int       `json:"zIndex"`
	Selected       bool      `json:"selected,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// snapshotOut is the JSON shape of a snapshot listing.
type snapshotOut struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pins      int       `json:"pins"`
	CreatedAt time.Time `json:"createdAt"`
}

type viewOut struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`
}

func toPinOut(p types.Pin, selectedID string) pinOut {
	o := pinOut{
		ID:             p.ID,
		Type:           string(p.Type),
		X:              p.X,
		Y:              p.Y,
		Width:          p.Width,
		Height:         p.Height,
		Content:        p.Content,
		HasImage:       p.ImageURL != "",
		ImageMinWidth:  p.ImageMinWidth,
		ImageMinHeight: p.ImageMinHeight,
		Color:          p.Color,
		Tags:           p.Tags,
		ZIndex:         p.ZIndex,
		Selected:       p.ID == selectedID,
		CreatedAt:      p.CreatedAt.UTC(),
		UpdatedAt:      p.UpdatedAt.UTC(),
	}
	if o.Tags == nil {
		o.Tags = []string{}
	}
	for _, it := range p.ListItems {
		o.ListItems = append(o.ListItems, itemOut{ID: it.ID, Text: it.Text, Completed: it.Completed})
	}
	return o
}

func toSnapshotOut(s types.Snapshot) snapshotOut {
	return snapshotOut{ID: s.ID, Name: s.Name, Pins: len(s.Pins), CreatedAt: s.CreatedAt.UTC()}
}

func toViewOut(v board.View) viewOut {
	return viewOut{Zoom: v.Zoom, PanX: v.PanX, PanY: v.PanY}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[len(id)-shortIDLen:]
}

// summary returns the first line of s, truncated to n runes.
func summary(s string, n int) string {
	line, _, _ := strings.Cut(s, "\n")
	r := []rune(line)
	if len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return line
}

// printPins writes a table of pins in the order given.
func printPins(w io.Writer, pins []types.Pin, selectedID string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tPOS\tSIZE\tZ\tTAGS\tCONTENT")
	for _, p := range pins {
		id := shortID(p.ID)
		if p.ID == selectedID {
			id += "*"
		}
		content := summary(p.Content, 40)
		if p.Type == types.PinList {
			content = fmt.Sprintf("%s [%d/%d]", content, p.CompletedItems(), len(p.ListItems))
		}
		fmt.Fprintf(tw, "%s\t%s\t%g,%g\t%gx%g\t%d\t%s\t%s\n",
			id, p.Type, p.X, p.Y, p.Width, p.Height, p.ZIndex, strings.Join(p.Tags, ","), content)
	}
	return tw.Flush()
}

// printPin writes one pin in detail.
func printPin(w io.Writer, p types.Pin, selectedID string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	fmt.Fprintf(tw, "Type:\t%s\n", p.Type)
	fmt.Fprintf(tw, "Position:\t%g, %g\n", p.X, p.Y)
	fmt.Fprintf(tw, "Size:\t%g x %g\n", p.Width, p.Height)
	fmt.Fprintf(tw, "Z-index:\t%d\n", p.ZIndex)
	fmt.Fprintf(tw, "Color:\t%s\n", p.Color)
	fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(p.Tags, ", "))
	fmt.Fprintf(tw, "Selected:\t%t\n", p.ID == selectedID)
	fmt.Fprintf(tw, "Created:\t%s\n", p.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(tw, "Updated:\t%s\n", p.UpdatedAt.UTC().Format(time.RFC3339))
	if p.Type == types.PinImage {
		minW, minH := p.MinSize()
		fmt.Fprintf(tw, "Min size:\t%g x %g\n", minW, minH)
		fmt.Fprintf(tw, "Image:\t%d bytes\n", len(p.ImageURL))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if p.Content != "" {
		fmt.Fprintf(w, "\n%s\n", p.Content)
	}
	for _, it := range p.ListItems {
		mark := " "
		if it.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s  (%s)\n", mark, it.Text, shortID(it.ID))
	}
	return nil
}

func printSnapshots(w io.Writer, snaps []types.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPINS\tCREATED")
	for _, s := range snaps {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", shortID(s.ID), s.Name, len(s.Pins), s.CreatedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}
