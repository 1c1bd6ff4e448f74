// Package render exports a board as a standalone HTML page or as the JSON
// board blob.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/mesh-intelligence/corkboard/internal/persist"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

//go:embed page.html
var pageHTML string

// Board is what gets exported.
type Board struct {
	Title string
	Pins  []types.Pin
	Zoom  float64
	PanX  float64
	PanY  float64
}

// Renderer turns pins into HTML. Pin text is treated as markdown and the
// resulting HTML is sanitized. A Renderer is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	page   *template.Template
}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		),
		policy: bluemonday.UGCPolicy(),
		page:   template.Must(template.New("page").Parse(pageHTML)),
	}
}

type pinView struct {
	types.Pin
	Image template.URL
	Body  template.HTML
	Items []types.ListItem
}

// HTML writes b as a page. Pins are painted in z order.
func (r *Renderer) HTML(w io.Writer, b Board) error {
	title := b.Title
	if title == "" {
		title = "Cork Board"
	}
	zoom := b.Zoom
	if zoom == 0 {
		zoom = 1
	}

	pins := types.StackOrder(b.Pins)
	views := make([]pinView, 0, len(pins))
	for _, p := range pins {
		body, err := r.Markdown(p.Content)
		if err != nil {
			return fmt.Errorf("render pin %s: %w", p.ID, err)
		}
		v := pinView{Pin: p, Body: body, Items: p.ListItems}
		if strings.HasPrefix(p.ImageURL, "data:image/") {
			v.Image = template.URL(p.ImageURL)
		}
		views = append(views, v)
	}

	return r.page.Execute(w, struct {
		Title string
		Zoom  float64
		PanX  float64
		PanY  float64
		Pins  []pinView
	}{title, zoom, b.PanX, b.PanY, views})
}

// Markdown renders src to sanitized HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	safe := r.policy.SanitizeBytes(buf.Bytes())
	return template.HTML(strings.TrimSpace(string(safe))), nil
}

// JSON writes b in the persisted board blob format.
func JSON(w io.Writer, b Board) error {
	data, err := persist.EncodeBoard(persist.BoardState{
		Pins: b.Pins,
		Zoom: b.Zoom,
		PanX: b.PanX,
		PanY: b.PanY,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
