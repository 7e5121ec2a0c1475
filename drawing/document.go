// Package drawing holds the render-ready document model: the vector
// paths and text runs one render pass produces, ready for display or
// for rasterization by an external exporter.
package drawing

import (
	"github.com/amitay1/partdraw/lib/color"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/svg"
)

// Style is the stroke/fill styling of one path.
type Style struct {
	Stroke      string  `json:"stroke"`
	Fill        string  `json:"fill,omitempty"`
	StrokeWidth float64 `json:"strokeWidth"`
	Dashed      bool    `json:"dashed,omitempty"`
}

// Path is one vector path in SVG path-data syntax. Closed sub-paths
// describe filled faces; open ones are silhouette and edge lines.
type Path struct {
	Data  string `json:"data"`
	Style Style  `json:"style"`
}

type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is one positioned text run.
type Text struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Content  string  `json:"content"`
	FontSize float64 `json:"fontSize"`
	Anchor   Anchor  `json:"anchor,omitempty"`
	Color    string  `json:"color,omitempty"`
}

// Document is the complete output of one render pass. A pass always
// starts from a fresh document, so a failing drawer can never corrupt
// previously rendered layers.
type Document struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Title  string  `json:"title,omitempty"`

	Paths []Path `json:"paths"`
	Texts []Text `json:"texts"`
}

func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

func (d *Document) AddPath(data string, style Style) {
	if data == "" {
		return
	}
	d.Paths = append(d.Paths, Path{Data: data, Style: style})
}

func (d *Document) AddText(t Text) {
	if t.Content == "" {
		return
	}
	if t.Anchor == "" {
		t.Anchor = AnchorStart
	}
	if t.Color == "" {
		t.Color = color.Outline
	}
	// canonicalize user-supplied CSS colors; unparseable ones pass
	// through so the SVG shows what the caller asked for
	if hex, err := color.Normalize(t.Color); err == nil {
		t.Color = hex
	}
	d.Texts = append(d.Texts, t)
}

// Line is a convenience for a single straight stroke.
func (d *Document) Line(from, to *geo.Point, style Style) {
	d.AddPath(linePath(from, to), style)
}

func linePath(from, to *geo.Point) string {
	pc := pathStart(from)
	pc.L(false, to.X, to.Y)
	return pc.PathData()
}

func pathStart(p *geo.Point) *svg.PathContext {
	pc := svg.NewPathContext(geo.NewPoint(0, 0), 1, 1)
	pc.StartAt(pc.Absolute(p.X, p.Y))
	return pc
}

// Styles used across the drawers.

func OutlineStyle() Style {
	return Style{Stroke: color.Outline, Fill: "none", StrokeWidth: 2}
}

func FaceStyle() Style {
	return Style{Stroke: color.Outline, Fill: color.Face, StrokeWidth: 2}
}

// SideFaceStyle fills vertical faces a shade darker than the top so
// isometric bodies read as solid.
func SideFaceStyle() Style {
	fill := color.Face
	if darker, err := color.Darken(color.Face); err == nil {
		fill = darker
	}
	return Style{Stroke: color.Outline, Fill: fill, StrokeWidth: 2}
}

func HiddenStyle() Style {
	return Style{Stroke: color.Hidden, Fill: "none", StrokeWidth: 1, Dashed: true}
}

func DimensionStyle() Style {
	return Style{Stroke: color.Dimension, Fill: "none", StrokeWidth: 1}
}

func FeatureStyle() Style {
	return Style{Stroke: color.Feature, Fill: "none", StrokeWidth: 1.5}
}

func GridStyle() Style {
	return Style{Stroke: color.Grid, Fill: "none", StrokeWidth: 0.5}
}

func ErrorStyle() Style {
	return Style{Stroke: color.Error, Fill: "none", StrokeWidth: 2, Dashed: true}
}
