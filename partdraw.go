// Package partdraw renders inspection technique drawings: given a part
// description and its reflector features, it produces a to-scale 2D
// vector document, either as an isometric line drawing or as an
// orthographic front+side sheet.
//
// Render is pure with respect to its input snapshot and starts every
// pass from a fresh document, so callers may re-render freely on each
// edit; the redraw package provides the debounced trigger for that.
package partdraw

import (
	"context"
	"fmt"

	"cdr.dev/slog"
	"oss.terrastruct.com/util-go/xdefer"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/isoview"
	"github.com/amitay1/partdraw/lib/color"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/log"
	"github.com/amitay1/partdraw/multiview"
	"github.com/amitay1/partdraw/partspec"
	"github.com/amitay1/partdraw/viewfit"
)

// ViewMode selects which drawing a render pass produces.
type ViewMode string

const (
	ViewIsometric ViewMode = "isometric"
	ViewMulti     ViewMode = "multi"
)

// DefaultCanvasWidth and DefaultCanvasHeight apply when the input
// leaves the canvas unset.
const (
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 600.0
)

// Canvas is the output surface size in pixels.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Overlay draws scan-coverage zones onto a multiview sheet. It runs
// after the silhouette drawers and before the title block, inside the
// same recovery boundary as the family drawers.
type Overlay interface {
	DrawCoverage(doc *drawing.Document, frontView, sideView *geo.Box)
}

// Input is one complete render snapshot. Render never mutates it.
type Input struct {
	Part     *partspec.Shape     `json:"part"`
	Features []*partspec.Feature `json:"features,omitempty"`
	Canvas   Canvas              `json:"canvas"`
	View     ViewMode            `json:"view,omitempty"`
	Title    string              `json:"title,omitempty"`
	ShowGrid bool                `json:"showGrid,omitempty"`

	Overlay Overlay `json:"-"`
}

// Output is the result of one render pass. FrontView and SideView are
// set on multiview renders only; Fit on isometric renders only.
type Output struct {
	Document *drawing.Document

	Fit       viewfit.Fit
	FrontView *geo.Box
	SideView  *geo.Box

	// UnknownFamily and FallbackFeatures surface the silent recovery
	// paths so the edit layer can warn once the user stops typing.
	UnknownFamily    bool
	FallbackFeatures int
}

// SVG serializes the rendered document.
func (o *Output) SVG() []byte {
	return o.Document.SVG()
}

// Render produces the drawing for one input snapshot. Invalid geometry
// is rejected up front; everything past validation follows the
// never-blank policy, recovering from drawer panics by rendering an
// error placeholder onto whatever was already drawn.
func Render(ctx context.Context, in *Input) (_ *Output, err error) {
	defer xdefer.Errorf(&err, "rendering %s view", viewMode(in))

	if in == nil || in.Part == nil {
		return nil, fmt.Errorf("no part to draw")
	}
	if in.Canvas.Width < 0 || in.Canvas.Height < 0 {
		return nil, fmt.Errorf("canvas %gx%g is not drawable", in.Canvas.Width, in.Canvas.Height)
	}
	if err := partspec.Validate(in.Part, in.Features); err != nil {
		return nil, err
	}

	w, h := in.Canvas.Width, in.Canvas.Height
	if w == 0 {
		w = DefaultCanvasWidth
	}
	if h == 0 {
		h = DefaultCanvasHeight
	}

	out := &Output{Document: drawing.NewDocument(w, h)}
	recovered := draw(ctx, in, out)
	if recovered != nil {
		log.Error(ctx, "drawer panicked, rendering error placeholder",
			slog.F("family", in.Part.Family),
			slog.F("panic", fmt.Sprintf("%v", recovered)),
		)
		drawErrorPlaceholder(out.Document)
	}

	if out.UnknownFamily {
		log.Warn(ctx, "unrecognized shape family, using box drawer",
			slog.F("family", in.Part.Family),
		)
	}
	if out.FallbackFeatures > 0 {
		log.Warn(ctx, "features recovered with fallback placement",
			slog.F("count", out.FallbackFeatures),
			slog.F("family", in.Part.Family),
		)
	}
	return out, nil
}

// draw runs the view dispatch inside the recovery boundary and returns
// the recovered panic value, if any.
func draw(ctx context.Context, in *Input, out *Output) (recovered interface{}) {
	defer func() {
		recovered = recover()
	}()

	switch viewMode(in) {
	case ViewMulti:
		opts := multiview.Options{Title: in.Title, ShowGrid: in.ShowGrid}
		if in.Overlay != nil {
			opts.Overlay = in.Overlay.DrawCoverage
		}
		out.UnknownFamily = multiview.Draw(out.Document, in.Part, opts)
		out.FrontView, out.SideView = viewfit.TwoViewLayout(out.Document.Width, out.Document.Height)
	default:
		out.Fit = viewfit.Compute(in.Part, out.Document.Width, out.Document.Height)
		log.Debug(ctx, "fitted part to canvas",
			slog.F("scale", out.Fit.Scale),
			slog.F("maxDim", in.Part.MaxDim()),
		)
		out.UnknownFamily, out.FallbackFeatures = isoview.Draw(out.Document, in.Part, in.Features, out.Fit)
		drawIsoTitle(out.Document, in.Title)
	}
	return nil
}

func viewMode(in *Input) ViewMode {
	if in != nil && in.View == ViewMulti {
		return ViewMulti
	}
	return ViewIsometric
}

func drawIsoTitle(doc *drawing.Document, title string) {
	if title == "" {
		return
	}
	doc.Title = title
	doc.AddText(drawing.Text{
		X:        doc.Width / 2,
		Y:        28,
		Content:  title,
		FontSize: 18,
		Anchor:   drawing.AnchorMiddle,
	})
}

// drawErrorPlaceholder marks a failed pass without blanking the layers
// that did draw.
func drawErrorPlaceholder(doc *drawing.Document) {
	w, h := 260.0, 60.0
	x := doc.Width/2 - w/2
	y := doc.Height/2 - h/2

	corners := []*geo.Point{
		geo.NewPoint(x, y),
		geo.NewPoint(x+w, y),
		geo.NewPoint(x+w, y+h),
		geo.NewPoint(x, y+h),
		geo.NewPoint(x, y),
	}
	for i := 0; i < len(corners)-1; i++ {
		doc.Line(corners[i], corners[i+1], drawing.ErrorStyle())
	}
	doc.AddText(drawing.Text{
		X:        doc.Width / 2,
		Y:        y + h/2 + 5,
		Content:  "DRAWING ERROR",
		FontSize: 16,
		Anchor:   drawing.AnchorMiddle,
		Color:    color.Error,
	})
}
