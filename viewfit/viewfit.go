// Package viewfit computes the uniform scale and canvas offset that
// place a part of arbitrary size inside a fixed canvas with margins
// reserved for the title and legend.
//
// Fits are cheap and derived, so they are recomputed on every canvas
// resize and geometry edit rather than cached; caching would need
// invalidation on two independent triggers for no measurable gain.
package viewfit

import (
	"math"

	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
)

const (
	// Margins reserved for title text and the legend strip.
	MarginHorizontal = 150.0
	MarginVertical   = 80.0

	// The body occupies at most this share of the available area.
	TargetRatio = 0.45

	// MinScale keeps pathological aspect ratios from collapsing the
	// drawing to a point.
	MinScale = 0.1

	// The body sits slightly below canvas center to leave headroom for
	// the title.
	VerticalBias = 20.0
)

type Fit struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// Compute derives the fit for one render. Idempotent: same shape and
// canvas always produce the same fit.
func Compute(s *partspec.Shape, canvasWidth, canvasHeight float64) Fit {
	availW := canvasWidth - MarginHorizontal
	availH := canvasHeight - MarginVertical
	targetSize := math.Min(availW, availH) * TargetRatio
	scale := math.Max(MinScale, targetSize/math.Max(1, s.MaxDim()))
	return Fit{
		Scale:   scale,
		OffsetX: canvasWidth / 2,
		OffsetY: canvasHeight/2 + VerticalBias,
	}
}

// TwoViewLayout splits the canvas into the fixed front/side rectangles
// of the orthographic sheet. The front view also anchors the scan
// coverage overlay, so its rectangle is part of the exported surface.
func TwoViewLayout(canvasWidth, canvasHeight float64) (frontView, sideView *geo.Box) {
	innerW := canvasWidth - MarginHorizontal
	innerH := canvasHeight - MarginVertical
	gap := innerW * 0.08

	viewW := (innerW - gap) / 2
	top := MarginVertical * 0.75

	frontView = geo.NewBox(geo.NewPoint(MarginHorizontal/2, top), viewW, innerH)
	sideView = geo.NewBox(geo.NewPoint(MarginHorizontal/2+viewW+gap, top), viewW, innerH)
	return frontView, sideView
}

// ViewScale fits a shape's front or side projection inside one view
// rectangle, independent of the isometric fit but with the same floor.
func ViewScale(view *geo.Box, extentW, extentH float64) float64 {
	targetW := view.Width * 0.7
	targetH := view.Height * 0.7
	scale := math.Min(targetW/math.Max(1, extentW), targetH/math.Max(1, extentH))
	return math.Max(MinScale, scale)
}
