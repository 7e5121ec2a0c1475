package isoview

import (
	"math"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/svg"
	"github.com/amitay1/partdraw/partspec"
	"github.com/amitay1/partdraw/placement"
	"github.com/amitay1/partdraw/projection"
)

// RingSegments is the sampling density of feature rings. Kept above the
// box builders' density floor so small reflectors still read as round.
const RingSegments = 16

// drawFeatures places every feature on the body and draws its marker:
// a ring in the entry-surface plane plus a crosshair on the projected
// center, or a rectangle for notches. Returns how many features needed
// fallback placement.
func drawFeatures(doc *drawing.Document, s *partspec.Shape, features []*partspec.Feature, scale, ox, oy float64) int {
	fallbacks := 0
	for _, f := range features {
		p := placement.Resolve(f, s)
		if p.Fallback {
			fallbacks++
		}
		u, v := surfaceBasis(p.Normal)
		if f.Kind == partspec.Notch {
			drawNotch(doc, f, p, u, v, scale, ox, oy)
			continue
		}
		drawRing(doc, f, p, u, v, scale, ox, oy)
	}
	return fallbacks
}

// surfaceBasis returns two unit vectors spanning the plane the marker
// is drawn in. Normals are axis-aligned, so picking the other two axes
// is exact.
func surfaceBasis(n *geo.Point3) (u, v *geo.Point3) {
	switch {
	case math.Abs(n.Y) >= math.Abs(n.X) && math.Abs(n.Y) >= math.Abs(n.Z):
		return geo.NewPoint3(1, 0, 0), geo.NewPoint3(0, 0, 1)
	case math.Abs(n.X) >= math.Abs(n.Z):
		return geo.NewPoint3(0, 0, 1), geo.NewPoint3(0, 1, 0)
	}
	return geo.NewPoint3(1, 0, 0), geo.NewPoint3(0, 1, 0)
}

// markerPoint projects center + a·u + b·v through the shared anchor.
func markerPoint(c, u, v *geo.Point3, a, b, scale, ox, oy float64) *geo.Point {
	x := (c.X + a*u.X + b*v.X) * scale
	y := (c.Y + a*u.Y + b*v.Y) * scale
	z := (c.Z + a*u.Z + b*v.Z) * scale
	return projection.ProjectAt(x, y, z, ox, oy)
}

func drawRing(doc *drawing.Document, f *partspec.Feature, p placement.Placement, u, v *geo.Point3, scale, ox, oy float64) {
	r := f.Diameter / 2
	if r <= 0 {
		r = 1
	}

	ring := make([]*geo.Point, 0, RingSegments+1)
	for i := 0; i <= RingSegments; i++ {
		a := 2 * math.Pi * float64(i) / RingSegments
		ring = append(ring, markerPoint(p.Center, u, v, r*math.Cos(a), r*math.Sin(a), scale, ox, oy))
	}
	doc.AddPath(svg.PolylinePath(ring, true), drawing.FeatureStyle())

	drawCrosshair(doc, p, u, v, r, scale, ox, oy)
}

// drawNotch draws the notch footprint as a square of the notch width in
// the surface plane, centered on the placement.
func drawNotch(doc *drawing.Document, f *partspec.Feature, p placement.Placement, u, v *geo.Point3, scale, ox, oy float64) {
	half := f.Width / 2
	if half <= 0 {
		half = 1
	}
	corners := []*geo.Point{
		markerPoint(p.Center, u, v, -half, -half, scale, ox, oy),
		markerPoint(p.Center, u, v, half, -half, scale, ox, oy),
		markerPoint(p.Center, u, v, half, half, scale, ox, oy),
		markerPoint(p.Center, u, v, -half, half, scale, ox, oy),
	}
	doc.AddPath(svg.PolylinePath(corners, true), drawing.FeatureStyle())
	drawCrosshair(doc, p, u, v, half, scale, ox, oy)
}

// drawCrosshair draws the center tick pair in the surface plane, arms
// sized past the marker so the center stays visible over the hatch.
func drawCrosshair(doc *drawing.Document, p placement.Placement, u, v *geo.Point3, r, scale, ox, oy float64) {
	arm := r * 1.4
	doc.Line(
		markerPoint(p.Center, u, v, -arm, 0, scale, ox, oy),
		markerPoint(p.Center, u, v, arm, 0, scale, ox, oy),
		drawing.FeatureStyle(),
	)
	doc.Line(
		markerPoint(p.Center, u, v, 0, -arm, scale, ox, oy),
		markerPoint(p.Center, u, v, 0, arm, scale, ox, oy),
		drawing.FeatureStyle(),
	)
}
