package isoview

import (
	"math"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/svg"
	"github.com/amitay1/partdraw/partspec"
)

// buildCone draws a cone standing on its base: the full base ellipse
// and the two slant silhouette lines from the base quarter points to
// the apex.
func buildCone(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	r := s.OuterRadius() * scale
	h := s.Height * scale

	rim := func(t float64) *geo.Point {
		a := 2 * math.Pi * t
		return at(r*math.Cos(a), 0, r*math.Sin(a), ox, oy)
	}

	base := make([]*geo.Point, 0, EllipseSegments+1)
	for i := 0; i <= EllipseSegments; i++ {
		base = append(base, rim(float64(i)/EllipseSegments))
	}
	face(doc, base)

	apex := at(0, h, 0, ox, oy)
	doc.Line(rim(0), apex, drawing.OutlineStyle())
	doc.Line(rim(0.5), apex, drawing.OutlineStyle())
}

// buildSphere draws the silhouette circle around the projected center
// plus the visible front half of the equator as a depth cue. A sphere
// under parallel projection is an exact circle of its own radius.
func buildSphere(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	r := s.OuterRadius() * scale
	c := at(0, r, 0, ox, oy)

	doc.AddPath(svg.EllipsePath(c.X, c.Y, r, r), drawing.OutlineStyle())

	equator := make([]*geo.Point, 0, EllipseSegments/2+1)
	for i := 0; i <= EllipseSegments/2; i++ {
		t := float64(i) / EllipseSegments
		a := 2 * math.Pi * t
		equator = append(equator, at(r*math.Cos(a), r, r*math.Sin(a), ox, oy))
	}
	outline(doc, equator)
}
