package isoview

import (
	"math"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/svg"
	"github.com/amitay1/partdraw/partspec"
)

// buildCylinder draws the cylinder/tube/ring/disk families: axis along
// X, near end at the +X face. Visible edges are the near end ellipse,
// the far half-arc between the 25% and 75% parametric points, and the
// silhouette line pair joining those quarter points. The inner bore
// shows only on the near end, and only when the part is hollow.
func buildCylinder(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	r := s.OuterRadius() * scale
	length := s.AxialLength() * scale

	// far visible half-arc first so the near face paints over it
	outline(doc, endArc(0, r, 0.25, 0.75, ox, oy))

	q1Far := barrelPoint(0, r, 0.25, ox, oy)
	q3Far := barrelPoint(0, r, 0.75, ox, oy)
	q1Near := barrelPoint(length, r, 0.25, ox, oy)
	q3Near := barrelPoint(length, r, 0.75, ox, oy)
	doc.Line(q1Far, q1Near, drawing.OutlineStyle())
	doc.Line(q3Far, q3Near, drawing.OutlineStyle())

	face(doc, endArc(length, r, 0, 1, ox, oy))

	if s.Hollow() {
		ri := s.InnerRadius() * scale
		doc.AddPath(svg.PolylinePath(endArc(length, ri, 0, 1, ox, oy), true), drawing.HiddenStyle())
	}
}

// barrelPoint is the point at parametric position t around the barrel
// circumference at axial position x. t=0 is the top of the barrel.
func barrelPoint(x, r, t float64, ox, oy float64) *geo.Point {
	a := 2 * math.Pi * t
	return at(x, r*math.Cos(a), r*math.Sin(a), ox, oy)
}

// endArc samples the end-face circle between parametric t0 and t1.
func endArc(x, r, t0, t1 float64, ox, oy float64) []*geo.Point {
	pts := make([]*geo.Point, 0, EllipseSegments+1)
	for i := 0; i <= EllipseSegments; i++ {
		t := t0 + (t1-t0)*float64(i)/EllipseSegments
		pts = append(pts, barrelPoint(x, r, t, ox, oy))
	}
	return pts
}
