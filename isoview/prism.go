package isoview

import (
	"math"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/svg"
	"github.com/amitay1/partdraw/partspec"
)

// buildHexagon draws a hexagonal prism standing on its base, diameter
// measured across corners. Side faces are culled per face in screen
// space; typically three of the six remain visible.
func buildHexagon(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	r := s.OuterRadius() * scale
	h := s.Height * scale

	corner := func(k int, y float64) *geo.Point {
		a := 2 * math.Pi * float64(k%6) / 6
		return at(r*math.Cos(a), y, r*math.Sin(a), ox, oy)
	}

	// side faces, wound counter-clockwise seen from outside
	for k := 0; k < 6; k++ {
		quad := []*geo.Point{
			corner(k, 0),
			corner(k+1, 0),
			corner(k+1, h),
			corner(k, h),
		}
		if facesViewer(quad) {
			sideFace(doc, quad)
		}
	}

	top := make([]*geo.Point, 0, 6)
	for k := 0; k < 6; k++ {
		top = append(top, corner(k, h))
	}
	face(doc, top)
}

// buildPyramid draws a rectangular-base pyramid: base outline plus the
// visible triangular faces.
func buildPyramid(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	a := s.Length * scale / 2
	b := s.Width * scale / 2
	h := s.Height * scale

	apex := at(0, h, 0, ox, oy)
	base := []*geo.Point{
		at(-a, 0, -b, ox, oy),
		at(-a, 0, b, ox, oy),
		at(a, 0, b, ox, oy),
		at(a, 0, -b, ox, oy),
	}

	// base seen from below is a back face; draw its boundary as edges
	doc.AddPath(svg.PolylinePath(base, true), drawing.OutlineStyle())

	for i := range base {
		tri := []*geo.Point{base[i], base[(i+1)%len(base)], apex}
		if facesViewer(tri) {
			sideFace(doc, tri)
		}
	}
}

// buildEllipsePrism draws a part with an elliptical cross-section
// standing on its base: top ellipse, visible bottom half-arc and the
// silhouette pair at the quarter points.
func buildEllipsePrism(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	rx := s.Length * scale / 2
	rz := s.Width * scale / 2
	h := s.Height * scale

	rim := func(t, y float64) *geo.Point {
		a := 2 * math.Pi * t
		return at(rx*math.Cos(a), y, rz*math.Sin(a), ox, oy)
	}
	arc := func(y, t0, t1 float64) []*geo.Point {
		pts := make([]*geo.Point, 0, EllipseSegments+1)
		for i := 0; i <= EllipseSegments; i++ {
			t := t0 + (t1-t0)*float64(i)/EllipseSegments
			pts = append(pts, rim(t, y))
		}
		return pts
	}

	// visible front half of the base
	outline(doc, arc(0, 0, 0.5))

	doc.Line(rim(0, 0), rim(0, h), drawing.OutlineStyle())
	doc.Line(rim(0.5, 0), rim(0.5, h), drawing.OutlineStyle())

	face(doc, arc(h, 0, 1))
}

// buildForging draws a stepped forged blank: a full-footprint lower
// block with a narrower boss on top.
func buildForging(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	l := s.Length * scale
	w := s.Width * scale
	h := s.Height * scale

	baseH := h * 0.55
	boxPaths(doc, l, w, baseH, 0, ox, oy)
	boxPaths(doc, l*0.6, w*0.8, h-baseH, baseH, ox, oy)
}
