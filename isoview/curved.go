package isoview

import (
	"math"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
)

// CurveSegments is the segmentation of the swept top profile. 20 keeps
// the curve visually smooth; any value >= 12 would too, at a smaller
// path size. The corner points are exact regardless of segmentation
// because the profile is pinned to zero deflection at both ends.
const CurveSegments = 20

// buildCurvedBlock draws a rectangular block whose top surface bulges
// along its length with a sinusoidal profile derived from the
// configured curvature radius (circular-segment sagitta, capped so the
// bulge never dwarfs the block).
func buildCurvedBlock(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	l := s.Length * scale
	w := s.Width * scale
	h := s.Height * scale
	sag := sagitta(s.Length, s.CurveRadius, s.Height) * scale

	a, b := l/2, w/2

	// top height at fraction u in [0, 1] along the length
	topY := func(u float64) float64 {
		return h + sag*math.Sin(math.Pi*u)
	}

	// front face: flat bottom and sides, curved top edge
	front := []*geo.Point{
		at(-a, 0, b, ox, oy),
		at(a, 0, b, ox, oy),
	}
	for i := CurveSegments; i >= 0; i-- {
		u := float64(i) / CurveSegments
		front = append(front, at(-a+l*u, topY(u), b, ox, oy))
	}
	sideFace(doc, front)

	// right end face: the profile is pinned to h at the ends, so the
	// end face is a plain rectangle
	right := []*geo.Point{
		at(a, 0, b, ox, oy),
		at(a, 0, -b, ox, oy),
		at(a, h, -b, ox, oy),
		at(a, h, b, ox, oy),
	}
	sideFace(doc, right)

	// top sheet: front curve out, back curve home
	top := make([]*geo.Point, 0, 2*(CurveSegments+1))
	for i := 0; i <= CurveSegments; i++ {
		u := float64(i) / CurveSegments
		top = append(top, at(-a+l*u, topY(u), b, ox, oy))
	}
	for i := CurveSegments; i >= 0; i-- {
		u := float64(i) / CurveSegments
		top = append(top, at(-a+l*u, topY(u), -b, ox, oy))
	}
	face(doc, top)
}

// sagitta is the rise of a circular arc of radius r over chord c,
// capped at half the block height so extreme radii stay drawable.
func sagitta(c, r, h float64) float64 {
	if r <= 0 {
		return 0
	}
	half := c / 2
	var s float64
	if r <= half {
		s = r
	} else {
		s = r - math.Sqrt(r*r-half*half)
	}
	return math.Min(s, h/2)
}
