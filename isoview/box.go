package isoview

import (
	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
)

func buildBox(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64) {
	l, w, h := s.Length, s.Width, s.Height
	// families routed here without box dimensions still get a body
	if l <= 0 || w <= 0 || h <= 0 {
		l, w, h = maxf(l, s.OuterDiameter), maxf(w, s.OuterDiameter), maxf(h, s.OuterDiameter)
	}
	boxPaths(doc, l*scale, w*scale, h*scale, 0, ox, oy)
}

// boxPaths emits the three visible faces of an axis-aligned box: the
// top and the two faces toward the viewer (+z and +x). The other three
// faces are fully hidden under this projection and are never drawn.
// yBase lifts the box, which the forging builder uses for its step.
func boxPaths(doc *drawing.Document, l, w, h, yBase, ox, oy float64) {
	a, b := l/2, w/2
	y0, y1 := yBase, yBase+h

	top := []*geo.Point{
		at(-a, y1, -b, ox, oy),
		at(-a, y1, b, ox, oy),
		at(a, y1, b, ox, oy),
		at(a, y1, -b, ox, oy),
	}
	front := []*geo.Point{
		at(-a, y0, b, ox, oy),
		at(a, y0, b, ox, oy),
		at(a, y1, b, ox, oy),
		at(-a, y1, b, ox, oy),
	}
	right := []*geo.Point{
		at(a, y0, b, ox, oy),
		at(a, y0, -b, ox, oy),
		at(a, y1, -b, ox, oy),
		at(a, y1, b, ox, oy),
	}

	face(doc, top)
	sideFace(doc, front)
	sideFace(doc, right)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
