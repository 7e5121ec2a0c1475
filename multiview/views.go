package multiview

import (
	"math"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/svg"
	"github.com/amitay1/partdraw/partspec"
)

// curveSamples is the segmentation of curved silhouette edges.
const curveSamples = 20

// rect draws a w x h outline centered on (cx, cy) and returns its
// corner coordinates for dimensioning.
func rect(doc *drawing.Document, cx, cy, w, h float64, style drawing.Style) (x1, y1, x2, y2 float64) {
	x1, y1 = cx-w/2, cy-h/2
	x2, y2 = cx+w/2, cy+h/2
	pts := []*geo.Point{
		geo.NewPoint(x1, y1),
		geo.NewPoint(x2, y1),
		geo.NewPoint(x2, y2),
		geo.NewPoint(x1, y2),
	}
	doc.AddPath(svg.PolylinePath(pts, true), style)
	return x1, y1, x2, y2
}

func circle(doc *drawing.Document, cx, cy, r float64, style drawing.Style) {
	doc.AddPath(svg.EllipsePath(cx, cy, r, r), style)
}

// centerMark draws the crossed centerlines of a circular view.
func centerMark(doc *drawing.Document, cx, cy, r float64) {
	over := r + 6
	doc.Line(geo.NewPoint(cx-over, cy), geo.NewPoint(cx+over, cy), drawing.DimensionStyle())
	doc.Line(geo.NewPoint(cx, cy-over), geo.NewPoint(cx, cy+over), drawing.DimensionStyle())
}

func drawBoxViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	x1, _, x2, y2 := rect(doc, fc.X, fc.Y, s.Length*front.scale, s.Height*front.scale, drawing.OutlineStyle())
	dimHorizontal(doc, x1, x2, y2, dimLabel(s.Length))
	dimVertical(doc, x1, y2-s.Height*front.scale, y2, dimLabel(s.Height))

	sc := side.center()
	sx1, _, sx2, sy2 := rect(doc, sc.X, sc.Y, s.Width*side.scale, s.Height*side.scale, drawing.OutlineStyle())
	dimHorizontal(doc, sx1, sx2, sy2, dimLabel(s.Width))
}

func drawCurvedBlockViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	w := s.Length * front.scale
	h := s.Height * front.scale
	sag := curveRise(s.Length, s.CurveRadius, s.Height) * front.scale
	x1, y1 := fc.X-w/2, fc.Y-h/2
	x2, y2 := fc.X+w/2, fc.Y+h/2

	// straight sides and base, curved top pinned to the corners
	profile := []*geo.Point{geo.NewPoint(x1, y2), geo.NewPoint(x2, y2), geo.NewPoint(x2, y1)}
	right, left := geo.NewPoint(x2, y1), geo.NewPoint(x1, y1)
	for i := 0; i <= curveSamples; i++ {
		u := float64(i) / curveSamples
		p := right.Interpolate(left, u)
		profile = append(profile, geo.NewPoint(p.X, p.Y-sag*math.Sin(math.Pi*u)))
	}
	profile = append(profile, geo.NewPoint(x1, y2))
	doc.AddPath(svg.PolylinePath(profile, true), drawing.OutlineStyle())

	dimHorizontal(doc, x1, x2, y2, dimLabel(s.Length))
	dimVertical(doc, x1, y1, y2, dimLabel(s.Height))

	sc := side.center()
	sx1, _, sx2, sy2 := rect(doc, sc.X, sc.Y, s.Width*side.scale, s.Height*side.scale, drawing.OutlineStyle())
	dimHorizontal(doc, sx1, sx2, sy2, dimLabel(s.Width))
}

func drawForgingViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	w := s.Length * front.scale
	h := s.Height * front.scale
	baseH := h * 0.55
	bossW := w * 0.6
	x1, y2 := fc.X-w/2, fc.Y+h/2
	bossX1 := fc.X - bossW/2

	profile := []*geo.Point{
		geo.NewPoint(x1, y2),
		geo.NewPoint(x1+w, y2),
		geo.NewPoint(x1+w, y2-baseH),
		geo.NewPoint(bossX1+bossW, y2-baseH),
		geo.NewPoint(bossX1+bossW, y2-h),
		geo.NewPoint(bossX1, y2-h),
		geo.NewPoint(bossX1, y2-baseH),
		geo.NewPoint(x1, y2-baseH),
	}
	doc.AddPath(svg.PolylinePath(profile, true), drawing.OutlineStyle())

	dimHorizontal(doc, x1, x1+w, y2, dimLabel(s.Length))
	dimVertical(doc, x1, y2-h, y2, dimLabel(s.Height))

	sc := side.center()
	sx1, _, sx2, sy2 := rect(doc, sc.X, sc.Y, s.Width*side.scale, s.Height*side.scale, drawing.OutlineStyle())
	dimHorizontal(doc, sx1, sx2, sy2, dimLabel(s.Width))
}

func drawPyramidViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	tri := func(v *view, base, height, label float64) {
		c := v.center()
		w := base * v.scale
		h := height * v.scale
		x1, y2 := c.X-w/2, c.Y+h/2
		pts := []*geo.Point{
			geo.NewPoint(x1, y2),
			geo.NewPoint(x1+w, y2),
			geo.NewPoint(c.X, y2-h),
		}
		doc.AddPath(svg.PolylinePath(pts, true), drawing.OutlineStyle())
		dimHorizontal(doc, x1, x1+w, y2, dimLabel(label))
	}
	tri(front, s.Length, s.Height, s.Length)
	tri(side, s.Width, s.Height, s.Width)

	fc := front.center()
	h := s.Height * front.scale
	dimVertical(doc, fc.X-s.Length*front.scale/2, fc.Y-h/2, fc.Y+h/2, dimLabel(s.Height))
}

// drawCylinderViews: the axis runs horizontally in the front view, so
// the front is a rectangle and the side a circle.
func drawCylinderViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	l := s.AxialLength() * front.scale
	d := s.OuterDiameter * front.scale
	x1, y1, x2, y2 := rect(doc, fc.X, fc.Y, l, d, drawing.OutlineStyle())

	// axis centerline
	doc.Line(geo.NewPoint(x1-6, fc.Y), geo.NewPoint(x2+6, fc.Y), drawing.DimensionStyle())
	if s.Hollow() {
		ir := s.InnerRadius() * front.scale
		doc.Line(geo.NewPoint(x1, fc.Y-ir), geo.NewPoint(x2, fc.Y-ir), drawing.HiddenStyle())
		doc.Line(geo.NewPoint(x1, fc.Y+ir), geo.NewPoint(x2, fc.Y+ir), drawing.HiddenStyle())
	}
	dimHorizontal(doc, x1, x2, y2, dimLabel(s.AxialLength()))
	dimVertical(doc, x1, y1, y2, diameterLabel(s.OuterDiameter))

	sc := side.center()
	r := s.OuterRadius() * side.scale
	circle(doc, sc.X, sc.Y, r, drawing.OutlineStyle())
	if s.Hollow() {
		circle(doc, sc.X, sc.Y, s.InnerRadius()*side.scale, drawing.HiddenStyle())
	}
	centerMark(doc, sc.X, sc.Y, r)
	dimDiameter(doc, sc.X, sc.Y, r, diameterLabel(s.OuterDiameter))
}

// drawRingViews: a ring stands on its axis, so the front view is the
// pair of concentric circles and the side view the cut rectangle.
func drawRingViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	r := s.OuterRadius() * front.scale
	circle(doc, fc.X, fc.Y, r, drawing.OutlineStyle())
	circle(doc, fc.X, fc.Y, s.InnerRadius()*front.scale, drawing.OutlineStyle())
	centerMark(doc, fc.X, fc.Y, r)
	dimDiameter(doc, fc.X, fc.Y, r, diameterLabel(s.OuterDiameter))

	sc := side.center()
	d := s.OuterDiameter * side.scale
	h := s.Height * side.scale
	x1, y1, x2, y2 := rect(doc, sc.X, sc.Y, d, h, drawing.OutlineStyle())
	ir := s.InnerRadius() * side.scale
	doc.Line(geo.NewPoint(sc.X-ir, y1), geo.NewPoint(sc.X-ir, y2), drawing.HiddenStyle())
	doc.Line(geo.NewPoint(sc.X+ir, y1), geo.NewPoint(sc.X+ir, y2), drawing.HiddenStyle())
	dimHorizontal(doc, x1, x2, y2, diameterLabel(s.OuterDiameter))
	dimVertical(doc, x1, y1, y2, dimLabel(s.Height))
}

// hexCorners samples a regular hexagon with two corners on the
// horizontal axis, so the across-corners span runs left to right and
// the flats top and bottom.
func hexCorners(cx, cy, r float64) []*geo.Point {
	pts := make([]*geo.Point, 0, 6)
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		pts = append(pts, geo.NewPoint(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return pts
}

func drawHexagonViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	r := s.OuterRadius() * front.scale
	doc.AddPath(svg.PolylinePath(hexCorners(fc.X, fc.Y, r), true), drawing.OutlineStyle())
	// across-corners, spanning the hexagon's true horizontal extent,
	// dimensioned off its bottom flat
	dimHorizontal(doc, fc.X-r, fc.X+r, fc.Y+r*math.Cos(math.Pi/6), dimLabel(s.OuterDiameter))

	sc := side.center()
	flats := s.OuterDiameter * math.Cos(math.Pi/6)
	sx1, sy1, sx2, sy2 := rect(doc, sc.X, sc.Y, flats*side.scale, s.Height*side.scale, drawing.OutlineStyle())
	dimHorizontal(doc, sx1, sx2, sy2, dimLabel(flats))
	dimVertical(doc, sx1, sy1, sy2, dimLabel(s.Height))
}

func drawConeViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	w := s.OuterDiameter * front.scale
	h := s.Height * front.scale
	x1, y2 := fc.X-w/2, fc.Y+h/2
	pts := []*geo.Point{
		geo.NewPoint(x1, y2),
		geo.NewPoint(x1+w, y2),
		geo.NewPoint(fc.X, y2-h),
	}
	doc.AddPath(svg.PolylinePath(pts, true), drawing.OutlineStyle())
	dimHorizontal(doc, x1, x1+w, y2, diameterLabel(s.OuterDiameter))
	dimVertical(doc, x1, y2-h, y2, dimLabel(s.Height))

	sc := side.center()
	r := s.OuterRadius() * side.scale
	circle(doc, sc.X, sc.Y, r, drawing.OutlineStyle())
	centerMark(doc, sc.X, sc.Y, r)
}

func drawSphereViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	for _, v := range []*view{front, side} {
		c := v.center()
		r := s.OuterRadius() * v.scale
		circle(doc, c.X, c.Y, r, drawing.OutlineStyle())
		centerMark(doc, c.X, c.Y, r)
	}
	fc := front.center()
	dimDiameter(doc, fc.X, fc.Y, s.OuterRadius()*front.scale, diameterLabel(s.OuterDiameter))
}

// drawEllipseViews: the elliptical cross-section lies horizontal, so
// both silhouettes are rectangles; the section shows as a hidden
// ellipse in the front view.
func drawEllipseViews(doc *drawing.Document, s *partspec.Shape, front, side *view) {
	fc := front.center()
	x1, y1, x2, y2 := rect(doc, fc.X, fc.Y, s.Length*front.scale, s.Height*front.scale, drawing.OutlineStyle())
	doc.AddPath(svg.EllipsePath(fc.X, fc.Y, s.Length/2*front.scale, s.Width/2*front.scale*0.3), drawing.HiddenStyle())
	dimHorizontal(doc, x1, x2, y2, dimLabel(s.Length))
	dimVertical(doc, x1, y1, y2, dimLabel(s.Height))

	sc := side.center()
	sx1, _, sx2, sy2 := rect(doc, sc.X, sc.Y, s.Width*side.scale, s.Height*side.scale, drawing.OutlineStyle())
	dimHorizontal(doc, sx1, sx2, sy2, dimLabel(s.Width))
}

// curveRise is the rise of a circular arc of radius r over chord c,
// capped at half the block height.
func curveRise(c, r, h float64) float64 {
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
