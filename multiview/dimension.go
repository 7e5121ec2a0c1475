package multiview

import (
	"fmt"
	"math"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
)

const (
	// extension lines stand off the measured edge and overshoot the
	// dimension line, per drafting convention.
	extOffset    = 8.0
	extOvershoot = 4.0
	arrowLen     = 8.0
	arrowHalf    = 3.0
	dimFontSize  = 11.0
)

func dimLabel(v float64) string      { return fmt.Sprintf("%g mm", v) }
func diameterLabel(v float64) string { return fmt.Sprintf("⌀%g mm", v) }

// dimHorizontal draws a horizontal dimension below an edge spanning
// [x1, x2] at edge height yEdge: two extension lines, the dimension
// line with arrowheads, and the label centered above the line.
func dimHorizontal(doc *drawing.Document, x1, x2, yEdge float64, label string) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	y := yEdge + extOffset + 12

	doc.Line(geo.NewPoint(x1, yEdge+extOffset), geo.NewPoint(x1, y+extOvershoot), drawing.DimensionStyle())
	doc.Line(geo.NewPoint(x2, yEdge+extOffset), geo.NewPoint(x2, y+extOvershoot), drawing.DimensionStyle())
	doc.Line(geo.NewPoint(x1, y), geo.NewPoint(x2, y), drawing.DimensionStyle())

	arrowhead(doc, x1, y, 1, 0)
	arrowhead(doc, x2, y, -1, 0)

	doc.AddText(drawing.Text{
		X:        (x1 + x2) / 2,
		Y:        y - 4,
		Content:  label,
		FontSize: dimFontSize,
		Anchor:   drawing.AnchorMiddle,
	})
}

// dimVertical draws a vertical dimension to the left of an edge
// spanning [y1, y2] at edge x xEdge.
func dimVertical(doc *drawing.Document, xEdge, y1, y2 float64, label string) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	x := xEdge - extOffset - 12

	doc.Line(geo.NewPoint(xEdge-extOffset, y1), geo.NewPoint(x-extOvershoot, y1), drawing.DimensionStyle())
	doc.Line(geo.NewPoint(xEdge-extOffset, y2), geo.NewPoint(x-extOvershoot, y2), drawing.DimensionStyle())
	doc.Line(geo.NewPoint(x, y1), geo.NewPoint(x, y2), drawing.DimensionStyle())

	arrowhead(doc, x, y1, 0, 1)
	arrowhead(doc, x, y2, 0, -1)

	doc.AddText(drawing.Text{
		X:        x - 4,
		Y:        (y1 + y2) / 2,
		Content:  label,
		FontSize: dimFontSize,
		Anchor:   drawing.AnchorEnd,
	})
}

// dimDiameter labels a circle with a 45 degree leader through its
// center; the arrowheads sit exactly on the circle, found by
// intersecting the leader with it.
func dimDiameter(doc *drawing.Document, cx, cy, r float64, label string) {
	center := geo.NewPoint(cx, cy)
	diag := geo.NewVector(math.Sqrt2/2, -math.Sqrt2/2)
	over := r + extOvershoot + 4

	from := center.AddVector(diag.Multiply(-over))
	to := center.AddVector(diag.Multiply(over))
	doc.Line(from, to, drawing.DimensionStyle())

	for _, p := range leaderTips(geo.NewEllipse(center, r, r), from, to) {
		u := p.VectorTo(center).Unit()
		arrowhead(doc, p.X, p.Y, u[0], u[1])
	}

	doc.AddText(drawing.Text{
		X:        to.X + 4,
		Y:        to.Y - 4,
		Content:  label,
		FontSize: dimFontSize,
	})
}

// leaderTips finds where the leader [from, to] crosses the measured
// outline, which is where its arrowheads sit. Any closed outline that
// reports segment crossings works: circles here, view rectangles for
// overlay leaders.
func leaderTips(outline geo.Intersectable, from, to *geo.Point) []*geo.Point {
	return outline.Intersections(*geo.NewSegment(from, to))
}

// arrowhead draws an open V at (x, y) pointing against the unit
// direction (dx, dy).
func arrowhead(doc *drawing.Document, x, y, dx, dy float64) {
	bx := x + dx*arrowLen
	by := y + dy*arrowLen
	// perpendicular of (dx, dy)
	px, py := -dy, dx
	doc.Line(geo.NewPoint(x, y), geo.NewPoint(bx+px*arrowHalf, by+py*arrowHalf), drawing.DimensionStyle())
	doc.Line(geo.NewPoint(x, y), geo.NewPoint(bx-px*arrowHalf, by-py*arrowHalf), drawing.DimensionStyle())
}
