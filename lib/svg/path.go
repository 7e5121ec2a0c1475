// Package svg builds SVG path data strings for the drawing document.
package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/amitay1/partdraw/lib/geo"
)

type PathContext struct {
	Commands []string
	Start    *geo.Point
	Current  *geo.Point
	TopLeft  *geo.Point
	ScaleX   float64
	ScaleY   float64
}

func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

func NewPathContext(tl *geo.Point, sx, sy float64) *PathContext {
	return &PathContext{TopLeft: tl.Copy(), ScaleX: sx, ScaleY: sy}
}

func (c *PathContext) Relative(base *geo.Point, dx, dy float64) *geo.Point {
	return geo.NewPoint(chopPrecision(base.X+c.ScaleX*dx), chopPrecision(base.Y+c.ScaleY*dy))
}

func (c *PathContext) Absolute(x, y float64) *geo.Point {
	return c.Relative(c.TopLeft, x, y)
}

func (c *PathContext) StartAt(p *geo.Point) {
	c.Start = p
	c.Commands = append(c.Commands, fmt.Sprintf("M %v %v", p.X, p.Y))
	c.Current = p.Copy()
}

func (c *PathContext) Z() {
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start.Copy()
}

func (c *PathContext) L(isLowerCase bool, x, y float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, y)
	} else {
		endPoint = c.Absolute(x, y)
	}
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", endPoint.X, endPoint.Y))
	c.Current = endPoint.Copy()
}

func (c *PathContext) C(isLowerCase bool, x1, y1, x2, y2, x3, y3 float64) {
	p := func(x, y float64) *geo.Point {
		if isLowerCase {
			return c.Relative(c.Current, x, y)
		}
		return c.Absolute(x, y)
	}
	p1, p2, p3 := p(x1, y1), p(x2, y2), p(x3, y3)
	c.Commands = append(c.Commands, fmt.Sprintf(
		"C %v %v %v %v %v %v",
		p1.X, p1.Y,
		p2.X, p2.Y,
		p3.X, p3.Y,
	))
	c.Current = p3.Copy()
}

func (c *PathContext) H(isLowerCase bool, x float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, 0)
	} else {
		endPoint = c.Absolute(x, 0)
		endPoint.Y = c.Current.Y
	}
	c.Commands = append(c.Commands, fmt.Sprintf("H %v", endPoint.X))
	c.Current = endPoint.Copy()
}

func (c *PathContext) V(isLowerCase bool, y float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, 0, y)
	} else {
		endPoint = c.Absolute(0, y)
		endPoint.X = c.Current.X
	}
	c.Commands = append(c.Commands, fmt.Sprintf("V %v", endPoint.Y))
	c.Current = endPoint.Copy()
}

// A appends an elliptical arc to the absolute endpoint (x, y).
func (c *PathContext) A(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	endPoint := c.Absolute(x, y)
	large, swp := 0, 0
	if largeArc {
		large = 1
	}
	if sweep {
		swp = 1
	}
	c.Commands = append(c.Commands, fmt.Sprintf(
		"A %v %v %v %d %d %v %v",
		chopPrecision(rx*c.ScaleX), chopPrecision(ry*c.ScaleY), rotation, large, swp,
		endPoint.X, endPoint.Y,
	))
	c.Current = endPoint.Copy()
}

func (c *PathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}

// EllipsePath returns closed path data for a full ellipse, drawn as two
// arc halves so the path has explicit start and mid points.
func EllipsePath(cx, cy, rx, ry float64) string {
	pc := NewPathContext(geo.NewPoint(cx, cy), 1, 1)
	pc.StartAt(pc.Absolute(-rx, 0))
	pc.A(rx, ry, 0, true, true, rx, 0)
	pc.A(rx, ry, 0, true, true, -rx, 0)
	pc.Z()
	return pc.PathData()
}

// PolylinePath returns path data through the given screen points,
// closed when closed is set.
func PolylinePath(points []*geo.Point, closed bool) string {
	if len(points) == 0 {
		return ""
	}
	pc := NewPathContext(geo.NewPoint(0, 0), 1, 1)
	pc.StartAt(pc.Absolute(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		pc.L(false, p.X, p.Y)
	}
	if closed {
		pc.Z()
	}
	return pc.PathData()
}
