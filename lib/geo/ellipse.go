package geo

import "math"

type Ellipse struct {
	Center *Point
	Rx     float64
	Ry     float64
}

func NewEllipse(center *Point, rx, ry float64) *Ellipse {
	return &Ellipse{
		Center: center,
		Rx:     rx,
		Ry:     ry,
	}
}

// Intersections returns the points where segment crosses the ellipse
// boundary: 0, 1 (tangent) or 2 points. The segment is translated into
// the ellipse's local frame, solved against x^2/rx^2 + y^2/ry^2 = 1,
// and solutions off the finite segment are discarded.
func (e Ellipse) Intersections(segment Segment) []*Point {
	rx2 := e.Rx * e.Rx
	ry2 := e.Ry * e.Ry
	if e.Rx <= 0 || e.Ry <= 0 {
		return nil
	}

	x1 := segment.Start.X - e.Center.X
	y1 := segment.Start.Y - e.Center.Y
	x2 := segment.End.X - e.Center.X
	y2 := segment.End.Y - e.Center.Y

	var intersections []*Point
	if x1 == x2 {
		intersections = e.verticalIntersections(x1, y1, y2)
	} else {
		// slope form y = mx + c through the two endpoints
		m := (y2 - y1) / (x2 - x1)
		c := y1 - m*x1

		// substituting y = mx + c into the ellipse equation gives a
		// quadratic in x with discriminant rx^2 ry^2 (denom - c^2)
		denom := rx2*m*m + ry2
		disc := rx2 * ry2 * (denom - c*c)
		if disc < 0 {
			return nil
		}
		root := math.Sqrt(disc)

		onSegment := func(p *Point) bool {
			return PrecisionCompare(p.DistanceToLine(NewPoint(x1, y1), NewPoint(x2, y2)), 0, PRECISION) == 0
		}

		p1 := NewPoint((-m*c*rx2+root)/denom, (c*ry2+m*root)/denom)
		p2 := NewPoint((-m*c*rx2-root)/denom, (c*ry2-m*root)/denom)
		if onSegment(p1) {
			intersections = append(intersections, p1)
		}
		if !p1.Equals(p2) && onSegment(p2) {
			intersections = append(intersections, p2)
		}
	}

	for _, p := range intersections {
		p.X += e.Center.X
		p.Y += e.Center.Y
	}
	return intersections
}

// verticalIntersections handles the slope-less case: a vertical chord
// at local x crossing between local y1 and y2.
func (e Ellipse) verticalIntersections(x, y1, y2 float64) []*Point {
	rx2 := e.Rx * e.Rx
	if x*x > rx2 {
		return nil
	}
	dy := e.Ry * math.Sqrt(rx2-x*x) / e.Rx

	lo, hi := y1, y2
	if lo > hi {
		lo, hi = hi, lo
	}

	var intersections []*Point
	if lo <= dy && dy <= hi {
		intersections = append(intersections, NewPoint(x, dy))
	}
	// dy == 0 means the chord grazes the end of the major axis and both
	// solutions coincide
	if dy != 0 && lo <= -dy && -dy <= hi {
		intersections = append(intersections, NewPoint(x, -dy))
	}
	return intersections
}
