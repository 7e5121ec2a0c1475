package geo

// Intersectable is any closed outline that can report where a line
// segment crosses it. Box and Ellipse both satisfy it, which lets
// overlay drawers clip scan lines against either kind of view frame.
type Intersectable interface {
	Intersections(segment Segment) []*Point
}

// Segment is the directed line between two endpoints.
type Segment struct {
	Start *Point
	End   *Point
}

func NewSegment(from, to *Point) *Segment {
	return &Segment{Start: from, End: to}
}

// Intersections reports the crossing with another segment, empty when
// the two are parallel or miss each other.
func (s Segment) Intersections(other Segment) []*Point {
	p := IntersectionPoint(s.Start, s.End, other.Start, other.End)
	if p == nil {
		return nil
	}
	return []*Point{p}
}

func (s Segment) Length() float64 {
	return EuclideanDistance(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}
