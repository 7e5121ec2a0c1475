package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p *Point) Equals(other *Point) bool {
	if p == nil || other == nil {
		return p == nil && other == nil
	}
	return p.X == other.X && p.Y == other.Y
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// DistanceToLine is the distance from p to the segment [a, b]:
// perpendicular distance when the foot of the perpendicular lands
// inside the segment, distance to the nearer endpoint otherwise.
func (p *Point) DistanceToLine(a, b *Point) float64 {
	abX := b.X - a.X
	abY := b.Y - a.Y

	t := 0.0
	if lenSq := abX*abX + abY*abY; lenSq != 0 {
		t = ((p.X-a.X)*abX + (p.Y-a.Y)*abY) / lenSq
	}
	t = math.Max(0, math.Min(1, t))

	foot := a.Interpolate(b, t)
	return EuclideanDistance(p.X, p.Y, foot.X, foot.Y)
}

// AddVector is p displaced by v.
func (p *Point) AddVector(v Vector) *Point {
	return p.ToVector().Add(v).ToPoint()
}

// VectorTo is the displacement from p to endpoint.
func (p *Point) VectorTo(endpoint *Point) Vector {
	return endpoint.ToVector().Minus(p.ToVector())
}

func (p *Point) ToVector() Vector {
	return Vector{p.X, p.Y}
}

// Interpolate is the point t of the way from p to b, t in [0, 1].
func (p *Point) Interpolate(b *Point, t float64) *Point {
	return NewPoint(p.X+(b.X-p.X)*t, p.Y+(b.Y-p.Y)*t)
}

// IntersectionPoint solves the crossing of segments [u0, u1] and
// [v0, v1] with Cramer's rule, nil when parallel or when the solution
// falls outside either segment.
func IntersectionPoint(u0, u1, v0, v1 *Point) *Point {
	udx := u1.X - u0.X
	udy := u1.Y - u0.Y
	vdx := v1.X - v0.X
	vdy := v1.Y - v0.Y

	denom := udy*vdx - udx*vdy
	if denom == 0 {
		return nil
	}

	dx := v0.X - u0.X
	dy := v0.Y - u0.Y
	s := (vdx*dy - vdy*dx) / denom
	t := (udx*dy - udy*dx) / denom
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return nil
	}
	return NewPoint(u0.X+s*udx, u0.Y+s*udy)
}
