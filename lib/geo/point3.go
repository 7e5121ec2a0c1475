package geo

import (
	"fmt"
	"math"
)

// Point3 is a point in the part's model space, in millimetres.
// Model points are only ever turned into screen points by the
// projection package; nothing else does that math by hand.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func NewPoint3(x, y, z float64) *Point3 {
	return &Point3{X: x, Y: y, Z: z}
}

func (p *Point3) Copy() *Point3 {
	return &Point3{X: p.X, Y: p.Y, Z: p.Z}
}

func (p1 *Point3) Equals(p2 *Point3) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return p1.X == p2.X && p1.Y == p2.Y && p1.Z == p2.Z
}

func (p *Point3) Add(q *Point3) *Point3 {
	return NewPoint3(p.X+q.X, p.Y+q.Y, p.Z+q.Z)
}

func (p *Point3) Subtract(q *Point3) *Point3 {
	return NewPoint3(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

func (p *Point3) Scale(f float64) *Point3 {
	return NewPoint3(p.X*f, p.Y*f, p.Z*f)
}

func (p *Point3) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Unit returns the unit-length direction of p. The zero vector has no
// direction and is returned as-is.
func (p *Point3) Unit() *Point3 {
	l := p.Length()
	if l == 0 {
		return p.Copy()
	}
	return p.Scale(1 / l)
}

func (p *Point3) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}
