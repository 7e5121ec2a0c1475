package geo

import "math"

// Vector is an n-dimensional displacement. The drawers only ever build
// 2-component vectors but the arithmetic does not care.
type Vector []float64

func NewVector(components ...float64) Vector {
	return components
}

func (a Vector) Add(b Vector) Vector {
	c := make(Vector, len(a))
	for i := range a {
		c[i] = a[i] + b[i]
	}
	return c
}

func (a Vector) Minus(b Vector) Vector {
	c := make(Vector, len(a))
	for i := range a {
		c[i] = a[i] - b[i]
	}
	return c
}

func (a Vector) Multiply(v float64) Vector {
	c := make(Vector, len(a))
	for i := range a {
		c[i] = a[i] * v
	}
	return c
}

func (a Vector) Length() float64 {
	sum := 0.0
	for _, comp := range a {
		sum += comp * comp
	}
	return math.Sqrt(sum)
}

// Unit scales to length 1, preserving direction.
func (a Vector) Unit() Vector {
	return a.Multiply(1 / a.Length())
}

func (a Vector) ToPoint() *Point {
	return &Point{X: a[0], Y: a[1]}
}
