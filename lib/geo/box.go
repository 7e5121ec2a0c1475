package geo

import "fmt"

// Box is an axis-aligned rectangle anchored at its top-left corner, in
// canvas coordinates (y grows downward). The orthographic sheet layout
// hands one Box per view to drawers and overlay collaborators.
type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

// Contains reports whether p lies inside or on the border of b.
func (b *Box) Contains(p *Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.TopLeft.X+b.Width &&
		p.Y >= b.TopLeft.Y && p.Y <= b.TopLeft.Y+b.Height
}

// Intersections returns the points where s crosses b's border, one per
// crossed edge. Overlay drawers use this to clip zone lines to a view.
func (b *Box) Intersections(s Segment) []*Point {
	tl := b.TopLeft
	tr := NewPoint(tl.X+b.Width, tl.Y)
	br := NewPoint(tr.X, tr.Y+b.Height)
	bl := NewPoint(tl.X, br.Y)

	var pts []*Point
	for _, edge := range [][2]*Point{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}} {
		if p := IntersectionPoint(s.Start, s.End, edge[0], edge[1]); p != nil {
			pts = append(pts, p)
		}
	}
	return pts
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
