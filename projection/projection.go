// Package projection is the single place model-space points become
// screen-space points. Every isometric drawer goes through Project so
// body outlines, feature markers and dimension ticks stay aligned.
package projection

import (
	"math"

	"github.com/amitay1/partdraw/lib/geo"
)

// Angle is the fixed axonometric angle of the isometric views.
const Angle = 30 * math.Pi / 180

var (
	cosA = math.Cos(Angle)
	sinA = math.Sin(Angle)
)

// Project maps a model point to the drawing plane:
//
//	screenX = (x - z) * cos 30°
//	screenY = (x + z) * sin 30° - y
//
// A pure linear map, no perspective division and no branching. Inputs
// must be finite; the partspec validators guarantee that upstream.
func Project(x, y, z float64) *geo.Point {
	return geo.NewPoint(
		(x-z)*cosA,
		(x+z)*sinA-y,
	)
}

// ProjectPoint3 is Project on a geo.Point3.
func ProjectPoint3(p *geo.Point3) *geo.Point {
	return Project(p.X, p.Y, p.Z)
}

// ProjectAt projects and then shifts by a screen-space offset, which is
// how drawers anchor a body at its canvas position.
func ProjectAt(x, y, z, offsetX, offsetY float64) *geo.Point {
	p := Project(x, y, z)
	p.X += offsetX
	p.Y += offsetY
	return p
}
