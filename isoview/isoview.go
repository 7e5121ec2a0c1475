// Package isoview builds the isometric line drawing of a part: the
// body outline with visible-edge selection per shape family, plus the
// projected feature markers.
//
// Builders receive dimensions already multiplied by the render scale
// and an anchor offset in screen space; they do no scaling of their
// own. Every point goes through the projection package so body, holes
// and ticks can never drift apart.
package isoview

import (
	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/lib/svg"
	"github.com/amitay1/partdraw/partspec"
	"github.com/amitay1/partdraw/projection"
	"github.com/amitay1/partdraw/viewfit"
)

// EllipseSegments is the sampling density of projected circles. Any
// value >= 12 draws smoothly; changing it changes path size only.
const EllipseSegments = 32

type buildFunc func(doc *drawing.Document, s *partspec.Shape, scale, ox, oy float64)

// builders is the closed dispatch table over shape families. Families
// not present fall back to the box builder; the caller logs that.
var builders = map[partspec.Family]buildFunc{
	partspec.Rectangular: buildBox,
	partspec.CurvedBlock: buildCurvedBlock,
	partspec.Cylinder:    buildCylinder,
	partspec.Tube:        buildCylinder,
	partspec.Ring:        buildCylinder,
	partspec.Disk:        buildCylinder,
	partspec.Hexagon:     buildHexagon,
	partspec.Cone:        buildCone,
	partspec.Sphere:      buildSphere,
	partspec.Pyramid:     buildPyramid,
	partspec.Ellipse:     buildEllipsePrism,
	partspec.Forging:     buildForging,
	partspec.Irregular:   buildBox,
}

// Draw renders the isometric body and all feature markers into doc.
// It reports whether the family was unknown and the box fallback was
// used, and how many features needed fallback placement.
func Draw(doc *drawing.Document, s *partspec.Shape, features []*partspec.Feature, fit viewfit.Fit) (unknownFamily bool, fallbackFeatures int) {
	build, ok := builders[s.Family]
	if !ok {
		build = buildBox
		unknownFamily = true
	}

	// Anchor so the projected model center lands on the fit offset.
	// Features share the exact same anchor, keeping them glued to the
	// body.
	c := modelCenter(s)
	pc := projection.Project(c.X*fit.Scale, c.Y*fit.Scale, c.Z*fit.Scale)
	ox := fit.OffsetX - pc.X
	oy := fit.OffsetY - pc.Y

	build(doc, s, fit.Scale, ox, oy)
	fallbackFeatures = drawFeatures(doc, s, features, fit.Scale, ox, oy)
	return unknownFamily, fallbackFeatures
}

// modelCenter is the centroid of the shape in the placement frame:
// box-like parts are centered in X/Z with Y in [0, height], cylinder
// likes run along X from 0 with the axis at Y=Z=0.
func modelCenter(s *partspec.Shape) *geo.Point3 {
	if s.IsCylindrical() {
		return geo.NewPoint3(s.AxialLength()/2, 0, 0)
	}
	if s.Family == partspec.Sphere {
		return geo.NewPoint3(0, s.OuterRadius(), 0)
	}
	h := s.Height
	return geo.NewPoint3(0, h/2, 0)
}

// at projects a pre-scaled model point and anchors it on the canvas.
func at(x, y, z, ox, oy float64) *geo.Point {
	return projection.ProjectAt(x, y, z, ox, oy)
}

// face draws a closed filled face through the given model points.
func face(doc *drawing.Document, pts []*geo.Point) {
	doc.AddPath(svg.PolylinePath(pts, true), drawing.FaceStyle())
}

// sideFace is face with the darker vertical-face fill.
func sideFace(doc *drawing.Document, pts []*geo.Point) {
	doc.AddPath(svg.PolylinePath(pts, true), drawing.SideFaceStyle())
}

// outline draws an open silhouette/edge polyline.
func outline(doc *drawing.Document, pts []*geo.Point) {
	doc.AddPath(svg.PolylinePath(pts, false), drawing.OutlineStyle())
}

// facesViewer does screen-space back-face culling: true when the
// projected polygon, wound counter-clockwise seen from outside the
// solid, lands with negative signed area on screen (SVG y grows
// downward, which flips the winding of front faces).
func facesViewer(pts []*geo.Point) bool {
	return signedArea(pts) < 0
}

func signedArea(pts []*geo.Point) float64 {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}
