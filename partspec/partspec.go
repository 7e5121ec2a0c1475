// Package partspec defines the geometry model for inspected parts: a
// shape descriptor tagged with one of a closed set of families, and the
// reflector features (holes, notches) placed on its surfaces.
//
// All linear dimensions are millimetres. The descriptor holds native
// part units only; scaling to the canvas happens in viewfit.
package partspec

import "math"

type Family string

const (
	Rectangular Family = "rectangular"
	CurvedBlock Family = "curved_block"
	Cylinder    Family = "cylinder"
	Tube        Family = "tube"
	Ring        Family = "ring"
	Disk        Family = "disk"
	Hexagon     Family = "hexagon"
	Cone        Family = "cone"
	Sphere      Family = "sphere"
	Pyramid     Family = "pyramid"
	Ellipse     Family = "ellipse"
	Forging     Family = "forging"
	Irregular   Family = "irregular"
)

// Families is the closed set of recognized shape families, in display
// order. Dispatch tables are keyed off this list; anything else falls
// back to the rectangular drawer.
var Families = []Family{
	Rectangular, CurvedBlock, Cylinder, Tube, Ring, Disk,
	Hexagon, Cone, Sphere, Pyramid, Ellipse, Forging, Irregular,
}

func KnownFamily(f Family) bool {
	for _, k := range Families {
		if k == f {
			return true
		}
	}
	return false
}

// Shape describes one part. Exactly one family tag is active; the
// dimension fields that apply depend on it:
//
//   - rectangular, pyramid, irregular: Length x Width x Height
//   - curved_block: Length x Width x Height plus CurveRadius for the
//     top curvature
//   - forging: Length x Width x Height with a stepped top
//   - cylinder, tube, disk: OuterDiameter (InnerDiameter for tube) and
//     Length along the axis; the axis lies along X
//   - ring: OuterDiameter, InnerDiameter and Height along the axis
//   - hexagon: OuterDiameter across corners and Height
//   - cone: OuterDiameter at the base and Height to the apex
//   - sphere: OuterDiameter
//   - ellipse: Length (major axis), Width (minor axis), Height
type Shape struct {
	Family Family `json:"family"`

	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Top curvature of a curved block. Larger radius, flatter top.
	CurveRadius float64 `json:"curveRadius,omitempty"`

	OuterDiameter float64 `json:"outerDiameter,omitempty"`
	InnerDiameter float64 `json:"innerDiameter,omitempty"`

	// Name is carried into the drawing title block.
	Name string `json:"name,omitempty"`
}

// IsCylindrical reports whether features on this shape use the radial
// surface convention instead of named faces.
func (s *Shape) IsCylindrical() bool {
	switch s.Family {
	case Cylinder, Tube, Ring, Disk:
		return true
	}
	return false
}

// Hollow reports whether the family carries an inner bore.
func (s *Shape) Hollow() bool {
	switch s.Family {
	case Tube, Ring:
		return s.InnerDiameter > 0
	}
	return false
}

func (s *Shape) OuterRadius() float64 {
	return s.OuterDiameter / 2
}

func (s *Shape) InnerRadius() float64 {
	return s.InnerDiameter / 2
}

// AxialLength is the extent of a cylindrical shape along its axis.
// Rings stand on their axis, so their axial extent is Height.
func (s *Shape) AxialLength() float64 {
	if s.Family == Ring {
		return s.Height
	}
	return s.Length
}

// MaxDim is the largest characteristic dimension, used by viewport
// fitting to derive the render scale.
func (s *Shape) MaxDim() float64 {
	switch {
	case s.Family == Sphere:
		return s.OuterDiameter
	case s.Family == Cone || s.Family == Hexagon:
		return math.Max(s.OuterDiameter, s.Height)
	case s.IsCylindrical():
		return math.Max(s.OuterDiameter, s.AxialLength())
	default:
		return math.Max(s.Length, math.Max(s.Width, s.Height))
	}
}
