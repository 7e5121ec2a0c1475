package partspec

import (
	"math"

	"github.com/amitay1/partdraw/lib/geo"
)

type Kind string

const (
	// FBH is a flat-bottom hole: a calibration reflector drilled to a
	// fixed depth.
	FBH Kind = "fbh"
	// SDH is a side-drilled hole, drilled perpendicular to the beam
	// axis at a depth below the surface.
	SDH Kind = "sdh"
	// Through is a through-hole.
	Through Kind = "through"
	// Notch is a rectangular reference notch.
	Notch Kind = "notch"
)

func KnownKind(k Kind) bool {
	switch k {
	case FBH, SDH, Through, Notch:
		return true
	}
	return false
}

// Surface names a face of a rectangular-family shape, or the single
// radial surface of a cylindrical one.
type Surface string

const (
	Top    Surface = "top"
	Bottom Surface = "bottom"
	Front  Surface = "front"
	Back   Surface = "back"
	Left   Surface = "left"
	Right  Surface = "right"
	Radial Surface = "radial"
)

// MinEdgeClearance keeps features on cylindrical surfaces away from
// the end faces so the drawing never degenerates, in mm.
const MinEdgeClearance = 5.0

// Feature is a reflector placed on one surface of a shape, positioned
// in that surface's local 2D frame. Features never store world-space
// coordinates; the placement package derives those fresh on every
// render so shape edits cannot leave stale geometry behind.
type Feature struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	// Diameter applies to fbh, sdh and through.
	Diameter float64 `json:"diameter,omitempty"`

	// Notch cross-section.
	Width float64 `json:"width,omitempty"`
	Angle float64 `json:"angle,omitempty"`

	// Depth is measured inward along the surface normal.
	Depth float64 `json:"depth"`

	Surface  Surface   `json:"surface"`
	Position geo.Point `json:"position"`

	// DepthFromSurface applies to sdh only: how far below the entry
	// surface the hole axis runs.
	DepthFromSurface float64 `json:"depthFromSurface,omitempty"`
}

// SurfaceBounds returns the (width, height) of the named surface's
// local frame on s. For radial surfaces height is the circumference;
// only the axial coordinate is meaningful for placement.
func (s *Shape) SurfaceBounds(surface Surface) (w, h float64, ok bool) {
	if s.IsCylindrical() {
		if surface != Radial {
			return 0, 0, false
		}
		return s.AxialLength(), math.Pi * s.OuterDiameter, true
	}
	switch surface {
	case Top, Bottom:
		return s.Length, s.Width, true
	case Front, Back:
		return s.Length, s.Height, true
	case Left, Right:
		return s.Width, s.Height, true
	}
	return 0, 0, false
}

// ClampedPosition returns the feature position clamped to the bounds
// of its surface on s. Out-of-bounds positions are pulled to the edge,
// never dropped. Cylindrical surfaces additionally keep the axial
// coordinate MinEdgeClearance away from either end.
func (f *Feature) ClampedPosition(s *Shape) *geo.Point {
	p := f.Position
	if s.IsCylindrical() {
		length := s.AxialLength()
		lo, hi := MinEdgeClearance, length-MinEdgeClearance
		if hi < lo {
			// degenerate short part: collapse to the middle
			lo, hi = length/2, length/2
		}
		return geo.NewPoint(clamp(p.X, lo, hi), 0)
	}
	w, h, ok := s.SurfaceBounds(f.Surface)
	if !ok {
		// unresolvable surface: placement falls back elsewhere, keep
		// the raw position deterministic
		return geo.NewPoint(p.X, p.Y)
	}
	return geo.NewPoint(clamp(p.X, 0, w), clamp(p.Y, 0, h))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
