// Package placement maps a feature's surface-local coordinates to a 3D
// center and an outward surface normal, reconciling the two placement
// conventions: named faces on box-like parts and the single radial
// surface on cylinder-like parts.
//
// Model frames, in mm:
//
//   - box-like: X in [-L/2, L/2], Z in [-W/2, W/2], Y in [0, H]. The +Z
//     and +X faces are the ones facing the isometric viewer.
//   - cylinder-like: the axis runs along X in [0, axial length], Y is
//     up; features sit on the outer radius at the top of the barrel.
//
// A hole's depth is measured inward along the face normal, so its
// visual center sits depth/2 inside the face plane — offset from the
// face, not from the shape center.
package placement

import (
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
)

// Placement is a resolved feature location. Center is the visual
// center of the drilled volume; Normal is the outward unit normal of
// the entry surface. Fallback marks placements that did not match the
// shape's surface convention and were recovered deterministically —
// the caller logs those, the geometry is still always usable.
type Placement struct {
	Center   *geo.Point3
	Normal   *geo.Point3
	Fallback bool
}

// Resolve never fails: an inconsistent surface/shape pairing resolves
// to a deterministic default (top face, or the radial surface on
// cylindrical parts) because an inspection drawing must always render
// something.
func Resolve(f *partspec.Feature, s *partspec.Shape) Placement {
	if s.IsCylindrical() {
		p := resolveRadial(f, s)
		p.Fallback = f.Surface != partspec.Radial
		return p
	}

	surface := f.Surface
	fallback := false
	if _, _, ok := s.SurfaceBounds(surface); !ok {
		surface = partspec.Top
		fallback = true
	}
	p := resolveFace(f, s, surface)
	p.Fallback = fallback
	return p
}

// inset is how far the feature's visual center sits below the entry
// surface. Side-drilled holes run at an explicit depth below the
// surface; everything else centers halfway down its drilled depth.
// Capped at wall, the material available along the entry normal, so an
// over-deep feature still resolves inside the body.
func inset(f *partspec.Feature, wall float64) float64 {
	in := f.Depth / 2
	if f.Kind == partspec.SDH && f.DepthFromSurface > 0 {
		in = f.DepthFromSurface
	}
	return clamp(in, 0, wall)
}

func resolveRadial(f *partspec.Feature, s *partspec.Shape) Placement {
	pos := f.ClampedPosition(s)
	wall := s.OuterRadius()
	if s.Hollow() {
		wall = s.OuterRadius() - s.InnerRadius()
	}
	return Placement{
		Center: geo.NewPoint3(pos.X, s.OuterRadius()-inset(f, wall), 0),
		Normal: geo.NewPoint3(0, 1, 0),
	}
}

func resolveFace(f *partspec.Feature, s *partspec.Shape, surface partspec.Surface) Placement {
	l, w, h := boundingDims(s)
	var wall float64
	switch surface {
	case partspec.Top, partspec.Bottom:
		wall = h
	case partspec.Front, partspec.Back:
		wall = w
	default:
		wall = l
	}
	in := inset(f, wall)

	// Clamp within the target surface, not the feature's original one:
	// fallback placements must stay on the face they land on.
	fw, fh, _ := s.SurfaceBounds(surface)
	pos := f.Position
	x := clamp(pos.X, 0, fw)
	y := clamp(pos.Y, 0, fh)

	switch surface {
	case partspec.Top:
		return Placement{
			Center: geo.NewPoint3(x-l/2, h-in, y-w/2),
			Normal: geo.NewPoint3(0, 1, 0),
		}
	case partspec.Bottom:
		return Placement{
			Center: geo.NewPoint3(x-l/2, in, y-w/2),
			Normal: geo.NewPoint3(0, -1, 0),
		}
	case partspec.Front:
		return Placement{
			Center: geo.NewPoint3(x-l/2, y, w/2-in),
			Normal: geo.NewPoint3(0, 0, 1),
		}
	case partspec.Back:
		return Placement{
			Center: geo.NewPoint3(x-l/2, y, -w/2+in),
			Normal: geo.NewPoint3(0, 0, -1),
		}
	case partspec.Right:
		return Placement{
			Center: geo.NewPoint3(l/2-in, y, x-w/2),
			Normal: geo.NewPoint3(1, 0, 0),
		}
	case partspec.Left:
		return Placement{
			Center: geo.NewPoint3(-l/2+in, y, x-w/2),
			Normal: geo.NewPoint3(-1, 0, 0),
		}
	}
	// unreachable: callers pass a surface validated by SurfaceBounds
	return Placement{
		Center: geo.NewPoint3(0, h-in, 0),
		Normal: geo.NewPoint3(0, 1, 0),
	}
}

// boundingDims reduces every box-like family to the box the face frames
// hang off. Families without explicit length/width use their diameter.
func boundingDims(s *partspec.Shape) (l, w, h float64) {
	l, w, h = s.Length, s.Width, s.Height
	switch s.Family {
	case partspec.Hexagon, partspec.Cone:
		l, w = s.OuterDiameter, s.OuterDiameter
	case partspec.Sphere:
		l, w, h = s.OuterDiameter, s.OuterDiameter, s.OuterDiameter
	}
	return l, w, h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
