package placement

import (
	"testing"

	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
)

func TestResolveRadial(t *testing.T) {
	// 100mm OD cylinder, FBH at axial offset 50, depth 25
	s := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	f := &partspec.Feature{
		ID: "f1", Kind: partspec.FBH, Diameter: 5, Depth: 25,
		Surface: partspec.Radial, Position: geo.Point{X: 50},
	}

	p := Resolve(f, s)
	if p.Fallback {
		t.Fatal("radial surface on a cylinder is not a fallback")
	}
	if p.Center.X != 50 {
		t.Fatalf("axial offset must be 50, got %v", p.Center.X)
	}
	// outer surface (R=50) inset by depth/2
	if p.Center.Y != 50-12.5 {
		t.Fatalf("radial position must be 37.5, got %v", p.Center.Y)
	}
	if p.Center.Z != 0 {
		t.Fatalf("unexpected Z %v", p.Center.Z)
	}
	if !p.Normal.Equals(geo.NewPoint3(0, 1, 0)) {
		t.Fatalf("unexpected normal %v", p.Normal.ToString())
	}
}

func TestResolveRadialClamped(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	f := &partspec.Feature{
		ID: "f1", Kind: partspec.FBH, Diameter: 5, Depth: 25,
		Surface: partspec.Radial, Position: geo.Point{X: 300},
	}
	p := Resolve(f, s)
	if p.Center.X != 200-partspec.MinEdgeClearance {
		t.Fatalf("axial offset must clamp to %v, got %v", 200-partspec.MinEdgeClearance, p.Center.X)
	}
}

func TestResolveFaces(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 50, Height: 20}

	for _, tc := range []struct {
		surface partspec.Surface
		pos     geo.Point
		center  *geo.Point3
		normal  *geo.Point3
	}{
		// top: (x, y) -> (X, Z) at Y = height - depth/2
		{partspec.Top, geo.Point{X: 50, Y: 25}, geo.NewPoint3(0, 15, 0), geo.NewPoint3(0, 1, 0)},
		{partspec.Bottom, geo.Point{X: 50, Y: 25}, geo.NewPoint3(0, 5, 0), geo.NewPoint3(0, -1, 0)},
		// front: (x, y) -> (X, Y) at Z = width/2 - depth/2
		{partspec.Front, geo.Point{X: 50, Y: 10}, geo.NewPoint3(0, 10, 20), geo.NewPoint3(0, 0, 1)},
		{partspec.Back, geo.Point{X: 50, Y: 10}, geo.NewPoint3(0, 10, -20), geo.NewPoint3(0, 0, -1)},
		// right: (x, y) -> (Z, Y) at X = length/2 - depth/2
		{partspec.Right, geo.Point{X: 25, Y: 10}, geo.NewPoint3(45, 10, 0), geo.NewPoint3(1, 0, 0)},
		{partspec.Left, geo.Point{X: 25, Y: 10}, geo.NewPoint3(-45, 10, 0), geo.NewPoint3(-1, 0, 0)},
	} {
		f := &partspec.Feature{
			ID: "f", Kind: partspec.FBH, Diameter: 5, Depth: 10,
			Surface: tc.surface, Position: tc.pos,
		}
		p := Resolve(f, s)
		if p.Fallback {
			t.Fatalf("surface %s should resolve directly", tc.surface)
		}
		if !p.Center.Equals(tc.center) {
			t.Fatalf("surface %s: expected center %v, got %v", tc.surface, tc.center.ToString(), p.Center.ToString())
		}
		if !p.Normal.Equals(tc.normal) {
			t.Fatalf("surface %s: expected normal %v, got %v", tc.surface, tc.normal.ToString(), p.Normal.ToString())
		}
	}
}

func TestResolveFallbackOnCylinder(t *testing.T) {
	// a named face on a tube must fall back to the radial surface
	s := &partspec.Shape{Family: partspec.Tube, OuterDiameter: 60, InnerDiameter: 40, Length: 100}
	f := &partspec.Feature{
		ID: "f1", Kind: partspec.FBH, Diameter: 3, Depth: 10,
		Surface: partspec.Front, Position: geo.Point{X: 30, Y: 10},
	}

	p := Resolve(f, s)
	if !p.Fallback {
		t.Fatal("face surface on a tube must be marked as fallback")
	}
	if p.Center.X != 30 || p.Center.Y != 30-5 {
		t.Fatalf("fallback must be the radial placement, got %v", p.Center.ToString())
	}

	// deterministic: same malformed input, same fallback
	q := Resolve(f, s)
	if !p.Center.Equals(q.Center) || !p.Normal.Equals(q.Normal) {
		t.Fatal("fallback placement must be deterministic")
	}
}

func TestResolveFallbackOnBox(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 50, Height: 20}
	f := &partspec.Feature{
		ID: "f1", Kind: partspec.FBH, Diameter: 5, Depth: 10,
		Surface: partspec.Radial, Position: geo.Point{X: 50, Y: 25},
	}

	p := Resolve(f, s)
	if !p.Fallback {
		t.Fatal("radial surface on a box must be marked as fallback")
	}
	// recovered as a top placement
	if !p.Normal.Equals(geo.NewPoint3(0, 1, 0)) || p.Center.Y != 15 {
		t.Fatalf("fallback should land on top, got %v", p.Center.ToString())
	}
}

func TestResolveSDHDepthFromSurface(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 50, Height: 40}
	f := &partspec.Feature{
		ID: "s1", Kind: partspec.SDH, Diameter: 2, Depth: 30, DepthFromSurface: 12,
		Surface: partspec.Top, Position: geo.Point{X: 50, Y: 25},
	}
	p := Resolve(f, s)
	if p.Center.Y != 40-12 {
		t.Fatalf("sdh center must run depthFromSurface below the surface, got %v", p.Center.Y)
	}
}

func TestResolveDeepFeatureStaysInside(t *testing.T) {
	// depth has no upper bound at validation, so the resolver must cap
	// the inset at the material available along the entry normal
	box := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 50, Height: 20}
	f := &partspec.Feature{
		ID: "f1", Kind: partspec.FBH, Diameter: 5, Depth: 100,
		Surface: partspec.Top, Position: geo.Point{X: 50, Y: 25},
	}
	p := Resolve(f, box)
	if p.Center.Y < 0 || p.Center.Y > 20 {
		t.Fatalf("center Y=%v escapes [0, 20]", p.Center.Y)
	}

	cyl := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	fr := &partspec.Feature{
		ID: "f2", Kind: partspec.FBH, Diameter: 5, Depth: 300,
		Surface: partspec.Radial, Position: geo.Point{X: 50},
	}
	q := Resolve(fr, cyl)
	if q.Center.Y < -50 || q.Center.Y > 50 {
		t.Fatalf("center Y=%v escapes [-50, 50]", q.Center.Y)
	}
}

func TestResolveDeepSDHStaysInWall(t *testing.T) {
	// on hollow parts the available material is the wall, not the
	// radius: an over-deep side-drilled hole may not cross into the bore
	tube := &partspec.Shape{Family: partspec.Tube, OuterDiameter: 100, InnerDiameter: 80, Length: 200}
	f := &partspec.Feature{
		ID: "s1", Kind: partspec.SDH, Diameter: 3, Depth: 3, DepthFromSurface: 60,
		Surface: partspec.Radial, Position: geo.Point{X: 100},
	}
	p := Resolve(f, tube)
	if p.Center.Y < tube.InnerRadius() {
		t.Fatalf("center Y=%v crossed into the bore (inner radius %v)", p.Center.Y, tube.InnerRadius())
	}
}

func TestContainment(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 50, Height: 20}
	surfaces := []partspec.Surface{
		partspec.Top, partspec.Bottom, partspec.Front,
		partspec.Back, partspec.Left, partspec.Right,
	}
	for _, surface := range surfaces {
		f := &partspec.Feature{
			ID: "c", Kind: partspec.FBH, Diameter: 4, Depth: 8,
			Surface: surface, Position: geo.Point{X: 10, Y: 5},
		}
		c := Resolve(f, s).Center
		if c.X < -50 || c.X > 50 || c.Y < 0 || c.Y > 20 || c.Z < -25 || c.Z > 25 {
			t.Fatalf("surface %s: center %v escapes the bounding volume", surface, c.ToString())
		}
	}
}
