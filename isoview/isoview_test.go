package isoview

import (
	"math"
	"strings"
	"testing"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
	"github.com/amitay1/partdraw/viewfit"
)

func testFit() viewfit.Fit {
	return viewfit.Fit{Scale: 1, OffsetX: 400, OffsetY: 300}
}

func TestDrawBoxFaces(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 60, Height: 40}
	doc := drawing.NewDocument(800, 600)

	unknown, fallbacks := Draw(doc, s, nil, testFit())
	if unknown {
		t.Fatal("rectangular family reported as unknown")
	}
	if fallbacks != 0 {
		t.Fatalf("expected 0 fallback features, got %d", fallbacks)
	}

	// Three visible faces, all filled and closed.
	filled := 0
	for _, p := range doc.Paths {
		if p.Style.Fill != "" && p.Style.Fill != "none" {
			filled++
			if !strings.HasSuffix(strings.TrimSpace(p.Data), "Z") {
				t.Errorf("filled face path not closed: %q", p.Data)
			}
		}
	}
	if filled != 3 {
		t.Fatalf("expected 3 visible faces, got %d", filled)
	}
}

func TestDrawUnknownFamilyFallsBackToBox(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Family("weldment"), Length: 80, Width: 40, Height: 30}
	doc := drawing.NewDocument(800, 600)

	unknown, _ := Draw(doc, s, nil, testFit())
	if !unknown {
		t.Fatal("unrecognized family should report unknown")
	}
	if len(doc.Paths) == 0 {
		t.Fatal("fallback must still draw a body")
	}
}

func TestDrawCylinderSilhouette(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	doc := drawing.NewDocument(800, 600)

	Draw(doc, s, nil, testFit())

	// The two silhouette lines join the quarter points of the end
	// ellipses: straight two-point paths among the sampled curves.
	straight := 0
	for _, p := range doc.Paths {
		if strings.Count(p.Data, "L") == 1 && p.Style.Fill == "none" {
			straight++
		}
	}
	if straight < 2 {
		t.Fatalf("expected at least 2 straight silhouette lines, got %d", straight)
	}
}

func TestDrawTubeHiddenBore(t *testing.T) {
	solid := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	tube := &partspec.Shape{Family: partspec.Tube, OuterDiameter: 100, InnerDiameter: 60, Length: 200}

	count := func(s *partspec.Shape) int {
		doc := drawing.NewDocument(800, 600)
		Draw(doc, s, nil, testFit())
		dashed := 0
		for _, p := range doc.Paths {
			if p.Style.Dashed {
				dashed++
			}
		}
		return dashed
	}

	if n := count(solid); n != 0 {
		t.Fatalf("solid cylinder drew %d hidden paths", n)
	}
	if n := count(tube); n == 0 {
		t.Fatal("tube bore must draw as a hidden path")
	}
}

func TestCurvedBlockCornersPinned(t *testing.T) {
	// The curved top must meet the straight side edges exactly at the
	// corners: sagitta is zero at u=0 and u=1.
	if s := sagitta(0, 500, 50); s != 0 {
		t.Fatalf("sagitta at zero chord = %v, want 0", s)
	}
	// Rise never exceeds half the height, whatever the radius.
	if s := sagitta(400, 210, 50); s > 25+1e-9 {
		t.Fatalf("sagitta %v exceeds half height", s)
	}
}

func TestFacesViewerCulling(t *testing.T) {
	// Screen-space square wound clockwise in y-down coordinates, the
	// winding a front face projects to.
	front := []*geo.Point{
		geo.NewPoint(0, 0),
		geo.NewPoint(0, 10),
		geo.NewPoint(10, 10),
		geo.NewPoint(10, 0),
	}
	if !facesViewer(front) {
		t.Fatal("front-facing polygon culled")
	}
	back := []*geo.Point{front[3], front[2], front[1], front[0]}
	if facesViewer(back) {
		t.Fatal("back-facing polygon kept")
	}
}

func TestFeatureMarkerTracksBody(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	f := &partspec.Feature{
		ID: "fbh-1", Kind: partspec.FBH,
		Diameter: 6, Depth: 25,
		Surface:  partspec.Radial,
		Position: geo.Point{X: 50},
	}

	render := func(fit viewfit.Fit) []drawing.Path {
		doc := drawing.NewDocument(800, 600)
		Draw(doc, s, []*partspec.Feature{f}, fit)
		return doc.Paths
	}

	a := render(testFit())
	shifted := testFit()
	shifted.OffsetX += 37
	shifted.OffsetY -= 12
	b := render(shifted)

	if len(a) != len(b) {
		t.Fatalf("path count changed with offset: %d vs %d", len(a), len(b))
	}
	// Every path, body and marker alike, rides the same anchor: data
	// differs but structure does not.
	for i := range a {
		if a[i].Style != b[i].Style {
			t.Fatalf("path %d style changed with offset", i)
		}
	}
}

func TestDrawFeatureFallbackCount(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Tube, OuterDiameter: 114.3, InnerDiameter: 102.3, Length: 300}
	f := &partspec.Feature{
		ID: "n-1", Kind: partspec.Notch,
		Width: 2, Depth: 1,
		Surface:  partspec.Front, // named face on a cylindrical part
		Position: geo.Point{X: 150},
	}
	doc := drawing.NewDocument(800, 600)

	_, fallbacks := Draw(doc, s, []*partspec.Feature{f}, testFit())
	if fallbacks != 1 {
		t.Fatalf("expected 1 fallback placement, got %d", fallbacks)
	}
}

func TestDrawDeterministic(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Sphere, OuterDiameter: 80}
	render := func() []drawing.Path {
		doc := drawing.NewDocument(800, 600)
		Draw(doc, s, nil, testFit())
		return doc.Paths
	}
	a, b := render(), render()
	if len(a) != len(b) {
		t.Fatalf("path counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Data != b[i].Data {
			t.Fatalf("path %d differs between renders", i)
		}
	}
}

func TestEveryFamilyDraws(t *testing.T) {
	for _, fam := range partspec.Families {
		s := &partspec.Shape{
			Family:        fam,
			Length:        100,
			Width:         60,
			Height:        40,
			OuterDiameter: 80,
			CurveRadius:   200,
		}
		doc := drawing.NewDocument(800, 600)
		unknown, _ := Draw(doc, s, nil, testFit())
		if unknown {
			t.Errorf("family %q not in dispatch table", fam)
		}
		if len(doc.Paths) == 0 {
			t.Errorf("family %q drew nothing", fam)
		}
		for _, p := range doc.Paths {
			if strings.Contains(p.Data, "NaN") || strings.Contains(p.Data, "Inf") {
				t.Fatalf("family %q produced non-finite geometry: %q", fam, p.Data)
			}
		}
	}
}

func TestModelCenterOnAxis(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	c := modelCenter(s)
	if c.X != 100 || c.Y != 0 || c.Z != 0 {
		t.Fatalf("cylinder center = (%v, %v, %v), want (100, 0, 0)", c.X, c.Y, c.Z)
	}
	if math.IsNaN(c.X) {
		t.Fatal("non-finite center")
	}
}
