package svg

import (
	"strings"
	"testing"

	"github.com/amitay1/partdraw/lib/geo"
)

func TestPathContext(t *testing.T) {
	pc := NewPathContext(geo.NewPoint(10, 20), 1, 1)
	pc.StartAt(pc.Absolute(0, 0))
	pc.L(false, 5, 0)
	pc.V(true, 5)
	pc.Z()

	d := pc.PathData()
	if d != "M 10 20 L 15 20 V 25 Z" {
		t.Fatalf("unexpected path data: %q", d)
	}
	if !pc.Current.Equals(pc.Start) {
		t.Fatal("Z should return the cursor to the subpath start")
	}
}

func TestPolylinePath(t *testing.T) {
	d := PolylinePath([]*geo.Point{
		geo.NewPoint(0, 0),
		geo.NewPoint(10, 0),
		geo.NewPoint(10, 10),
	}, true)
	if d != "M 0 0 L 10 0 L 10 10 Z" {
		t.Fatalf("unexpected path data: %q", d)
	}
	if PolylinePath(nil, false) != "" {
		t.Fatal("empty point list should produce empty path data")
	}
}

func TestEllipsePath(t *testing.T) {
	d := EllipsePath(50, 50, 20, 10)
	if !strings.HasPrefix(d, "M 30 50 ") {
		t.Fatalf("ellipse should start at the left vertex: %q", d)
	}
	if strings.Count(d, "A ") != 2 || !strings.HasSuffix(d, "Z") {
		t.Fatalf("ellipse should be two closed arc halves: %q", d)
	}
}
