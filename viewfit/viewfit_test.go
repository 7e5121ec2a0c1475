package viewfit

import (
	"math"
	"testing"

	"github.com/amitay1/partdraw/partspec"
)

func TestComputeBounds(t *testing.T) {
	// 100x50x20 block on a 800x450 canvas
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 50, Height: 20}
	fit := Compute(s, 800, 450)

	if fit.Scale <= 0 {
		t.Fatal("scale must be positive")
	}
	max := TargetRatio * math.Min(800-MarginHorizontal, 450-MarginVertical) / 100
	if fit.Scale > max {
		t.Fatalf("scale %v exceeds limit %v", fit.Scale, max)
	}
	if fit.OffsetX != 400 || fit.OffsetY != 225+VerticalBias {
		t.Fatalf("unexpected offsets (%v, %v)", fit.OffsetX, fit.OffsetY)
	}
}

func TestComputeIdempotent(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 80, Length: 300}
	a := Compute(s, 640, 480)
	b := Compute(s, 640, 480)
	if a != b {
		t.Fatalf("fit must be deterministic: %+v vs %+v", a, b)
	}
}

func TestScaleMonotonicity(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 50, Height: 20}
	small := Compute(s, 600, 400)
	big := Compute(s, 1200, 800)
	if big.Scale < small.Scale {
		t.Fatalf("doubling the canvas must not decrease scale: %v -> %v", small.Scale, big.Scale)
	}
}

func TestMinScaleFloor(t *testing.T) {
	// a shape far too large for the canvas still gets a usable scale
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 1e7, Width: 1, Height: 1}
	fit := Compute(s, 300, 200)
	if fit.Scale != MinScale {
		t.Fatalf("expected floor %v, got %v", MinScale, fit.Scale)
	}

	// tiny canvas, negative available area: floor still applies
	fit = Compute(s, 10, 10)
	if fit.Scale != MinScale {
		t.Fatalf("expected floor %v, got %v", MinScale, fit.Scale)
	}
}

func TestTwoViewLayout(t *testing.T) {
	front, side := TwoViewLayout(800, 450)
	if front.TopLeft.X >= side.TopLeft.X {
		t.Fatal("front view must sit left of side view")
	}
	if front.Width != side.Width {
		t.Fatal("the two views share a width")
	}
	if front.TopLeft.X+front.Width > side.TopLeft.X {
		t.Fatal("views must not overlap")
	}
}

func TestViewScale(t *testing.T) {
	front, _ := TwoViewLayout(800, 450)
	s := ViewScale(front, 100, 20)
	if s <= 0 {
		t.Fatal("view scale must be positive")
	}
	// scaled extents stay inside the view rectangle
	if 100*s > front.Width || 20*s > front.Height {
		t.Fatalf("scaled extents exceed the view box at scale %v", s)
	}
}
