package partspec

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate rejects invalid geometry at the model boundary. The drawing
// pipeline assumes validated input and does not re-check internally.
func (s *Shape) Validate() error {
	var err error

	if !KnownFamily(s.Family) {
		// unknown families still render (box fallback); they only fail
		// validation when the dimensions are unusable too
		if s.Length <= 0 || s.Width <= 0 || s.Height <= 0 {
			err = multierr.Append(err, fmt.Errorf("unknown family %q with no usable box dimensions", s.Family))
		}
		return err
	}

	positive := func(name string, v float64) {
		if v <= 0 {
			err = multierr.Append(err, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	switch s.Family {
	case Rectangular, CurvedBlock, Pyramid, Ellipse, Forging, Irregular:
		positive("length", s.Length)
		positive("width", s.Width)
		positive("height", s.Height)
		if s.Family == CurvedBlock {
			positive("curveRadius", s.CurveRadius)
		}
	case Cylinder, Tube, Disk:
		positive("outerDiameter", s.OuterDiameter)
		positive("length", s.Length)
	case Ring:
		positive("outerDiameter", s.OuterDiameter)
		positive("height", s.Height)
	case Hexagon, Cone:
		positive("outerDiameter", s.OuterDiameter)
		positive("height", s.Height)
	case Sphere:
		positive("outerDiameter", s.OuterDiameter)
	}

	if s.InnerDiameter < 0 {
		err = multierr.Append(err, fmt.Errorf("innerDiameter must not be negative, got %v", s.InnerDiameter))
	}
	switch s.Family {
	case Tube, Ring:
		if s.InnerDiameter >= s.OuterDiameter {
			err = multierr.Append(err, fmt.Errorf("innerDiameter %v must be less than outerDiameter %v", s.InnerDiameter, s.OuterDiameter))
		}
	}

	return err
}

// ValidateFeature checks a feature against its owning shape. Surface
// mismatches are not errors here: the placement resolver recovers from
// those, and the drawing must still render.
func (f *Feature) Validate() error {
	var err error

	if !KnownKind(f.Kind) {
		err = multierr.Append(err, fmt.Errorf("feature %s: unknown kind %q", f.ID, f.Kind))
	}

	switch f.Kind {
	case FBH, SDH, Through:
		if f.Diameter <= 0 {
			err = multierr.Append(err, fmt.Errorf("feature %s: diameter must be positive, got %v", f.ID, f.Diameter))
		}
	case Notch:
		if f.Width <= 0 {
			err = multierr.Append(err, fmt.Errorf("feature %s: notch width must be positive, got %v", f.ID, f.Width))
		}
	}
	if f.Depth < 0 {
		err = multierr.Append(err, fmt.Errorf("feature %s: depth must not be negative, got %v", f.ID, f.Depth))
	}
	if f.Kind == SDH && f.DepthFromSurface < 0 {
		err = multierr.Append(err, fmt.Errorf("feature %s: depthFromSurface must not be negative, got %v", f.ID, f.DepthFromSurface))
	}

	return err
}

// Validate checks a shape and all its features, accumulating every
// problem instead of stopping at the first.
func Validate(s *Shape, features []*Feature) error {
	err := s.Validate()
	for _, f := range features {
		err = multierr.Append(err, f.Validate())
	}
	return err
}
