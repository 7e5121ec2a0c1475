// Package solidspec exports a part as a declarative build plan for the
// external CAD bridge: one base primitive plus hole and cut modifiers,
// serialized as JSON. The plan is a flat operation list; evaluating it
// into an actual solid is the bridge's job, never this package's.
package solidspec

import (
	"encoding/json"
	"fmt"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/amitay1/partdraw/partspec"
	"github.com/amitay1/partdraw/placement"
)

// Operation type tags on the wire.
const (
	OpBaseBox      = "BaseBox"
	OpSketchCircle = "SketchCircle"
	OpExtrude      = "Extrude"
	OpCutBox       = "CutBox"
	OpThroughHole  = "ThroughHole"
)

// Operation is one step of a build plan. Type selects which fields are
// meaningful; the flat layout matches the bridge's wire format exactly.
type Operation struct {
	Type string `json:"type"`

	// SketchCircle, ThroughHole
	Radius float64 `json:"radius,omitempty"`
	IsHole bool    `json:"is_hole,omitempty"`

	// Extrude
	Length float64 `json:"length,omitempty"`

	// Depth is the box Y extent for BaseBox/CutBox and the cut depth
	// for ThroughHole; the two never co-occur in one operation.
	Depth float64 `json:"depth,omitempty"`

	// BaseBox, CutBox
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// CutBox, ThroughHole
	Center []float64 `json:"center,omitempty"`
	Axis   string    `json:"axis,omitempty"`
}

// Spec is the complete plan for one solid body.
type Spec struct {
	ID         string      `json:"id"`
	Operations []Operation `json:"operations"`
}

// JSON serializes the plan in the bridge's wire format.
func (sp *Spec) JSON() ([]byte, error) {
	return json.MarshalIndent(sp, "", "  ")
}

// FromPart flattens a validated shape and its features into the build
// plan: exactly one base operation group, then one modifier per
// feature. Geometry that only approximates the drawn family (hexagon,
// cone, sphere) exports its circumscribed envelope, which is what the
// bridge's probe-clearance checks need.
func FromPart(id string, s *partspec.Shape, features []*partspec.Feature) (_ *Spec, err error) {
	defer xdefer.Errorf(&err, "building solid plan for %s", id)

	if err := partspec.Validate(s, features); err != nil {
		return nil, err
	}

	sp := &Spec{ID: id}
	sp.Operations = append(sp.Operations, baseOps(s)...)
	for _, f := range features {
		op, err := modifierOp(f, s)
		if err != nil {
			return nil, err
		}
		sp.Operations = append(sp.Operations, op)
	}
	return sp, nil
}

// baseOps builds the base solid group: a box for the box-like families,
// a sketch circle plus extrude for everything round. Hollow families
// add the bore as an is_hole circle in the same sketch.
func baseOps(s *partspec.Shape) []Operation {
	switch s.Family {
	case partspec.Cylinder, partspec.Tube, partspec.Disk, partspec.Ring:
		ops := []Operation{{Type: OpSketchCircle, Radius: s.OuterRadius()}}
		if s.Hollow() {
			ops = append(ops, Operation{Type: OpSketchCircle, Radius: s.InnerRadius(), IsHole: true})
		}
		return append(ops, Operation{Type: OpExtrude, Length: s.AxialLength()})
	case partspec.Hexagon, partspec.Cone:
		return []Operation{
			{Type: OpSketchCircle, Radius: s.OuterRadius()},
			{Type: OpExtrude, Length: s.Height},
		}
	case partspec.Sphere:
		return []Operation{
			{Type: OpSketchCircle, Radius: s.OuterRadius()},
			{Type: OpExtrude, Length: s.OuterDiameter},
		}
	default:
		return []Operation{{
			Type:   OpBaseBox,
			Width:  s.Length,
			Depth:  s.Width,
			Height: s.Height,
		}}
	}
}

// modifierOp converts one feature into its material-removal operation.
// Notches cut a box; every hole kind cuts a cylinder of its drilled
// depth (the bridge, like the drawing, has no blind-hole primitive
// beyond a depth-limited cut).
func modifierOp(f *partspec.Feature, s *partspec.Shape) (Operation, error) {
	p := placement.Resolve(f, s)
	center := bridgePoint(p.Center.X, p.Center.Y, p.Center.Z, s)

	switch f.Kind {
	case partspec.Notch:
		return Operation{
			Type:   OpCutBox,
			Width:  f.Width,
			Depth:  f.Width,
			Height: f.Depth,
			Center: center,
		}, nil
	case partspec.FBH, partspec.SDH, partspec.Through:
		depth := f.Depth
		if f.Kind == partspec.Through {
			depth = throughDepth(f, s)
		}
		return Operation{
			Type:   OpThroughHole,
			Radius: f.Diameter / 2,
			Depth:  depth,
			Axis:   bridgeAxis(bridgePoint(p.Normal.X, p.Normal.Y, p.Normal.Z, s)),
			Center: center,
		}, nil
	}
	return Operation{}, fmt.Errorf("feature %s: kind %q has no build-plan operation", f.ID, f.Kind)
}

// throughDepth is the full wall the hole must pierce.
func throughDepth(f *partspec.Feature, s *partspec.Shape) float64 {
	if f.Depth > 0 {
		return f.Depth
	}
	if s.IsCylindrical() {
		return s.OuterDiameter
	}
	return s.Height
}

// bridgePoint maps a placement-frame point into the bridge's frame,
// where solids grow along +Z from the XY plane. Box-like parts have Y
// up, so (x, y, z) lands as (x, z, y); cylindrical parts have their
// axis along X, which the bridge extrudes along Z.
func bridgePoint(x, y, z float64, s *partspec.Shape) []float64 {
	if s.IsCylindrical() {
		return []float64{y, z, x}
	}
	return []float64{x, z, y}
}

// bridgeAxis names the dominant component of a normal already mapped
// into the bridge frame.
func bridgeAxis(n []float64) string {
	ax, ay, az := abs(n[0]), abs(n[1]), abs(n[2])
	switch {
	case az >= ax && az >= ay:
		return "z"
	case ax >= ay:
		return "x"
	}
	return "y"
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
