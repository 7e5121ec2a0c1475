package solidspec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
	"github.com/amitay1/partdraw/solidspec"
)

func TestFromPartBox(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 100, Width: 60, Height: 40}

	sp, err := solidspec.FromPart("block-1", s, nil)
	require.NoError(t, err)
	require.Len(t, sp.Operations, 1)

	op := sp.Operations[0]
	assert.Equal(t, "BaseBox", op.Type)
	assert.Equal(t, 100.0, op.Width)
	assert.Equal(t, 60.0, op.Depth)
	assert.Equal(t, 40.0, op.Height)
}

func TestFromPartTubeEmitsBoreAsHole(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Tube, OuterDiameter: 114.3, InnerDiameter: 102.3, Length: 300}

	sp, err := solidspec.FromPart("pipe-1", s, nil)
	require.NoError(t, err)
	require.Len(t, sp.Operations, 3)

	assert.Equal(t, "SketchCircle", sp.Operations[0].Type)
	assert.Equal(t, 114.3/2, sp.Operations[0].Radius)
	assert.False(t, sp.Operations[0].IsHole)

	assert.Equal(t, "SketchCircle", sp.Operations[1].Type)
	assert.Equal(t, 102.3/2, sp.Operations[1].Radius)
	assert.True(t, sp.Operations[1].IsHole)

	assert.Equal(t, "Extrude", sp.Operations[2].Type)
	assert.Equal(t, 300.0, sp.Operations[2].Length)
}

func TestFromPartFeatureModifiers(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Rectangular, Length: 200, Width: 100, Height: 50}
	features := []*partspec.Feature{
		{
			ID: "fbh-1", Kind: partspec.FBH,
			Diameter: 6, Depth: 20,
			Surface:  partspec.Top,
			Position: geo.Point{X: 100, Y: 50},
		},
		{
			ID: "n-1", Kind: partspec.Notch,
			Width: 2, Depth: 1,
			Surface:  partspec.Top,
			Position: geo.Point{X: 50, Y: 50},
		},
	}

	sp, err := solidspec.FromPart("cal-block", s, features)
	require.NoError(t, err)
	require.Len(t, sp.Operations, 3)

	hole := sp.Operations[1]
	assert.Equal(t, "ThroughHole", hole.Type)
	assert.Equal(t, 3.0, hole.Radius)
	assert.Equal(t, 20.0, hole.Depth)
	assert.Equal(t, "z", hole.Axis)
	// centered feature on the top face lands on the solid's mid X/Y
	require.Len(t, hole.Center, 3)
	assert.InDelta(t, 0, hole.Center[0], 1e-9)
	assert.InDelta(t, 0, hole.Center[1], 1e-9)
	// hole center sits half the drilled depth below the top surface
	assert.InDelta(t, 40, hole.Center[2], 1e-9)

	notch := sp.Operations[2]
	assert.Equal(t, "CutBox", notch.Type)
	assert.Equal(t, 2.0, notch.Width)
	assert.Equal(t, 1.0, notch.Height)
}

func TestFromPartRadialHoleAxis(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Cylinder, OuterDiameter: 100, Length: 200}
	f := &partspec.Feature{
		ID: "sdh-1", Kind: partspec.SDH,
		Diameter: 3, Depth: 40, DepthFromSurface: 15,
		Surface:  partspec.Radial,
		Position: geo.Point{X: 80},
	}

	sp, err := solidspec.FromPart("shaft", s, []*partspec.Feature{f})
	require.NoError(t, err)
	require.Len(t, sp.Operations, 3)

	hole := sp.Operations[2]
	assert.Equal(t, "ThroughHole", hole.Type)
	// the part axis extrudes along the bridge's z, so the radial normal
	// maps to x
	assert.Equal(t, "x", hole.Axis)
	// axial position rides the extrusion axis
	assert.InDelta(t, 80, hole.Center[2], 1e-9)
}

func TestFromPartRejectsInvalidGeometry(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Tube, OuterDiameter: 50, InnerDiameter: 60, Length: 100}
	_, err := solidspec.FromPart("bad", s, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "innerDiameter")
}

func TestSpecJSONWireFormat(t *testing.T) {
	s := &partspec.Shape{Family: partspec.Ring, OuterDiameter: 80, InnerDiameter: 50, Height: 25}
	sp, err := solidspec.FromPart("ring-1", s, nil)
	require.NoError(t, err)

	raw, err := sp.JSON()
	require.NoError(t, err)

	var decoded struct {
		ID         string `json:"id"`
		Operations []map[string]any
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "ring-1", decoded.ID)
	require.Len(t, decoded.Operations, 3)
	assert.Equal(t, "SketchCircle", decoded.Operations[0]["type"])
	assert.Equal(t, true, decoded.Operations[1]["is_hole"])
	assert.NotContains(t, decoded.Operations[0], "is_hole")
}
