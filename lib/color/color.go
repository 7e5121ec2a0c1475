// Package color holds the drawing palette and CSS color utilities.
package color

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Default palette for engineering sheets. Every stroke in the output
// document uses one of these unless the caller overrides it.
const (
	Outline   = "#1A1A2E" // body silhouettes and visible edges
	Hidden    = "#9AA0B5" // hidden detail (inner bores, far edges)
	Dimension = "#2563EB" // dimension/extension lines and labels
	Feature   = "#DC2626" // hole and notch markers
	Grid      = "#E5E7EB"
	Face      = "#F3F6FF" // visible face fill on isometric views
	Error     = "#B91C1C" // in-canvas error placeholder
)

// Normalize parses any CSS color and returns it as a hex string, so
// user overrides from the editor reach the SVG in one canonical form.
func Normalize(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	return c.HexString(), nil
}

func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}
