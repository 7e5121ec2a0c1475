package drawing

import (
	"bytes"
	"fmt"
	"html"
)

// SVG serializes the document. Output is deterministic: identical
// documents produce byte-identical SVG, which downstream exporters and
// the idempotence tests rely on.
func (d *Document) SVG() []byte {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, `<?xml version="1.0" encoding="utf-8"?>`+"\n")
	fmt.Fprintf(buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%v" height="%v" viewBox="0 0 %v %v">`+"\n",
		d.Width, d.Height, d.Width, d.Height,
	)
	fmt.Fprintf(buf, `<rect width="%v" height="%v" fill="white" />`+"\n", d.Width, d.Height)

	for _, p := range d.Paths {
		fill := p.Style.Fill
		if fill == "" {
			fill = "none"
		}
		dash := ""
		if p.Style.Dashed {
			dash = ` stroke-dasharray="6,4"`
		}
		fmt.Fprintf(buf,
			`<path d="%s" stroke="%s" fill="%s" stroke-width="%v"%s />`+"\n",
			p.Data, p.Style.Stroke, fill, p.Style.StrokeWidth, dash,
		)
	}

	for _, t := range d.Texts {
		anchor := t.Anchor
		if anchor == "" {
			anchor = AnchorStart
		}
		fmt.Fprintf(buf,
			`<text x="%v" y="%v" font-size="%v" font-family="monospace" text-anchor="%s" fill="%s">%s</text>`+"\n",
			t.X, t.Y, t.FontSize, anchor, t.Color, html.EscapeString(t.Content),
		)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
