// Package multiview renders the orthographic two-view sheet: front and
// side silhouettes per shape family, dimension lines, an optional
// construction grid, and the title block.
//
// One render pass is a fixed sequence: grid, title, the per-family
// front+side drawers, then the title block. Every pass draws into a
// fresh document, so a failing drawer cannot corrupt earlier layers.
package multiview

import (
	"fmt"

	"github.com/amitay1/partdraw/drawing"
	"github.com/amitay1/partdraw/lib/geo"
	"github.com/amitay1/partdraw/partspec"
	"github.com/amitay1/partdraw/viewfit"
)

// GridSpacing is the construction-grid pitch in canvas pixels.
const GridSpacing = 50.0

// Options configures one sheet render. Overlay, when set, draws the
// scan-coverage zones between the silhouette drawers and the title
// block, so coverage shading never paints over the sheet furniture.
type Options struct {
	Title    string
	ShowGrid bool
	Overlay  func(doc *drawing.Document, frontView, sideView *geo.Box)
}

// view is one of the two layout rectangles with the scale that fits the
// part's projection into it. Drawers place geometry relative to the
// view center.
type view struct {
	box   *geo.Box
	scale float64
}

func (v *view) center() *geo.Point { return v.box.Center() }

type drawFunc func(doc *drawing.Document, s *partspec.Shape, front, side *view)

// drawers dispatches a shape family to its front+side silhouette
// routine. Families not present fall back to the rectangular drawer so
// the sheet never renders blank.
var drawers = map[partspec.Family]drawFunc{
	partspec.Rectangular: drawBoxViews,
	partspec.Irregular:   drawBoxViews,
	partspec.CurvedBlock: drawCurvedBlockViews,
	partspec.Forging:     drawForgingViews,
	partspec.Pyramid:     drawPyramidViews,
	partspec.Cylinder:    drawCylinderViews,
	partspec.Tube:        drawCylinderViews,
	partspec.Disk:        drawCylinderViews,
	partspec.Ring:        drawRingViews,
	partspec.Hexagon:     drawHexagonViews,
	partspec.Cone:        drawConeViews,
	partspec.Sphere:      drawSphereViews,
	partspec.Ellipse:     drawEllipseViews,
}

// Draw renders the full sheet into doc and reports whether the family
// was unknown and the box drawer stood in.
func Draw(doc *drawing.Document, s *partspec.Shape, opts Options) (unknownFamily bool) {
	if opts.ShowGrid {
		drawGrid(doc)
	}
	drawTitle(doc, opts.Title)

	frontBox, sideBox := viewfit.TwoViewLayout(doc.Width, doc.Height)
	fw, fh := frontExtent(s)
	sw, sh := sideExtent(s)
	front := &view{box: frontBox, scale: viewfit.ViewScale(frontBox, fw, fh)}
	side := &view{box: sideBox, scale: viewfit.ViewScale(sideBox, sw, sh)}

	draw, ok := drawers[s.Family]
	if !ok {
		draw = drawBoxViews
		unknownFamily = true
	}
	draw(doc, s, front, side)

	if opts.Overlay != nil {
		opts.Overlay(doc, frontBox, sideBox)
	}

	drawViewLabels(doc, front, side)
	drawTitleBlock(doc, s, front.scale)
	return unknownFamily
}

// frontExtent is the model width/height of the front projection, used
// to fit the view scale before dispatch.
func frontExtent(s *partspec.Shape) (w, h float64) {
	switch s.Family {
	case partspec.Cylinder, partspec.Tube, partspec.Disk:
		return s.AxialLength(), s.OuterDiameter
	case partspec.Ring, partspec.Sphere:
		return s.OuterDiameter, s.OuterDiameter
	case partspec.Hexagon, partspec.Cone:
		return s.OuterDiameter, s.Height
	default:
		return s.Length, s.Height
	}
}

func sideExtent(s *partspec.Shape) (w, h float64) {
	switch s.Family {
	case partspec.Cylinder, partspec.Tube, partspec.Disk, partspec.Cone, partspec.Sphere:
		return s.OuterDiameter, s.OuterDiameter
	case partspec.Ring:
		return s.OuterDiameter, s.Height
	case partspec.Hexagon:
		return s.OuterDiameter, s.Height
	default:
		return s.Width, s.Height
	}
}

func drawGrid(doc *drawing.Document) {
	for x := GridSpacing; x < doc.Width; x += GridSpacing {
		doc.Line(geo.NewPoint(x, 0), geo.NewPoint(x, doc.Height), drawing.GridStyle())
	}
	for y := GridSpacing; y < doc.Height; y += GridSpacing {
		doc.Line(geo.NewPoint(0, y), geo.NewPoint(doc.Width, y), drawing.GridStyle())
	}
}

func drawTitle(doc *drawing.Document, title string) {
	if title == "" {
		return
	}
	doc.Title = title
	doc.AddText(drawing.Text{
		X:        doc.Width / 2,
		Y:        28,
		Content:  title,
		FontSize: 18,
		Anchor:   drawing.AnchorMiddle,
	})
}

func drawViewLabels(doc *drawing.Document, front, side *view) {
	label := func(v *view, text string) {
		doc.AddText(drawing.Text{
			X:        v.center().X,
			Y:        v.box.TopLeft.Y + v.box.Height - 6,
			Content:  text,
			FontSize: 12,
			Anchor:   drawing.AnchorMiddle,
		})
	}
	label(front, "FRONT VIEW")
	label(side, "SIDE VIEW")
}

// drawTitleBlock draws the bottom-right sheet block: part name, family,
// scale note and units.
func drawTitleBlock(doc *drawing.Document, s *partspec.Shape, scale float64) {
	w, h := 220.0, 64.0
	x := doc.Width - w - 10
	y := doc.Height - h - 10

	box := []*geo.Point{
		geo.NewPoint(x, y),
		geo.NewPoint(x+w, y),
		geo.NewPoint(x+w, y+h),
		geo.NewPoint(x, y+h),
		geo.NewPoint(x, y),
	}
	for i := 0; i < len(box)-1; i++ {
		doc.Line(box[i], box[i+1], drawing.OutlineStyle())
	}

	name := s.Name
	if name == "" {
		name = "UNNAMED PART"
	}
	rows := []string{
		name,
		fmt.Sprintf("family: %s", s.Family),
		fmt.Sprintf("scale 1:%.1f  units: mm", 1/scale),
	}
	for i, row := range rows {
		doc.AddText(drawing.Text{
			X:        x + 8,
			Y:        y + 18 + float64(i)*18,
			Content:  row,
			FontSize: 11,
		})
	}
}
