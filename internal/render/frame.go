package render

import (
	"image"

	"bwproxy/internal/layout"
)

// frameEdges are the lower edges of the nested frame rectangles, top to
// bottom. Every rectangle starts at the title border.
var frameEdges = []layout.Region{layout.Illustration, layout.TypeLine, layout.RulesBox, layout.Other}

// drawFrame draws the black frame lines of every face, the PTL box of faces
// with stats and the fuse band.
func drawFrame(c *Canvas, p *plan) {
	c.Outline(c.img.Bounds(), layout.LineWidth, black)
	for _, s := range p.steps {
		_ = c.Rotated(s.rot, func() error {
			drawFaceFrame(c, s, p.fuse)
			return nil
		})
	}
}

func drawFaceFrame(c *Canvas, s step, fuse bool) {
	l := s.layout
	top := l.Border(layout.Title)
	for _, r := range frameEdges {
		c.Outline(image.Rect(l.Left, top, l.Right, l.Border(r)), layout.LineWidth, black)
	}
	c.Outline(image.Rect(l.Left, top, l.Right, l.Bottom), layout.LineWidth, black)

	if s.face.HasPTL() {
		c.Fill(l.PTL, white)
		c.Outline(l.PTL, layout.LineWidth, black)
	}

	if fuse && l.HasFuse {
		band := image.Rect(0, l.Border(layout.Fuse), layout.CardHeight, l.Border(layout.Other))
		c.Fill(band, white)
		c.Outline(band, layout.LineWidth, black)
	}
}
