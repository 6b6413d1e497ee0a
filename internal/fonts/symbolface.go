package fonts

import (
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// symbolFace draws most runes with the embedded text face and the runes
// accepted by inRange with the symbol face, as long as the symbol font maps
// them to a real glyph. Metrics come from the text face
// so line heights do not change when a line carries symbols.
type symbolFace struct {
	font.Face
	symbols    font.Face
	symbolFont *truetype.Font
	inRange    func(rune) bool
}

func (f *symbolFace) pick(r rune) font.Face {
	if f.inRange(r) {
		if f.symbolFont.Index(r) != 0 {
			return f.symbols
		}
	}
	return f.Face
}

func (f *symbolFace) Close() error {
	if err := f.symbols.Close(); err != nil {
		return err
	}
	return f.Face.Close()
}

func (f *symbolFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return f.pick(r).Glyph(dot, r)
}

func (f *symbolFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return f.pick(r).GlyphBounds(r)
}

func (f *symbolFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return f.pick(r).GlyphAdvance(r)
}

func (f *symbolFace) Kern(r0, r1 rune) fixed.Int26_6 {
	if f.inRange(r0) || f.inRange(r1) {
		return 0
	}
	return f.Face.Kern(r0, r1)
}
