package render

import (
	"fmt"
	"image"

	"golang.org/x/image/font"

	"bwproxy/internal/fonts"
	"bwproxy/internal/layout"
	"bwproxy/internal/models"
	"bwproxy/internal/symbols"
	"bwproxy/internal/textfit"
)

// Starting font sizes in pixels.
const (
	TitleFontSize = 70
	TypeFontSize  = 50
	TextFontSize  = 40
	OtherFontSize = 25
)

const (
	Version = "v2.1"
	Credits = string(symbols.Paintbrush) + " https://a11ce.com/bwproxy"
)

// drawer draws the text of one card. It owns a face cache, so it must not be
// shared between goroutines.
type drawer struct {
	c     *Canvas
	faces *fonts.Faces
	opts  Options
	plan  *plan
	icons *symbolCache
}

func (d *drawer) face(fam fonts.Family, size int) font.Face {
	return d.faces.Face(fam, size)
}

func (d *drawer) fit(fam fonts.Family, text string, maxWidth, start int) (font.Face, error) {
	face, _, err := d.fitSize(fam, text, maxWidth, start)
	return face, err
}

func (d *drawer) fitSize(fam fonts.Family, text string, maxWidth, start int) (font.Face, int, error) {
	size, err := textfit.FitOneLine(d.faces.Sizer(fam), text, maxWidth, start)
	if err != nil {
		return nil, 0, err
	}
	return d.face(fam, size), size, nil
}

// centered draws text with its ink centered vertically in the band.
func (d *drawer) centered(face font.Face, text string, x, border, size int) {
	d.c.Text(face, text, x, textfit.CenterBaseline(face, text, border, size))
}

func (d *drawer) drawText() error {
	for _, s := range d.plan.steps {
		err := d.c.Rotated(s.rot, func() error {
			return d.drawFace(s)
		})
		if err != nil {
			return err
		}
	}
	if d.plan.fuse {
		return d.c.Rotated(Rotate90, d.drawFuseText)
	}
	return nil
}

func (d *drawer) drawFace(s step) error {
	if err := d.drawTitle(s); err != nil {
		return fmt.Errorf("%s: title: %w", s.face.Name, err)
	}
	d.drawIllustrationSymbol(s)
	if err := d.drawTypeLine(s); err != nil {
		return fmt.Errorf("%s: type line: %w", s.face.Name, err)
	}
	if err := d.drawRules(s); err != nil {
		return fmt.Errorf("%s: rules text: %w", s.face.Name, err)
	}
	if err := d.drawPTL(s); err != nil {
		return fmt.Errorf("%s: stats: %w", s.face.Name, err)
	}
	d.drawFooter(s)
	return nil
}

// displayName is the name printed in the title: a flavor name passed in the
// options, the card's own flavor name, or the oracle name.
func (d *drawer) displayName(c models.Card) string {
	if name, ok := d.opts.FlavorNames[c.Name]; ok && name != "" {
		return name
	}
	if c.HasFlavorName() {
		return c.FlavorName
	}
	return c.Name
}

// titleLine is the resolved placement of the title elements.
type titleLine struct {
	name     string
	nameFace font.Face
	nameSize int
	nameX    int
	// maxName is the width the name was fitted to.
	maxName int

	mana     string
	manaFace font.Face
	manaX    int

	symbol     string
	symbolFace font.Face
	symbolX    int
}

func (d *drawer) layoutTitle(s step) (titleLine, error) {
	l, f := s.layout, s.face
	left := l.Left + layout.Margin
	right := l.Right - layout.Margin
	t := titleLine{name: d.displayName(f)}

	if d.plan.variant == models.Token || d.plan.variant == models.Emblem {
		t.maxName = l.Width() - 2*layout.Margin
		face, size, err := d.fitSize(fonts.Sans, t.name, t.maxName, TitleFontSize)
		if err != nil {
			return t, err
		}
		t.nameFace, t.nameSize = face, size
		t.nameX = l.Left + (l.Width()-textfit.Width(face, t.name))/2
		return t, nil
	}

	t.manaX = right
	if f.ManaCost != "" {
		t.mana = symbols.Substitute(f.ManaCost)
		// Long costs may take up more than half the title before they shrink.
		maxMana := max(l.Width()/2, layout.CardWidth/16*len([]rune(t.mana)))
		face, err := d.fit(fonts.Serif, t.mana, maxMana, TitleFontSize)
		if err != nil {
			return t, err
		}
		t.manaFace = face
		t.manaX = right - textfit.Width(face, t.mana)
	}
	t.maxName = t.manaX - left - layout.Margin

	if f.FaceSymbol != "" {
		t.symbol = symbols.Substitute(f.FaceSymbol) + " "
		t.symbolFace = d.face(fonts.Serif, TitleFontSize)
		t.symbolX = left
		adv := textfit.Width(t.symbolFace, t.symbol)
		left += adv
		t.maxName -= adv
	}

	face, size, err := d.fitSize(fonts.Sans, t.name, t.maxName, TitleFontSize)
	if err != nil {
		return t, err
	}
	t.nameFace, t.nameSize = face, size
	t.nameX = left
	return t, nil
}

func (d *drawer) drawTitle(s step) error {
	t, err := d.layoutTitle(s)
	if err != nil {
		return err
	}
	l, f := s.layout, s.face
	border, size := l.Border(layout.Title), l.Size(layout.Title)
	if t.mana != "" {
		d.centered(t.manaFace, t.mana, t.manaX, border, size)
	}
	if t.symbol != "" {
		d.centered(t.symbolFace, t.symbol, t.symbolX, border, size)
	}
	d.centered(t.nameFace, t.name, t.nameX, border, size)

	if t.name != f.Name && showsOracleName(d.plan.variant, l) {
		trueFace := d.face(fonts.Serif, TextFontSize)
		x := (l.Left+l.Right)/2 - textfit.Width(trueFace, f.Name)/2
		top := l.Border(layout.Illustration) + layout.Margin
		d.c.Text(trueFace, f.Name, x, top+trueFace.Metrics().Ascent.Ceil())
	}
	return nil
}

// showsOracleName reports whether the illustration has room for the oracle
// name under a flavor name.
func showsOracleName(v models.Variant, l *layout.Layout) bool {
	switch v {
	case models.Split, models.Fuse, models.Aftermath, models.Flip:
		return false
	}
	return l.Size(layout.Illustration) > 0
}

func (d *drawer) drawTypeLine(s step) error {
	l, f := s.layout, s.face
	if f.TypeLine == "" {
		return nil
	}
	maxWidth := l.Width() - 2*layout.Margin
	if s.setIcon && d.opts.SetIcon != nil {
		maxWidth -= layout.Margin + layout.SetIconSize
	}
	face, err := d.fit(fonts.Sans, f.TypeLine, maxWidth, TypeFontSize)
	if err != nil {
		return err
	}
	d.centered(face, f.TypeLine, l.Left+layout.Margin, l.Border(layout.TypeLine), l.Size(layout.TypeLine))
	return nil
}

// rulesBlock is fitted rules text and the box it was fitted to.
type rulesBlock struct {
	text   string
	result textfit.Result
	box    image.Rectangle
}

// layoutRules fits the rules text of a face. The returned block is empty
// for faces without rules text.
func (d *drawer) layoutRules(s step) (rulesBlock, error) {
	l, f := s.layout, s.face
	var b rulesBlock
	if f.IsBasicLand() {
		return b, nil
	}
	b.text = f.RulesText()
	if d.opts.TextSymbols {
		b.text = symbols.Substitute(b.text)
	}
	if b.text == "" {
		return b, nil
	}

	left, right := l.Left+layout.Margin, l.Right-layout.Margin
	if s.halfRules {
		left = l.Left + l.Width()/2 + layout.Margin
	}
	boxSize := l.Size(layout.RulesBox)
	if d.plan.variant == models.Fuse {
		boxSize = l.FuseRulesSize()
	}
	top := l.Border(layout.RulesBox) + layout.Margin
	b.box = image.Rect(left, top, right, top+boxSize-2*layout.Margin)

	r, err := textfit.FitMultiLine(d.faces.Sizer(fonts.Mono), b.text, b.box.Dx(), b.box.Dy(), TextFontSize)
	if err != nil {
		return b, err
	}
	b.result = r
	return b, nil
}

func (d *drawer) drawRules(s step) error {
	b, err := d.layoutRules(s)
	if err != nil || b.text == "" {
		return err
	}
	face := d.face(fonts.Mono, b.result.Size)
	baseline := b.box.Min.Y + face.Metrics().Ascent.Ceil()
	lh := textfit.LineHeight(face)
	for i, line := range b.result.Lines() {
		if line != "" {
			d.c.Text(face, line, b.box.Min.X, baseline+i*lh)
		}
	}
	return nil
}

func (d *drawer) drawFuseText() error {
	text := d.plan.card.FuseText
	if d.opts.TextSymbols {
		text = symbols.Substitute(text)
	}
	if text == "" {
		return nil
	}
	face, err := d.fit(fonts.Mono, text, layout.CardHeight-2*layout.Margin, TextFontSize)
	if err != nil {
		return fmt.Errorf("%s: fuse text: %w", d.plan.card.Name, err)
	}
	band := layout.SplitLeft.Span(layout.Fuse)
	x := (layout.CardHeight - textfit.Width(face, text)) / 2
	d.centered(face, text, x, band.Border, band.Size)
	return nil
}

func (d *drawer) drawPTL(s step) error {
	text, ok := s.face.PTL()
	if !ok {
		return nil
	}
	box := s.layout.PTL
	face, err := d.fit(fonts.Mono, text, box.Dx()-2*layout.Margin, TitleFontSize)
	if err != nil {
		return err
	}
	x := s.layout.PTLCenter().X - textfit.Width(face, text)/2
	d.centered(face, text, x, box.Min.Y, box.Dy())
	return nil
}

// drawFooter prints the credits and, right after them, the version. Faces
// without a footer band are skipped.
func (d *drawer) drawFooter(s step) {
	l := s.layout
	if l.Size(layout.Other) == 0 {
		return
	}
	left := l.Left + layout.Margin
	border, size := l.Border(layout.Other), l.Size(layout.Other)

	credits := d.face(fonts.Mono, OtherFontSize)
	d.centered(credits, Credits, left, border, size)
	left += textfit.Width(credits, Credits+"   ")

	version := d.face(fonts.Serif, OtherFontSize*4/3)
	d.centered(version, Version, left, border, size)
}
