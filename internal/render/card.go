// Package render draws black and white proxies of cards.
//
// A card is drawn in three passes over one canvas: the black frame of every
// face, an optional recoloring of the frame lines, then the set icon and the
// text. Rotated halves are drawn by turning the whole canvas, drawing in the
// template's own coordinates, and turning it back.
package render

import (
	"fmt"
	"image"

	"bwproxy/internal/fonts"
	"bwproxy/internal/layout"
	"bwproxy/internal/models"
)

// Options change how cards are drawn.
type Options struct {
	// Color paints the frame lines in the card colors.
	Color bool
	// SetIcon, if set, is pasted at the end of the type line.
	SetIcon image.Image
	// FlavorNames maps oracle names to the names printed in the title.
	FlavorNames map[string]string
	// TextSymbols replaces mana and ability tokens in rules text with glyphs.
	TextSymbols bool
	// FullArtLands leaves the illustration of basic lands and emblems empty.
	FullArtLands bool
	// AltFrames draws flip cards as double-faced cards and aftermath cards
	// as split cards.
	AltFrames bool
}

// Renderer draws cards. It is safe for concurrent use: parsed fonts and
// illustration symbols are shared, while each DrawCard call uses its own
// canvas and faces.
type Renderer struct {
	fonts *fonts.Set
	icons *symbolCache
}

// NewRenderer returns a renderer using fs, loading illustration symbols from
// symbolDir. An empty symbolDir draws no illustration symbols.
func NewRenderer(fs *fonts.Set, symbolDir string) *Renderer {
	return &Renderer{fonts: fs, icons: newSymbolCache(symbolDir)}
}

// DrawCard draws one card. Double-faced cards print as two cards and must
// be split with Expand first.
func (r *Renderer) DrawCard(card models.Card, opts Options) (*image.RGBA, error) {
	p, err := newPlan(card, opts.AltFrames)
	if err != nil {
		return nil, err
	}

	c := NewCanvas(layout.CardWidth, layout.CardHeight)
	drawFrame(c, p)
	if opts.Color {
		colorFrame(c, p)
	}
	if opts.SetIcon != nil {
		pasteSetIcon(c, p, opts.SetIcon)
	}

	d := &drawer{c: c, faces: r.fonts.Faces(), opts: opts, plan: p, icons: r.icons}
	if err := d.drawText(); err != nil {
		return nil, fmt.Errorf("draw %s: %w", card.Name, err)
	}
	return c.Image(), nil
}
