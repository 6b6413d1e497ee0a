package render

import (
	"errors"
	"fmt"

	"bwproxy/internal/layout"
	"bwproxy/internal/models"
)

// ErrSeparateFaces is returned when a card whose faces print as separate
// cards is drawn as a whole. Expand it first.
var ErrSeparateFaces = errors.New("faces of this card print as separate cards")

// frame is how one face of a variant is drawn.
type frame struct {
	layout *layout.Layout
	rot    Rotation
}

// frames is the single table from variant to the template and rotation of
// each face, in draw order.
var frames = map[models.Variant][]frame{
	models.Standard:  {{layout.Standard, NoRotation}},
	models.Transform: {{layout.Standard, NoRotation}},
	models.ModalDFC:  {{layout.Standard, NoRotation}},
	models.Split:     {{layout.SplitLeft, Rotate90}, {layout.SplitRight, Rotate90}},
	models.Fuse:      {{layout.SplitLeft, Rotate90}, {layout.SplitRight, Rotate90}},
	models.Aftermath: {{layout.Aftermath, NoRotation}, {layout.SplitRight, Rotate90}},
	models.Adventure: {{layout.Standard, NoRotation}, {layout.Adventure, NoRotation}},
	models.Flip:      {{layout.Flip, NoRotation}, {layout.Flip, Rotate180}},
	models.Land:      {{layout.Land, NoRotation}},
	models.Token:     {{layout.Token, NoRotation}},
	models.Emblem:    {{layout.Emblem, NoRotation}},
}

// Frames returns the template of each face of v, in face order.
func Frames(v models.Variant) ([]*layout.Layout, error) {
	fs, ok := frames[v]
	if !ok {
		return nil, fmt.Errorf("frames for %v: %w", v, models.ErrUnknownVariant)
	}
	out := make([]*layout.Layout, len(fs))
	for i, f := range fs {
		out[i] = f.layout
	}
	return out, nil
}

// step draws one face.
type step struct {
	face   models.Card
	layout *layout.Layout
	rot    Rotation

	setIcon bool
	// halfRules moves the rules text to the right half of the rules box,
	// leaving the left half to the adventure spell.
	halfRules bool
}

type plan struct {
	card    models.Card
	variant models.Variant
	steps   []step
	fuse    bool
}

// EffectiveVariant is the variant a card is drawn as. Basic lands, tokens
// and emblems get their own frames whatever their database layout;
// alternative frames draw flip cards as double-faced cards and aftermath
// cards as split cards.
func EffectiveVariant(c models.Card, altFrames bool) models.Variant {
	v := c.Variant
	switch {
	case c.IsBasicLand():
		v = models.Land
	case c.IsTextlessToken():
		v = models.Token
	case c.IsTokenOrEmblem():
		v = models.Emblem
	}
	if altFrames {
		switch v {
		case models.Flip:
			v = models.Standard
		case models.Aftermath:
			v = models.Split
		}
	}
	return v
}

// Expand returns the cards printed for c: both faces for double-faced cards
// (and flip cards with alternative frames), c itself otherwise.
func Expand(c models.Card, altFrames bool) []models.Card {
	if c.IsFace || len(c.Faces) != 2 {
		return []models.Card{c}
	}
	if c.Variant.IsDoubleFaced() || (altFrames && c.Variant == models.Flip) {
		return []models.Card{c.Faces[0], c.Faces[1]}
	}
	return []models.Card{c}
}

func newPlan(c models.Card, altFrames bool) (*plan, error) {
	v := EffectiveVariant(c, altFrames)
	fs, ok := frames[v]
	if !ok {
		return nil, fmt.Errorf("%s: %w", c.Name, models.ErrUnknownVariant)
	}
	if !c.IsFace && len(Expand(c, altFrames)) > 1 {
		return nil, fmt.Errorf("%s: %w", c.Name, ErrSeparateFaces)
	}

	p := &plan{card: c, variant: v, fuse: v == models.Fuse && !c.IsFace}
	if len(fs) == 1 {
		p.steps = []step{{face: c, layout: fs[0].layout, rot: fs[0].rot, setIcon: true}}
		return p, nil
	}
	if len(c.Faces) != 2 {
		return nil, fmt.Errorf("%s (%s): %w", c.Name, v, models.ErrMissingFace)
	}
	for i, f := range fs {
		p.steps = append(p.steps, step{
			face:      c.Faces[i],
			layout:    f.layout,
			rot:       f.rot,
			setIcon:   !(v == models.Adventure && i == 1),
			halfRules: v == models.Adventure && i == 0,
		})
	}
	return p, nil
}
