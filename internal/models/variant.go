package models

import (
	"errors"
	"fmt"
)

// Variant is the closed set of card layouts the renderer knows how to draw.
type Variant int

const (
	Standard Variant = iota
	Split
	Fuse
	Aftermath
	Adventure
	Flip
	Transform
	ModalDFC
	Land
	Token
	Emblem
)

var ErrUnknownVariant = errors.New("unknown layout variant")

var variantKeys = [...]string{
	Standard:  "standard",
	Split:     "split",
	Fuse:      "fuse",
	Aftermath: "aftermath",
	Adventure: "adventure",
	Flip:      "flip",
	Transform: "transform",
	ModalDFC:  "modal_dfc",
	Land:      "land",
	Token:     "token",
	Emblem:    "emblem",
}

// Single-faced database layouts that print on the standard frame.
var standardAliases = map[string]bool{
	"normal":    true,
	"saga":      true,
	"class":     true,
	"case":      true,
	"leveler":   true,
	"meld":      true,
	"mutate":    true,
	"prototype": true,
	"host":      true,
	"augment":   true,
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantKeys) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantKeys[v]
}

// ParseVariant resolves a layout identifier, either one of the variant keys
// or a card database layout name.
func ParseVariant(s string) (Variant, error) {
	for v, key := range variantKeys {
		if key == s {
			return Variant(v), nil
		}
	}
	if standardAliases[s] {
		return Standard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// IsDoubleFaced reports whether both faces are printed as separate cards.
func (v Variant) IsDoubleFaced() bool {
	return v == Transform || v == ModalDFC
}

// IsTwoPart reports whether both faces share one card canvas.
func (v Variant) IsTwoPart() bool {
	switch v {
	case Split, Fuse, Aftermath, Adventure, Flip:
		return true
	}
	return false
}

// HasFaces reports whether cards of this variant carry two faces.
func (v Variant) HasFaces() bool {
	return v.IsDoubleFaced() || v.IsTwoPart()
}

// HasFaceIndicator reports whether faces of this variant show a face
// indicator glyph left of their name.
func (v Variant) HasFaceIndicator() bool {
	return v.IsDoubleFaced() || v == Flip
}
