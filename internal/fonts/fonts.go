// Package fonts loads the font families used on a proxy and hands out faces
// at a requested pixel size.
package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"bwproxy/internal/symbols"
)

// Family selects one of the loaded fonts.
type Family int

const (
	// Serif is used for mana costs, the oracle name and the version string.
	Serif Family = iota
	// Sans is the bold face for card names and type lines.
	Sans
	// Mono is used for rules text, power/toughness and credits.
	Mono
	// Symbol carries the mana and ability glyphs.
	Symbol
	numFamilies
)

func (f Family) String() string {
	switch f {
	case Serif:
		return "serif"
	case Sans:
		return "sans"
	case Mono:
		return "mono"
	case Symbol:
		return "symbol"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Paths lists font files per family. Empty paths fall back to the embedded
// Go fonts; an empty symbol path means no symbol font.
type Paths struct {
	Serif  string
	Sans   string
	Mono   string
	Symbol string
}

// Set holds parsed fonts. Parsed fonts are read-only and may be shared by
// goroutines; faces may not, see Faces.
type Set struct {
	fonts [numFamilies]*truetype.Font
}

// Load parses the fonts named in p.
func Load(p Paths) (*Set, error) {
	defaults := [numFamilies][]byte{
		Serif: goregular.TTF,
		Sans:  gobold.TTF,
		Mono:  gomono.TTF,
	}
	paths := [numFamilies]string{
		Serif:  p.Serif,
		Sans:   p.Sans,
		Mono:   p.Mono,
		Symbol: p.Symbol,
	}

	s := &Set{}
	for fam := Family(0); fam < numFamilies; fam++ {
		data := defaults[fam]
		if paths[fam] != "" {
			b, err := os.ReadFile(paths[fam])
			if err != nil {
				return nil, fmt.Errorf("failed to read %s font: %w", fam, err)
			}
			data = b
		}
		if data == nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s font: %w", fam, err)
		}
		s.fonts[fam] = f
	}
	return s, nil
}

// Default returns the embedded Go fonts, without a symbol font.
func Default() *Set {
	s, err := Load(Paths{})
	if err != nil {
		panic(fmt.Errorf("parse embedded fonts: %w", err))
	}
	return s
}

// Has reports whether a font is loaded for fam.
func (s *Set) Has(fam Family) bool {
	return s.fonts[fam] != nil
}

// Faces returns a new face cache. A cache belongs to one card render at a
// time since truetype faces keep per-face glyph caches.
func (s *Set) Faces() *Faces {
	return &Faces{set: s, cache: make(map[faceKey]font.Face)}
}

type faceKey struct {
	fam  Family
	size int
}

// Faces caches faces by family and size.
type Faces struct {
	set   *Set
	cache map[faceKey]font.Face
}

// Face returns fam at size pixels. Glyphs in the symbol range are taken from
// the symbol font when one is loaded.
func (f *Faces) Face(fam Family, size int) font.Face {
	key := faceKey{fam, size}
	if face, ok := f.cache[key]; ok {
		return face
	}
	face := f.newFace(fam, size)
	f.cache[key] = face
	return face
}

func (f *Faces) newFace(fam Family, size int) font.Face {
	fnt := f.set.fonts[fam]
	if fnt == nil {
		fnt = f.set.fonts[Serif]
	}
	base := truetype.NewFace(fnt, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if fam == Symbol || f.set.fonts[Symbol] == nil {
		return base
	}
	sym := truetype.NewFace(f.set.fonts[Symbol], &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &symbolFace{Face: base, symbols: sym, symbolFont: f.set.fonts[Symbol], inRange: symbols.IsGlyph}
}

// Sizer returns a function producing faces of fam, for the text fitting code.
func (f *Faces) Sizer(fam Family) func(size int) font.Face {
	return func(size int) font.Face {
		return f.Face(fam, size)
	}
}
