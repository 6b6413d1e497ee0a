// Package symbols maps bracketed mana and ability tokens, such as {W} or
// {2/U}, to the code points where the symbol font carries their glyphs.
package symbols

import (
	"fmt"
	"regexp"
	"strings"
)

// First and last code points used by symbol glyphs.
const (
	RangeStart rune = 0x200
	RangeEnd   rune = 0x24F
)

// Paintbrush precedes the credits line in the footer.
const Paintbrush rune = 0x23F

var hybridPairs = []string{"W/U", "U/B", "B/R", "R/G", "G/W", "W/B", "U/R", "B/G", "R/W", "G/U"}

var table = buildTable()

func buildTable() map[string]rune {
	t := make(map[string]rune)
	for i := 0; i <= 20; i++ {
		t[fmt.Sprintf("{%d}", i)] = RangeStart + rune(i)
	}
	for i, c := range []string{"W", "U", "B", "R", "G"} {
		t["{"+c+"}"] = 0x220 + rune(i)
		t["{2/"+c+"}"] = 0x225 + rune(i)
		t["{"+c+"/P}"] = 0x22A + rune(i)
	}
	for i, h := range hybridPairs {
		t["{"+h+"}"] = 0x230 + rune(i)
		t["{"+h+"/P}"] = 0x240 + rune(i)
	}
	t["{X}"] = 0x215
	t["{Y}"] = 0x216
	t["{Z}"] = 0x217
	t["{T}"] = 0x218
	t["{Q}"] = 0x219
	t["{MODAL_DFC_FRONT}"] = 0x21A
	t["{MODAL_DFC_BACK}"] = 0x21B
	t["{TRANSFORM_FRONT}"] = 0x21C
	t["{TRANSFORM_BACK}"] = 0x21D
	t["{S}"] = 0x21E
	t["{C}"] = 0x21F
	t["{P}"] = 0x22F
	t["{E}"] = 0x23A
	t["{FLIP_FRONT}"] = 0x218
	t["{FLIP_BACK}"] = 0x219
	t["{PAINTBRUSH}"] = Paintbrush
	return t
}

var tokenRe = regexp.MustCompile(`\{.+?\}`)

// Glyph returns the code point for a bracketed token. Lookup is case-insensitive.
func Glyph(token string) (rune, bool) {
	r, ok := table[strings.ToUpper(token)]
	return r, ok
}

// Tokens returns every token known to the substitution table.
func Tokens() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	return out
}

// Substitute replaces every known token in text with its glyph. Unknown
// tokens are kept, uppercased. The Unicode minus sign becomes an ASCII
// hyphen since the fonts lack it.
//
// Apply it before measuring text: glyphs are narrower than their tokens.
func Substitute(text string) string {
	out := tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		if r, ok := Glyph(tok); ok {
			return string(r)
		}
		return strings.ToUpper(tok)
	})
	return strings.ReplaceAll(out, "−", "-")
}

// IsGlyph reports whether r falls in the symbol font range.
func IsGlyph(r rune) bool {
	return r >= RangeStart && r <= RangeEnd
}
