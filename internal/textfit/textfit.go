// Package textfit chooses font sizes and line breaks so that card text fits
// the box it is printed in.
package textfit

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/font"
)

// MinFontSize is the smallest size the fitting loops try before giving up.
const MinFontSize = 8

// ErrDoesNotFit is returned when text does not fit even at MinFontSize.
var ErrDoesNotFit = errors.New("text does not fit at the minimum font size")

// Sizer returns a face of one family at the given pixel size.
type Sizer func(size int) font.Face

// Width is the advance width of s in whole pixels, rounded up.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight is the distance between consecutive baselines.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// FitOneLine returns the largest size not above startSize at which text is at
// most maxWidth pixels wide.
func FitOneLine(sizer Sizer, text string, maxWidth, startSize int) (int, error) {
	for size := startSize; size >= MinFontSize; size-- {
		if Width(sizer(size), text) <= maxWidth {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%q in %dpx: %w", text, maxWidth, ErrDoesNotFit)
}

// Result is wrapped text together with the size it was wrapped at.
type Result struct {
	Size int
	// Rules holds the printed lines of each rule.
	Rules [][]string
}

// Lines returns the printed lines, with an empty line between rules.
func (r Result) Lines() []string {
	var out []string
	for i, rule := range r.Rules {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, rule...)
	}
	return out
}

// Text joins the lines of a rule with one line break and rules with two.
func (r Result) Text() string {
	return strings.Join(r.Lines(), "\n")
}

// Height is the block height when printed with face.
func (r Result) Height(face font.Face) int {
	return LineHeight(face) * len(r.Lines())
}

// Wrap breaks each rule of text greedily so that lines are at most maxWidth
// wide. A word wider than maxWidth is put alone on its line and left as is.
func Wrap(face font.Face, text string, maxWidth int) [][]string {
	var rules [][]string
	for _, rule := range strings.Split(text, "\n") {
		words := strings.Fields(rule)
		if len(words) == 0 {
			continue
		}
		var lines []string
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if Width(face, next) > maxWidth {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		rules = append(rules, append(lines, cur))
	}
	return rules
}

// FitMultiLine wraps text into maxWidth and shrinks the size, starting from
// startSize, until the wrapped block is at most maxHeight tall.
func FitMultiLine(sizer Sizer, text string, maxWidth, maxHeight, startSize int) (Result, error) {
	for size := startSize; size >= MinFontSize; size-- {
		face := sizer(size)
		r := Result{Size: size, Rules: Wrap(face, text, maxWidth)}
		if r.Height(face) <= maxHeight {
			return r, nil
		}
	}
	return Result{}, fmt.Errorf("%d chars in %dx%dpx: %w", len(text), maxWidth, maxHeight, ErrDoesNotFit)
}

// CalcTopValue returns the row where the ink of text must start so that it
// is centered vertically in the band starting at border with the given size.
// Ink bounds are used instead of ascent and descent, which differ between
// fonts.
func CalcTopValue(face font.Face, text string, border, size int) int {
	b, _ := font.BoundString(face, text)
	inkHeight := (b.Max.Y - b.Min.Y).Ceil()
	return border + (size-inkHeight)/2
}

// BaselineFor converts the top of the ink of text into the baseline to draw at.
func BaselineFor(face font.Face, text string, top int) int {
	b, _ := font.BoundString(face, text)
	return top - b.Min.Y.Floor()
}

// CenterBaseline is the baseline that centers the ink of text in a band.
func CenterBaseline(face font.Face, text string, border, size int) int {
	return BaselineFor(face, text, CalcTopValue(face, text, border, size))
}
