package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"

	"bwproxy/internal/layout"
	"bwproxy/internal/models"
)

// Frame colors keyed by mana letter; C is colorless and M multicolor.
var FrameColors = map[string]string{
	"W": "#fcf4a3",
	"U": "#127db4",
	"B": "#692473",
	"R": "#e13c32",
	"G": "#0f7846",
	"C": "#919799",
	"M": "#d4af37",
}

func frameColor(key string) colorful.Color {
	c, err := colorful.Hex(FrameColors[key])
	if err != nil {
		panic(fmt.Errorf("frame color %s: %w", key, err))
	}
	return c
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// fillColors returns the colors a face's frame is painted with. Faces
// without colors of their own use their color indicator.
func fillColors(c models.Card) []models.Color {
	if len(c.Colors) > 0 {
		return c.Colors
	}
	return c.ColorIndicator
}

// paintColors fills dst with the frame color for cs: one flat color for
// colorless, mono and five color faces, otherwise a left to right gradient
// through the colors in WUBRG order.
func paintColors(dst draw.Image, r image.Rectangle, cs []models.Color) {
	cs = models.SortColors(cs)
	switch len(cs) {
	case 0:
		draw.Draw(dst, r, &image.Uniform{rgba(frameColor("C"))}, image.Point{}, draw.Src)
		return
	case 1:
		draw.Draw(dst, r, &image.Uniform{rgba(frameColor(string(cs[0])))}, image.Point{}, draw.Src)
		return
	case len(models.ManaColors):
		draw.Draw(dst, r, &image.Uniform{rgba(frameColor("M"))}, image.Point{}, draw.Src)
		return
	}

	stops := make([]colorful.Color, len(cs))
	for i, c := range cs {
		stops[i] = frameColor(string(c))
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		col := &image.Uniform{rgba(gradientAt(stops, x-r.Min.X, r.Dx()))}
		draw.Draw(dst, image.Rect(x, r.Min.Y, x+1, r.Max.Y), col, image.Point{}, draw.Src)
	}
}

// gradientAt interpolates linearly in RGB between evenly spaced stops, so
// that column 0 and column width-1 get the first and last stop exactly.
func gradientAt(stops []colorful.Color, x, width int) colorful.Color {
	n := len(stops) - 1
	if width <= 1 {
		return stops[0]
	}
	t := float64(x) * float64(n) / float64(width-1)
	i := int(t)
	if i >= n {
		i = n - 1
	}
	return stops[i].BlendRgb(stops[i+1], t-float64(i))
}

// colorTemplate builds the colored image that replaces the black frame
// lines. Split, fuse and aftermath halves are colored separately, in their
// own orientation; other cards use the colors of the card being drawn.
func colorTemplate(p *plan) *image.RGBA {
	tmpl := NewCanvas(layout.CardWidth, layout.CardHeight)
	switch p.variant {
	case models.Split, models.Fuse, models.Aftermath:
		for _, s := range p.steps {
			_ = tmpl.Rotated(s.rot, func() error {
				paintColors(tmpl.img, s.layout.Bounds(), fillColors(s.face))
				return nil
			})
		}
	default:
		paintColors(tmpl.img, tmpl.img.Bounds(), fillColors(p.card))
	}
	return tmpl.Image()
}

// colorFrame recolors the black frame lines drawn so far.
func colorFrame(c *Canvas, p *plan) {
	c.Keyed(black, colorTemplate(p))
}
