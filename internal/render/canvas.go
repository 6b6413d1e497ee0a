package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Rotation is a counter-clockwise turn of the whole canvas.
type Rotation int

const (
	NoRotation Rotation = iota
	Rotate90
	Rotate180
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// Canvas is an opaque card image. It is owned by one card render at a time.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewCanvas returns a white canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{white}, image.Point{}, draw.Src)
	c := &Canvas{}
	c.set(img)
	return c
}

func (c *Canvas) set(img *image.RGBA) {
	c.img = img
	c.dc = gg.NewContextForRGBA(img)
	c.dc.SetColor(black)
}

// Image returns the pixels drawn so far.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// opaque reinterprets an imaging result as RGBA. NRGBA and RGBA store the
// same bytes when every pixel is opaque, which holds for card canvases.
func opaque(n *image.NRGBA) *image.RGBA {
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}

func (c *Canvas) turn(r Rotation, undo bool) {
	switch {
	case r == Rotate180:
		c.set(opaque(imaging.Rotate180(c.img)))
	case r == Rotate90 && !undo:
		c.set(opaque(imaging.Rotate90(c.img)))
	case r == Rotate90 && undo:
		c.set(opaque(imaging.Rotate270(c.img)))
	}
}

// Rotated turns the canvas by r, runs fn and turns the canvas back, also
// when fn fails or panics. Inside fn, coordinates are those of the turned
// canvas.
func (c *Canvas) Rotated(r Rotation, fn func() error) error {
	if r == NoRotation {
		return fn()
	}
	c.turn(r, false)
	defer c.turn(r, true)
	return fn()
}

// Fill paints r with col, replacing what was there.
func (c *Canvas) Fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

// Outline paints a border of the given width inside r.
func (c *Canvas) Outline(r image.Rectangle, width int, col color.Color) {
	c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	c.Fill(image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), col)
	c.Fill(image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), col)
}

// Paste draws src with its top left corner at pt, blending by src alpha.
func (c *Canvas) Paste(src image.Image, pt image.Point) {
	c.set(opaque(imaging.Overlay(c.img, src, pt, 1.0)))
}

// Text draws s in black with its baseline starting at (x, baseline).
func (c *Canvas) Text(face font.Face, s string, x, baseline int) {
	c.dc.SetFontFace(face)
	c.dc.DrawString(s, float64(x), float64(baseline))
}

// Keyed replaces every pixel of exactly the key color with the pixel at the
// same position in tmpl.
func (c *Canvas) Keyed(key color.RGBA, tmpl *image.RGBA) {
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c.img.RGBAAt(x, y) == key {
				c.img.SetRGBA(x, y, tmpl.RGBAAt(x, y))
			}
		}
	}
}
