// Package pages lays rendered cards out on printable pages.
package pages

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"bwproxy/internal/layout"
)

var ErrUnknownFormat = errors.New("unknown page format")

// CardGap is the space around every card on a page.
const CardGap = 20

// Format is a paper size in pixels at layout.DPI.
type Format struct {
	Name   string
	Width  int
	Height int
}

var (
	A4     = Format{Name: "a4paper", Width: int(8.25 * layout.DPI), Height: int(11.75 * layout.DPI)}
	Letter = Format{Name: "letter", Width: int(8.5 * layout.DPI), Height: int(11 * layout.DPI)}
)

// Formats lists the supported formats, the default first.
func Formats() []Format {
	return []Format{A4, Letter}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if f.Name == name {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Options control the grid.
type Options struct {
	Format Format
	// Small prints cards at three quarters of their size, four by four.
	Small bool
	// NoCardSpace leaves a single pixel between cards.
	NoCardSpace bool
}

// Grid returns the number of columns and rows on a page.
func (o Options) Grid() (cols, rows int) {
	if o.Small {
		return 4, 4
	}
	return 3, 3
}

// PerPage is the number of cards on a full page.
func (o Options) PerPage() int {
	cols, rows := o.Grid()
	return cols * rows
}

// CardSize is the size of a card on the page.
func (o Options) CardSize() image.Point {
	if o.Small {
		return image.Pt(layout.CardWidth*3/4, layout.CardHeight*3/4)
	}
	return image.Pt(layout.CardWidth, layout.CardHeight)
}

func (o Options) gap() int {
	if o.NoCardSpace {
		return 1
	}
	return CardGap
}

// Position is the top left corner of the n-th card of a page. The grid is
// centered on the page.
func (o Options) Position(n int) image.Point {
	cols, rows := o.Grid()
	size, gap := o.CardSize(), o.gap()
	spareX := o.Format.Width - (gap + (size.X+gap)*cols)
	spareY := o.Format.Height - (gap + (size.Y+gap)*rows)
	return image.Pt(
		spareX/2+gap+(size.X+gap)*(n%cols),
		spareY/2+gap+(size.Y+gap)*(n/cols),
	)
}

// Compose lays cards out on as many white pages as needed.
func Compose(cards []image.Image, opts Options) []*image.NRGBA {
	per := opts.PerPage()
	size := opts.CardSize()
	var pages []*image.NRGBA
	for i := 0; i < len(cards); i += per {
		page := imaging.New(opts.Format.Width, opts.Format.Height, color.NRGBA{255, 255, 255, 255})
		for n, card := range cards[i:min(i+per, len(cards))] {
			r := image.Rectangle{Min: opts.Position(n), Max: opts.Position(n).Add(size)}
			if opts.Small {
				xdraw.CatmullRom.Scale(page, r, card, card.Bounds(), xdraw.Src, nil)
			} else {
				xdraw.Draw(page, r, card, card.Bounds().Min, xdraw.Src)
			}
		}
		pages = append(pages, page)
	}
	return pages
}

// Save writes pages as <dir>/<deck>/01.png, 02.png and so on, and returns
// the written paths.
func Save(pages []*image.NRGBA, dir, deck string) ([]string, error) {
	outDir := filepath.Join(dir, deck)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create page directory: %w", err)
	}
	var paths []string
	for i, page := range pages {
		path := filepath.Join(outDir, fmt.Sprintf("%02d.png", i+1))
		if err := imaging.Save(page, path); err != nil {
			return paths, fmt.Errorf("failed to save page %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
