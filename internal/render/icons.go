package render

import (
	"errors"
	"image"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"bwproxy/internal/layout"
)

// fitIcon scales icon to fit the set icon square, keeping its aspect ratio.
func fitIcon(icon image.Image) image.Image {
	b := icon.Bounds()
	if b.Dx() >= b.Dy() {
		return resize.Resize(layout.SetIconSize, 0, icon, resize.Lanczos3)
	}
	return resize.Resize(0, layout.SetIconSize, icon, resize.Lanczos3)
}

// pasteSetIcon pastes the icon at the end of the type line of every face
// that shows one, centered in the icon square.
func pasteSetIcon(c *Canvas, p *plan, icon image.Image) {
	icon = fitIcon(icon)
	b := icon.Bounds()
	offset := image.Pt((layout.SetIconSize-b.Dx())/2, (layout.SetIconSize-b.Dy())/2)
	for _, s := range p.steps {
		if !s.setIcon {
			continue
		}
		_ = c.Rotated(s.rot, func() error {
			c.Paste(icon, s.layout.SetIconPosition().Add(offset))
			return nil
		})
	}
}

// symbolCache loads illustration symbols, such as Island.png or Emblem.png,
// from a directory once and keeps them for later cards.
type symbolCache struct {
	dir string

	mu     sync.Mutex
	images map[string]image.Image
}

func newSymbolCache(dir string) *symbolCache {
	return &symbolCache{dir: dir, images: make(map[string]image.Image)}
}

// get returns the named symbol, or nil if it cannot be loaded. Failures are
// logged once.
func (sc *symbolCache) get(name string) image.Image {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if img, ok := sc.images[name]; ok {
		return img
	}
	var img image.Image
	if sc.dir != "" {
		path := filepath.Join(sc.dir, name+".png")
		loaded, err := imaging.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("  -> illustration symbol %s not found, skipping", path)
		case err != nil:
			log.Printf("  -> failed to load illustration symbol %s: %v", path, err)
		default:
			img = loaded
		}
	}
	sc.images[name] = img
	return img
}

// illustrationSymbol names the symbol printed in the illustration of basic
// lands (their land type) and emblems.
func illustrationSymbol(s step) (string, bool) {
	switch {
	case s.face.IsBasicLand():
		words := strings.Fields(s.face.Name)
		return words[len(words)-1], true
	case s.face.IsEmblem():
		return "Emblem", true
	}
	return "", false
}

func (d *drawer) drawIllustrationSymbol(s step) {
	if d.opts.FullArtLands {
		return
	}
	name, ok := illustrationSymbol(s)
	if !ok || d.icons == nil {
		return
	}
	if img := d.icons.get(name); img != nil {
		d.c.Paste(img, s.layout.IllustrationPosition())
	}
}
