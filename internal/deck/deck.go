// Package deck turns a parsed decklist into the cards to print.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bwproxy/internal/decklist"
	"bwproxy/internal/models"
	"bwproxy/internal/render"
	"bwproxy/internal/scryfall"
)

var errOffline = errors.New("not cached and no card database configured")

// Fetcher looks cards up in the card database.
type Fetcher interface {
	Named(ctx context.Context, name string) (scryfall.RawCard, error)
	Token(ctx context.Context, name string) (scryfall.RawCard, error)
}

// Deck is the list of cards to print, in decklist order, with the flavor
// names to print them under.
type Deck struct {
	Name        string
	Cards       []models.Card
	FlavorNames map[string]string
	// Skipped lists the decklist names that were not found or not usable.
	Skipped []string
}

// Loader resolves decklist entries through the caches, falling back to the
// client. Tokens and emblems use their own cache.
type Loader struct {
	Client    Fetcher
	Cards     *scryfall.Cache
	Tokens    *scryfall.Cache
	AltFrames bool
}

// Load resolves entries. Cards that cannot be resolved are logged and
// skipped; only a cancelled ctx stops loading.
func (l *Loader) Load(ctx context.Context, name string, entries []decklist.Entry) (*Deck, error) {
	d := &Deck{Name: name, FlavorNames: make(map[string]string)}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return d, err
		}
		if (models.Card{Name: e.Name}).IsBasicLand() {
			fmt.Printf("%s will not be printed. Use the basics command instead\n", e.Name)
			continue
		}

		raw, err := l.lookup(ctx, e.Name)
		if err != nil {
			log.Printf("  -> Skipping %s: %v", e.Name, err)
			d.Skipped = append(d.Skipped, e.Name)
			continue
		}
		card, err := raw.Card()
		if err != nil {
			log.Printf("  -> Skipping %s: %v", e.Name, err)
			d.Skipped = append(d.Skipped, e.Name)
			continue
		}

		flavor := card.FlavorName
		if e.Flavor != "" {
			flavor = e.Flavor
		}
		if flavor != "" {
			d.FlavorNames[card.Name] = flavor
			// Double-faced cards print each face under its own name.
			if card.Variant.IsDoubleFaced() {
				d.FlavorNames[card.Faces[0].Name] = flavor
			}
		}
		d.Add(card, e.Count, l.AltFrames)
	}

	for _, c := range []*scryfall.Cache{l.Cards, l.Tokens} {
		if c == nil {
			continue
		}
		if err := c.Save(); err != nil {
			log.Printf("  -> Failed to save card cache: %v", err)
		}
	}
	return d, nil
}

// Add appends count copies of card, split into its printed faces.
func (d *Deck) Add(card models.Card, count int, altFrames bool) {
	for i := 0; i < count; i++ {
		d.Cards = append(d.Cards, render.Expand(card, altFrames)...)
	}
}

func (l *Loader) lookup(ctx context.Context, name string) (scryfall.RawCard, error) {
	cache, fetch := l.Cards, l.named
	if scryfall.IsTokenName(name) {
		cache, fetch = l.Tokens, l.token
	}
	if cache != nil {
		if raw, ok := cache.Get(name); ok {
			return raw, nil
		}
	}
	if l.Client == nil {
		return scryfall.RawCard{}, errOffline
	}

	fmt.Printf("%s not in cache. searching...\n", name)
	raw, err := fetch(ctx, name)
	if err != nil {
		return scryfall.RawCard{}, err
	}
	if cache != nil {
		cache.Put(name, raw)
	}
	return raw, nil
}

func (l *Loader) named(ctx context.Context, name string) (scryfall.RawCard, error) {
	return l.Client.Named(ctx, name)
}

func (l *Loader) token(ctx context.Context, name string) (scryfall.RawCard, error) {
	return l.Client.Token(ctx, name)
}
