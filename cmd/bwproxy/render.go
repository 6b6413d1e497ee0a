package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bwproxy/internal/deck"
	"bwproxy/internal/decklist"
	"bwproxy/internal/pages"
	"bwproxy/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <decklist>",
	Short: "Render the cards of a decklist to printable pages",
	Long: `Render looks up every card of the decklist, draws its proxy and saves the
pages as <output>/<deck>/01.png, 02.png, ...

Decklist lines look like "4x Lightning Bolt" or "1 Forest Dryad [Tree Friend]",
where the bracketed name is printed instead of the card name. Tokens and
emblems are named like "Blood Token" or "Chandra, Torch of Defiance Emblem".

Examples:
  bwproxy render burn.txt
  bwproxy render --color --small --page-format letter burn.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args[0])
	},
}

func init() {
	addRenderFlags(renderCmd)
}

func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("color", false, "print card frames in color")
	f.Bool("no-text-symbols", false, "print e.g. {W} instead of the corresponding symbol")
	f.Bool("full-art-lands", false, "leave the illustration of basic lands and emblems empty")
	f.Bool("alternative-frames", false, "print flip cards as double-faced cards and aftermath cards as split cards")
	f.Int("workers", 0, "number of cards rendered in parallel (default: number of CPUs)")
	f.String("page-format", pages.A4.Name, "printing page format (a4paper or letter)")
	f.Bool("small", false, "print cards at 75% in size, fitting more on one page")
	f.Bool("no-card-space", false, "print cards without space between them")
	f.StringP("output", "o", "", "directory the pages are saved in (default \"pages\")")
	f.String("set-icon", "", "image printed at the end of every type line")
	f.String("symbols", "", "directory of illustration symbols for basic lands and emblems")
	f.String("tokens", "", "TOML file of hand-authored tokens to print after the decklist")
	f.Bool("offline", false, "only use cached cards")
}

func runRender(cmd *cobra.Command, decklistPath string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSetup(cfg)
	if err != nil {
		return err
	}

	entries, err := decklist.ParseFile(decklistPath)
	if err != nil {
		return fmt.Errorf("failed to read decklist: %w", err)
	}
	deckName := decklist.DeckName(decklistPath)
	fmt.Printf("Loaded %d decklist entries from %s\n", len(entries), decklistPath)

	cards, tokens, client, err := openCaches(cfg)
	if err != nil {
		return err
	}
	loader := &deck.Loader{Cards: cards, Tokens: tokens, AltFrames: cfg.Render.AlternativeFrames}
	if client != nil {
		loader.Client = client
	}
	d, err := loader.Load(ctx, deckName, entries)
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("tokens"); path != "" {
		if err := d.LoadTokens(path); err != nil {
			return err
		}
	}
	if len(d.Cards) == 0 {
		return fmt.Errorf("no cards to print in %s", decklistPath)
	}

	s.opts.FlavorNames = d.FlavorNames
	return s.renderDeck(ctx, d)
}

// renderDeck draws every card of d and saves the pages.
func (s *setup) renderDeck(ctx context.Context, d *deck.Deck) error {
	results := s.renderer.DrawAll(ctx, d.Cards, s.opts, s.cfg.Render.Workers, progress(len(d.Cards)))
	if err := ctx.Err(); err != nil {
		return err
	}

	images, failures := render.Images(results)
	for _, f := range failures {
		log.Printf("  -> %s", color.RedString("Failed to render %s: %v", f.Name, f.Err))
	}
	if len(images) == 0 {
		return fmt.Errorf("no card of %s could be rendered", d.Name)
	}

	paths, err := pages.Save(pages.Compose(images, s.pages), s.cfg.Pages.OutputDir, d.Name)
	if err != nil {
		return err
	}

	summary := fmt.Sprintf("Saved %d cards on %d pages to %s", len(images), len(paths), s.cfg.Pages.OutputDir)
	if len(failures) > 0 || len(d.Skipped) > 0 {
		color.Yellow("%s (%d failed, %d not found)", summary, len(failures), len(d.Skipped))
	} else {
		color.Green("%s", summary)
	}
	return nil
}

// progress prints one line per rendered card on terminals.
func progress(total int) func(render.Result) {
	if !isTerminal() {
		return nil
	}
	var mu sync.Mutex
	n := 0
	return func(res render.Result) {
		mu.Lock()
		defer mu.Unlock()
		n++
		fmt.Printf("[%d/%d] Rendering %s...\n", n, total, res.Card.Name)
	}
}
