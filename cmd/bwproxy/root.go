package main

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bwproxy/internal/config"
	"bwproxy/internal/fonts"
	"bwproxy/internal/layout"
	"bwproxy/internal/pages"
	"bwproxy/internal/render"
	"bwproxy/internal/scryfall"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bwproxy [decklist]",
	Short: "Render printable black and white proxies",
	Long: `bwproxy draws black and white proxies of Magic: The Gathering cards and
lays them out on printable pages.

Called with a decklist it behaves like "bwproxy render".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runRender(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/bwproxy/config.toml)")
	addRenderFlags(rootCmd)

	rootCmd.AddCommand(renderCmd, lookupCmd, basicsCmd, initCmd)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Lookup(name) != nil && f.Changed(name) {
			apply()
		}
	}
	set("color", func() { cfg.Render.Color, _ = f.GetBool("color") })
	set("no-text-symbols", func() { cfg.Render.TextSymbols = false })
	set("full-art-lands", func() { cfg.Render.FullArtLands, _ = f.GetBool("full-art-lands") })
	set("alternative-frames", func() { cfg.Render.AlternativeFrames, _ = f.GetBool("alternative-frames") })
	set("workers", func() { cfg.Render.Workers, _ = f.GetInt("workers") })
	set("page-format", func() { cfg.Pages.Format, _ = f.GetString("page-format") })
	set("small", func() { cfg.Pages.Small, _ = f.GetBool("small") })
	set("no-card-space", func() { cfg.Pages.NoCardSpace, _ = f.GetBool("no-card-space") })
	set("output", func() { cfg.Pages.OutputDir, _ = f.GetString("output") })
	set("set-icon", func() { cfg.Assets.SetIcon, _ = f.GetString("set-icon") })
	set("symbols", func() { cfg.Assets.Symbols, _ = f.GetString("symbols") })
	set("offline", func() { cfg.Cache.Offline, _ = f.GetBool("offline") })
	return cfg, nil
}

// setup holds what every rendering command needs.
type setup struct {
	cfg      *config.Config
	renderer *render.Renderer
	opts     render.Options
	pages    pages.Options
}

func newSetup(cfg *config.Config) (*setup, error) {
	if err := layout.ValidateAll(); err != nil {
		return nil, err
	}
	format, err := pages.ParseFormat(cfg.Pages.Format)
	if err != nil {
		return nil, err
	}
	fs, err := fonts.Load(fonts.Paths{
		Serif:  cfg.Fonts.Serif,
		Sans:   cfg.Fonts.Sans,
		Mono:   cfg.Fonts.Mono,
		Symbol: cfg.Fonts.Symbol,
	})
	if err != nil {
		return nil, err
	}

	var icon image.Image
	if cfg.Assets.SetIcon != "" {
		icon, err = imaging.Open(cfg.Assets.SetIcon)
		if err != nil {
			return nil, fmt.Errorf("failed to load set icon: %w", err)
		}
	}

	return &setup{
		cfg:      cfg,
		renderer: render.NewRenderer(fs, cfg.Assets.Symbols),
		opts: render.Options{
			Color:        cfg.Render.Color,
			SetIcon:      icon,
			TextSymbols:  cfg.Render.TextSymbols,
			FullArtLands: cfg.Render.FullArtLands,
			AltFrames:    cfg.Render.AlternativeFrames,
		},
		pages: pages.Options{
			Format:      format,
			Small:       cfg.Pages.Small,
			NoCardSpace: cfg.Pages.NoCardSpace,
		},
	}, nil
}

// openCaches opens the card and token caches and, unless offline, a client.
func openCaches(cfg *config.Config) (cards, tokens *scryfall.Cache, client *scryfall.Client, err error) {
	cards, err = scryfall.OpenCache(cfg.Cache.Cards)
	if err != nil {
		return nil, nil, nil, err
	}
	tokens, err = scryfall.OpenCache(cfg.Cache.Tokens)
	if err != nil {
		return nil, nil, nil, err
	}
	if !cfg.Cache.Offline {
		client = scryfall.NewClient("")
	}
	return cards, tokens, client, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
