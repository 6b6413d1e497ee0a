package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bwproxy/internal/deck"
	"bwproxy/internal/decklist"
	"bwproxy/internal/models"
	"bwproxy/internal/render"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <card name>...",
	Short: "Show how cards will be printed",
	Long: `Lookup resolves card names the way render does, caching the answers, and
prints the fields that end up on the proxy.

Examples:
  bwproxy lookup "Lightning Bolt"
  bwproxy lookup "Fire // Ice" "Blood Token"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cards, tokens, client, err := openCaches(cfg)
		if err != nil {
			return err
		}
		loader := &deck.Loader{Cards: cards, Tokens: tokens, AltFrames: cfg.Render.AlternativeFrames}
		if client != nil {
			loader.Client = client
		}

		entries := make([]decklist.Entry, len(args))
		for i, name := range args {
			entries[i] = decklist.Entry{Count: 1, Name: name, Line: i + 1}
		}
		d, err := loader.Load(cmd.Context(), "lookup", entries)
		if err != nil {
			return err
		}
		for _, c := range d.Cards {
			printCard(c, cfg.Render.AlternativeFrames)
		}
		if len(d.Skipped) > 0 {
			return fmt.Errorf("not found: %s", strings.Join(d.Skipped, ", "))
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().Bool("offline", false, "only use cached cards")
	lookupCmd.Flags().Bool("alternative-frames", false, "resolve flip and aftermath cards as with render --alternative-frames")
}

func printCard(c models.Card, altFrames bool) {
	fmt.Println(color.CyanString("Card:    ") + color.HiWhiteString("%s", c.Name))
	fmt.Println(color.CyanString("Frame:   ") + color.HiWhiteString("%s", render.EffectiveVariant(c, altFrames)))
	faces := []models.Card{c}
	if len(c.Faces) > 0 {
		faces = c.Faces
	}
	for _, f := range faces {
		if len(faces) > 1 {
			fmt.Println(color.CyanString("Face:    ") + color.HiWhiteString("%s", f.Name))
		}
		printField("Cost", f.ManaCost)
		printField("Type", f.TypeLine)
		if text, ok := f.PTL(); ok {
			printField("Stats", text)
		}
		if text := f.RulesText(); text != "" {
			fmt.Println(color.CyanString("Text:"))
			for _, line := range strings.Split(text, "\n") {
				fmt.Println("  " + line)
			}
		}
	}
	if c.FuseText != "" {
		printField("Fuse", c.FuseText)
	}
	fmt.Println()
}

func printField(name, value string) {
	if value == "" {
		return
	}
	fmt.Println(color.CyanString("%-9s", name+":") + value)
}
