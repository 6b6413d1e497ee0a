package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bwproxy/internal/deck"
	"bwproxy/internal/models"
)

var basicLandTypes = []string{"Forest", "Mountain", "Swamp", "Island", "Plains"}

var basicsCmd = &cobra.Command{
	Use:   "basics",
	Short: "Render sheets of basic lands",
	Long: `Basics renders the five basic lands twice: once with their illustration
symbol (deck "symbolLands") and once with an empty illustration (deck
"blankLands"). Symbols are read from the symbols directory, as Forest.png,
Island.png and so on.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")

		for _, sheet := range []struct {
			name    string
			fullArt bool
		}{
			{"symbolLands", false},
			{"blankLands", true},
		} {
			cfg.Render.FullArtLands = sheet.fullArt
			s, err := newSetup(cfg)
			if err != nil {
				return err
			}
			d, err := basicsDeck(sheet.name, count)
			if err != nil {
				return err
			}
			fmt.Printf("Rendering %s...\n", sheet.name)
			if err := s.renderDeck(cmd.Context(), d); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	f := basicsCmd.Flags()
	f.Int("count", 8, "copies of each basic land")
	f.Bool("color", false, "print card frames in color")
	f.String("page-format", "a4paper", "printing page format (a4paper or letter)")
	f.Bool("small", false, "print cards at 75% in size, fitting more on one page")
	f.Bool("no-card-space", false, "print cards without space between them")
	f.StringP("output", "o", "", "directory the pages are saved in (default \"pages\")")
	f.String("symbols", "", "directory of illustration symbols")
	f.String("set-icon", "", "image printed at the end of every type line")
}

func basicsDeck(name string, count int) (*deck.Deck, error) {
	d := &deck.Deck{Name: name}
	for _, land := range basicLandTypes {
		card, err := models.NewCard(models.Card{
			Name:     land,
			TypeLine: "Basic Land — " + land,
			Variant:  models.Land,
		})
		if err != nil {
			return nil, err
		}
		d.Add(card, count, false)
	}
	return d, nil
}
