package deck

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"bwproxy/internal/scryfall"
)

// TokenSpec is a hand-authored token, for tokens missing from the card
// database or printed with custom text.
//
//	[[token]]
//	name = "Soldier"
//	type_line = "Token Creature — Soldier"
//	colors = ["W"]
//	power = "1"
//	toughness = "1"
//	count = 4
type TokenSpec struct {
	Name      string   `toml:"name"`
	TypeLine  string   `toml:"type_line"`
	Colors    []string `toml:"colors"`
	Text      string   `toml:"text"`
	Power     string   `toml:"power"`
	Toughness string   `toml:"toughness"`
	Count     int      `toml:"count"`
}

type tokenFile struct {
	Tokens []TokenSpec `toml:"token"`
}

// LoadTokens reads hand-authored tokens and appends them to d.
func (d *Deck) LoadTokens(path string) error {
	var f tokenFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return fmt.Errorf("error decoding token file: %w", err)
	}
	for i, spec := range f.Tokens {
		if spec.Name == "" {
			return fmt.Errorf("token %d in %s has no name", i+1, path)
		}
		card, err := spec.raw().Card()
		if err != nil {
			return fmt.Errorf("token %s: %w", spec.Name, err)
		}
		count := spec.Count
		if count <= 0 {
			count = 1
		}
		d.Add(card, count, false)
	}
	return nil
}

func (spec TokenSpec) raw() scryfall.RawCard {
	typeLine := spec.TypeLine
	if typeLine == "" {
		typeLine = "Creature — " + spec.Name
	}
	if !strings.Contains(typeLine, "Token") && !strings.Contains(typeLine, "Emblem") {
		typeLine = "Token " + typeLine
	}
	layout := "token"
	if strings.Contains(typeLine, "Emblem") {
		layout = "emblem"
	}
	return scryfall.RawCard{
		Name:       spec.Name,
		Layout:     layout,
		Colors:     spec.Colors,
		TypeLine:   typeLine,
		OracleText: spec.Text,
		Power:      spec.Power,
		Toughness:  spec.Toughness,
	}
}
