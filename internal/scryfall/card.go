package scryfall

import (
	"fmt"

	"bwproxy/internal/models"
)

// RawCard is a card as returned by the API, keeping only the fields that
// are printed on proxies.
type RawCard struct {
	Name           string    `json:"name"`
	Layout         string    `json:"layout,omitempty"`
	ManaCost       string    `json:"mana_cost,omitempty"`
	Colors         []string  `json:"colors,omitempty"`
	ColorIndicator []string  `json:"color_indicator,omitempty"`
	TypeLine       string    `json:"type_line,omitempty"`
	OracleText     string    `json:"oracle_text,omitempty"`
	Power          string    `json:"power,omitempty"`
	Toughness      string    `json:"toughness,omitempty"`
	Loyalty        string    `json:"loyalty,omitempty"`
	FlavorName     string    `json:"flavor_name,omitempty"`
	CardFaces      []RawCard `json:"card_faces,omitempty"`
}

// Card converts r to a normalized card.
func (r RawCard) Card() (models.Card, error) {
	v, err := models.ParseVariant(r.Layout)
	if err != nil {
		return models.Card{}, fmt.Errorf("%s: %w", r.Name, err)
	}
	c := r.fields()
	c.Variant = v
	for _, f := range r.CardFaces {
		c.Faces = append(c.Faces, f.fields())
	}
	return models.NewCard(c)
}

func (r RawCard) fields() models.Card {
	c := models.Card{
		Name:           r.Name,
		ManaCost:       r.ManaCost,
		Colors:         colors(r.Colors),
		ColorIndicator: colors(r.ColorIndicator),
		TypeLine:       r.TypeLine,
		OracleText:     r.OracleText,
		FlavorName:     r.FlavorName,
	}
	switch {
	case r.Loyalty != "":
		c.Stats = models.Loyalty(r.Loyalty)
	case r.Power != "" || r.Toughness != "":
		c.Stats = models.PowerToughness(r.Power, r.Toughness)
	}
	return c
}

func colors(raw []string) []models.Color {
	var out []models.Color
	for _, s := range raw {
		if c := models.Color(s); c.Valid() {
			out = append(out, c)
		}
	}
	return out
}
