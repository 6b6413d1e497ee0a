package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrMissingFace = errors.New("card is missing a face")

// BasicLands lists the names rendered on the textless land frame.
var BasicLands = []string{
	"Plains", "Island", "Swamp", "Mountain", "Forest", "Wastes",
	"Snow-Covered Plains", "Snow-Covered Island", "Snow-Covered Swamp",
	"Snow-Covered Mountain", "Snow-Covered Forest",
}

// StatsKind tells which of the mutually exclusive stat boxes a face has.
type StatsKind int

const (
	NoStats StatsKind = iota
	CreatureStats
	PlaneswalkerStats
)

// Stats holds power/toughness or loyalty. Only the fields matching Kind are set.
type Stats struct {
	Kind      StatsKind
	Power     string
	Toughness string
	Loyalty   string
}

func PowerToughness(power, toughness string) Stats {
	return Stats{Kind: CreatureStats, Power: power, Toughness: toughness}
}

func Loyalty(loyalty string) Stats {
	return Stats{Kind: PlaneswalkerStats, Loyalty: loyalty}
}

// Card is a card, or one face of a two-faced card. It is built once through
// NewCard and never mutated by the renderer.
type Card struct {
	Name           string
	ManaCost       string
	Colors         []Color
	ColorIndicator []Color
	TypeLine       string
	OracleText     string
	Stats          Stats
	Variant        Variant
	FlavorName     string

	// FuseText is the shared ability printed across both halves of a fuse card.
	FuseText string

	// Faces is empty or holds exactly two faces.
	Faces []Card

	// Set on faces only.
	IsFace     bool
	FaceIndex  int
	FaceSymbol string
}

// NewCard normalizes raw card data: it detects emblems, tokens, aftermath and
// fuse cards, and derives face metadata from the parent card.
func NewCard(c Card) (Card, error) {
	c.Colors = SortColors(c.Colors)
	c.ColorIndicator = SortColors(c.ColorIndicator)

	if c.IsEmblem() {
		c.Variant = Emblem
		c.TypeLine = "Emblem"
		c.Name = strings.Replace(c.Name, " Emblem", "", 1)
	}
	if c.IsToken() {
		c.Variant = Token
		if len(c.Colors) > 0 {
			c.ColorIndicator = c.Colors
		}
	}

	if !c.Variant.HasFaces() {
		c.Faces = nil
		return c, nil
	}
	if len(c.Faces) != 2 {
		return Card{}, fmt.Errorf("%s (%s): %w: got %d faces", c.Name, c.Variant, ErrMissingFace, len(c.Faces))
	}

	if c.Variant == Split {
		rules := strings.Split(c.Faces[1].OracleText, "\n")
		if firstWord(rules[0]) == "Aftermath" {
			c.Variant = Aftermath
		}
		if last := rules[len(rules)-1]; firstWord(last) == "Fuse" {
			c.Variant = Fuse
			c.FuseText = last
		}
	}

	faces := make([]Card, 2)
	for i, raw := range c.Faces {
		faces[i] = c.deriveFace(raw, i)
	}
	c.Faces = faces
	return c, nil
}

func (c Card) deriveFace(f Card, idx int) Card {
	f.Variant = c.Variant
	f.IsFace = true
	f.FaceIndex = idx
	f.Faces = nil
	f.Colors = SortColors(f.Colors)
	f.ColorIndicator = SortColors(f.ColorIndicator)

	side := "FRONT"
	if idx == 1 {
		side = "BACK"
	}

	switch c.Variant {
	case Transform, ModalDFC:
		f.FaceSymbol = "{" + strings.ToUpper(c.Variant.String()) + "_" + side + "}"
	case Flip:
		f.FaceSymbol = "{" + strings.ToUpper(c.Variant.String()) + "_" + side + "}"
		f.Colors = c.Colors
		if idx == 1 {
			f.ColorIndicator = c.Colors
		}
	case Split, Fuse, Aftermath:
		f.Colors = SortColors(ExtractColors(f.ManaCost))
	case Adventure:
		if len(f.Colors) == 0 {
			f.Colors = c.Colors
		}
	}

	if c.Variant == Fuse {
		f.OracleText = strings.Replace(f.OracleText, "\n"+c.FuseText, "", 1)
	}
	return f
}

func firstWord(s string) string {
	return strings.SplitN(strings.TrimSpace(s), " ", 2)[0]
}

func (c Card) String() string {
	return fmt.Sprintf("Card (%s)", c.Name)
}

func (c Card) HasPT() bool {
	return c.Stats.Kind == CreatureStats
}

func (c Card) HasLoyalty() bool {
	return c.Stats.Kind == PlaneswalkerStats
}

func (c Card) HasPTL() bool {
	return c.HasPT() || c.HasLoyalty()
}

// PTL returns the text printed in the power/toughness/loyalty box.
func (c Card) PTL() (string, bool) {
	switch c.Stats.Kind {
	case CreatureStats:
		return c.Stats.Power + "/" + c.Stats.Toughness, true
	case PlaneswalkerStats:
		return c.Stats.Loyalty, true
	}
	return "", false
}

func (c Card) HasFlavorName() bool {
	return c.FlavorName != ""
}

func (c Card) IsBasicLand() bool {
	for _, name := range BasicLands {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (c Card) IsToken() bool {
	return strings.Contains(c.TypeLine, "Token")
}

func (c Card) IsTextlessToken() bool {
	return c.IsToken() && c.OracleText == ""
}

func (c Card) IsEmblem() bool {
	return strings.Contains(c.TypeLine, "Emblem")
}

func (c Card) IsTokenOrEmblem() bool {
	return c.IsToken() || c.IsEmblem()
}

// ColorIndicatorReminder returns the reminder sentence proxies print in place
// of a color indicator, including the trailing line break, or "" if the card
// has no color indicator.
func (c Card) ColorIndicatorReminder() string {
	if len(c.ColorIndicator) == 0 {
		return ""
	}
	name := c.Name
	if c.IsToken() && strings.Contains(c.TypeLine, c.Name) {
		name = "This token"
	}
	return fmt.Sprintf("(%s is %s.)\n", name, ColorList(c.ColorIndicator))
}

// RulesText is the full text of the rules box: the color indicator reminder
// followed by the oracle text.
func (c Card) RulesText() string {
	return strings.TrimSpace(c.ColorIndicatorReminder() + c.OracleText)
}

var (
	invalidFileChars = regexp.MustCompile(`[/\\?%*:|"<>\x00-\x1F]`)
	repeatedUnders   = regexp.MustCompile(`_+`)
)

// FileName returns a file system safe name for the card.
func (c Card) FileName() string {
	name := c.Name
	if c.IsFace {
		name = fmt.Sprintf("%s-%d", name, c.FaceIndex)
	}
	sanitized := strings.TrimSpace(invalidFileChars.ReplaceAllString(name, "_"))
	return repeatedUnders.ReplaceAllString(sanitized, "_")
}
