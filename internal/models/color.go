package models

import (
	"strings"
)

// Color is one of the five mana colors, identified by its mana letter.
type Color string

const (
	White Color = "W"
	Blue  Color = "U"
	Black Color = "B"
	Red   Color = "R"
	Green Color = "G"
)

// ManaColors lists the colors in canonical (WUBRG) order.
var ManaColors = []Color{White, Blue, Black, Red, Green}

var colorNames = map[Color]string{
	White: "white",
	Blue:  "blue",
	Black: "black",
	Red:   "red",
	Green: "green",
}

// Name returns the lowercase English name of the color.
func (c Color) Name() string {
	return colorNames[c]
}

// Valid reports whether c is one of the five mana colors.
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// SortColors returns the valid colors of cs in canonical order, without duplicates.
func SortColors(cs []Color) []Color {
	seen := make(map[Color]bool, len(cs))
	for _, c := range cs {
		seen[Color(strings.ToUpper(string(c)))] = true
	}
	var out []Color
	for _, c := range ManaColors {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// ExtractColors returns the colors whose mana letters appear in a mana cost,
// in order of first appearance. Split card halves carry no colors of their
// own, so they are derived from the half's cost.
func ExtractColors(manaCost string) []Color {
	var out []Color
	seen := map[Color]bool{}
	for _, r := range manaCost {
		c := Color(string(r))
		if c.Valid() && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// ColorList renders colors as an English list: "white", "white and blue",
// "white, blue and black", or "all colors" for all five.
func ColorList(cs []Color) string {
	if len(cs) == len(ManaColors) {
		return "all colors"
	}
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name())
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
