package decklist

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		want   Entry
		wantOK bool
	}{
		{"Lightning Bolt", Entry{Count: 1, Name: "Lightning Bolt"}, true},
		{"4 Lightning Bolt", Entry{Count: 4, Name: "Lightning Bolt"}, true},
		{"4x Lightning Bolt", Entry{Count: 4, Name: "Lightning Bolt"}, true},
		{"  2x   Fire // Ice  ", Entry{Count: 2, Name: "Fire // Ice"}, true},
		{"1 Forest Dryad [Tree Friend]", Entry{Count: 1, Name: "Forest Dryad", Flavor: "Tree Friend"}, true},
		{"Godzilla, King of the Monsters [Zilortha, Strength Incarnate] # companion", Entry{Count: 1, Name: "Godzilla, King of the Monsters", Flavor: "Zilortha, Strength Incarnate"}, true},
		{"3 Opt # cantrip", Entry{Count: 3, Name: "Opt"}, true},
		{"# Sideboard", Entry{}, false},
		{"   ", Entry{}, false},
		{"", Entry{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLine(%q) (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	const list = `# Burn
4x Lightning Bolt

2 Fire // Ice
Blood Token [Bloody]
`
	got, err := Parse(strings.NewReader(list))
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Count: 4, Name: "Lightning Bolt", Line: 2},
		{Count: 2, Name: "Fire // Ice", Line: 4},
		{Count: 1, Name: "Blood Token", Flavor: "Bloody", Line: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse (-want +got):\n%s", diff)
	}
}

func TestDeckName(t *testing.T) {
	tests := map[string]string{
		"burn.txt":           "burn",
		"decks/burn.v2.txt":  "burn",
		"../decks/mono-red":  "mono-red",
		`C:\decks\elves.dek`: "elves",
	}
	for path, want := range tests {
		if got := DeckName(path); got != want {
			t.Errorf("DeckName(%q) = %q, want %q", path, got, want)
		}
	}
}
