package scryfall

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"bwproxy/internal/models"
)

const boltJSON = `{
  "object": "card",
  "name": "Lightning Bolt",
  "layout": "normal",
  "mana_cost": "{R}",
  "colors": ["R"],
  "type_line": "Instant",
  "oracle_text": "Lightning Bolt deals 3 damage to any target.",
  "prices": {"usd": "1.00"}
}`

const notFoundJSON = `{"object": "error", "code": "not_found", "status": 404, "details": "No cards found matching “Bolt of Nothing”"}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL)
	c.http.RetryWaitMin = time.Millisecond
	c.http.RetryWaitMax = time.Millisecond
	return c
}

func TestNamed(t *testing.T) {
	var gotQuery, gotAgent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("fuzzy")
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Path != "/cards/named" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(boltJSON))
	})

	card, err := c.Named(context.Background(), "lightning bolt")
	if err != nil {
		t.Fatal(err)
	}
	want := RawCard{
		Name:       "Lightning Bolt",
		Layout:     "normal",
		ManaCost:   "{R}",
		Colors:     []string{"R"},
		TypeLine:   "Instant",
		OracleText: "Lightning Bolt deals 3 damage to any target.",
	}
	if diff := cmp.Diff(want, card); diff != "" {
		t.Errorf("Named (-want +got):\n%s", diff)
	}
	if gotQuery != "lightning bolt" {
		t.Errorf("fuzzy = %q", gotQuery)
	}
	if gotAgent == "" {
		t.Error("no User-Agent sent")
	}
}

func TestNamedNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundJSON))
	})
	_, err := c.Named(context.Background(), "Bolt of Nothing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestNamedRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(boltJSON))
	})
	card, err := c.Named(context.Background(), "Lightning Bolt")
	if err != nil {
		t.Fatal(err)
	}
	if card.Name != "Lightning Bolt" {
		t.Errorf("name = %q", card.Name)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server called %d times, want 3", got)
	}
}

func TestToken(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"object": "list", "data": [
			{"name": "Blood", "layout": "token", "type_line": "Token Artifact — Blood", "oracle_text": "{1}, {T}, Discard a card, Sacrifice this artifact: Draw a card."}
		]}`))
	})
	card, err := c.Token(context.Background(), "Blood Token")
	if err != nil {
		t.Fatal(err)
	}
	if card.Name != "Blood" || card.Layout != "token" {
		t.Errorf("Token = %+v", card)
	}
	if want := `!"Blood" t:token`; gotQuery != want {
		t.Errorf("q = %q, want %q", gotQuery, want)
	}
}

func TestTokenQuery(t *testing.T) {
	tests := []struct {
		name        string
		exact, kind string
		isToken     bool
	}{
		{"Blood Token", "Blood", "token", true},
		{"Chandra, Torch of Defiance Emblem", "Chandra, Torch of Defiance Emblem", "emblem", true},
		{"Llanowar Elves", "Llanowar Elves", "token", false},
	}
	for _, tt := range tests {
		exact, kind := TokenQuery(tt.name)
		if exact != tt.exact || kind != tt.kind {
			t.Errorf("TokenQuery(%q) = %q, %q, want %q, %q", tt.name, exact, kind, tt.exact, tt.kind)
		}
		if got := IsTokenName(tt.name); got != tt.isToken {
			t.Errorf("IsTokenName(%q) = %v, want %v", tt.name, got, tt.isToken)
		}
	}
}

func TestRawCardToCard(t *testing.T) {
	tests := []struct {
		name string
		raw  RawCard
		want func(t *testing.T, c models.Card)
	}{
		{
			name: "creature",
			raw:  RawCard{Name: "Grizzly Bears", Layout: "normal", ManaCost: "{1}{G}", Colors: []string{"G"}, TypeLine: "Creature — Bear", Power: "2", Toughness: "2"},
			want: func(t *testing.T, c models.Card) {
				if c.Variant != models.Standard {
					t.Errorf("variant = %v", c.Variant)
				}
				if diff := cmp.Diff(models.PowerToughness("2", "2"), c.Stats); diff != "" {
					t.Errorf("stats (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "planeswalker",
			raw:  RawCard{Name: "Jace Beleren", Layout: "normal", TypeLine: "Legendary Planeswalker — Jace", Loyalty: "3"},
			want: func(t *testing.T, c models.Card) {
				if text, _ := c.PTL(); text != "3" {
					t.Errorf("loyalty = %q", text)
				}
			},
		},
		{
			name: "fuse",
			raw: RawCard{Name: "Wear // Tear", Layout: "split", CardFaces: []RawCard{
				{Name: "Wear", ManaCost: "{1}{R}", TypeLine: "Instant", OracleText: "Destroy target artifact.\nFuse (You may cast one or both halves of this card from your hand.)"},
				{Name: "Tear", ManaCost: "{W}", TypeLine: "Instant", OracleText: "Destroy target enchantment.\nFuse (You may cast one or both halves of this card from your hand.)"},
			}},
			want: func(t *testing.T, c models.Card) {
				if c.Variant != models.Fuse {
					t.Errorf("variant = %v, want fuse", c.Variant)
				}
				if diff := cmp.Diff([]models.Color{models.Red}, c.Faces[0].Colors); diff != "" {
					t.Errorf("first half colors (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "unknown colors dropped",
			raw:  RawCard{Name: "Odd", Layout: "normal", Colors: []string{"X", "U"}},
			want: func(t *testing.T, c models.Card) {
				if diff := cmp.Diff([]models.Color{models.Blue}, c.Colors); diff != "" {
					t.Errorf("colors (-want +got):\n%s", diff)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.raw.Card()
			if err != nil {
				t.Fatal(err)
			}
			tt.want(t, c)
		})
	}

	if _, err := (RawCard{Name: "Plane", Layout: "planar"}).Card(); !errors.Is(err, models.ErrUnknownVariant) {
		t.Errorf("planar card error = %v, want ErrUnknownVariant", err)
	}
}

func TestCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "cards.json")
	c, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 {
		t.Fatalf("new cache has %d cards", c.Len())
	}
	bolt := RawCard{Name: "Lightning Bolt", Layout: "normal", ManaCost: "{R}"}
	c.Put("lightning bolt", bolt)
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenCache(path)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := reopened.Get("lightning bolt")
	if !ok {
		t.Fatal("cached card missing after reopening")
	}
	if diff := cmp.Diff(bolt, got); diff != "" {
		t.Errorf("cached card (-want +got):\n%s", diff)
	}
	if _, ok := reopened.Get("Lightning Bolt"); ok {
		t.Error("lookup is not by the exact requested name")
	}
}
