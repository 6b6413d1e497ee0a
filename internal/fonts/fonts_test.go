package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultHasTextFamilies(t *testing.T) {
	s := Default()
	for _, fam := range []Family{Serif, Sans, Mono} {
		if !s.Has(fam) {
			t.Errorf("default set lacks %s", fam)
		}
	}
	if s.Has(Symbol) {
		t.Error("default set should not have a symbol font")
	}
}

func TestFacesAreCached(t *testing.T) {
	faces := Default().Faces()
	a := faces.Face(Mono, 40)
	b := faces.Face(Mono, 40)
	if a != b {
		t.Error("same family and size returned different faces")
	}
	if faces.Face(Mono, 39) == a {
		t.Error("different sizes returned the same face")
	}
}

func TestSizerGrowsWithSize(t *testing.T) {
	sizer := Default().Faces().Sizer(Serif)
	small := font.MeasureString(sizer(20), "Lightning Bolt")
	large := font.MeasureString(sizer(40), "Lightning Bolt")
	if small >= large {
		t.Errorf("width at 20px (%v) not below width at 40px (%v)", small, large)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symbols.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(Paths{Symbol: path})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Has(Symbol) {
		t.Fatal("symbol font not loaded")
	}

	face := s.Faces().Face(Serif, 40)
	sf, ok := face.(*symbolFace)
	if !ok {
		t.Fatalf("face is %T, want *symbolFace", face)
	}
	if sf.pick('A') != sf.Face {
		t.Error("letters should come from the text font")
	}
	if sf.Kern('A', 0x220) != 0 {
		t.Error("kerning next to a symbol should be zero")
	}
}

func TestSymbolFaceFallsBackOnMissingGlyphs(t *testing.T) {
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	text, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	opts := &truetype.Options{Size: 40, DPI: 72}
	sf := &symbolFace{
		Face:       truetype.NewFace(text, opts),
		symbols:    truetype.NewFace(mono, opts),
		symbolFont: mono,
		inRange:    func(rune) bool { return true },
	}

	tests := []struct {
		name       string
		r          rune
		wantSymbol bool
	}{
		{"mapped rune", 'A', true},
		{"unmapped U+0200", 0x200, false},
		{"unmapped U+023F", 0x23F, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sf.pick(tt.r) == sf.symbols
			if got != tt.wantSymbol {
				t.Errorf("pick(%U) used symbol face = %v, want %v", tt.r, got, tt.wantSymbol)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Paths{Mono: filepath.Join(t.TempDir(), "missing.ttf")}); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, goregular.TTF[:64], 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(Paths{Sans: bad}); err == nil {
		t.Error("expected an error for a truncated font")
	}
}
