package pages

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/go-cmp/cmp"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    image.Point
		wantErr error
	}{
		{"a4paper", image.Pt(2475, 3525), nil},
		{"letter", image.Pt(2550, 3300), nil},
		{"legal", image.Point{}, ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseFormat(%q) error = %v, want %v", tt.name, err, tt.wantErr)
			}
			if got := image.Pt(f.Width, f.Height); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []image.Point
	}{
		{
			name: "a4",
			opts: Options{Format: A4},
			want: []image.Point{{92, 167}, {862, 167}, {1632, 167}, {92, 1237}, {862, 2307}, {1632, 2307}},
		},
		{
			name: "a4 small",
			opts: Options{Format: A4, Small: true},
			want: []image.Point{{83, 158}, {665, 158}, {1247, 158}, {83, 965}, {1247, 2579}, {1829, 2579}},
		},
		{
			name: "letter without space",
			opts: Options{Format: Letter, NoCardSpace: true},
			want: []image.Point{{149, 74}, {900, 74}, {1651, 74}, {149, 1125}, {900, 2176}, {1651, 2176}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := []int{0, 1, 2}
			cols, rows := tt.opts.Grid()
			idx = append(idx, cols, cols*rows-2, cols*rows-1)
			var got []image.Point
			for _, n := range idx {
				got = append(got, tt.opts.Position(n))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("positions (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGridIsCentered(t *testing.T) {
	for _, f := range Formats() {
		for _, small := range []bool{false, true} {
			opts := Options{Format: f, Small: small}
			cols, rows := opts.Grid()
			first := opts.Position(0)
			last := opts.Position(cols*rows - 1).Add(opts.CardSize())
			right, bottom := f.Width-last.X, f.Height-last.Y
			if d := right - first.X; d < 0 || d > 1 {
				t.Errorf("%s small=%v: left margin %d, right margin %d", f.Name, small, first.X, right)
			}
			if d := bottom - first.Y; d < 0 || d > 1 {
				t.Errorf("%s small=%v: top margin %d, bottom margin %d", f.Name, small, first.Y, bottom)
			}
		}
	}
}

func card(c color.NRGBA) image.Image {
	return imaging.New(750, 1050, c)
}

func TestCompose(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	cards := make([]image.Image, 10)
	for i := range cards {
		cards[i] = card(red)
	}
	cards[9] = card(blue)

	opts := Options{Format: A4}
	pages := Compose(cards, opts)
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if got := pages[0].Bounds().Size(); got != image.Pt(A4.Width, A4.Height) {
		t.Errorf("page size %v", got)
	}

	mid := opts.Position(4).Add(image.Pt(375, 525))
	if got := pages[0].NRGBAAt(mid.X, mid.Y); got != red {
		t.Errorf("center of card 5 = %v, want red", got)
	}
	if got := pages[0].NRGBAAt(10, 10); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("page margin = %v, want white", got)
	}
	first := opts.Position(0).Add(image.Pt(10, 10))
	if got := pages[1].NRGBAAt(first.X, first.Y); got != blue {
		t.Errorf("first card of page 2 = %v, want blue", got)
	}
	second := opts.Position(1).Add(image.Pt(10, 10))
	if got := pages[1].NRGBAAt(second.X, second.Y); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("empty slot on page 2 = %v, want white", got)
	}
}

func TestComposeSmall(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	opts := Options{Format: Letter, Small: true}
	pages := Compose([]image.Image{card(red)}, opts)
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	pos, size := opts.Position(0), opts.CardSize()
	inside := pos.Add(size.Div(2))
	if got := pages[0].NRGBAAt(inside.X, inside.Y); got.R < 250 || got.G > 5 || got.B > 5 {
		t.Errorf("card center = %v, want red", got)
	}
	outside := pos.Add(size).Add(image.Pt(5, 5))
	if got := pages[0].NRGBAAt(outside.X, outside.Y); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("pixel past the scaled card = %v, want white", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	pages := Compose([]image.Image{card(color.NRGBA{0, 0, 0, 255})}, Options{Format: A4, Small: true})
	paths, err := Save(pages, dir, "mydeck")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "mydeck", "01.png")}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
	img, err := imaging.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(A4.Width, A4.Height) {
		t.Errorf("saved page size %v", got)
	}
}
