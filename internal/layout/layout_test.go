package layout

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateAll(t *testing.T) {
	for _, l := range All() {
		t.Run(l.Name, func(t *testing.T) {
			if err := l.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestRegionsIncreaseInOrder(t *testing.T) {
	for _, l := range All() {
		t.Run(l.Name, func(t *testing.T) {
			order := l.Order()
			for i := 1; i < len(order); i++ {
				if l.Border(order[i]) < l.Border(order[i-1]) {
					t.Errorf("%s border %d above %s border %d",
						order[i], l.Border(order[i]), order[i-1], l.Border(order[i-1]))
				}
			}
		})
	}
}

func TestStandardGeometry(t *testing.T) {
	want := [numRegions]Span{
		Title:        {0, 90},
		Illustration: {90, 370},
		TypeLine:     {460, 50},
		RulesBox:     {510, 500},
		Other:        {1010, 40},
	}
	if diff := cmp.Diff(want, Standard.Regions); diff != "" {
		t.Errorf("standard regions mismatch (-want +got):\n%s", diff)
	}
	if got, want := Standard.PTL, image.Rect(550, 975, 725, 1045); got != want {
		t.Errorf("standard PTL box = %v, want %v", got, want)
	}
	if got, want := Standard.SetIconPosition(), image.Pt(695, 465); got != want {
		t.Errorf("set icon position = %v, want %v", got, want)
	}
}

func TestAdventureNestsInStandardRulesBox(t *testing.T) {
	if got, want := Adventure.Border(Title), Standard.Border(RulesBox); got != want {
		t.Errorf("adventure title border = %d, want %d", got, want)
	}
	if Adventure.Size(Other) != 0 {
		t.Errorf("adventure footer size = %d, want 0", Adventure.Size(Other))
	}
	if got, want := Adventure.Bottom, Standard.Border(Other); got != want {
		t.Errorf("adventure bottom = %d, want %d", got, want)
	}
	if got, want := Adventure.Right, CardWidth/2; got != want {
		t.Errorf("adventure right = %d, want %d", got, want)
	}
}

func TestAdventureFollowsParentRulesBox(t *testing.T) {
	l := calc("land-adventure", params{frame: frameAdventure, bottom: CardHeight, right: CardWidth / 2, std: Land})
	if got, want := l.Border(Title), Land.Border(RulesBox); got != want {
		t.Errorf("title border = %d, want %d", got, want)
	}
	if got, want := l.Size(RulesBox), Land.Size(RulesBox)-TitleSize-TypeLineSize; got != want {
		t.Errorf("rules size = %d, want %d", got, want)
	}
}

func TestSplitHalvesMirror(t *testing.T) {
	for r := Title; r < numRegions; r++ {
		if SplitLeft.Span(r) != SplitRight.Span(r) {
			t.Errorf("%s differs between halves: %v vs %v", r, SplitLeft.Span(r), SplitRight.Span(r))
		}
	}
	if SplitLeft.Right != SplitRight.Left {
		t.Errorf("halves do not meet: left ends at %d, right starts at %d", SplitLeft.Right, SplitRight.Left)
	}
	if SplitRight.Right != CardHeight || SplitLeft.Bottom != CardWidth {
		t.Errorf("split halves should cover the rotated card")
	}
}

func TestFuseBand(t *testing.T) {
	l := SplitLeft
	if got, want := l.Span(Fuse), (Span{660, FuseSize}); got != want {
		t.Errorf("fuse band = %v, want %v", got, want)
	}
	if got, want := l.FuseRulesSize(), SplitRulesSize-FuseSize; got != want {
		t.Errorf("fuse rules size = %d, want %d", got, want)
	}
	if got := l.Span(Fuse).End(); got != l.Border(Other) {
		t.Errorf("fuse band ends at %d, want footer border %d", got, l.Border(Other))
	}
}

func TestFlipPutsIllustrationLast(t *testing.T) {
	if got, want := Flip.Order(), []Region{Title, TypeLine, RulesBox, Other, Illustration}; !cmp.Equal(got, want) {
		t.Errorf("flip order = %v, want %v", got, want)
	}
	if got, want := Flip.PTL.Max.Y, Flip.Border(Illustration)-PTLBoxMarginY; got != want {
		t.Errorf("flip PTL bottom = %d, want %d", got, want)
	}
	// The illustration is shared with the half drawn upside down.
	if got, want := Flip.Span(Illustration).End(), CardHeight-Flip.Border(Illustration); got != want {
		t.Errorf("flip illustration ends at %d, want %d", got, want)
	}
}

func TestAftermathHasNoFooter(t *testing.T) {
	if Aftermath.Size(Other) != 0 {
		t.Errorf("aftermath footer size = %d, want 0", Aftermath.Size(Other))
	}
	if got, want := Aftermath.Span(RulesBox).End(), CardHeight/2; got != want {
		t.Errorf("aftermath rules box ends at %d, want %d", got, want)
	}
}

func TestRulesBoxSizes(t *testing.T) {
	tests := []struct {
		l    *Layout
		want int
	}{
		{Standard, StandardRulesSize},
		{Land, 0},
		{Token, TokenRulesSize},
		{Emblem, EmblemRulesSize},
		{Flip, FlipRulesSize},
		{Aftermath, AftermathRulesSize},
		{SplitLeft, SplitRulesSize},
		{Adventure, StandardRulesSize - TitleSize - TypeLineSize},
	}
	for _, tt := range tests {
		if got := tt.l.Size(RulesBox); got != tt.want {
			t.Errorf("%s rules box = %d, want %d", tt.l.Name, got, tt.want)
		}
	}
}

func TestPTLBoxIsSameSizeEverywhere(t *testing.T) {
	for _, l := range All() {
		if l.PTL.Dx() != PTLBoxWidth || l.PTL.Dy() != PTLBoxHeight {
			t.Errorf("%s PTL box is %dx%d", l.Name, l.PTL.Dx(), l.PTL.Dy())
		}
		if l.PTL.Max.X != l.Right-PTLBoxMarginX {
			t.Errorf("%s PTL box right edge = %d, want %d", l.Name, l.PTL.Max.X, l.Right-PTLBoxMarginX)
		}
	}
}
