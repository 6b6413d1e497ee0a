// Package layout holds the pixel geometry of every card frame. All layouts
// are derived once from the card size and a few box sizes, and are read-only
// afterwards, so they can be shared between goroutines.
package layout

import (
	"fmt"
	"image"
)

// Card and box sizes in pixels, at 300 dpi.
const (
	DPI = 300

	CardWidth  = 750  // 2.5 in
	CardHeight = 1050 // 3.5 in

	// Margin is the distance between the frame and the elements inside it.
	Margin = 15
	// LineWidth is the stroke width of frame lines.
	LineWidth = 5

	TitleSize    = 90
	TypeLineSize = 50
	OtherSize    = 40
	FuseSize     = 50

	SetIconSize      = 40
	IllustrationSize = 600

	PTLBoxWidth   = 175
	PTLBoxHeight  = 70
	PTLBoxMarginX = 25
	PTLBoxMarginY = 5
)

// Rules box heights per template.
const (
	StandardRulesSize  = 500
	SplitRulesSize     = 360
	AftermathRulesSize = 175
	FlipRulesSize      = 200
	LandRulesSize      = 0
	TokenRulesSize     = 100
	EmblemRulesSize    = 250
)

// Region names a horizontal band of the frame.
type Region int

const (
	Title Region = iota
	Illustration
	TypeLine
	RulesBox
	Other
	Fuse
	numRegions
)

var regionNames = [...]string{"TITLE", "ILLUSTRATION", "TYPE_LINE", "RULES_BOX", "OTHER", "FUSE"}

func (r Region) String() string {
	if r < 0 || r >= numRegions {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionNames[r]
}

// Span is the upper border and height of a region.
type Span struct {
	Border int
	Size   int
}

// End returns the first row below the region.
func (s Span) End() int {
	return s.Border + s.Size
}

// Middle returns the vertical centerline of the region.
func (s Span) Middle() int {
	return s.Border + s.Size/2
}

// Layout is the resolved geometry of one frame template. Coordinates are in
// the template's own orientation: split halves live on a card rotated by 90°.
type Layout struct {
	Name    string
	Regions [numRegions]Span
	Left    int
	Right   int
	Bottom  int

	// HasFuse is set on split templates that may carry a fuse band.
	HasFuse bool
	// PTL is the power/toughness/loyalty box.
	PTL image.Rectangle
}

func (l *Layout) Span(r Region) Span {
	return l.Regions[r]
}

func (l *Layout) Border(r Region) int {
	return l.Regions[r].Border
}

func (l *Layout) Size(r Region) int {
	return l.Regions[r].Size
}

// Width is the horizontal extent of the template.
func (l *Layout) Width() int {
	return l.Right - l.Left
}

// Height is the vertical extent of the template.
func (l *Layout) Height() int {
	return l.Bottom - l.Border(Title)
}

// Bounds returns the template rectangle.
func (l *Layout) Bounds() image.Rectangle {
	return image.Rect(l.Left, l.Border(Title), l.Right, l.Bottom)
}

// FuseRulesSize is the rules box height left once the fuse band is carved out.
func (l *Layout) FuseRulesSize() int {
	return l.Size(RulesBox) - l.Size(Fuse)
}

// PTLCenter is the anchor for power/toughness/loyalty text.
func (l *Layout) PTLCenter() image.Point {
	return image.Pt(l.PTL.Min.X+l.PTL.Dx()/2, l.PTL.Min.Y+l.PTL.Dy()/2)
}

// SetIconPosition is the top left corner of the set icon square, at the right
// end of the type line.
func (l *Layout) SetIconPosition() image.Point {
	return image.Pt(
		l.Right-Margin-SetIconSize,
		l.Border(TypeLine)+(l.Size(TypeLine)-SetIconSize)/2,
	)
}

// IllustrationPosition is the top left corner of the illustration symbol
// printed on basic lands and emblems.
func (l *Layout) IllustrationPosition() image.Point {
	return image.Pt(
		l.Left+(l.Width()-IllustrationSize)/2,
		l.Border(Illustration)+(l.Size(Illustration)-IllustrationSize)/2,
	)
}

type frame int

const (
	frameStandard frame = iota
	frameAdventure
	frameAftermath
	frameFlip
	frameSplit
)

type params struct {
	frame     frame
	bottom    int
	left      int
	right     int
	rulesSize int
	// std is the template an adventure nests in.
	std       *Layout
}

// calc derives a template. Most templates stack TITLE, ILLUSTRATION,
// TYPE_LINE, RULES_BOX and OTHER from the top and the bottom; flip templates
// put the illustration last, adventure templates start where the standard
// rules box starts and have no footer.
func calc(name string, p params) *Layout {
	l := &Layout{Name: name, Left: p.left, Right: p.right, Bottom: p.bottom}
	l.Regions[Title] = Span{Border: 0, Size: TitleSize}
	l.Regions[TypeLine].Size = TypeLineSize
	l.Regions[RulesBox].Size = p.rulesSize
	l.Regions[Other].Size = OtherSize

	switch p.frame {
	case frameAdventure:
		l.Regions[Title].Border = p.std.Border(RulesBox)
		l.Regions[RulesBox].Size = p.std.Size(RulesBox) - TitleSize - TypeLineSize
		l.Bottom -= OtherSize
		l.Regions[Other].Size = 0
	case frameAftermath:
		l.Regions[Other].Size = 0
	}

	ptlBottom := l.Bottom - PTLBoxMarginY
	if p.frame == frameFlip {
		l.Regions[TypeLine].Border = l.Regions[Title].End()
		l.Regions[RulesBox].Border = l.Regions[TypeLine].End()
		l.Regions[Other].Border = l.Regions[RulesBox].End()
		l.Regions[Illustration].Border = l.Regions[Other].End()
		l.Regions[Illustration].Size = l.Bottom - 2*l.Regions[Illustration].Border
		ptlBottom = l.Regions[Illustration].Border - PTLBoxMarginY
	} else {
		l.Regions[Illustration].Border = l.Regions[Title].End()
		l.Regions[Other].Border = l.Bottom - l.Regions[Other].Size
		l.Regions[RulesBox].Border = l.Regions[Other].Border - l.Regions[RulesBox].Size
		l.Regions[TypeLine].Border = l.Regions[RulesBox].Border - TypeLineSize
		l.Regions[Illustration].Size = l.Regions[TypeLine].Border - l.Regions[Illustration].Border
	}

	ptlRight := l.Right - PTLBoxMarginX
	l.PTL = image.Rect(ptlRight-PTLBoxWidth, ptlBottom-PTLBoxHeight, ptlRight, ptlBottom)

	if p.frame == frameSplit {
		l.HasFuse = true
		l.Regions[Fuse] = Span{Border: l.Regions[Other].Border - FuseSize, Size: FuseSize}
	}
	return l
}

var (
	// Standard is used by normal cards, double-faced faces and the main face
	// of adventures.
	Standard = calc("standard", params{frame: frameStandard, bottom: CardHeight, right: CardWidth, rulesSize: StandardRulesSize})

	// SplitLeft and SplitRight are the halves of split and fuse cards, on a
	// card rotated by 90°. SplitRight is also the lower half of aftermath.
	SplitLeft  = calc("split-left", params{frame: frameSplit, bottom: CardWidth, left: 0, right: CardHeight / 2, rulesSize: SplitRulesSize})
	SplitRight = calc("split-right", params{frame: frameSplit, bottom: CardWidth, left: CardHeight / 2, right: CardHeight, rulesSize: SplitRulesSize})

	// Adventure is the adventure spell, nested in the left half of the
	// standard rules box.
	Adventure = calc("adventure", params{frame: frameAdventure, bottom: CardHeight, right: CardWidth / 2, std: Standard})

	// Aftermath is the upper half of aftermath cards.
	Aftermath = calc("aftermath", params{frame: frameAftermath, bottom: CardHeight / 2, right: CardWidth, rulesSize: AftermathRulesSize})

	// Flip is one half of a flip card; the other half reuses it on a card
	// rotated by 180°.
	Flip = calc("flip", params{frame: frameFlip, bottom: CardHeight, right: CardWidth, rulesSize: FlipRulesSize})

	Land   = calc("land", params{frame: frameStandard, bottom: CardHeight, right: CardWidth, rulesSize: LandRulesSize})
	Token  = calc("token", params{frame: frameStandard, bottom: CardHeight, right: CardWidth, rulesSize: TokenRulesSize})
	Emblem = calc("emblem", params{frame: frameStandard, bottom: CardHeight, right: CardWidth, rulesSize: EmblemRulesSize})
)

// All returns every template, for checks run at startup.
func All() []*Layout {
	return []*Layout{Standard, SplitLeft, SplitRight, Adventure, Aftermath, Flip, Land, Token, Emblem}
}
