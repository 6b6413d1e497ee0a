package layout

import (
	"fmt"
)

// Order returns the regions of the template from top to bottom.
func (l *Layout) Order() []Region {
	if l.Border(Illustration) > l.Border(Other) {
		return []Region{Title, TypeLine, RulesBox, Other, Illustration}
	}
	return []Region{Title, Illustration, TypeLine, RulesBox, Other}
}

// Validate checks that consecutive regions touch without gaps or overlaps,
// that sizes are not negative, and that the last region ends at the bottom
// of the template (or, for flip templates, where the mirrored half begins).
func (l *Layout) Validate() error {
	order := l.Order()
	for _, r := range order {
		if l.Size(r) < 0 {
			return fmt.Errorf("layout %s: region %s has negative size %d", l.Name, r, l.Size(r))
		}
	}
	for i := 1; i < len(order); i++ {
		prev, cur := l.Span(order[i-1]), l.Span(order[i])
		if prev.End() != cur.Border {
			return fmt.Errorf("layout %s: %s ends at %d but %s starts at %d",
				l.Name, order[i-1], prev.End(), order[i], cur.Border)
		}
	}
	last := l.Span(order[len(order)-1])
	end := l.Bottom
	if order[len(order)-1] == Illustration {
		end = l.Bottom - l.Border(Illustration)
	}
	if last.End() != end {
		return fmt.Errorf("layout %s: last region ends at %d, want %d", l.Name, last.End(), end)
	}
	if l.HasFuse {
		f := l.Span(Fuse)
		if f.Border < l.Border(RulesBox) || f.End() != l.Span(RulesBox).End() {
			return fmt.Errorf("layout %s: fuse band %v outside rules box %v", l.Name, f, l.Span(RulesBox))
		}
	}
	return nil
}

// ValidateAll validates every template.
func ValidateAll() error {
	for _, l := range All() {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
