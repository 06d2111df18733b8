package types

import (
	"fmt"
	"unicode/utf8"
)

/////////////////////////////////////////////////////////////////////////////
// SEGMENT
/////////////////////////////////////////////////////////////////////////////

// Attr selects segment attributes for partial comparison.
type Attr uint8

const (
	AttrText Attr = 1 << iota
	AttrFg
	AttrBg
	AttrStyles

	// AttrPattern compares everything except the text.
	AttrPattern = AttrFg | AttrBg | AttrStyles
	AttrAll     = AttrText | AttrPattern
)

// Segment is one maximal run of text sharing one (fg, bg, styles) pattern.
// Fg and Bg hold canonical SGR code strings; "" means "no color set", which
// is distinct from a reset: a later segment without fg paints no foreground,
// it does not inherit one.
type Segment struct {
	Text   string
	Fg     string
	Bg     string
	Styles StyleSet

	start int // rune offset within the owning string, recomputed on merge
}

// NewSegment builds a Segment from symbolic color and style specifications.
func NewSegment(text string, fg, bg Color, styles ...string) (Segment, error) {
	fgCode, err := fg.FgCode()
	if err != nil {
		return Segment{}, fmt.Errorf("segment fg: %w", err)
	}
	bgCode, err := bg.BgCode()
	if err != nil {
		return Segment{}, fmt.Errorf("segment bg: %w", err)
	}
	styleSet, err := StyleCodes(styles...)
	if err != nil {
		return Segment{}, fmt.Errorf("segment styles: %w", err)
	}
	return Segment{Text: text, Fg: fgCode, Bg: bgCode, Styles: styleSet}, nil
}

// RawSegment builds a Segment from canonical code strings. The style set is
// cloned and "" members are dropped.
func RawSegment(text, fgCode, bgCode string, styles StyleSet) Segment {
	set := make(StyleSet, len(styles))
	for code := range styles {
		if code != "" {
			set[code] = struct{}{}
		}
	}
	return Segment{Text: text, Fg: fgCode, Bg: bgCode, Styles: set}
}

// EmptySegment is the canonical placeholder for empty content.
func EmptySegment() Segment {
	return Segment{Styles: StyleSet{}}
}

// Len returns the text length in runes.
func (s Segment) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Start returns the segment's rune offset within its owning string.
func (s Segment) Start() int {
	return s.start
}

// End returns the rune offset one past the segment's last rune.
func (s Segment) End() int {
	return s.start + s.Len()
}

// SetStart records the segment's offset. Negative values are ignored.
func (s *Segment) SetStart(idx int) {
	if idx >= 0 {
		s.start = idx
	}
}

// EqualOn compares only the attributes selected by attrs.
func (s Segment) EqualOn(other Segment, attrs Attr) bool {
	if attrs&AttrText != 0 && s.Text != other.Text {
		return false
	}
	if attrs&AttrFg != 0 && s.Fg != other.Fg {
		return false
	}
	if attrs&AttrBg != 0 && s.Bg != other.Bg {
		return false
	}
	if attrs&AttrStyles != 0 && !s.Styles.Equal(other.Styles) {
		return false
	}
	return true
}

// PatternEqual reports whether both segments carry the same pattern,
// regardless of text.
func (s Segment) PatternEqual(other Segment) bool {
	return s.EqualOn(other, AttrPattern)
}

// WithText returns a new Segment carrying the same pattern over new text.
func (s Segment) WithText(text string) Segment {
	return Segment{Text: text, Fg: s.Fg, Bg: s.Bg, Styles: s.Styles}
}

// Split cuts the segment at rune offsets i and j into (left, mid, right)
// sub-segments. Offsets are clamped to [0, Len]. Empty pieces are returned as
// empty segments carrying the same pattern; the merge constructor upstream
// drops them.
func (s Segment) Split(i, j int) (left, mid, right Segment) {
	n := s.Len()
	i = clamp(i, 0, n)
	j = clamp(j, i, n)
	runes := []rune(s.Text)
	left = s.WithText(string(runes[:i]))
	mid = s.WithText(string(runes[i:j]))
	right = s.WithText(string(runes[j:]))
	return left, mid, right
}

func (s Segment) IsFgColored() bool { return s.Fg != "" }
func (s Segment) IsBgColored() bool { return s.Bg != "" }
func (s Segment) IsStyled() bool    { return len(s.Styles) > 0 }

// IsPlain reports whether the segment carries no pattern at all.
func (s Segment) IsPlain() bool {
	return !s.IsFgColored() && !s.IsBgColored() && !s.IsStyled()
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%q fg=%q bg=%q styles=%q) @ [%d,%d)",
		s.Text, s.Fg, s.Bg, s.Styles.String(), s.Start(), s.End())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
