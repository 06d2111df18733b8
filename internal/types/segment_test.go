package types

import (
	"errors"
	"testing"
)

func mustSegment(t *testing.T, text string, fg, bg Color, styles ...string) Segment {
	t.Helper()
	seg, err := NewSegment(text, fg, bg, styles...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return seg
}

func TestNewSegment(t *testing.T) {
	seg := mustSegment(t, "héllo", Named("r"), Named("ly"), "bold", "udl")

	if seg.Text != "héllo" || seg.Fg != "31" || seg.Bg != "103" {
		t.Errorf("Unexpected segment %v", seg)
	}
	if !seg.Styles.Equal(NewStyleSet("1", "4")) {
		t.Errorf("Expected styles {1,4}, got %v", seg.Styles.Sorted())
	}
	if seg.Len() != 5 {
		t.Errorf("Expected rune length 5, got %d", seg.Len())
	}

	if _, err := NewSegment("x", Named("nope"), Color{}); !errors.Is(err, ErrColor) {
		t.Errorf("Expected ErrColor, got %v", err)
	}
	if _, err := NewSegment("x", Color{}, Color{}, "shiny"); !errors.Is(err, ErrStyle) {
		t.Errorf("Expected ErrStyle, got %v", err)
	}
}

func TestRawSegment(t *testing.T) {
	styles := NewStyleSet("1")
	styles[""] = struct{}{}
	seg := RawSegment("x", "32", "41", styles)

	if seg.Styles.Has("") {
		t.Error("Expected empty style member to be dropped")
	}
	styles["9"] = struct{}{}
	if seg.Styles.Has("9") {
		t.Error("Expected the style set to be cloned")
	}
}

func TestSegmentEquality(t *testing.T) {
	a := mustSegment(t, "abc", Named("r"), Color{}, "bold")
	b := mustSegment(t, "xyz", Named("r"), Color{}, "bold")
	c := mustSegment(t, "abc", Named("g"), Color{}, "bold")

	tests := []struct {
		name     string
		left     Segment
		right    Segment
		attrs    Attr
		expected bool
	}{
		{"PatternOnly", a, b, AttrPattern, true},
		{"All", a, b, AttrAll, false},
		{"TextOnly", a, c, AttrText, true},
		{"FgDiffers", a, c, AttrFg, false},
		{"StylesOnly", a, c, AttrStyles, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.left.EqualOn(tt.right, tt.attrs); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	if !a.PatternEqual(b) || a.PatternEqual(c) {
		t.Error("PatternEqual must ignore text and compare the pattern")
	}
}

func TestSegmentSplit(t *testing.T) {
	seg := mustSegment(t, "abcdef", Named("b"), Color{})

	tests := []struct {
		name    string
		i, j    int
		left    string
		mid     string
		right   string
	}{
		{"Middle", 2, 4, "ab", "cd", "ef"},
		{"Prefix", 0, 3, "", "abc", "def"},
		{"Suffix", 3, 6, "abc", "def", ""},
		{"Clamped", -2, 99, "", "abcdef", ""},
		{"Crossed", 4, 2, "abcd", "", "ef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, mid, right := seg.Split(tt.i, tt.j)
			if left.Text != tt.left || mid.Text != tt.mid || right.Text != tt.right {
				t.Errorf("Expected (%q,%q,%q), got (%q,%q,%q)",
					tt.left, tt.mid, tt.right, left.Text, mid.Text, right.Text)
			}
			if !left.PatternEqual(seg) || !mid.PatternEqual(seg) || !right.PatternEqual(seg) {
				t.Error("Split pieces must keep the source pattern")
			}
		})
	}
}

func TestSegmentOffsets(t *testing.T) {
	seg := mustSegment(t, "déjà", Color{}, Color{})
	seg.SetStart(3)
	if seg.Start() != 3 || seg.End() != 7 {
		t.Errorf("Expected [3,7), got [%d,%d)", seg.Start(), seg.End())
	}
	seg.SetStart(-1)
	if seg.Start() != 3 {
		t.Error("Negative offsets must be ignored")
	}
}

func TestSegmentPredicates(t *testing.T) {
	plain := mustSegment(t, "x", Color{}, Color{})
	if !plain.IsPlain() || plain.IsFgColored() || plain.IsBgColored() || plain.IsStyled() {
		t.Error("Expected a pattern-free segment")
	}
	styled := mustSegment(t, "x", Color{}, Color{}, "dim")
	if styled.IsPlain() || !styled.IsStyled() {
		t.Error("Expected a styled segment")
	}
}
