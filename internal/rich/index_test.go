package rich

import (
	"errors"
	"testing"

	"richstr/internal/types"
)

func TestSlice(t *testing.T) {
	r := Concat(Text("ab"), colored(t, "cd", "r"), Text("ef"))

	tests := []struct {
		name     string
		start    int
		stop     int
		plain    string
		segments int
	}{
		{"Whole", 0, 6, "abcdef", 3},
		{"InsideOneSegment", 2, 4, "cd", 1},
		{"AcrossBoundary", 1, 5, "bcde", 3},
		{"NegativeWrap", -4, -1, "cde", 2},
		{"ClampedStop", 4, 99, "ef", 1},
		{"ClampedStart", -99, 2, "ab", 1},
		{"EmptyRange", 3, 3, "", 1},
		{"CrossedBounds", 5, 2, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Slice(tt.start, tt.stop)
			checkNormalForm(t, got)
			if got.Plain() != tt.plain {
				t.Errorf("Expected %q, got %q", tt.plain, got.Plain())
			}
			if len(got.Segments()) != tt.segments {
				t.Errorf("Expected %d segments, got %v", tt.segments, got.Segments())
			}
		})
	}
}

func TestSlicePreservesPattern(t *testing.T) {
	r := Concat(Text("ab"), colored(t, "cd", "r"))
	got := r.Slice(1, 3)
	segments := got.Segments()
	if segments[0].Fg != "" || segments[1].Fg != "31" {
		t.Errorf("Expected plain then red, got %v", segments)
	}
}

// splitting at any point and re-concatenating must reproduce the original
func TestSliceConsistency(t *testing.T) {
	r := Parse("ab\x1b[31mcd\x1b[0m\x1b[44mef\x1b[0m")
	for j := 0; j <= r.Len(); j++ {
		joined := Concat(r.Slice(0, j), r.Slice(j, r.Len()))
		if !joined.Equal(r) {
			t.Errorf("Split at %d diverged: %v", j, joined.Segments())
		}
	}
}

func TestSliceStep(t *testing.T) {
	r := colored(t, "abcdef", "r")

	got, err := r.SliceStep(0, 6, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Plain() != "ace" || !got.IsPlain() {
		t.Errorf("Expected pattern-free \"ace\", got %v", got.Segments())
	}

	got, err = r.SliceStep(1, 6, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Plain() != "bcdef" || got.IsPlain() {
		t.Error("A unit step must behave as ordinary slicing")
	}

	if _, err := r.SliceStep(0, 6, 0); !errors.Is(err, ErrIndex) {
		t.Errorf("Expected ErrIndex, got %v", err)
	}
	if _, err := r.SliceStep(0, 6, -1); !errors.Is(err, ErrIndex) {
		t.Errorf("Expected ErrIndex, got %v", err)
	}
}

func TestAt(t *testing.T) {
	r := Concat(Text("ab"), colored(t, "cd", "r"))

	tests := []struct {
		name  string
		index int
		char  string
		fg    string
	}{
		{"First", 0, "a", ""},
		{"InColored", 2, "c", "31"},
		{"NegativeWrap", -1, "d", "31"},
		{"NegativeFirst", -4, "a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.At(tt.index)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.Plain() != tt.char || got.Segments()[0].Fg != tt.fg {
				t.Errorf("Expected %q fg=%q, got %v", tt.char, tt.fg, got.Segments())
			}
		})
	}

	for _, idx := range []int{4, -5, 100} {
		if _, err := r.At(idx); !errors.Is(err, ErrIndex) {
			t.Errorf("Expected ErrIndex for %d, got %v", idx, err)
		}
	}
	if _, err := Empty().At(0); !errors.Is(err, ErrIndex) {
		t.Errorf("Expected ErrIndex on empty, got %v", err)
	}
}

func TestRuneIndexing(t *testing.T) {
	r, err := New("héllo", types.Named("r"), types.Color{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Len() != 5 {
		t.Errorf("Expected rune length 5, got %d", r.Len())
	}
	got, err := r.At(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Plain() != "é" {
		t.Errorf("Expected \"é\", got %q", got.Plain())
	}
	if s := r.Slice(1, 3); s.Plain() != "él" {
		t.Errorf("Expected \"él\", got %q", s.Plain())
	}
}
