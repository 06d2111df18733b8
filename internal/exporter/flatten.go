package exporter

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"richstr/internal/types"
)

// StyledRun is one segment flattened to a tcell style, ready for TUI
// consumers that draw cells instead of emitting escape sequences.
type StyledRun struct {
	Text  string
	Style tcell.Style
}

// FlattenRuns converts segments to styled runs. Empty segments are dropped.
func FlattenRuns(segments []types.Segment) []StyledRun {
	runs := make([]StyledRun, 0, len(segments))
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		runs = append(runs, StyledRun{Text: seg.Text, Style: StyleFor(seg)})
	}
	return runs
}

// StyleFor maps one segment pattern onto a tcell style.
func StyleFor(seg types.Segment) tcell.Style {
	style := tcell.StyleDefault
	if c := colorFromCode(seg.Fg); c != tcell.ColorDefault {
		style = style.Foreground(c)
	}
	if c := colorFromCode(seg.Bg); c != tcell.ColorDefault {
		style = style.Background(c)
	}
	for _, code := range seg.Styles.Sorted() {
		switch code {
		case "1":
			style = style.Bold(true)
		case "2":
			style = style.Dim(true)
		case "3":
			style = style.Italic(true)
		case "4":
			style = style.Underline(true)
		case "5":
			style = style.Blink(true)
		case "7":
			style = style.Reverse(true)
		case "9":
			style = style.StrikeThrough(true)
		default:
			// "8" (hidden) has no tcell attribute
		}
	}
	return style
}

// colorFromCode parses a canonical SGR color code string ("31", "104",
// "38;5;N", "48;2;R;G;B", ...) into a tcell color. Unknown or empty codes
// map to the default color.
func colorFromCode(code string) tcell.Color {
	if code == "" {
		return tcell.ColorDefault
	}

	if parts := strings.Split(code, ";"); len(parts) > 1 {
		switch {
		case len(parts) == 3 && parts[1] == "5":
			if n, err := strconv.Atoi(parts[2]); err == nil && n >= 0 && n <= 255 {
				return tcell.PaletteColor(n)
			}
		case len(parts) == 5 && parts[1] == "2":
			r, err1 := strconv.Atoi(parts[2])
			g, err2 := strconv.Atoi(parts[3])
			b, err3 := strconv.Atoi(parts[4])
			if err1 == nil && err2 == nil && err3 == nil {
				return tcell.NewRGBColor(int32(r), int32(g), int32(b))
			}
		}
		return tcell.ColorDefault
	}

	n, err := strconv.Atoi(code)
	if err != nil {
		return tcell.ColorDefault
	}
	switch {
	case n >= 30 && n <= 37:
		return tcell.PaletteColor(n - 30)
	case n >= 40 && n <= 47:
		return tcell.PaletteColor(n - 40)
	case n >= 90 && n <= 97:
		return tcell.PaletteColor(n - 90 + 8)
	case n >= 100 && n <= 107:
		return tcell.PaletteColor(n - 100 + 8)
	}
	return tcell.ColorDefault
}
