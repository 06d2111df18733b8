package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

var (
	// ErrColor is wrapped by all color specification errors.
	ErrColor = errors.New("invalid color")
	// ErrStyle is wrapped by all style specification errors.
	ErrStyle = errors.New("invalid style")
)

type ColorKind int

const (
	ColorNone    ColorKind = iota
	ColorNamed             // "d","r",...,"w" and bright "ld".."lw"
	ColorIndexed           // 0-255 (ESC[38;5;n)
	ColorRGB               // RGB (ESC[38;2;r;g;b)
)

// Color is a symbolic color specification. The zero value means "no color".
type Color struct {
	Kind    ColorKind
	Name    string
	Index   int
	R, G, B int
}

// Named returns a basic or bright color by letter name ("r", "lg", ...).
func Named(name string) Color {
	return Color{Kind: ColorNamed, Name: name}
}

// Indexed returns a 256-palette color.
func Indexed(n int) Color {
	return Color{Kind: ColorIndexed, Index: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b int) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

func (c Color) IsNone() bool {
	return c.Kind == ColorNone
}

// Letter codes for the 8 basic colors, appended to the SGR base digit.
var colorLetters = map[string]string{
	"d": "0", // dark/black
	"r": "1", // red
	"g": "2", // green
	"y": "3", // yellow
	"b": "4", // blue
	"m": "5", // magenta
	"c": "6", // cyan
	"w": "7", // white
}

// FgCode converts the color to its canonical foreground SGR code string.
// The none color converts to "".
func (c Color) FgCode() (string, error) {
	return c.code(true)
}

// BgCode converts the color to its canonical background SGR code string.
func (c Color) BgCode() (string, error) {
	return c.code(false)
}

func (c Color) code(fg bool) (string, error) {
	switch c.Kind {
	case ColorNone:
		return "", nil

	case ColorNamed:
		name, bright := c.Name, false
		if len(name) == 2 && name[0] == 'l' {
			name, bright = name[1:], true
		}
		digit, ok := colorLetters[name]
		if !ok {
			return "", fmt.Errorf("%w: unknown color name %q", ErrColor, c.Name)
		}
		switch {
		case fg && bright:
			return "9" + digit, nil
		case fg:
			return "3" + digit, nil
		case bright:
			return "10" + digit, nil
		default:
			return "4" + digit, nil
		}

	case ColorIndexed:
		if c.Index < 0 || c.Index > 255 {
			return "", fmt.Errorf("%w: palette index %d out of range [0,255]", ErrColor, c.Index)
		}
		if fg {
			return fmt.Sprintf("38;5;%d", c.Index), nil
		}
		return fmt.Sprintf("48;5;%d", c.Index), nil

	case ColorRGB:
		for _, ch := range [3]int{c.R, c.G, c.B} {
			if ch < 0 || ch > 255 {
				return "", fmt.Errorf("%w: RGB channel %d out of range [0,255]", ErrColor, ch)
			}
		}
		if fg {
			return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B), nil
		}
		return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B), nil

	default:
		return "", fmt.Errorf("%w: unknown color kind %d", ErrColor, c.Kind)
	}
}

/////////////////////////////////////////////////////////////////////////////
// STYLES
/////////////////////////////////////////////////////////////////////////////

// Style names to canonical SGR codes, including the historic aliases.
var styleNames = map[string]string{
	"bold":          "1",
	"dim":           "2",
	"italic":        "3",
	"udl":           "4",
	"underline":     "4",
	"blink":         "5",
	"selected":      "7",
	"disappear":     "8",
	"hidden":        "8",
	"del":           "9",
	"delete":        "9",
	"strikethrough": "9",
}

// Canonical style code strings accepted by the parser.
var styleCodeSet = map[string]bool{
	"1": true, "2": true, "3": true, "4": true,
	"5": true, "7": true, "8": true, "9": true,
}

// IsStyleCode reports whether code is a canonical SGR style code.
func IsStyleCode(code string) bool {
	return styleCodeSet[code]
}

// StyleSet is a set of canonical SGR style code strings. The empty string is
// never a member. A StyleSet is treated as immutable once attached to a
// Segment; mutation goes through copies.
type StyleSet map[string]struct{}

// NewStyleSet builds a StyleSet from canonical code strings, dropping "".
func NewStyleSet(codes ...string) StyleSet {
	set := make(StyleSet, len(codes))
	for _, code := range codes {
		if code != "" {
			set[code] = struct{}{}
		}
	}
	return set
}

// StyleCodes converts style names to a StyleSet of canonical codes.
func StyleCodes(names ...string) (StyleSet, error) {
	set := make(StyleSet, len(names))
	for _, name := range names {
		code, ok := styleNames[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown style name %q", ErrStyle, name)
		}
		set[code] = struct{}{}
	}
	return set, nil
}

func (s StyleSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

func (s StyleSet) Clone() StyleSet {
	clone := make(StyleSet, len(s))
	for code := range s {
		clone[code] = struct{}{}
	}
	return clone
}

func (s StyleSet) Equal(other StyleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for code := range s {
		if !other.Has(code) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every code in s is present in other.
// The empty set is a subset of everything.
func (s StyleSet) SubsetOf(other StyleSet) bool {
	for code := range s {
		if !other.Has(code) {
			return false
		}
	}
	return true
}

// Sorted returns the codes in ascending order for deterministic output.
func (s StyleSet) Sorted() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (s StyleSet) String() string {
	return strings.Join(s.Sorted(), ";")
}
