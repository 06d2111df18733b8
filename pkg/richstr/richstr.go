// Package richstr is the public API of the rich-text string engine.
//
// This package provides functions to:
//   - Build rich strings from plain text plus a (fg, bg, styles) pattern
//   - Parse ANSI/SGR-decorated text back into the same model
//   - Serialize rich strings to minimal SGR sequences, fully or partially
//   - Convert legacy ANSI-art encodings (CP437, CP850, ISO-8859-1) to UTF-8
//
// Example usage:
//
//	import "richstr/pkg/richstr"
//
//	warn, _ := richstr.New("Hello World!", richstr.Named("r"), richstr.Color{}, "bold")
//	fmt.Println(warn.ANSI())
//
//	parsed := richstr.Parse("\x1b[1mBold\x1b[0mPlain")
//	fmt.Println(parsed.Plain())
package richstr

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"richstr/internal/codec"
	"richstr/internal/console"
	"richstr/internal/exporter"
	"richstr/internal/rich"
	"richstr/internal/types"
)

// Type aliases for the public API
type (
	// String is a rich-text value: an ordered, coverage-complete,
	// auto-merging sequence of pattern segments.
	String = rich.String

	// Segment is one maximal text run sharing one (fg, bg, styles) pattern.
	Segment = types.Segment

	// Color is a symbolic color specification (named, indexed or RGB).
	Color = types.Color

	// StyleSet is a set of canonical SGR style code strings.
	StyleSet = types.StyleSet

	// Attr selects segment attributes for partial comparison.
	Attr = types.Attr

	// Rewrite bundles per-attribute find-and-replace rules.
	Rewrite = types.Rewrite

	// ColorRule is one ordered (match, to) color pair.
	ColorRule = types.ColorRule

	// ColorRewrite rewrites one color attribute.
	ColorRewrite = types.ColorRewrite

	// StyleRule is one find-and-replace pair over the style set.
	StyleRule = types.StyleRule

	// Extend is the overhang policy for pattern projection.
	Extend = rich.Extend

	// Template is a compiled pattern stamped onto arbitrary text.
	Template = rich.Template

	// Console is the output safety shim.
	Console = console.Console

	// Sink receives one rendered line of console output.
	Sink = console.Sink

	// StyledRun is one segment flattened to a tcell style.
	StyledRun = exporter.StyledRun
)

// Extend mode constants
const (
	ExtendNone  = rich.ExtendNone
	ExtendLeft  = rich.ExtendLeft
	ExtendRight = rich.ExtendRight
	ExtendAll   = rich.ExtendAll
)

// Attribute mask constants
const (
	AttrText    = types.AttrText
	AttrFg      = types.AttrFg
	AttrBg      = types.AttrBg
	AttrStyles  = types.AttrStyles
	AttrPattern = types.AttrPattern
	AttrAll     = types.AttrAll
)

// Sentinel errors
var (
	ErrColor   = types.ErrColor
	ErrStyle   = types.ErrStyle
	ErrRewrite = types.ErrRewrite
	ErrIndex   = rich.ErrIndex
)

// New builds a String from one text and one pattern.
func New(text string, fg, bg Color, styles ...string) (*String, error) {
	return rich.New(text, fg, bg, styles...)
}

// Text builds a pattern-free String without interpreting escape sequences.
func Text(text string) *String {
	return rich.Text(text)
}

// Parse builds a String from ANSI-decorated text. Parsing is lenient and
// never fails; unrecognized SGR codes are ignored and non-SGR escape
// sequences stay literal text.
func Parse(ansi string) *String {
	return rich.Parse(ansi)
}

// Empty returns the canonical empty String.
func Empty() *String {
	return rich.Empty()
}

// Concat chains the inputs through the merge constructor.
func Concat(items ...*String) *String {
	return rich.Concat(items...)
}

// FromSegments runs the merge constructor over raw segments.
func FromSegments(segments ...Segment) *String {
	return rich.FromSegments(segments...)
}

// Named returns a basic or bright color by letter name ("r", "lg", ...).
func Named(name string) Color { return types.Named(name) }

// Indexed returns a 256-palette color.
func Indexed(n int) Color { return types.Indexed(n) }

// RGB returns a 24-bit color.
func RGB(r, g, b int) Color { return types.RGB(r, g, b) }

// StyleCodes converts style names to canonical codes.
func StyleCodes(names ...string) (StyleSet, error) {
	return types.StyleCodes(names...)
}

// SetColor is an unconditional color replacement; "" clears the color.
func SetColor(code string) *ColorRewrite { return types.SetColor(code) }

// MapColor is a conditional rule-list color rewrite.
func MapColor(rules ...ColorRule) *ColorRewrite { return types.MapColor(rules...) }

// ClearStyles removes every style.
func ClearStyles() StyleRule { return types.ClearStyles() }

// AddStyles unconditionally adds the given codes.
func AddStyles(set StyleSet) StyleRule { return types.AddStyles(set) }

// SwapStyles replaces match with to when every matched code is present.
func SwapStyles(match, to StyleSet) StyleRule { return types.SwapStyles(match, to) }

// NewTemplate compiles a reusable pattern.
func NewTemplate(fg, bg Color, styles ...string) (*Template, error) {
	return rich.NewTemplate(fg, bg, styles...)
}

// Assemble serializes segments with the requested pattern projection.
func Assemble(segments []Segment, fg, bg, styles bool) string {
	return codec.Assemble(segments, fg, bg, styles)
}

// Strip removes every recognized SGR sequence from the input.
func Strip(ansi string) string {
	return codec.Strip(ansi)
}

// FlattenRuns converts segments to tcell style runs for TUI consumers.
func FlattenRuns(segments []Segment) []StyledRun {
	return exporter.FlattenRuns(segments)
}

// ExportJSON renders segments as indented JSON.
func ExportJSON(segments []Segment) ([]byte, error) {
	return exporter.ExportJSON(segments)
}

// NewConsole builds an output shim around sink; nil prints directly.
func NewConsole(sink Sink) *Console { return console.New(sink) }

// SetDefaultConsole replaces the process-wide default console
// (last writer wins).
func SetDefaultConsole(c *Console) { console.SetDefault(c) }

// Print prints through the process-wide default console.
func Print(values ...any) { console.Print(values...) }

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1".
// Legacy ANSI-art files are commonly CP437; convert before Parse.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// ConvertToEncoding converts UTF-8 data to the target encoding.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1".
func ConvertToEncoding(data []byte, targetEncoding string) ([]byte, error) {
	if targetEncoding == "utf8" {
		return data, nil
	}

	var encoder *encoding.Encoder

	switch targetEncoding {
	case "cp437":
		encoder = charmap.CodePage437.NewEncoder()
	case "cp850":
		encoder = charmap.CodePage850.NewEncoder()
	case "iso-8859-1":
		encoder = charmap.ISO8859_1.NewEncoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", targetEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), encoder)
	encodedData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return encodedData, nil
}
