package codec

// Sources :
// - https://wezterm.org/escape-sequences.html#graphic-rendition-sgr
// - https://vt100.net/docs/vt510-rm/chapter4.html
// - https://ecma-international.org/wp-content/uploads/ECMA-48_5th_edition_june_1991.pdf

import (
	"strings"

	"richstr/internal/types"
)

const esc = 0x1B

// Parse tokenizes an SGR-decorated string into a run-length list of
// segments. Only sequences of the form `ESC [ params m` are interpreted;
// every other byte, including non-SGR escape sequences, stays literal text.
// Unknown SGR codes are ignored, so parsing always succeeds. Text preceding
// each recognized sequence carries the state in effect when it was
// encountered. Empty input yields an empty slice.
//
// Adjacent segments with equal patterns are NOT merged here; the container's
// merge constructor normalizes them.
func Parse(input string) []types.Segment {
	var segments []types.Segment
	var curFg, curBg string
	curStyles := types.StyleSet{}

	last := 0
	for i := 0; i < len(input); {
		if input[i] != esc {
			i++
			continue
		}
		params, end, ok := scanSGR(input, i)
		if !ok {
			i++
			continue
		}
		if i > last {
			segments = append(segments, types.RawSegment(input[last:i], curFg, curBg, curStyles))
		}
		curFg, curBg, curStyles = applyParams(params, curFg, curBg, curStyles)
		i, last = end, end
	}
	if last < len(input) {
		segments = append(segments, types.RawSegment(input[last:], curFg, curBg, curStyles))
	}

	return segments
}

// scanSGR matches `ESC [ <digits and semicolons> m` starting at pos.
// Returns the raw parameter string and the offset one past the final byte.
func scanSGR(input string, pos int) (params string, end int, ok bool) {
	if pos+1 >= len(input) || input[pos+1] != '[' {
		return "", 0, false
	}
	i := pos + 2
	for i < len(input) {
		c := input[i]
		if c == ';' || (c >= '0' && c <= '9') {
			i++
			continue
		}
		if c == 'm' {
			return input[pos+2 : i], i + 1, true
		}
		return "", 0, false
	}
	return "", 0, false
}

// applyParams consumes the semicolon-separated codes left to right via a
// cursor and returns the updated running state.
func applyParams(params, fg, bg string, styles types.StyleSet) (string, string, types.StyleSet) {
	codes := strings.Split(params, ";")
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		switch {
		case code == "" || code == "0":
			// reset all
			fg, bg = "", ""
			styles = types.StyleSet{}

		case types.IsStyleCode(code):
			styles = styles.Clone()
			styles[code] = struct{}{}

		case code == "38" || code == "48":
			compound, consumed := scanExtendedColor(code, codes[i+1:])
			i += consumed
			if compound == "" {
				continue
			}
			if code == "38" {
				fg = compound
			} else {
				bg = compound
			}

		case isFgCode(code):
			fg = code

		case isBgCode(code):
			bg = code

		default:
			// unrecognized code, ignore
		}
	}
	return fg, bg, styles
}

// scanExtendedColor assembles a `38;5;N` / `38;2;R;G;B` compound from the
// codes following a 38/48 introducer. Incomplete compounds are dropped.
func scanExtendedColor(base string, rest []string) (compound string, consumed int) {
	if len(rest) == 0 {
		return "", 0
	}
	switch rest[0] {
	case "5":
		if len(rest) < 2 {
			return "", len(rest)
		}
		return base + ";5;" + rest[1], 2
	case "2":
		if len(rest) < 4 {
			return "", len(rest)
		}
		return base + ";2;" + rest[1] + ";" + rest[2] + ";" + rest[3], 4
	default:
		return "", 1
	}
}

// isFgCode matches the basic (30-37) and bright (90-97) foreground codes.
func isFgCode(code string) bool {
	return len(code) == 2 && (code[0] == '3' || code[0] == '9') &&
		code[1] >= '0' && code[1] <= '7'
}

// isBgCode matches the basic (40-47) and bright (100-107) background codes.
func isBgCode(code string) bool {
	if len(code) == 2 && code[0] == '4' && code[1] >= '0' && code[1] <= '7' {
		return true
	}
	return len(code) == 3 && code[0] == '1' && code[1] == '0' &&
		code[2] >= '0' && code[2] <= '7'
}
