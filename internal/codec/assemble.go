package codec

import (
	"strings"

	"richstr/internal/types"
)

// Assemble serializes segments back to an ANSI string. Each non-empty
// segment is wrapped in `ESC[<params>m ... ESC[0m` when the requested subset
// of its pattern yields any parameter; otherwise its text is emitted plain.
// Parameters are semicolon-joined with styles first, in ascending code order
// so output is deterministic. Empty segments contribute nothing.
func Assemble(segments []types.Segment, fg, bg, styles bool) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}

		var params []string
		if styles {
			params = append(params, seg.Styles.Sorted()...)
		}
		if fg && seg.Fg != "" {
			params = append(params, seg.Fg)
		}
		if bg && seg.Bg != "" {
			params = append(params, seg.Bg)
		}

		if len(params) == 0 {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString("\x1b[")
		b.WriteString(strings.Join(params, ";"))
		b.WriteString("m")
		b.WriteString(seg.Text)
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// Strip removes every recognized SGR sequence and returns the literal text.
func Strip(input string) string {
	var b strings.Builder
	for _, seg := range Parse(input) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
