package rich

import "richstr/internal/types"

// Template is a compiled (fg, bg, styles) pattern that can be stamped onto
// arbitrary text.
type Template struct {
	pattern *String
}

// NewTemplate compiles a pattern once; the color and style specifications are
// validated here so Format never fails.
func NewTemplate(fg, bg types.Color, styles ...string) (*Template, error) {
	pattern, err := New(" ", fg, bg, styles...)
	if err != nil {
		return nil, err
	}
	return &Template{pattern: pattern}, nil
}

// Format stamps the template's pattern over the whole text.
func (t *Template) Format(text string) *String {
	return t.pattern.Apply(Text(text), 0, ExtendAll)
}

// FormatANSI renders the stamped text with the requested pattern projection.
func (t *Template) FormatANSI(text string, fg, bg, styles bool) string {
	return t.Format(text).Render(fg, bg, styles)
}
