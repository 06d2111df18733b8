// Package format contains small pretty printers built on top of the rich
// string engine.
package format

import (
	"fmt"
	"sort"

	"richstr/internal/rich"
	"richstr/internal/types"
)

var (
	titlePattern = mustTemplate(types.Named("d"), types.Named("y"), "bold")
	keyPattern   = mustTemplate(types.Named("d"), types.Named("g"), "bold")
	typePattern  = mustTemplate(types.Named("c"), types.Color{}, "italic")
)

func mustTemplate(fg, bg types.Color, styles ...string) *rich.Template {
	t, err := rich.NewTemplate(fg, bg, styles...)
	if err != nil {
		panic(err)
	}
	return t
}

// Map renders a map as one line per key, sorted, with a decorated title.
// Keys listed in omit render a placeholder instead of their value.
func Map(target map[string]any, title string, omit ...string) *rich.String {
	omitted := make(map[string]bool, len(omit))
	for _, key := range omit {
		omitted[key] = true
	}

	keys := make([]string, 0, len(target))
	for key := range target {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := []*rich.String{titleLine(title)}
	for i, key := range keys {
		value := target[key]
		shown := fmt.Sprintf("%v", value)
		if omitted[key] {
			shown = "..."
		}
		lines = append(lines, rich.Concat(
			rich.Text(fmt.Sprintf("  %3d. ", i+1)),
			keyPattern.Format(key),
			rich.Text(" "),
			typePattern.Format(fmt.Sprintf("(%T)", value)),
			rich.Text(": "+shown),
		))
	}
	return rich.Text("\n").Join(lines)
}

// List renders a slice as one numbered line per element.
func List(items []any, title string) *rich.String {
	lines := []*rich.String{titleLine(title)}
	for i, item := range items {
		lines = append(lines, rich.Concat(
			rich.Text(fmt.Sprintf("  %3d. ", i+1)),
			typePattern.Format(fmt.Sprintf("(%T)", item)),
			rich.Text(fmt.Sprintf(": %v", item)),
		))
	}
	return rich.Text("\n").Join(lines)
}

func titleLine(title string) *rich.String {
	if title == "" {
		title = ">>>"
	}
	return titlePattern.Format(" " + title + " ")
}
