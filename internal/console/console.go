// Package console is the output safety shim: it forwards rendered text to a
// caller-supplied sink (a progress-bar writer, a TUI log pane, ...) and falls
// back to plain-text printing when the sink fails.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"richstr/internal/rich"
)

// Sink receives one fully rendered line of output.
type Sink func(text string) error

// Console wraps a sink with a fallback writer.
type Console struct {
	sink Sink
	out  io.Writer
}

// New builds a console around sink. A nil sink prints directly.
func New(sink Sink) *Console {
	return &Console{sink: sink, out: os.Stdout}
}

// SetOutput redirects the fallback writer.
func (c *Console) SetOutput(w io.Writer) {
	if w != nil {
		c.out = w
	}
}

// Print renders the values, joins them with spaces and hands the line to the
// sink. rich.Strings render to ANSI; anything else goes through fmt. When the
// sink returns an error the plain-text projection is printed instead.
func (c *Console) Print(values ...any) {
	decorated := make([]string, len(values))
	plain := make([]string, len(values))
	for i, v := range values {
		if rs, ok := v.(*rich.String); ok && rs != nil {
			decorated[i] = rs.ANSI()
			plain[i] = rs.Plain()
			continue
		}
		decorated[i] = fmt.Sprint(v)
		plain[i] = decorated[i]
	}

	line := strings.Join(decorated, " ")
	if c.sink == nil {
		fmt.Fprintln(c.out, line)
		return
	}
	if err := c.sink(line); err != nil {
		fmt.Fprintln(c.out, strings.Join(plain, " "))
	}
}

// The process-wide default console. Last writer wins; typical usage is a
// single configuration call at startup, so no locking.
var defaultConsole = New(nil)

// SetDefault replaces the process-wide default console.
func SetDefault(c *Console) {
	if c != nil {
		defaultConsole = c
	}
}

// Default returns the process-wide default console.
func Default() *Console {
	return defaultConsole
}

// Print prints through the process-wide default console.
func Print(values ...any) {
	defaultConsole.Print(values...)
}
