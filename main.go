package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"richstr/pkg/richstr"
)

var cli struct {
	Plain    bool     `short:"p" help:"Print the plain text content without escape sequences."`
	JSON     bool     `short:"j" help:"Print the parsed segments as JSON."`
	Segments bool     `short:"s" help:"Print one line per parsed segment."`
	Encoding string   `short:"e" default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1" help:"Input encoding."`
	Fg       string   `help:"Recolor the whole input foreground (d,r,g,y,b,m,c,w, bright with l prefix)."`
	Bg       string   `help:"Recolor the whole input background."`
	Style    []string `help:"Add styles to the whole input (bold, dim, italic, underline, blink, selected, strikethrough)."`
	Debug    bool     `short:"d" help:"Enable debug logging."`
	File     string   `arg:"" optional:"" type:"existingfile" help:"Input file. Reads from stdin when omitted."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("richstr"),
		kong.Description("Parse, inspect, recolor and re-emit ANSI/SGR decorated text."),
	)

	level := zerolog.WarnLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	ctx.FatalIfErrorf(run(log))
}

func run(log zerolog.Logger) error {
	data, source, err := readInput()
	if err != nil {
		return err
	}
	log.Debug().Str("source", source).Int("bytes", len(data)).Msg("input read")

	utf8Data, err := richstr.ConvertToUTF8(data, cli.Encoding)
	if err != nil {
		return err
	}

	begin := time.Now()
	text := richstr.Parse(string(utf8Data))
	log.Debug().
		Int("segments", len(text.Segments())).
		Int("runes", text.Len()).
		Dur("elapsed", time.Since(begin)).
		Msg("parsed")

	if text, err = recolor(text); err != nil {
		return err
	}

	switch {
	case cli.Plain:
		fmt.Println(text.Plain())
	case cli.JSON:
		out, err := richstr.ExportJSON(text.Segments())
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case cli.Segments:
		for _, seg := range text.Segments() {
			fmt.Printf("[%4d,%4d) fg=%-12q bg=%-12q styles=%-10q %q\n",
				seg.Start(), seg.End(), seg.Fg, seg.Bg, seg.Styles.String(), seg.Text)
		}
	default:
		richstr.Print(text)
	}
	return nil
}

// recolor applies the --fg/--bg/--style overrides as one rewrite pass.
func recolor(text *richstr.String) (*richstr.String, error) {
	if cli.Fg == "" && cli.Bg == "" && len(cli.Style) == 0 {
		return text, nil
	}

	var rw richstr.Rewrite
	if cli.Fg != "" {
		code, err := richstr.Named(cli.Fg).FgCode()
		if err != nil {
			return nil, err
		}
		rw.Fg = richstr.SetColor(code)
	}
	if cli.Bg != "" {
		code, err := richstr.Named(cli.Bg).BgCode()
		if err != nil {
			return nil, err
		}
		rw.Bg = richstr.SetColor(code)
	}
	if len(cli.Style) > 0 {
		set, err := richstr.StyleCodes(cli.Style...)
		if err != nil {
			return nil, err
		}
		rw.Styles = []richstr.StyleRule{richstr.AddStyles(set)}
	}

	if err := text.RebuildInPlace(rw); err != nil {
		return nil, err
	}
	return text, nil
}

func readInput() ([]byte, string, error) {
	if cli.File != "" {
		data, err := os.ReadFile(cli.File)
		if err != nil {
			return nil, "", fmt.Errorf("error reading %s: %w", cli.File, err)
		}
		return data, cli.File, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("error checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, "", fmt.Errorf("no input: pass a file or pipe data to stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("error reading from stdin: %w", err)
	}
	return data, "stdin", nil
}
