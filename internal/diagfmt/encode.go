package diagfmt

import (
	"fmt"
	"io"
	"regexp"

	"github.com/goccy/go-json"
	"github.com/k0kubun/pp"
)

func writeJSON(w io.Writer, v any, colorize bool) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if colorize {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}
	b, err := json.MarshalIndentWithOption(v, "", "  ", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// writeDump prints v with pp; pp always colorizes, so escapes are stripped
// when color is off.
func writeDump(w io.Writer, v any, colorize bool) error {
	out := pp.Sprintln(v)
	if !colorize {
		out = ansiEscape.ReplaceAllString(out, "")
	}
	_, err := io.WriteString(w, out)
	return err
}
