package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arith/internal/diag"
	"arith/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<label>: error[LEX1001]: <Message>
//	  |
//	  | <input>
//	  | ^
//
// Диагностики без span печатаются только заголовком и номером токена.
func Pretty(w io.Writer, input string, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, input, d, opts, p); err != nil {
			return err
		}
	}
	return nil
}

type palette struct {
	sev    map[diag.Severity]*color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgBlue, color.Bold),
		},
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	all := []*color.Color{p.gutter, p.caret, p.note}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func prettyOne(w io.Writer, input string, d diag.Diagnostic, opts PrettyOpts, p palette) error {
	sevColor, ok := p.sev[d.Severity]
	if !ok {
		sevColor = p.sev[diag.SevError]
	}
	var sb strings.Builder
	if opts.Label != "" {
		sb.WriteString(opts.Label)
		sb.WriteString(": ")
	}
	sb.WriteString(sevColor.Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID()))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	sb.WriteByte('\n')

	if d.HasSpan {
		writeSnippet(&sb, input, d.Primary, p)
	} else if d.Token >= 0 {
		fmt.Fprintf(&sb, "  %s token #%d\n", p.gutter.Sprint("="), d.Token+1)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(&sb, "  %s %s\n", p.note.Sprint("= note:"), n.Msg)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSnippet(sb *strings.Builder, input string, span source.Span, p palette) {
	src := []byte(input)
	n := uint32(len(src)) // #nosec G115 -- inputs are single expressions
	start := min(span.Start, n)
	end := min(max(span.End, start), n)

	col := runewidth.StringWidth(string(src[:start]))
	width := max(runewidth.StringWidth(string(src[start:end])), 1)
	caret := "^" + strings.Repeat("~", width-1)

	bar := p.gutter.Sprint("|")
	fmt.Fprintf(sb, "  %s\n", bar)
	fmt.Fprintf(sb, "  %s %s\n", bar, input)
	fmt.Fprintf(sb, "  %s %s%s\n", bar, strings.Repeat(" ", col), p.caret.Sprint(caret))
}

// FormatShort печатает одну строку на диагностику: "<label>: <sev>[<code>]: <msg>".
func FormatShort(w io.Writer, bag *diag.Bag, label string) error {
	if bag == nil {
		return nil
	}
	for _, d := range bag.Items() {
		prefix := ""
		if label != "" {
			prefix = label + ": "
		}
		if _, err := fmt.Fprintf(w, "%s%s[%s]: %s\n", prefix, d.Severity.Label(), d.Code.ID(), d.Message); err != nil {
			return err
		}
	}
	return nil
}
