package diagfmt

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"

	"arith/internal/token"
)

type TokenOutput struct {
	Kind   string `json:"kind" yaml:"kind"`
	Value  *int32 `json:"value,omitempty" yaml:"value,omitempty"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Text   string `json:"text" yaml:"text"`
}

// BuildTokensOutput converts tokens into their serialisable form.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	return lo.Map(tokens, func(tok token.Token, _ int) TokenOutput {
		out := TokenOutput{Kind: tok.Kind.String(), Text: tok.Text()}
		switch tok.Kind {
		case token.IntLit:
			v := tok.Value
			out.Value = &v
		case token.Operator:
			out.Symbol = tok.Symbol.String()
		}
		return out
	})
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-9s %-16s %q\n", i+1, tok.Kind.String(), tok.String(), tok.Text()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, opts OutputOpts) error {
	return writeJSON(w, BuildTokensOutput(tokens), opts.Color)
}

// FormatTokensYAML выводит токены в YAML формате
func FormatTokensYAML(w io.Writer, tokens []token.Token) error {
	b, err := yaml.Marshal(BuildTokensOutput(tokens))
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// FormatTokens dispatches on f. Tree-only formats are rejected.
func FormatTokens(w io.Writer, tokens []token.Token, f Format, opts OutputOpts) error {
	switch f {
	case FormatJSON:
		return FormatTokensJSON(w, tokens, opts)
	case FormatYAML:
		return FormatTokensYAML(w, tokens)
	case FormatDump:
		return writeDump(w, tokens, opts.Color)
	case FormatPretty:
		return FormatTokensPretty(w, tokens)
	default:
		return fmt.Errorf("format %s is not supported for tokens", f)
	}
}
