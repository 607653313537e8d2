package driver

import (
	"arith/internal/diag"
	"arith/internal/lexer"
	"arith/internal/source"
	"arith/internal/token"
)

// TokenSpans re-lexes input and returns the byte span of every token.
// Tokens are contiguous in valid input, so the lexer offset before and after
// each Next brackets the token. Returns nil if input does not tokenize.
func TokenSpans(input string) []source.Span {
	lx := lexer.New([]byte(input), lexer.Options{})
	var spans []source.Span
	for {
		start := lx.Offset()
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return spans
		case token.Invalid:
			return nil
		}
		spans = append(spans, source.Span{Start: start, End: lx.Offset()})
	}
}

// spanReporter attaches a byte span to parser diagnostics, which only know
// the index of the offending token. An index one past the last token points
// at the end of input.
type spanReporter struct {
	inner diag.Reporter
	input string
	spans []source.Span
	ready bool
}

func (r *spanReporter) Report(d diag.Diagnostic) {
	if !d.HasSpan && d.Token >= 0 {
		if !r.ready {
			r.spans = TokenSpans(r.input)
			r.ready = true
		}
		switch {
		case d.Token < len(r.spans):
			d.Primary = r.spans[d.Token]
			d.HasSpan = true
		case d.Token == len(r.spans):
			var end uint32
			if len(r.spans) > 0 {
				end = r.spans[len(r.spans)-1].End
			}
			d.Primary = source.Span{Start: end, End: end}
			d.HasSpan = true
		}
	}
	r.inner.Report(d)
}
