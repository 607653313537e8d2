package lexer

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"arith/internal/diag"
	"arith/internal/source"
)

// Error is a lexical failure. Tokenization stops at the first one.
type Error struct {
	Code diag.Code
	Span source.Span
	// Char is the offending character for LexUnknownChar (utf8.RuneError for invalid bytes).
	Char rune
	// Text is the offending source text: the character or the whole digit run.
	Text string
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Diagnostic converts the error for a diag.Reporter.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     e.Code,
		Message:  e.Msg,
		Primary:  e.Span,
		HasSpan:  true,
		Token:    -1,
	}
}

func unknownCharError(sp source.Span, r rune, raw []byte) *Error {
	var msg string
	if r == utf8.RuneError && len(raw) == 1 {
		msg = fmt.Sprintf("invalid UTF-8 byte 0x%02x", raw[0])
	} else {
		msg = fmt.Sprintf("unrecognized character %q (%U %s)", r, r, runenames.Name(r))
	}
	return &Error{
		Code: diag.LexUnknownChar,
		Span: sp,
		Char: r,
		Text: string(raw),
		Msg:  msg,
	}
}

func badNumberError(sp source.Span, text string, cause error) *Error {
	return &Error{
		Code: diag.LexBadNumber,
		Span: sp,
		Text: text,
		Msg:  fmt.Sprintf("failed to parse integer from string %q: %v", text, cause),
	}
}
