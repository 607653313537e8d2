package diag

import (
	"arith/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding produced by the lexer, the parser or the driver.
// Parser diagnostics have no byte span because tokens do not carry positions;
// Token holds the index of the offending token instead (-1 when unknown).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	HasSpan  bool
	Token    int
	Notes    []Note
}
