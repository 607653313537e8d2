// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is a plain record: severity, a numeric Code with a stable string
// form (LEX1001, SYN2002, ...), a message and, for lexical findings, the byte
// span of the offending character. Producers emit through a Reporter; the
// driver usually wires a BagReporter so the CLI can render everything at once.
//
// Package diag performs no formatting and no IO. Rendering lives in
// internal/diagfmt.
package diag
