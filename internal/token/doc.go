// Package token defines the lexical tokens of the arithmetic grammar.
// Invariants:
//   - lexer.Tokenize only ever returns IntLit and Operator tokens.
//   - Token is a value type; nothing mutates a token after the lexer creates it.
//   - Tokens carry no source position. Diagnostics that need one take it from the lexer.
package token
