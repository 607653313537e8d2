// Package lexer turns an arithmetic expression into tokens.
//
// The scan is a single left-to-right pass with one byte of lookahead. Digits
// start a greedy run that becomes an int32 literal; each of + - * / becomes an
// operator token; anything else, whitespace included, is a lexical error that
// ends tokenization. No positions are attached to tokens, only to errors.
package lexer
