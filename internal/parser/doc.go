// Package parser builds an ast.Tree from a token sequence.
//
// The grammar is two mutually recursive rules over a one-token lookahead
// cursor:
//
//	expression := prefix { infix }
//	prefix     := Int
//	infix      := Operator expression
//
// Because infix recurses into expression, every operator binds everything to
// its right. No precedence is applied and there is no error recovery: the
// first violation is returned as *Error.
package parser
