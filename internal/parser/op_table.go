package parser

import (
	"arith/internal/ast"
	"arith/internal/token"
)

// symbolToOp переводит лексический символ в оператор дерева.
func symbolToOp(sym token.Symbol) (ast.Op, bool) {
	switch sym {
	case token.Plus:
		return ast.OpPlus, true
	case token.Minus:
		return ast.OpMinus, true
	case token.Mult:
		return ast.OpMult, true
	case token.Div:
		return ast.OpDiv, true
	default:
		return 0, false
	}
}
