package lexer

import (
	"arith/internal/token"
)

// scanOperator consumes exactly one operator byte.
func (lx *Lexer) scanOperator(sym token.Symbol) token.Token {
	lx.cursor.Bump()
	return token.Op(sym)
}

// scanUnknown reports the character under the cursor and stops the lexer.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	r, size := lx.peekRune()
	raw := lx.cursor.Rest()[:size]
	lx.cursor.Advance(uint32(size)) // #nosec G115 -- size <= utf8.UTFMax
	return lx.fail(unknownCharError(lx.cursor.SpanFrom(start), r, raw))
}
