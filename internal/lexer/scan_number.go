package lexer

import (
	"strconv"

	"fortio.org/safecast"

	"arith/internal/token"
)

// scanNumber consumes a maximal run of decimal digits.
// Only [0-9]+ is accepted: no signs, separators, bases or fractions.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(sp.Slice(lx.src))

	// ParseInt with 64 bits first so that very long runs still give ErrRange,
	// the int32 bound is checked separately.
	wide, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lx.fail(badNumberError(sp, text, err))
	}
	v, err := safecast.Conv[int32](wide)
	if err != nil {
		return lx.fail(badNumberError(sp, text, err))
	}
	return token.Int(v)
}
