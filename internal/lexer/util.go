package lexer

import "unicode/utf8"

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// peekRune декодирует текущий символ целиком, чтобы ошибка показывала
// весь многобайтовый символ, а не его первый байт.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.cursor.Rest())
}
