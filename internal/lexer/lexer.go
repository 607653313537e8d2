package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"arith/internal/token"
)

type Lexer struct {
	src    []byte
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	err    *Error
}

func New(src []byte, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// Next возвращает следующий токен.
// On a lexical error it returns a single Invalid token and EOF after that;
// the error itself is available through Err.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.err != nil || lx.cursor.EOF() {
		return token.Token{Kind: token.EOF}
	}

	ch := lx.cursor.Peek()
	if isDec(ch) {
		return lx.scanNumber()
	}
	if sym, ok := token.LookupSymbol(ch); ok {
		return lx.scanOperator(sym)
	}
	return lx.scanUnknown()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Err returns the lexical error that stopped the lexer, if any.
func (lx *Lexer) Err() *Error {
	return lx.err
}

// Offset is the byte offset of the first unread byte.
func (lx *Lexer) Offset() uint32 {
	return lx.cursor.Off
}

func (lx *Lexer) fail(err *Error) token.Token {
	lx.err = err
	lx.report(err)
	lx.cursor.SkipToEnd()
	return token.Token{Kind: token.Invalid}
}

// Tokenize converts input into its token sequence. Empty input yields an
// empty, non-nil sequence. The first lexical error aborts the whole call
// and no tokens are returned with it.
func Tokenize(input string) ([]token.Token, error) {
	return TokenizeWith(input, Options{})
}

// TokenizeWith is Tokenize with a diagnostic reporter attached.
func TokenizeWith(input string, opts Options) ([]token.Token, error) {
	if _, err := safecast.Conv[uint32](len(input)); err != nil {
		return nil, fmt.Errorf("input too large: %w", err)
	}
	lx := New([]byte(input), opts)
	tokens := make([]token.Token, 0, len(input)/2+1)
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return tokens, nil
		case token.Invalid:
			return nil, lx.Err()
		default:
			tokens = append(tokens, tok)
		}
	}
}
