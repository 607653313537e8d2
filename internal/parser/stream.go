package parser

import "arith/internal/token"

// tokenStream — курсор по срезу токенов с заглядыванием на один токен вперёд.
type tokenStream struct {
	tokens []token.Token
	pos    int
}

func (s *tokenStream) peek() (token.Token, bool) {
	if s.pos >= len(s.tokens) {
		return token.Token{Kind: token.EOF}, false
	}
	return s.tokens[s.pos], true
}

func (s *tokenStream) next() (token.Token, bool) {
	tok, ok := s.peek()
	if ok {
		s.pos++
	}
	return tok, ok
}

func (s *tokenStream) more() bool {
	return s.pos < len(s.tokens)
}
