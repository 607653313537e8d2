package token

import "strconv"

// Token is a lexical unit: either an integer literal or an operator.
// Tokens carry no position; Value is meaningful for IntLit, Symbol for Operator.
type Token struct {
	Kind   Kind
	Value  int32
	Symbol Symbol
}

// Int builds an integer literal token.
func Int(v int32) Token { return Token{Kind: IntLit, Value: v} }

// Op builds an operator token.
func Op(s Symbol) Token { return Token{Kind: Operator, Symbol: s} }

// IsInt reports whether the token is an integer literal.
func (t Token) IsInt() bool { return t.Kind == IntLit }

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool { return t.Kind == Operator }

// String renders the debug form, e.g. Int(234) or Operator(Mult).
func (t Token) String() string {
	switch t.Kind {
	case IntLit:
		return "Int(" + strconv.FormatInt(int64(t.Value), 10) + ")"
	case Operator:
		return "Operator(" + t.Symbol.String() + ")"
	default:
		return t.Kind.String()
	}
}

// Text renders the token the way it appears in source.
func (t Token) Text() string {
	switch t.Kind {
	case IntLit:
		return strconv.FormatInt(int64(t.Value), 10)
	case Operator:
		return string(t.Symbol.Char())
	default:
		return ""
	}
}
