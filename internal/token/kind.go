package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid marks a token produced after a lexical error; never returned by lexer.Tokenize.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF
	// IntLit is a non-negative decimal literal that fits in int32.
	IntLit
	// Operator is one of + - * /.
	Operator
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case IntLit:
		return "Int"
	case Operator:
		return "Operator"
	default:
		return "Kind(?)"
	}
}

// Symbol is the operator carried by an Operator token.
type Symbol uint8

const (
	Plus  Symbol = iota // +
	Minus               // -
	Mult                // *
	Div                 // /
)

func (s Symbol) String() string {
	switch s {
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Mult:
		return "Mult"
	case Div:
		return "Div"
	default:
		return "Symbol(?)"
	}
}

// Char returns the source character of the symbol.
func (s Symbol) Char() byte {
	switch s {
	case Plus:
		return '+'
	case Minus:
		return '-'
	case Mult:
		return '*'
	case Div:
		return '/'
	default:
		return '?'
	}
}

// LookupSymbol maps an operator byte to its Symbol.
func LookupSymbol(b byte) (Symbol, bool) {
	switch b {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Mult, true
	case '/':
		return Div, true
	default:
		return 0, false
	}
}
