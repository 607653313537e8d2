package ast

// Op is a binary arithmetic operator in the tree. It mirrors token.Symbol
// but is kept separate so the tree does not depend on lexical details.
type Op uint8

const (
	OpPlus Op = iota
	OpMinus
	OpMult
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpPlus:
		return "Plus"
	case OpMinus:
		return "Minus"
	case OpMult:
		return "Mult"
	case OpDiv:
		return "Div"
	default:
		return "Op(?)"
	}
}

// Symbol returns the infix spelling used by the tree printers.
func (op Op) Symbol() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMult:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

func (op Op) valid() bool { return op <= OpDiv }
