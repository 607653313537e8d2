package ast

type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIntLit
	ExprBinary
)

func (k ExprKind) String() string {
	switch k {
	case ExprIntLit:
		return "IntLiteral"
	case ExprBinary:
		return "BinaryExpression"
	default:
		return "Invalid"
	}
}

// Expr is the arena header of a node; Payload indexes the per-kind arena.
type Expr struct {
	Kind    ExprKind
	Payload PayloadID
}

type ExprIntLitData struct {
	Value int32
}

// ExprBinaryData exclusively owns Left and Right: no other node refers to them.
type ExprBinaryData struct {
	Left  ExprID
	Op    Op
	Right ExprID
}
