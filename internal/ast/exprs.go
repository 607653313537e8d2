package ast

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Literals *Arena[ExprIntLitData]
	Binaries *Arena[ExprBinaryData]
}

// NewExprs creates per-kind arenas preallocated with capHint (1<<4 when zero).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 4
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Literals: NewArena[ExprIntLitData](capHint/2 + 1),
		Binaries: NewArena[ExprBinaryData](capHint / 2),
	}
}

func (e *Exprs) new(kind ExprKind, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID, nil if it does not exist.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Len is the number of allocated expressions.
func (e *Exprs) Len() uint32 {
	return e.Arena.Len()
}

// NewIntLit creates a leaf.
func (e *Exprs) NewIntLit(v int32) ExprID {
	payload := e.Literals.Allocate(ExprIntLitData{Value: v})
	return e.new(ExprIntLit, PayloadID(payload))
}

// IntLit returns the literal data for the given expression ID.
func (e *Exprs) IntLit(id ExprID) (*ExprIntLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIntLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary node over two already built children.
func (e *Exprs) NewBinary(left ExprID, op Op, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Left: left, Op: op, Right: right})
	return e.new(ExprBinary, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}
