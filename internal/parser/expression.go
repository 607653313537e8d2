package parser

import (
	"fmt"

	"arith/internal/ast"
	"arith/internal/token"
)

// parseExpression parses one prefix term and then folds infix continuations
// while tokens remain. parseInfix recurses back here for its right operand,
// so the right operand absorbs every remaining operator: a op1 b op2 c is
// a op1 (b op2 c) regardless of the operators involved. There is no
// precedence table: 1*2+3 groups as 1*(2+3).
func (p *Parser) parseExpression() (ast.ExprID, error) {
	expr, err := p.parsePrefix()
	if err != nil {
		return ast.NoExprID, err
	}
	for p.ts.more() {
		expr, err = p.parseInfix(expr)
		if err != nil {
			return ast.NoExprID, err
		}
	}
	return expr, nil
}

// parsePrefix consumes exactly one token, which must be an integer.
func (p *Parser) parsePrefix() (ast.ExprID, error) {
	tok, ok := p.ts.next()
	if !ok {
		return ast.NoExprID, p.fail(nil)
	}
	if tok.Kind != token.IntLit {
		return ast.NoExprID, p.fail(&tok)
	}
	p.state = ExpectOperatorOrEnd
	return p.exprs.NewIntLit(tok.Value), nil
}

// parseInfix consumes exactly one operator and parses the rest of the
// stream as its right operand.
func (p *Parser) parseInfix(left ast.ExprID) (ast.ExprID, error) {
	tok, ok := p.ts.next()
	if !ok {
		return ast.NoExprID, p.fail(nil)
	}
	op, isOp := symbolToOp(tok.Symbol)
	if tok.Kind != token.Operator || !isOp {
		return ast.NoExprID, p.fail(&tok)
	}
	p.state = ExpectOperand

	right, err := p.parseExpression()
	if err != nil {
		return ast.NoExprID, fmt.Errorf("failed to parse right expression: %w", err)
	}
	return p.exprs.NewBinary(left, op, right), nil
}
