package parser

import (
	"io"

	"github.com/k0kubun/pp"

	"arith/internal/ast"
	"arith/internal/diag"
	"arith/internal/token"
)

type Options struct {
	Reporter diag.Reporter
	// Trace, when set, receives a dump of the input tokens and the result.
	Trace io.Writer
}

// Parser — состояние парсера на одно выражение
type Parser struct {
	ts    tokenStream
	exprs *ast.Exprs
	state State
	opts  Options
}

// Parse builds the expression tree for tokens. An empty sequence is an error.
func Parse(tokens []token.Token) (*ast.Tree, error) {
	return ParseWith(tokens, Options{})
}

// ParseWith is Parse with diagnostics and tracing options.
func ParseWith(tokens []token.Token, opts Options) (*ast.Tree, error) {
	p := Parser{
		ts:    tokenStream{tokens: tokens},
		exprs: ast.NewExprs(uint(len(tokens))),
		state: ExpectOperand,
		opts:  opts,
	}
	p.trace("tokens", tokens)

	root, err := p.parseExpression()
	if err != nil {
		p.trace("error", err)
		return nil, err
	}
	tree := ast.NewTree(p.exprs, root)
	p.trace("tree", tree.String())
	return tree, nil
}

func (p *Parser) fail(tok *token.Token) *Error {
	index := p.ts.pos
	if tok != nil {
		index-- // токен уже съеден
	}
	err := newError(p.state, index, tok)
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(err.Diagnostic())
	}
	return err
}

func (p *Parser) trace(label string, v any) {
	if p.opts.Trace == nil {
		return
	}
	_, _ = pp.Fprintln(p.opts.Trace, label, v)
}
