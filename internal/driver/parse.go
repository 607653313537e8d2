package driver

import (
	"io"
	"log/slog"

	"arith/internal/ast"
	"arith/internal/diag"
	"arith/internal/observ"
	"arith/internal/parser"
	"arith/internal/token"
)

// ParseResult is the outcome of tokenizing and parsing one expression.
// Tree is nil whenever Err is set.
type ParseResult struct {
	Input  string
	Tokens []token.Token
	Tree   *ast.Tree
	Bag    *diag.Bag
	Err    error
	Timer  *observ.Timer
}

func (r *ParseResult) Failed() bool {
	return r.Err != nil
}

type ParseOptions struct {
	MaxDiagnostics int
	// Trace receives the parser's token and tree dump.
	Trace io.Writer
}

func Parse(input string, maxDiagnostics int) *ParseResult {
	return ParseWith(input, ParseOptions{MaxDiagnostics: maxDiagnostics})
}

// ParseWith tokenizes input and, if that succeeds, parses the tokens.
// The parser never sees a partial token stream.
func ParseWith(input string, opts ParseOptions) *ParseResult {
	tr := Tokenize(input, opts.MaxDiagnostics)
	res := &ParseResult{
		Input:  input,
		Tokens: tr.Tokens,
		Bag:    tr.Bag,
		Err:    tr.Err,
		Timer:  tr.Timer,
	}
	if tr.Err != nil {
		return res
	}

	reporter := spanReporter{
		inner: diag.BagReporter{Bag: res.Bag},
		input: input,
	}
	idx := res.Timer.Begin("parse")
	tree, err := parser.ParseWith(tr.Tokens, parser.Options{
		Reporter: &reporter,
		Trace:    opts.Trace,
	})
	res.Timer.End(idx)
	if err != nil {
		slog.Debug("parse failed", "input", input, "error", err)
		res.Err = err
		return res
	}
	res.Tree = tree
	return res
}
