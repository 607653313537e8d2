package driver

import (
	"log/slog"

	"arith/internal/diag"
	"arith/internal/lexer"
	"arith/internal/observ"
	"arith/internal/token"
)

// TokenizeResult is the outcome of tokenizing one expression.
// On a lexical error Tokens is nil and Err holds the *lexer.Error.
type TokenizeResult struct {
	Input  string
	Tokens []token.Token
	Bag    *diag.Bag
	Err    error
	Timer  *observ.Timer
}

// Failed reports whether the expression produced an error.
func (r *TokenizeResult) Failed() bool {
	return r.Err != nil
}

func Tokenize(input string, maxDiagnostics int) *TokenizeResult {
	timer := observ.NewTimer()
	bag := diag.NewBag(maxDiagnostics)

	idx := timer.Begin("tokenize")
	tokens, err := lexer.TokenizeWith(input, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	timer.End(idx)
	if err != nil {
		slog.Debug("tokenize failed", "input", input, "error", err)
	}

	return &TokenizeResult{
		Input:  input,
		Tokens: tokens,
		Bag:    bag,
		Err:    err,
		Timer:  timer,
	}
}
