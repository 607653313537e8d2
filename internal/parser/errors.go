package parser

import (
	"fmt"

	"arith/internal/diag"
	"arith/internal/token"
)

// State is the position in the two-state grammar automaton.
type State uint8

const (
	// ExpectOperand: the next token must be an integer.
	ExpectOperand State = iota
	// ExpectOperatorOrEnd: the next token must be an operator, or input may end.
	ExpectOperatorOrEnd
)

func (s State) String() string {
	switch s {
	case ExpectOperand:
		return "ExpectOperand"
	case ExpectOperatorOrEnd:
		return "ExpectOperatorOrEnd"
	default:
		return "State(?)"
	}
}

func (s State) expectation() string {
	if s == ExpectOperand {
		return "expected an integer"
	}
	return "expected an operator"
}

// Error is a syntax failure. Parsing stops at the first one.
type Error struct {
	Code  diag.Code
	State State
	// Index of the offending token, or len(tokens) when the input ran out.
	Index int
	// Token is the offending token; nil when no token was left.
	Token *token.Token
	Msg   string
}

func newError(state State, index int, tok *token.Token) *Error {
	e := &Error{State: state, Index: index, Token: tok}
	if tok == nil {
		e.Code = diag.SynNoTokenLeft
		e.Msg = "no token left: " + state.expectation()
	} else {
		e.Code = diag.SynUnexpectedToken
		e.Msg = fmt.Sprintf("unexpected token %v: %s", *tok, state.expectation())
	}
	return e
}

func (e *Error) Error() string {
	return e.Msg
}

// Diagnostic converts the error for a diag.Reporter.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     e.Code,
		Message:  e.Msg,
		Token:    e.Index,
	}
}
