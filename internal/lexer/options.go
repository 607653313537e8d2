package lexer

import (
	"arith/internal/diag"
)

type Options struct {
	// Reporter может быть nil — тогда ошибка доступна только через Err().
	Reporter diag.Reporter
}

func (lx *Lexer) report(err *Error) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(err.Diagnostic())
	}
}
