package lexer

import (
	"dlint/internal/diag"
	"dlint/internal/source"
)

// Options configures a Lexer.
//
// Reporter may be nil: lexical errors are then swallowed and lexing
// continues. The lint pre-scan relies on this: the declaration tree
// producer has already accepted the file, so a best-effort token list
// is sufficient and lexical noise is not surfaced twice.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
