package lexer

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/source"
)

// Reporter, if set, is told about lexing errors as they are found.
// The lexer only calls it; the caller decides what to do with the report.
type Reporter interface {
	Report(span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil
}

func (lx *Lexer) report(sp source.Span, msg string) {
	if lx.err == nil {
		lx.err = &Error{
			Path:   lx.file.Path,
			Offset: sp.Start,
			Pos:    lx.file.Position(sp.Start),
			Msg:    msg,
		}
	}
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(sp, msg)
	}
}
