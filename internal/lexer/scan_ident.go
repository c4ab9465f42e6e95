package lexer

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Variable, start)
}

// scanIdentOrKeyword reads an identifier and resolves keywords case-insensitively.
// Member names after -> and ?-> are always plain identifiers; after :: only
// "class" keeps its keyword kind.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.String, start)

	switch lx.last {
	case token.ObjectOperator, token.NullsafeObjectOperator:
		return tok
	}
	folded := lx.fold.String(tok.Text)
	kind, ok := token.LookupKeyword(folded)
	if !ok {
		return tok
	}
	if lx.last == token.DoubleColon && kind != token.KwClass {
		return tok
	}
	tok.Kind = kind
	return tok
}
