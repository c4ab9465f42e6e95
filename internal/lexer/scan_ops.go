package lexer

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
var (
	ops3 = []struct {
		text string
		kind token.Kind
	}{
		{"===", token.IsIdentical},
		{"!==", token.IsNotIdentical},
		{"<=>", token.Spaceship},
		{"**=", token.PowEqual},
		{"...", token.Ellipsis},
		{"<<=", token.SlEqual},
		{">>=", token.SrEqual},
		{"??=", token.CoalesceEqual},
		{"?->", token.NullsafeObjectOperator},
	}
	ops2 = []struct {
		text string
		kind token.Kind
	}{
		{"->", token.ObjectOperator},
		{"::", token.DoubleColon},
		{"=>", token.DoubleArrow},
		{"++", token.Inc},
		{"--", token.Dec},
		{"==", token.IsEqual},
		{"!=", token.IsNotEqual},
		{"<>", token.IsNotEqual},
		{"<=", token.IsSmallerOrEqual},
		{">=", token.IsGreaterOrEqual},
		{"&&", token.BooleanAnd},
		{"||", token.BooleanOr},
		{"+=", token.PlusEqual},
		{"-=", token.MinusEqual},
		{"*=", token.MulEqual},
		{"/=", token.DivEqual},
		{".=", token.ConcatEqual},
		{"%=", token.ModEqual},
		{"&=", token.AndEqual},
		{"|=", token.OrEqual},
		{"^=", token.XorEqual},
		{"**", token.Pow},
		{"<<", token.Sl},
		{">>", token.Sr},
		{"??", token.Coalesce},
	}
	ops1 = map[byte]token.Kind{
		'(':  token.LParen,
		')':  token.RParen,
		'{':  token.LBrace,
		'}':  token.RBrace,
		'[':  token.LBracket,
		']':  token.RBracket,
		';':  token.Semicolon,
		',':  token.Comma,
		'.':  token.Dot,
		'=':  token.Equals,
		'+':  token.Plus,
		'-':  token.Minus,
		'*':  token.Star,
		'/':  token.Slash,
		'%':  token.Percent,
		'&':  token.Amp,
		'|':  token.Pipe,
		'^':  token.Caret,
		'~':  token.Tilde,
		'!':  token.Bang,
		'?':  token.Question,
		':':  token.Colon,
		'<':  token.Lt,
		'>':  token.Gt,
		'@':  token.At,
		'$':  token.Dollar,
		'`':  token.Backtick,
		'\\': token.NsSeparator,
	}
)

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	for _, op := range ops3 {
		if lx.cursor.HasPrefix(op.text) {
			lx.cursor.Advance(3)
			return lx.emit(op.kind, start)
		}
	}
	for _, op := range ops2 {
		if lx.cursor.HasPrefix(op.text) {
			lx.cursor.Advance(2)
			return lx.emit(op.kind, start)
		}
	}
	ch := lx.cursor.Bump()
	if kind, ok := ops1[ch]; ok {
		return lx.emit(kind, start)
	}
	return lx.invalid(start, "unexpected character")
}

// tryCast recognises "(" [ \t]* type [ \t]* ")" as a single cast token.
func (lx *Lexer) tryCast() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '('
	lx.skipInlineSpace()
	nameStart := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	name := lx.cursor.TextFrom(nameStart)
	lx.skipInlineSpace()
	if name == "" || !lx.cursor.Eat(')') {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	kind, ok := token.LookupCast(lx.fold.String(name))
	if !ok {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	return lx.emit(kind, start), true
}

func (lx *Lexer) skipInlineSpace() {
	for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
}
