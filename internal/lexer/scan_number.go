package lexer

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

// scanNumber handles 0x.., 0b.., 0o.., decimal, float and exponent forms with '_' separators.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	c0, c1 := lx.cursor.Peek(), lx.cursor.PeekAt(1)

	if c0 == '0' && (c1 == 'x' || c1 == 'X') && isHex(lx.cursor.PeekAt(2)) {
		lx.cursor.Advance(2)
		lx.eatDigits(isHex)
		return lx.emit(token.LNumber, start)
	}
	if c0 == '0' && (c1 == 'b' || c1 == 'B') && isBin(lx.cursor.PeekAt(2)) {
		lx.cursor.Advance(2)
		lx.eatDigits(isBin)
		return lx.emit(token.LNumber, start)
	}
	if c0 == '0' && (c1 == 'o' || c1 == 'O') && isDec(lx.cursor.PeekAt(2)) {
		lx.cursor.Advance(2)
		lx.eatDigits(isDec)
		return lx.emit(token.LNumber, start)
	}

	kind := token.LNumber
	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		kind = token.DNumber
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) || ((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
			kind = token.DNumber
			lx.cursor.Advance(2)
			lx.eatDigits(isDec)
		}
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDigits(accept func(byte) bool) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if accept(b) || (b == '_' && accept(lx.cursor.PeekAt(1))) {
			lx.cursor.Bump()
			continue
		}
		return
	}
}
