package lexer

import (
	"bytes"

	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

func (lx *Lexer) scanSingleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		switch b {
		case '\\':
			lx.cursor.Bump()
		case '\'':
			return lx.emit(token.ConstantString, start)
		}
	}
	return lx.invalid(start, "unterminated string literal")
}

// Строка в двойных кавычках всегда один токен; интерполяция только помечается видом.
func (lx *Lexer) scanDoubleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	interpolated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		switch b {
		case '\\':
			lx.cursor.Bump()
		case '$':
			if next := lx.cursor.Peek(); isIdentStartByte(next) || next == '{' {
				interpolated = true
			}
		case '{':
			if lx.cursor.Peek() == '$' {
				interpolated = true
			}
		case '"':
			if interpolated {
				return lx.emit(token.InterpolatedString, start)
			}
			return lx.emit(token.ConstantString, start)
		}
	}
	return lx.invalid(start, "unterminated string literal")
}

// scanHeredoc consumes a heredoc or nowdoc, including its closing label.
// The closing label may be indented (PHP 7.3 flexible syntax).
func (lx *Lexer) scanHeredoc() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(3)
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	quote := byte(0)
	if b := lx.cursor.Peek(); b == '\'' || b == '"' {
		quote = lx.cursor.Bump()
	}
	labelStart := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	label := lx.cursor.TextFrom(labelStart)
	if label == "" || !isIdentStartByte(label[0]) {
		// не heredoc: отдаём "<<" как оператор сдвига
		lx.cursor.Reset(start)
		lx.cursor.Advance(2)
		return lx.emit(token.Sl, start)
	}
	if quote != 0 && !lx.cursor.Eat(quote) {
		return lx.invalid(start, "malformed heredoc label")
	}
	if !lx.cursor.Eat('\n') && !(lx.cursor.Eat('\r') && lx.cursor.Eat('\n')) {
		return lx.invalid(start, "heredoc label must be followed by a newline")
	}

	needle := []byte(label)
	for !lx.cursor.EOF() {
		// начало строки: пропускаем отступ и сравниваем с меткой
		lineStart := lx.cursor.Mark()
		for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
			lx.cursor.Bump()
		}
		rest := lx.cursor.Rest()
		if bytes.HasPrefix(rest, needle) && (len(rest) == len(needle) || !isIdentContinueByte(rest[len(needle)])) {
			lx.cursor.Advance(len(needle))
			return lx.emit(token.Heredoc, start)
		}
		lx.cursor.Reset(lineStart)
		lx.cursor.SkipLine()
	}
	return lx.invalid(start, "unterminated heredoc")
}
