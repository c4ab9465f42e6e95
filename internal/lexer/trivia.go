package lexer

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

// scanInlineHTML emits text up to the next open tag, or the open tag itself.
func (lx *Lexer) scanInlineHTML() token.Token {
	start := lx.cursor.Mark()
	if lx.atOpenTag() {
		return lx.scanOpenTag()
	}
	for !lx.cursor.EOF() && !lx.atOpenTag() {
		lx.cursor.Bump()
	}
	return lx.emit(token.InlineHTML, start)
}

func (lx *Lexer) atOpenTag() bool {
	if lx.cursor.HasPrefix("<?=") {
		return true
	}
	if !lx.cursor.HasPrefixFold("<?php") {
		return false
	}
	next := lx.cursor.PeekAt(5)
	return next == 0 || isSpace(next)
}

// <?php включает ровно один пробельный символ (или \r\n) после себя, как и в PHP.
func (lx *Lexer) scanOpenTag() token.Token {
	start := lx.cursor.Mark()
	lx.inPHP = true
	if lx.cursor.HasPrefix("<?=") {
		lx.cursor.Advance(3)
		return lx.emit(token.OpenTagWithEcho, start)
	}
	lx.cursor.Advance(5)
	lx.eatOneNewlineOrSpace()
	return lx.emit(token.OpenTag, start)
}

func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	lx.inPHP = false
	if lx.cursor.HasPrefix("\r\n") {
		lx.cursor.Advance(2)
	} else {
		lx.cursor.Eat('\n')
	}
	return lx.emit(token.CloseTag, start)
}

func (lx *Lexer) eatOneNewlineOrSpace() {
	if lx.cursor.HasPrefix("\r\n") {
		lx.cursor.Advance(2)
		return
	}
	if isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// Однострочный комментарий не включает перевод строки; он остаётся отдельным Whitespace.
// A close tag ends the comment as well.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || (b == '\r' && lx.cursor.PeekAt(1) == '\n') || lx.cursor.HasPrefix("?>") {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Comment, start)
}

func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	kind := token.Comment
	if lx.cursor.HasPrefix("/**") && isSpace(lx.cursor.PeekAt(3)) {
		kind = token.DocComment
	}
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Advance(2)
			return lx.emit(kind, start)
		}
		lx.cursor.Bump()
	}
	return lx.invalid(start, "unterminated comment")
}
