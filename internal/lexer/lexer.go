package lexer

import (
	"golang.org/x/text/cases"

	"github.com/bankiru/PHP-CS-Fixer/internal/source"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

// Lexer turns PHP source into the primitive token vocabulary.
// It never drops bytes: the texts of all produced tokens add up to the input.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	inPHP  bool        // внутри <?php ... ?>
	last   token.Kind  // последний значимый токен
	fold   cases.Caser // not safe for concurrent use; one per lexer
	err    *Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		fold:   cases.Fold(),
	}
}

// Tokenize lexes the whole file. It fails with an error wrapping ErrTokenization
// when the input is not lexable.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	if lx.err != nil {
		return nil, lx.err
	}
	return toks, nil
}

// Err returns the first lexing error, if any.
func (lx *Lexer) Err() error {
	if lx.err == nil {
		return nil
	}
	return lx.err
}

// Next returns the next token; ok is false at the end of input or after an error.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.err != nil || lx.cursor.EOF() {
		return token.Token{}, false
	}
	if !lx.inPHP {
		tok = lx.scanInlineHTML()
	} else {
		tok = lx.scanPHP()
	}
	if lx.err != nil {
		return token.Token{}, false
	}
	if tok.IsMeaningful() {
		lx.last = tok.Kind
	}
	return tok, true
}

func (lx *Lexer) scanPHP() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isSpace(ch):
		return lx.scanWhitespace()
	case lx.cursor.HasPrefix("?>"):
		return lx.scanCloseTag()
	case lx.cursor.HasPrefix("#["):
		start := lx.cursor.Mark()
		lx.cursor.Advance(2)
		return lx.emit(token.Attribute, start)
	case ch == '#' || lx.cursor.HasPrefix("//"):
		return lx.scanLineComment()
	case lx.cursor.HasPrefix("/*"):
		return lx.scanBlockComment()
	case ch == '$' && isIdentStartByte(lx.cursor.PeekAt(1)):
		return lx.scanVariable()
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch) || (ch == '.' && isDec(lx.cursor.PeekAt(1))):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanSingleQuoted()
	case ch == '"':
		return lx.scanDoubleQuoted()
	case lx.cursor.HasPrefix("<<<"):
		return lx.scanHeredoc()
	case ch == '(':
		if tok, ok := lx.tryCast(); ok {
			return tok
		}
	}
	return lx.scanOperatorOrPunct()
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{Kind: kind, Text: lx.cursor.TextFrom(start)}
}

// invalid reports an error and returns the consumed fragment as an Invalid token.
func (lx *Lexer) invalid(start Mark, msg string) token.Token {
	lx.report(lx.cursor.SpanFrom(start), msg)
	return lx.emit(token.Invalid, start)
}
