package lexer

import (
	"errors"
	"fmt"

	"github.com/bankiru/PHP-CS-Fixer/internal/source"
)

// ErrTokenization is wrapped by every lexing failure.
var ErrTokenization = errors.New("tokenization failed")

// Error describes the first lexing failure of a file.
type Error struct {
	Path   string
	Offset uint32
	Pos    source.LineCol
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Msg)
}

func (e *Error) Unwrap() error { return ErrTokenization }
