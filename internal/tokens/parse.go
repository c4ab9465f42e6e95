package tokens

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/lexer"
	"github.com/bankiru/PHP-CS-Fixer/internal/source"
)

// FromFile lexes file into a fresh stream.
func FromFile(file *source.File, opts lexer.Options) (*Stream, error) {
	toks, err := lexer.Tokenize(file, opts)
	if err != nil {
		return nil, err
	}
	return &Stream{toks: toks}, nil
}

// FromCode lexes an in-memory snippet.
func FromCode(code string) (*Stream, error) {
	fs := source.NewFileSet()
	return FromFile(fs.Get(fs.AddVirtual("snippet.php", []byte(code))), lexer.Options{})
}
