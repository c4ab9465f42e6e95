package fixers

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

const (
	syntaxShort = "short"
	syntaxLong  = "long"
)

var arraySyntaxOptions = []fixer.OptionSpec{{
	Name:        "syntax",
	Description: "whether to use the long or the short array syntax",
	Default:     syntaxShort,
	Allowed:     []string{syntaxShort, syntaxLong},
}}

// ArraySyntax converts between array(...) and [...].
func ArraySyntax() fixer.Fixer {
	return arraySyntax(syntaxShort)
}

func arraySyntax(syntax string) fixer.Fixer {
	f := fixer.Fixer{
		Name:        "array_syntax",
		Description: "PHP arrays should be declared using the configured syntax.",
		Groups:      symfony,
		OptionSpecs: arraySyntaxOptions,
		Samples: []fixer.Sample{
			{Before: "<?php\n$a = array(1, 2);\n", After: "<?php\n$a = [1, 2];\n"},
			{Before: "<?php\n$a = [1, 2];\n", After: "<?php\n$a = array(1, 2);\n", Options: fixer.Options{"syntax": syntaxLong}},
		},
		Configure: configureArraySyntax,
	}
	if syntax == syntaxLong {
		f.Candidate = func(s *tokens.Stream) bool { return s.IsKindFound(token.ArraySquareOpen) }
		f.Apply = toLongArrays
	} else {
		f.Candidate = func(s *tokens.Stream) bool { return s.IsKindFound(token.KwArray) }
		f.Apply = toShortArrays
	}
	return f
}

func configureArraySyntax(opts fixer.Options) (fixer.Fixer, error) {
	if err := opts.CheckKnown("array_syntax", arraySyntaxOptions); err != nil {
		return fixer.Fixer{}, err
	}
	syntax, err := opts.String("array_syntax", "syntax", syntaxShort, syntaxShort, syntaxLong)
	if err != nil {
		return fixer.Fixer{}, err
	}
	return arraySyntax(syntax), nil
}

// array( ... ) -> [ ... ]; только Clear и OverrideAt, индексы не сдвигаются
func toShortArrays(s *tokens.Stream) error {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.At(i).Kind != token.KwArray {
			continue
		}
		open, ok := s.NextMeaningful(i)
		if !ok || s.At(open).Kind != token.LParen {
			continue
		}
		end, err := s.FindBlockEnd(tokens.BlockParen, open)
		if err != nil {
			return err
		}
		_ = s.OverrideAt(open, token.New(token.ArraySquareOpen, "["))
		_ = s.OverrideAt(end, token.New(token.ArraySquareClose, "]"))
		_ = s.Clear(i)
		for j := i + 1; j < open; j++ {
			if s.At(j).IsWhitespace() {
				_ = s.Clear(j)
			}
		}
	}
	return nil
}

// [ ... ] -> array( ... ); с конца, чтобы вставка не портила ещё не пройденные индексы
func toLongArrays(s *tokens.Stream) error {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.At(i).Kind != token.ArraySquareOpen {
			continue
		}
		end, err := s.FindBlockEnd(tokens.BlockArraySquare, i)
		if err != nil {
			return err
		}
		_ = s.OverrideAt(end, token.New(token.RParen, ")"))
		_ = s.OverrideAt(i, token.New(token.LParen, "("))
		if err := s.Insert(i, token.New(token.KwArray, "array")); err != nil {
			return err
		}
	}
	return nil
}
