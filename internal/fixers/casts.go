package fixers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

var shortCasts = map[string]string{
	"boolean": "bool",
	"integer": "int",
	"double":  "float",
	"real":    "float",
}

func hasCast(s *tokens.Stream) bool { return s.IsAnyKindFound(token.CastKinds()) }

// ShortScalarCast replaces long scalar cast names with their short forms.
func ShortScalarCast() fixer.Fixer {
	return fixer.Fixer{
		Name:        "short_scalar_cast",
		Description: `Cast "(boolean)" and "(integer)" should be written as "(bool)" and "(int)". "(double)" and "(real)" as "(float)".`,
		Groups:      symfony,
		Samples: []fixer.Sample{
			{Before: "<?php\n$a = (boolean) $b;\n$c = (integer) $d;\n", After: "<?php\n$a = (bool) $b;\n$c = (int) $d;\n"},
		},
		Candidate: hasCast,
		Apply: func(s *tokens.Stream) error {
			fold := cases.Fold()
			for i := range s.Len() {
				tok := s.At(i)
				if !tok.IsCast() {
					continue
				}
				from := strings.TrimSpace(tok.Text[1 : len(tok.Text)-1])
				to, ok := shortCasts[fold.String(from)]
				if !ok {
					continue
				}
				_ = s.SetText(i, strings.Replace(tok.Text, from, to, 1))
			}
			return nil
		},
	}
}

// LowercaseCast lowercases cast names.
func LowercaseCast() fixer.Fixer {
	return fixer.Fixer{
		Name:        "lowercase_cast",
		Description: "Cast should be written in lower case.",
		Groups:      symfony,
		Samples: []fixer.Sample{
			{Before: "<?php\n$a = (BOOLEAN) $b;\n$c = (Int) $d;\n", After: "<?php\n$a = (boolean) $b;\n$c = (int) $d;\n"},
		},
		Candidate: hasCast,
		Apply: func(s *tokens.Stream) error {
			lower := cases.Lower(language.Und)
			for i := range s.Len() {
				if tok := s.At(i); tok.IsCast() {
					_ = s.SetText(i, lower.String(tok.Text))
				}
			}
			return nil
		},
	}
}
