package fixers

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

// NormalizeIndexBrace rewrites $a{0} as $a[0].
func NormalizeIndexBrace() fixer.Fixer {
	return fixer.Fixer{
		Name:        "normalize_index_brace",
		Description: "Array index should always be written by using square braces.",
		Groups:      symfony,
		Samples: []fixer.Sample{
			{Before: "<?php\necho $sample{$index};\n", After: "<?php\necho $sample[$index];\n"},
		},
		Candidate: func(s *tokens.Stream) bool { return s.IsKindFound(token.ArrayIndexCurlyOpen) },
		Apply: func(s *tokens.Stream) error {
			for i := range s.Len() {
				switch s.At(i).Kind {
				case token.ArrayIndexCurlyOpen:
					_ = s.OverrideAt(i, token.New(token.LBracket, "["))
				case token.ArrayIndexCurlyClose:
					_ = s.OverrideAt(i, token.New(token.RBracket, "]"))
				}
			}
			return nil
		},
	}
}
