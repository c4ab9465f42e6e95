package fixers

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

// keywordLike includes the composite kinds that keep keyword text.
var keywordLike = token.KeywordKinds().Union(token.NewKindSet(
	token.ClassConstant, token.UseLambda, token.UseTrait, token.ArrayTypehint,
))

// LowercaseKeywords lowercases PHP keywords.
func LowercaseKeywords() fixer.Fixer {
	return fixer.Fixer{
		Name:        "lowercase_keywords",
		Description: "PHP keywords MUST be in lower case.",
		Groups:      psr2,
		Samples: []fixer.Sample{
			{Before: "<?php\nFOREACH ($a AS $b) { ECHO $b; }\n", After: "<?php\nforeach ($a as $b) { echo $b; }\n"},
		},
		Candidate: func(s *tokens.Stream) bool { return s.IsAnyKindFound(keywordLike) },
		Apply: func(s *tokens.Stream) error {
			lower := cases.Lower(language.Und)
			for i := range s.Len() {
				if tok := s.At(i); tok.In(keywordLike) {
					_ = s.SetText(i, lower.String(tok.Text))
				}
			}
			return nil
		},
	}
}
