package fixers

import (
	"golang.org/x/text/cases"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

var aliasFunctions = map[string]string{
	"chop":         "rtrim",
	"close":        "closedir",
	"doubleval":    "floatval",
	"fputs":        "fwrite",
	"ini_alter":    "ini_set",
	"is_double":    "is_float",
	"is_integer":   "is_int",
	"is_long":      "is_int",
	"is_real":      "is_float",
	"is_writeable": "is_writable",
	"join":         "implode",
	"key_exists":   "array_key_exists",
	"pos":          "current",
	"show_source":  "highlight_file",
	"sizeof":       "count",
	"strchr":       "strstr",
}

// notGlobalCall lists kinds that turn a following name into a member,
// declaration or instantiation.
var notGlobalCall = token.NewKindSet(
	token.ObjectOperator, token.NullsafeObjectOperator, token.DoubleColon,
	token.KwFunction, token.KwNew, token.KwConst,
)

// NoAliasFunctions replaces calls to aliased master functions.
// Risky: a user function with the alias name in another namespace changes meaning.
func NoAliasFunctions() fixer.Fixer {
	return fixer.Fixer{
		Name:        "no_alias_functions",
		Description: "Master functions shall be used instead of aliases.",
		Risky:       true,
		Groups:      []string{GroupSymfonyRisky},
		Samples: []fixer.Sample{
			{Before: "<?php\n$a = sizeof($b);\n$c = join(',', $d);\n", After: "<?php\n$a = count($b);\n$c = implode(',', $d);\n"},
		},
		Candidate: func(s *tokens.Stream) bool { return s.IsKindFound(token.String) },
		Apply: func(s *tokens.Stream) error {
			fold := cases.Fold()
			for i := range s.Len() {
				tok := s.At(i)
				if tok.Kind != token.String {
					continue
				}
				master, ok := aliasFunctions[fold.String(tok.Text)]
				if !ok || !isGlobalCall(s, i) {
					continue
				}
				_ = s.SetText(i, master)
			}
			return nil
		},
	}
}

// isGlobalCall reports whether the name at i is called as a global function:
// followed by "(" and not qualified by a namespace, object or class.
func isGlobalCall(s *tokens.Stream, i int) bool {
	next, ok := s.NextMeaningful(i)
	if !ok || s.At(next).Kind != token.LParen {
		return false
	}
	prev, ok := s.PrevMeaningful(i)
	if !ok {
		return true
	}
	prevTok := s.At(prev)
	if prevTok.In(notGlobalCall) {
		return false
	}
	if prevTok.Kind == token.NsSeparator {
		// \sizeof() глобальный, Foo\sizeof() нет
		before, ok := s.PrevMeaningful(prev)
		return !ok || s.At(before).Kind != token.String
	}
	return true
}
