package fixers

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

const singleLine = " \t"

var (
	lparenSet  = token.NewKindSet(token.LParen)
	bodyOrSemi = token.NewKindSet(token.LBrace, token.Semicolon)
)

// FunctionDeclaration normalizes spacing in function and closure declarations.
func FunctionDeclaration() fixer.Fixer {
	return fixer.Fixer{
		Name:        "function_declaration",
		Description: "Spaces should be properly placed in a function declaration.",
		Groups:      psr2,
		Samples: []fixer.Sample{
			{Before: "<?php\nfunction  foo  ( $a ){}\n", After: "<?php\nfunction foo($a) {}\n"},
			{Before: "<?php\n$f = function( $x )use( $y ){};\n", After: "<?php\n$f = function ($x) use ($y) {};\n"},
		},
		Candidate: func(s *tokens.Stream) bool { return s.IsKindFound(token.KwFunction) },
		Apply:     fixFunctionDeclarations,
	}
}

// Правки внутри одной функции идут справа налево: вставка сдвигает только
// уже обработанные индексы.
func fixFunctionDeclarations(s *tokens.Stream) error {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.At(i).Kind != token.KwFunction {
			continue
		}
		open, ok := s.NextOfKind(i, lparenSet)
		if !ok {
			continue
		}
		end, err := s.FindBlockEnd(tokens.BlockParen, open)
		if err != nil {
			return err
		}

		// `function foo(){}` -> `function foo() {}`
		if brace, ok := s.NextOfKind(end, bodyOrSemi); ok && s.At(brace).Kind == token.LBrace {
			before := s.At(brace - 1)
			if !before.IsWhitespace() || before.IsWhitespaceOf(singleLine) {
				if _, err := s.EnsureWhitespaceAt(brace-1, 1, " "); err != nil {
					return err
				}
			}
		}

		if after, ok := s.NextNonWhitespace(end); ok && s.At(after).Kind == token.UseLambda {
			useOpen, ok := s.NextOfKind(after, lparenSet)
			if ok {
				useEnd, err := s.FindBlockEnd(tokens.BlockParen, useOpen)
				if err != nil {
					return err
				}
				clearInnerEdges(s, useOpen, useEnd)
			}
			if _, err := s.EnsureWhitespaceAt(after+1, 0, " "); err != nil {
				return err
			}
			if _, err := s.EnsureWhitespaceAt(after-1, 1, " "); err != nil {
				return err
			}
		}

		clearInnerEdges(s, open, end)

		if !isLambda(s, i) && s.At(open-1).IsWhitespace() {
			_ = s.Clear(open - 1)
		}

		// `function     foo() {}` -> `function foo() {}`
		if _, err := s.EnsureWhitespaceAt(i+1, 0, " "); err != nil {
			return err
		}
	}
	return nil
}

// clearInnerEdges removes single-line whitespace right inside ( and ).
func clearInnerEdges(s *tokens.Stream, open, end int) {
	if s.At(end - 1).IsWhitespaceOf(singleLine) {
		_ = s.Clear(end - 1)
	}
	if s.At(open + 1).IsWhitespaceOf(singleLine) {
		_ = s.Clear(open + 1)
	}
}

// isLambda reports whether the function keyword at i starts a closure.
func isLambda(s *tokens.Stream, i int) bool {
	next, ok := s.NextMeaningful(i)
	if ok && s.At(next).Kind == token.Amp {
		next, ok = s.NextMeaningful(next)
	}
	return ok && s.At(next).Kind == token.LParen
}
