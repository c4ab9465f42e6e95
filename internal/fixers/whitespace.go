package fixers

import (
	"regexp"
	"strings"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

var trailingSpace = regexp.MustCompile(`[ \t]+(\r?\n)`)

// NoTrailingWhitespace removes spaces and tabs at the end of lines.
func NoTrailingWhitespace() fixer.Fixer {
	return fixer.Fixer{
		Name:        "no_trailing_whitespace",
		Description: "Remove trailing whitespace at the end of non-blank lines.",
		Groups:      psr2,
		Samples: []fixer.Sample{
			{Before: "<?php\n$a = 1;   \n", After: "<?php\n$a = 1;\n"},
		},
		Candidate: func(s *tokens.Stream) bool {
			return s.IsAnyKindFound(token.NewKindSet(token.Whitespace, token.Comment))
		},
		Apply: func(s *tokens.Stream) error {
			last := s.Len() - 1
			for i := range s.Len() {
				tok := s.At(i)
				switch {
				case tok.IsWhitespace():
					text := trailingSpace.ReplaceAllString(tok.Text, "$1")
					if i == last {
						text = strings.TrimRight(text, singleLine)
					}
					if text == "" {
						_ = s.Clear(i)
					} else {
						_ = s.SetText(i, text)
					}
				case tok.Kind == token.Comment && isLineComment(tok.Text) && endsLine(s, i):
					_ = s.SetText(i, strings.TrimRight(tok.Text, singleLine))
				case tok.Kind == token.OpenTag && endsLine(s, i):
					_ = s.SetText(i, strings.TrimRight(tok.Text, singleLine))
				}
			}
			return nil
		},
	}
}

func isLineComment(text string) bool {
	return strings.HasPrefix(text, "//") || strings.HasPrefix(text, "#")
}

// endsLine reports whether the token at i is followed by a newline or the end of input.
func endsLine(s *tokens.Stream, i int) bool {
	next, ok := s.Next(i, func(t token.Token) bool { return !t.IsBlank() })
	if !ok {
		return true
	}
	tok := s.At(next)
	rest := strings.TrimLeft(tok.Text, singleLine)
	return tok.IsWhitespace() && (strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n"))
}

// SingleBlankLineAtEOF ends a PHP-only file with exactly one newline.
func SingleBlankLineAtEOF() fixer.Fixer {
	return fixer.Fixer{
		Name:        "single_blank_line_at_eof",
		Description: "A PHP file without end tag must always end with a single empty line feed.",
		Priority:    -50,
		Groups:      psr2,
		Samples: []fixer.Sample{
			{Before: "<?php\n$a = 1;", After: "<?php\n$a = 1;\n"},
			{Before: "<?php\n$a = 1;\n\n\n", After: "<?php\n$a = 1;\n"},
		},
		Candidate: func(s *tokens.Stream) bool { return s.Len() > 0 },
		Apply: func(s *tokens.Stream) error {
			last, ok := s.Prev(s.Len(), func(t token.Token) bool { return !t.IsBlank() })
			if !ok {
				return nil
			}
			tok := s.At(last)
			switch {
			case tok.Is(token.InlineHTML, token.CloseTag):
				return nil
			case tok.IsWhitespace():
				return s.SetText(last, "\n")
			case tok.Kind == token.OpenTag && strings.HasSuffix(tok.Text, "\n"):
				return nil
			default:
				return s.Insert(last+1, token.New(token.Whitespace, "\n"))
			}
		},
	}
}
