// Package testkit holds stream invariants shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

// CheckStreamInvariants runs the invariants every compacted stream must hold:
// 1) no Blank placeholders and no empty texts
// 2) no two adjacent whitespace tokens
func CheckStreamInvariants(s *tokens.Stream) error {
	if s == nil {
		return fmt.Errorf("nil stream")
	}
	toks := s.Tokens()
	for i, tok := range toks {
		if tok.IsBlank() {
			return fmt.Errorf("blank token at %d", i)
		}
		if tok.Text == "" {
			return fmt.Errorf("empty %s token at %d", tok.Kind, i)
		}
		if i > 0 && tok.IsWhitespace() && toks[i-1].IsWhitespace() {
			return fmt.Errorf("adjacent whitespace tokens at %d and %d", i-1, i)
		}
	}
	return nil
}

// CheckRoundTrip lexes code and verifies the stream renders it back byte for
// byte. Lexing errors are returned unchanged so callers can match them.
func CheckRoundTrip(code string) (*tokens.Stream, error) {
	s, err := tokens.FromCode(code)
	if err != nil {
		return nil, err
	}
	if got := s.Code(); got != code {
		return nil, fmt.Errorf("round trip mismatch:\n got %q\nwant %q", got, code)
	}
	if err := CheckStreamInvariants(s); err != nil {
		return nil, err
	}
	return s, nil
}
