package tokens

import "github.com/bankiru/PHP-CS-Fixer/internal/token"

// Next returns the first index after from whose token satisfies pred.
func (s *Stream) Next(from int, pred func(token.Token) bool) (int, bool) {
	for i := max(from+1, 0); i < len(s.toks); i++ {
		if pred(s.toks[i]) {
			return i, true
		}
	}
	return 0, false
}

// Prev returns the last index before from whose token satisfies pred.
func (s *Stream) Prev(from int, pred func(token.Token) bool) (int, bool) {
	for i := min(from-1, len(s.toks)-1); i >= 0; i-- {
		if pred(s.toks[i]) {
			return i, true
		}
	}
	return 0, false
}

// NextOfKind finds the next token after from with a kind in set.
func (s *Stream) NextOfKind(from int, set token.KindSet) (int, bool) {
	return s.Next(from, func(t token.Token) bool { return set.Has(t.Kind) })
}

// PrevOfKind finds the previous token before from with a kind in set.
func (s *Stream) PrevOfKind(from int, set token.KindSet) (int, bool) {
	return s.Prev(from, func(t token.Token) bool { return set.Has(t.Kind) })
}

// NextMeaningful skips whitespace, comments and blanks.
func (s *Stream) NextMeaningful(from int) (int, bool) {
	return s.Next(from, token.Token.IsMeaningful)
}

// PrevMeaningful skips whitespace, comments and blanks.
func (s *Stream) PrevMeaningful(from int) (int, bool) {
	return s.Prev(from, token.Token.IsMeaningful)
}

func nonWhitespace(t token.Token) bool { return !t.IsWhitespace() && !t.IsBlank() }

// NextNonWhitespace skips whitespace and blanks but stops at comments.
func (s *Stream) NextNonWhitespace(from int) (int, bool) {
	return s.Next(from, nonWhitespace)
}

// PrevNonWhitespace skips whitespace and blanks but stops at comments.
func (s *Stream) PrevNonWhitespace(from int) (int, bool) {
	return s.Prev(from, nonWhitespace)
}
