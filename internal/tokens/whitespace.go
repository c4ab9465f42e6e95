package tokens

import (
	"strings"

	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

// EnsureWhitespaceAt normalizes the whitespace next to slot i to ws.
//
// When slot i is whitespace it is replaced by ws (or cleared when ws is empty).
// Otherwise offset selects the side: 0 means before i, 1 means after i. An
// existing whitespace neighbor on that side is replaced; without one a new
// whitespace token is inserted at i+offset. The stream never ends up with two
// adjacent whitespace tokens. inserted reports a structural change.
func (s *Stream) EnsureWhitespaceAt(i, offset int, ws string) (inserted bool, err error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	if offset != 0 && offset != 1 {
		return false, &RangeError{Index: i + offset, Len: len(s.toks)}
	}
	if s.toks[i].IsWhitespace() {
		return false, s.setWhitespace(i, ws)
	}
	neighbor := i - 1
	if offset == 1 {
		neighbor = i + 1
	}
	if neighbor >= 0 && neighbor < len(s.toks) && s.toks[neighbor].IsWhitespace() {
		return false, s.setWhitespace(neighbor, ws)
	}
	ws = s.absorbIntoOpenTag(i+offset-1, ws)
	if ws == "" {
		return false, nil
	}
	if err := s.Insert(i+offset, token.New(token.Whitespace, ws)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Stream) setWhitespace(i int, ws string) error {
	ws = s.absorbIntoOpenTag(i-1, ws)
	if ws == "" {
		return s.Clear(i)
	}
	return s.SetText(i, ws)
}

// Открывающий тег уже несёт один пробельный символ: первый символ ws уходит в него.
func (s *Stream) absorbIntoOpenTag(prev int, ws string) string {
	if prev < 0 || prev >= len(s.toks) || s.toks[prev].Kind != token.OpenTag || ws == "" {
		return ws
	}
	tag := strings.TrimRight(s.toks[prev].Text, " \t\r\n")
	head := ws[:1]
	if strings.HasPrefix(ws, "\r\n") {
		head = "\r\n"
	}
	_ = s.SetText(prev, tag+head)
	return ws[len(head):]
}
