package tokens

import (
	"crypto/sha256"
	"strings"

	"github.com/bankiru/PHP-CS-Fixer/internal/source"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

// Stream is an index-addressable token sequence owned by a single file task.
// It is not safe for concurrent use.
type Stream struct {
	toks []token.Token
	gen  uint64

	// presence index, valid while presenceGen == gen
	presence    token.KindSet
	presenceGen uint64
	presenceOK  bool

	// rendered code, valid while codeGen == gen
	code    string
	codeGen uint64
	codeOK  bool
}

// New creates a stream over a copy of toks.
func New(toks []token.Token) *Stream {
	cp := make([]token.Token, len(toks))
	copy(cp, toks)
	return &Stream{toks: cp}
}

// Len returns the number of slots, blanks included.
func (s *Stream) Len() int { return len(s.toks) }

// Generation grows on every mutation.
func (s *Stream) Generation() uint64 { return s.gen }

// Tokens returns a copy of the current slots.
func (s *Stream) Tokens() []token.Token {
	cp := make([]token.Token, len(s.toks))
	copy(cp, s.toks)
	return cp
}

func (s *Stream) check(i int) error {
	if i < 0 || i >= len(s.toks) {
		return &RangeError{Index: i, Len: len(s.toks)}
	}
	return nil
}

// Get returns the token at i.
func (s *Stream) Get(i int) (token.Token, error) {
	if err := s.check(i); err != nil {
		return token.Token{}, err
	}
	return s.toks[i], nil
}

// At is Get for code that has already checked its bounds.
// It panics with a *RangeError otherwise.
func (s *Stream) At(i int) token.Token {
	if err := s.check(i); err != nil {
		panic(err)
	}
	return s.toks[i]
}

// Insert places toks at i, shifting every slot at or after i.
// i may equal Len() to append.
func (s *Stream) Insert(i int, toks ...token.Token) error {
	if i < 0 || i > len(s.toks) {
		return &RangeError{Index: i, Len: len(s.toks)}
	}
	if len(toks) == 0 {
		return nil
	}
	s.toks = append(s.toks, toks...)
	copy(s.toks[i+len(toks):], s.toks[i:len(s.toks)-len(toks)])
	copy(s.toks[i:], toks)
	s.touch()
	return nil
}

// Clear turns the slot at i into a Blank placeholder. No index moves.
func (s *Stream) Clear(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	if s.toks[i].IsBlank() {
		return nil
	}
	s.toks[i] = token.Token{Kind: token.Blank}
	s.touch()
	return nil
}

// OverrideAt replaces the token at i.
func (s *Stream) OverrideAt(i int, tok token.Token) error {
	if err := s.check(i); err != nil {
		return err
	}
	if s.toks[i] == tok {
		return nil
	}
	s.toks[i] = tok
	s.touch()
	return nil
}

// SetText replaces the text at i and keeps its kind.
func (s *Stream) SetText(i int, text string) error {
	if err := s.check(i); err != nil {
		return err
	}
	return s.OverrideAt(i, token.Token{Kind: s.toks[i].Kind, Text: text})
}

// SetKind replaces the kind at i and keeps its text.
func (s *Stream) SetKind(i int, kind token.Kind) error {
	if err := s.check(i); err != nil {
		return err
	}
	return s.OverrideAt(i, token.Token{Kind: kind, Text: s.toks[i].Text})
}

// ClearEmptyTokens drops Blank and empty slots and merges runs of whitespace.
// Indices after the first removed slot shift.
func (s *Stream) ClearEmptyTokens() {
	out := s.toks[:0]
	changed := false
	for _, tok := range s.toks {
		if tok.IsBlank() || tok.Text == "" {
			changed = true
			continue
		}
		if tok.IsWhitespace() && len(out) > 0 && out[len(out)-1].IsWhitespace() {
			out[len(out)-1].Text += tok.Text
			changed = true
			continue
		}
		out = append(out, tok)
	}
	if !changed {
		return
	}
	clear(s.toks[len(out):])
	s.toks = out
	s.touch()
}

// Code renders the stream back to text.
func (s *Stream) Code() string {
	if s.codeOK && s.codeGen == s.gen {
		return s.code
	}
	var sb strings.Builder
	for _, tok := range s.toks {
		sb.WriteString(tok.Text)
	}
	s.code, s.codeGen, s.codeOK = sb.String(), s.gen, true
	return s.code
}

// Signature is the SHA-256 of Code().
func (s *Stream) Signature() source.Digest {
	return sha256.Sum256([]byte(s.Code()))
}

func (s *Stream) touch() { s.gen++ }
