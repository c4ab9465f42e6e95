package token

import "strings"

// Token is an immutable (kind, text) pair. Streams replace tokens, never mutate them.
type Token struct {
	Kind Kind
	Text string
}

// New creates a token.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Is reports whether the token kind is one of kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// In reports whether the token kind is a member of set.
func (t Token) In(set KindSet) bool { return set.Has(t.Kind) }

// Equals reports whether kind and text both match.
func (t Token) Equals(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsBlank reports whether the token is a cleared placeholder.
func (t Token) IsBlank() bool { return t.Kind == Blank }

// IsWhitespace reports whether the token is a whitespace token.
func (t Token) IsWhitespace() bool { return t.Kind == Whitespace }

// IsWhitespaceOf reports whether the token is whitespace made only of chars.
// " \t" matches single-line whitespace.
func (t Token) IsWhitespaceOf(chars string) bool {
	if t.Kind != Whitespace {
		return false
	}
	return strings.Trim(t.Text, chars) == ""
}

// IsComment reports whether the token is a comment or doc comment.
func (t Token) IsComment() bool { return t.Kind == Comment || t.Kind == DocComment }

// IsCast reports whether the token is a cast.
func (t Token) IsCast() bool { return t.Kind.IsCast() }

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsMeaningful reports whether the token carries code (not whitespace, comment or blank).
func (t Token) IsMeaningful() bool {
	return !t.IsWhitespace() && !t.IsComment() && !t.IsBlank()
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}
