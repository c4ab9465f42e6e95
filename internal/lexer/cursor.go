package lexer

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"github.com/bankiru/PHP-CS-Fixer/internal/source"
)

// Cursor is a byte position inside one file. All reads past the end yield 0.
type Cursor struct {
	file source.FileID
	src  []byte
	off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file too large: %w", err))
	}
	return Cursor{file: f.ID, src: f.Content, end: end}
}

func (c *Cursor) EOF() bool { return c.off >= c.end }

// Rest returns the unread input.
func (c *Cursor) Rest() []byte { return c.src[c.off:c.end] }

func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt returns the byte n positions ahead.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.off+n >= c.end {
		return 0
	}
	return c.src[c.off+n]
}

func (c *Cursor) HasPrefix(s string) bool {
	return bytes.HasPrefix(c.Rest(), []byte(s))
}

// HasPrefixFold is HasPrefix with ASCII case folding.
func (c *Cursor) HasPrefixFold(s string) bool {
	rest := c.Rest()
	return len(rest) >= len(s) && bytes.EqualFold(rest[:len(s)], []byte(s))
}

// Bump consumes and returns one byte.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.off++
	}
	return b
}

// Advance moves n bytes forward, clamped to the end.
func (c *Cursor) Advance(n int) {
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("advance overflow: %w", err))
	}
	c.off = min(c.off+un, c.end)
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.src[c.off] != b {
		return false
	}
	c.off++
	return true
}

// SkipLine consumes everything up to and including the next '\n'.
func (c *Cursor) SkipLine() {
	if i := bytes.IndexByte(c.Rest(), '\n'); i >= 0 {
		c.Advance(i + 1)
		return
	}
	c.off = c.end
}

// Mark запоминает позицию для TextFrom, SpanFrom и Reset.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.off) }

func (c *Cursor) Reset(m Mark) { c.off = uint32(m) }

func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: uint32(m), End: c.off}
}

// TextFrom returns the input between m and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.src[uint32(m):c.off])
}
