package tokens

import (
	"fmt"

	"github.com/bankiru/PHP-CS-Fixer/internal/token"
)

// BlockType identifies an open/close kind pair.
type BlockType uint8

const (
	BlockParen BlockType = iota + 1
	BlockCurly
	BlockIndexSquare
	BlockArraySquare
	BlockArrayIndexCurly
	BlockAttribute
	BlockDestructuringSquare
)

type blockEdges struct {
	open, end token.Kind
	name      string
}

var blockTable = map[BlockType]blockEdges{
	BlockParen:               {token.LParen, token.RParen, "paren"},
	BlockCurly:               {token.LBrace, token.RBrace, "curly"},
	BlockIndexSquare:         {token.LBracket, token.RBracket, "index square"},
	BlockArraySquare:         {token.ArraySquareOpen, token.ArraySquareClose, "array square"},
	BlockArrayIndexCurly:     {token.ArrayIndexCurlyOpen, token.ArrayIndexCurlyClose, "array index curly"},
	BlockAttribute:           {token.Attribute, token.AttributeClose, "attribute"},
	BlockDestructuringSquare: {token.DestructuringSquareOpen, token.DestructuringSquareClose, "destructuring square"},
}

func (bt BlockType) String() string {
	if e, ok := blockTable[bt]; ok {
		return e.name
	}
	return fmt.Sprintf("BlockType(%d)", uint8(bt))
}

// Edges returns the open and close kinds of the block type.
func (bt BlockType) Edges() (openKind, closeKind token.Kind) {
	e := blockTable[bt]
	return e.open, e.end
}

// BlockTypeOf maps an open or close kind to its block type.
// isOpen tells which edge kind is.
func BlockTypeOf(kind token.Kind) (bt BlockType, isOpen, ok bool) {
	for t, e := range blockTable {
		switch kind {
		case e.open:
			return t, true, true
		case e.end:
			return t, false, true
		}
	}
	return 0, false, false
}

// FindBlockEnd returns the index of the token closing the block opened at openIdx.
func (s *Stream) FindBlockEnd(bt BlockType, openIdx int) (int, error) {
	return s.findBlock(bt, openIdx, 1)
}

// FindBlockStart returns the index of the token opening the block closed at closeIdx.
func (s *Stream) FindBlockStart(bt BlockType, closeIdx int) (int, error) {
	return s.findBlock(bt, closeIdx, -1)
}

// findBlock считает глубину только для пары одного типа.
func (s *Stream) findBlock(bt BlockType, from, dir int) (int, error) {
	edges, ok := blockTable[bt]
	if !ok {
		return 0, &BlockError{Type: bt, Index: from, Msg: "unknown block type"}
	}
	if err := s.check(from); err != nil {
		return 0, err
	}
	start, end := edges.open, edges.end
	if dir < 0 {
		start, end = end, start
	}
	if s.toks[from].Kind != start {
		return 0, &BlockError{Type: bt, Index: from, Msg: fmt.Sprintf("expected %s, found %s", start, s.toks[from].Kind)}
	}
	depth := 0
	for i := from; i >= 0 && i < len(s.toks); i += dir {
		switch s.toks[i].Kind {
		case start:
			depth++
		case end:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &BlockError{Type: bt, Index: from, Msg: "no matching edge"}
}
