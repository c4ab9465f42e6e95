package tokens_test

import (
	"errors"
	"testing"

	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

func TestBlockRoundTrip(t *testing.T) {
	s := mustParse(t, "<?php if (($a) && f($b)) { $c = [1, [2, [3]]]; { } }")
	toks := s.Tokens()
	matched := 0
	for i, tok := range toks {
		bt, isOpen, ok := tokens.BlockTypeOf(tok.Kind)
		if !ok || !isOpen {
			continue
		}
		end, err := s.FindBlockEnd(bt, i)
		if err != nil {
			t.Fatalf("FindBlockEnd(%s, %d): %v", bt, i, err)
		}
		start, err := s.FindBlockStart(bt, end)
		if err != nil {
			t.Fatalf("FindBlockStart(%s, %d): %v", bt, end, err)
		}
		if start != i {
			t.Fatalf("round trip %d -> %d -> %d", i, end, start)
		}
		matched++
	}
	if matched != 8 {
		t.Fatalf("expected 8 blocks, matched %d", matched)
	}
}

func TestBlockNesting(t *testing.T) {
	s := mustParse(t, "<?php (a(b)c)")
	// 0 open, 1 (, 2 a, 3 (, 4 b, 5 ), 6 c, 7 )
	end, err := s.FindBlockEnd(tokens.BlockParen, 1)
	if err != nil || end != 7 {
		t.Fatalf("FindBlockEnd = %d, %v", end, err)
	}
	end, err = s.FindBlockEnd(tokens.BlockParen, 3)
	if err != nil || end != 5 {
		t.Fatalf("inner FindBlockEnd = %d, %v", end, err)
	}
}

func TestUnbalancedBlock(t *testing.T) {
	s := mustParse(t, "<?php ((a)")
	if _, err := s.FindBlockEnd(tokens.BlockParen, 1); !errors.Is(err, tokens.ErrUnbalancedBlock) {
		t.Fatalf("expected ErrUnbalancedBlock, got %v", err)
	}
	s = mustParse(t, "<?php a))")
	if _, err := s.FindBlockStart(tokens.BlockParen, 3); !errors.Is(err, tokens.ErrUnbalancedBlock) {
		t.Fatalf("expected ErrUnbalancedBlock, got %v", err)
	}
	var blockErr *tokens.BlockError
	if _, err := s.FindBlockEnd(tokens.BlockCurly, 2); !errors.As(err, &blockErr) {
		t.Fatalf("expected *BlockError for a non-edge start, got %v", err)
	}
	if _, err := s.FindBlockEnd(tokens.BlockParen, 99); !errors.Is(err, tokens.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestBlockTypeOf(t *testing.T) {
	cases := []struct {
		kind   token.Kind
		bt     tokens.BlockType
		isOpen bool
	}{
		{token.LParen, tokens.BlockParen, true},
		{token.RBrace, tokens.BlockCurly, false},
		{token.ArraySquareClose, tokens.BlockArraySquare, false},
		{token.Attribute, tokens.BlockAttribute, true},
		{token.DestructuringSquareOpen, tokens.BlockDestructuringSquare, true},
		{token.ArrayIndexCurlyClose, tokens.BlockArrayIndexCurly, false},
	}
	for _, tc := range cases {
		bt, isOpen, ok := tokens.BlockTypeOf(tc.kind)
		if !ok || bt != tc.bt || isOpen != tc.isOpen {
			t.Fatalf("BlockTypeOf(%s) = %s, %v, %v", tc.kind, bt, isOpen, ok)
		}
	}
	if _, _, ok := tokens.BlockTypeOf(token.Semicolon); ok {
		t.Fatal("semicolon is not a block edge")
	}
}
