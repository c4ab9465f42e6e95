package tokens_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

func mustParse(t *testing.T, code string) *tokens.Stream {
	t.Helper()
	s, err := tokens.FromCode(code)
	if err != nil {
		t.Fatalf("FromCode(%q): %v", code, err)
	}
	return s
}

func TestGetOutOfRange(t *testing.T) {
	s := mustParse(t, "<?php $a;")
	for _, i := range []int{-1, s.Len(), s.Len() + 5} {
		if _, err := s.Get(i); !errors.Is(err, tokens.ErrOutOfRange) {
			t.Fatalf("Get(%d): expected ErrOutOfRange, got %v", i, err)
		}
	}
	if tok, err := s.Get(1); err != nil || tok.Kind != token.Variable {
		t.Fatalf("Get(1) = %v, %v", tok, err)
	}
}

func TestAtPanicsWithRangeError(t *testing.T) {
	s := mustParse(t, "<?php")
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, tokens.ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange panic, got %v", r)
		}
	}()
	s.At(10)
}

func TestInsertShiftsIndices(t *testing.T) {
	s := mustParse(t, "<?php $a;")
	gen := s.Generation()
	if err := s.Insert(1, token.New(token.Variable, "$b"), token.New(token.Whitespace, " ")); err != nil {
		t.Fatal(err)
	}
	if s.Generation() == gen {
		t.Fatal("insert must bump generation")
	}
	if got := s.Code(); got != "<?php $b $a;" {
		t.Fatalf("unexpected code %q", got)
	}
	if s.At(3).Text != "$a" {
		t.Fatalf("expected $a shifted to 3, got %v", s.At(3))
	}
	if err := s.Insert(s.Len(), token.New(token.Whitespace, "\n")); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(s.Len()+1, token.New(token.Whitespace, "\n")); !errors.Is(err, tokens.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestClearKeepsIndices(t *testing.T) {
	s := mustParse(t, "<?php $a = 1;")
	n := s.Len()
	if err := s.Clear(1); err != nil {
		t.Fatal(err)
	}
	if s.Len() != n || !s.At(1).IsBlank() {
		t.Fatalf("clear must keep length and leave a blank: %v", s.Tokens())
	}
	if s.At(3).Kind != token.Equals {
		t.Fatalf("expected = at 3, got %v", s.At(3))
	}
	if got := s.Code(); got != "<?php  = 1;" {
		t.Fatalf("unexpected code %q", got)
	}
}

func TestClearEmptyTokensMergesWhitespace(t *testing.T) {
	s := mustParse(t, "<?php $a = 1;")
	_ = s.Clear(3) // "="
	s.ClearEmptyTokens()
	want := []token.Token{
		token.New(token.OpenTag, "<?php "),
		token.New(token.Variable, "$a"),
		token.New(token.Whitespace, "  "),
		token.New(token.LNumber, "1"),
		token.New(token.Semicolon, ";"),
	}
	if diff := cmp.Diff(want, s.Tokens()); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	gen := s.Generation()
	s.ClearEmptyTokens()
	if s.Generation() != gen {
		t.Fatal("no-op compaction must not bump generation")
	}
}

func TestOverrideAndSetters(t *testing.T) {
	s := mustParse(t, "<?php (boolean)$x;")
	if err := s.SetText(1, "(bool)"); err != nil {
		t.Fatal(err)
	}
	if s.At(1).Kind != token.BoolCast {
		t.Fatalf("SetText must keep kind, got %v", s.At(1))
	}
	if err := s.SetKind(2, token.String); err != nil {
		t.Fatal(err)
	}
	if s.At(2).Text != "$x" {
		t.Fatalf("SetKind must keep text, got %v", s.At(2))
	}
	gen := s.Generation()
	if err := s.OverrideAt(2, s.At(2)); err != nil || s.Generation() != gen {
		t.Fatalf("identical override must be a no-op (err=%v)", err)
	}
	if s.Code() != "<?php (bool)$x;" {
		t.Fatalf("unexpected code %q", s.Code())
	}
}

func TestCodeMemoisedPerGeneration(t *testing.T) {
	s := mustParse(t, "<?php $a;")
	first := s.Code()
	sig := s.Signature()
	_ = s.SetText(1, "$b")
	if s.Code() == first {
		t.Fatal("Code must be recomputed after a mutation")
	}
	if s.Signature() == sig {
		t.Fatal("Signature must change with content")
	}
}

func TestPresenceIndexFreshness(t *testing.T) {
	s := mustParse(t, "<?php $a;")
	if s.IsKindFound(token.KwArray) {
		t.Fatal("array not present yet")
	}
	_ = s.Insert(1, token.New(token.KwArray, "array"))
	if !s.IsKindFound(token.KwArray) {
		t.Fatal("stale negative read after insert")
	}
	_ = s.SetKind(2, token.ClassConstant)
	if !s.IsKindFound(token.ClassConstant) || s.IsKindFound(token.Variable) {
		t.Fatal("stale read after SetKind")
	}
	_ = s.Clear(1)
	if s.IsKindFound(token.KwArray) {
		t.Fatal("stale positive read after clear")
	}
	set := token.NewKindSet(token.Semicolon, token.KwEcho)
	if !s.IsAnyKindFound(set) || s.IsAllKindsFound(set) {
		t.Fatal("unexpected set presence answers")
	}
	if !s.IsAllKindsFound(token.NewKindSet(token.OpenTag, token.Semicolon)) {
		t.Fatal("expected all kinds found")
	}
}

func TestFindHelpers(t *testing.T) {
	s := mustParse(t, "<?php foo( /* c */ $a );")
	// 0 open, 1 foo, 2 (, 3 ws, 4 comment, 5 ws, 6 $a, 7 ws, 8 ), 9 ;
	if i, ok := s.NextMeaningful(2); !ok || i != 6 {
		t.Fatalf("NextMeaningful(2) = %d, %v", i, ok)
	}
	if i, ok := s.NextNonWhitespace(2); !ok || i != 4 {
		t.Fatalf("NextNonWhitespace(2) = %d, %v", i, ok)
	}
	if i, ok := s.PrevMeaningful(6); !ok || i != 2 {
		t.Fatalf("PrevMeaningful(6) = %d, %v", i, ok)
	}
	if i, ok := s.PrevNonWhitespace(6); !ok || i != 4 {
		t.Fatalf("PrevNonWhitespace(6) = %d, %v", i, ok)
	}
	if i, ok := s.NextOfKind(0, token.NewKindSet(token.Semicolon)); !ok || i != 9 {
		t.Fatalf("NextOfKind = %d, %v", i, ok)
	}
	if _, ok := s.NextOfKind(9, token.NewKindSet(token.Semicolon)); ok {
		t.Fatal("nothing after the last token")
	}
	if _, ok := s.PrevOfKind(0, token.NewKindSet(token.OpenTag)); ok {
		t.Fatal("nothing before the first token")
	}
	if _, ok := s.PrevMeaningful(s.Len()); !ok {
		t.Fatal("PrevMeaningful(Len()) must find the last token")
	}
}

func TestEnsureWhitespaceAt(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		index    int
		offset   int
		ws       string
		want     string
		inserted bool
	}{
		{"insert before", "<?php foo(){}", 4, 0, " ", "<?php foo() {}", true},
		{"insert after", "<?php foo(){}", 3, 1, " ", "<?php foo() {}", true},
		{"replace self", "<?php foo()   {}", 4, 0, " ", "<?php foo() {}", false},
		{"replace neighbor after", "<?php foo()   {}", 3, 1, " ", "<?php foo() {}", false},
		{"replace neighbor before", "<?php foo()   {}", 5, 0, " ", "<?php foo() {}", false},
		{"clear self", "<?php foo ()", 2, 0, "", "<?php foo()", false},
		{"nothing to insert", "<?php foo()", 2, 0, "", "<?php foo()", false},
		{"after open tag", "<?php\n$a;", 1, 0, "\n\n", "<?php\n\n$a;", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustParse(t, tc.code)
			inserted, err := s.EnsureWhitespaceAt(tc.index, tc.offset, tc.ws)
			if err != nil {
				t.Fatal(err)
			}
			s.ClearEmptyTokens()
			if got := s.Code(); got != tc.want {
				t.Fatalf("code = %q, want %q", got, tc.want)
			}
			if inserted != tc.inserted {
				t.Fatalf("inserted = %v, want %v", inserted, tc.inserted)
			}
			toks := s.Tokens()
			for i := 1; i < len(toks); i++ {
				if toks[i].IsWhitespace() && toks[i-1].IsWhitespace() {
					t.Fatalf("adjacent whitespace at %d: %v", i, toks)
				}
			}
		})
	}
}
