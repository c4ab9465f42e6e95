package runner_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
	"github.com/bankiru/PHP-CS-Fixer/internal/lexer"
	"github.com/bankiru/PHP-CS-Fixer/internal/runner"
	"github.com/bankiru/PHP-CS-Fixer/internal/token"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
	"github.com/bankiru/PHP-CS-Fixer/internal/trace"
)

func resolve(t *testing.T, rules string) []fixer.Fixer {
	t.Helper()
	reg, err := fixers.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := fixer.ParseRules(rules)
	if err != nil {
		t.Fatal(err)
	}
	res, err := reg.Resolve(fixer.RuleSet{Rules: parsed, AllowRisky: true})
	if err != nil {
		t.Fatal(err)
	}
	return res.Fixers
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name    string
		rules   string
		in      string
		want    string
		applied []string
	}{
		{"array syntax", "array_syntax", "<?php $x = array();", "<?php $x = [];", []string{"array_syntax"}},
		{"function declaration", "function_declaration", "<?php function foo(){}", "<?php function foo() {}", []string{"function_declaration"}},
		{"short scalar cast", "short_scalar_cast", "<?php (boolean)$x;", "<?php (bool)$x;", []string{"short_scalar_cast"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := runner.New(resolve(t, tc.rules), runner.Options{})
			res := r.Fix(context.Background(), "a.php", []byte(tc.in))
			if res.Err != nil {
				t.Fatal(res.Err)
			}
			if string(res.Fixed) != tc.want || res.Status != runner.StatusFixed {
				t.Fatalf("got %q (%s), want %q", res.Fixed, res.Status, tc.want)
			}
			if diff := cmp.Diff(tc.applied, res.Applied); diff != "" {
				t.Fatalf("applied (-want +got):\n%s", diff)
			}
		})
	}
}

// toggle flips the first variable between two spellings on every call.
func toggle(name, from, to string) fixer.Fixer {
	return fixer.Fixer{
		Name:      name,
		Candidate: func(s *tokens.Stream) bool { return s.IsKindFound(token.Variable) },
		Apply: func(s *tokens.Stream) error {
			for i := range s.Len() {
				if s.At(i).Equals(token.Variable, from) {
					return s.SetText(i, to)
				}
			}
			return nil
		},
	}
}

func TestConvergenceWarning(t *testing.T) {
	fs := []fixer.Fixer{toggle("to_b", "$a", "$b"), toggle("to_a", "$b", "$a")}
	r := runner.New(fs, runner.Options{MaxPasses: 4})
	res := r.Fix(context.Background(), "loop.php", []byte("<?php $a;"))
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	var warn *runner.ConvergenceWarning
	if !errors.As(res.Warning, &warn) || !errors.Is(res.Warning, runner.ErrConvergence) {
		t.Fatalf("expected ConvergenceWarning, got %v", res.Warning)
	}
	if warn.Passes != 4 || res.Passes != 4 {
		t.Fatalf("expected 4 passes, got %d/%d", warn.Passes, res.Passes)
	}
	if diff := cmp.Diff([]string{"to_b", "to_a"}, warn.Fixers); diff != "" {
		t.Fatalf("oscillating fixers (-want +got):\n%s", diff)
	}
}

func TestConvergenceTraced(t *testing.T) {
	ring := trace.NewRingTracer(256, trace.LevelDetail)
	fs := []fixer.Fixer{toggle("to_b", "$a", "$b"), toggle("to_a", "$b", "$a")}
	r := runner.New(fs, runner.Options{MaxPasses: 2, Tracer: ring})
	r.Fix(context.Background(), "loop.php", []byte("<?php $a;"))

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.File != "loop.php" {
			t.Fatalf("event without file: %+v", ev)
		}
		if ev.Kind == trace.KindBegin || ev.Error {
			names = append(names, ev.Name)
		}
	}
	want := []string{"fix", "pass:1", "pass:2", "convergence_warning"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("traced events (-want +got):\n%s", diff)
	}
}

func TestDefaultPassCap(t *testing.T) {
	r := runner.New([]fixer.Fixer{toggle("to_b", "$a", "$b"), toggle("to_a", "$b", "$a")}, runner.Options{})
	if r.MaxPasses() != runner.DefaultMaxPasses {
		t.Fatalf("expected default cap %d, got %d", runner.DefaultMaxPasses, r.MaxPasses())
	}
	if res := r.Fix(context.Background(), "loop.php", []byte("<?php $a;")); res.Passes != runner.DefaultMaxPasses || res.Warning == nil {
		t.Fatalf("expected warning after %d passes, got %d (%v)", runner.DefaultMaxPasses, res.Passes, res.Warning)
	}
}

func TestIdempotenceAndDeterminism(t *testing.T) {
	fs := resolve(t, "@Symfony,no_alias_functions")
	r := runner.New(fs, runner.Options{})
	in := "<?php\nFUNCTION foo($a){ return SIZEOF(array(1, $a{0}));}\n$y = (integer) $a;   \n"
	first := r.Fix(context.Background(), "a.php", []byte(in))
	if first.Err != nil || first.Warning != nil {
		t.Fatalf("unexpected failure: %v / %v", first.Err, first.Warning)
	}
	if first.Status != runner.StatusFixed || len(first.Applied) == 0 {
		t.Fatalf("expected fixes, got %s", first.Status)
	}
	for _, bad := range []string{"FUNCTION", "SIZEOF", "array(", "{0}", "integer", "   \n"} {
		if strings.Contains(string(first.Fixed), bad) {
			t.Fatalf("%q left in output:\n%s", bad, first.Fixed)
		}
	}
	second := r.Fix(context.Background(), "a.php", first.Fixed)
	if second.Status != runner.StatusClean || len(second.Applied) != 0 || string(second.Fixed) != string(first.Fixed) {
		t.Fatalf("second run not clean: %s %v", second.Status, second.Applied)
	}
	again := r.Fix(context.Background(), "a.php", []byte(in))
	if diff := cmp.Diff(first.Applied, again.Applied); diff != "" || string(again.Fixed) != string(first.Fixed) {
		t.Fatalf("non-deterministic run (-first +again):\n%s", diff)
	}
}

func TestTokenizationError(t *testing.T) {
	r := runner.New(resolve(t, "array_syntax"), runner.Options{})
	res := r.Fix(context.Background(), "bad.php", []byte("<?php 'open"))
	if res.Status != runner.StatusError || !errors.Is(res.Err, lexer.ErrTokenization) {
		t.Fatalf("expected tokenization error, got %s %v", res.Status, res.Err)
	}
	if string(res.Fixed) != "<?php 'open" {
		t.Fatalf("failed file must keep its content, got %q", res.Fixed)
	}
}

func TestFixerFailures(t *testing.T) {
	unbalanced := fixer.Fixer{
		Name:      "unbalanced",
		Candidate: func(*tokens.Stream) bool { return true },
		Apply: func(s *tokens.Stream) error {
			_, err := s.FindBlockEnd(tokens.BlockParen, 1)
			return err
		},
	}
	panicking := fixer.Fixer{
		Name:      "panicking",
		Candidate: func(*tokens.Stream) bool { return true },
		Apply: func(s *tokens.Stream) error {
			s.At(s.Len() + 3)
			return nil
		},
	}
	cases := []struct {
		f     fixer.Fixer
		cause error
	}{
		{unbalanced, tokens.ErrUnbalancedBlock},
		{panicking, tokens.ErrOutOfRange},
	}
	for _, tc := range cases {
		r := runner.New([]fixer.Fixer{tc.f}, runner.Options{})
		res := r.Fix(context.Background(), "x.php", []byte("<?php (a;"))
		var fe *runner.FixerError
		if res.Status != runner.StatusError || !errors.As(res.Err, &fe) || fe.Fixer != tc.f.Name {
			t.Fatalf("%s: expected FixerError, got %v", tc.f.Name, res.Err)
		}
		if !errors.Is(res.Err, runner.ErrFixerRuntime) || !errors.Is(res.Err, tc.cause) {
			t.Fatalf("%s: error chain lacks causes: %v", tc.f.Name, res.Err)
		}
	}
}

func TestDiff(t *testing.T) {
	r := runner.New(resolve(t, "array_syntax"), runner.Options{Diff: true})
	res := r.Fix(context.Background(), "a.php", []byte("<?php\n$x = array();\n"))
	if !strings.Contains(res.Diff, "-$x = array();") || !strings.Contains(res.Diff, "+$x = [];") {
		t.Fatalf("unexpected diff:\n%s", res.Diff)
	}
	clean := r.Fix(context.Background(), "a.php", []byte("<?php\n$x = [];\n"))
	if clean.Diff != "" || clean.Status != runner.StatusClean {
		t.Fatalf("clean file must have no diff: %q", clean.Diff)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := runner.New(resolve(t, "array_syntax"), runner.Options{}).Fix(ctx, "a.php", []byte("<?php $x = array();"))
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", res.Err)
	}
}
