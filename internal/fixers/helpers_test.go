package fixers_test

import (
	"testing"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
	"github.com/bankiru/PHP-CS-Fixer/internal/transform"
)

type fixCase struct {
	name string
	in   string
	want string // empty: input must stay untouched
}

// applyUntilStable runs a single fixer like the runner does, up to ten times.
func applyUntilStable(t *testing.T, f fixer.Fixer, code string) string {
	t.Helper()
	s, err := tokens.FromCode(code)
	if err != nil {
		t.Fatalf("FromCode(%q): %v", code, err)
	}
	transform.Builtin().Run(s)
	for range 10 {
		if !f.Candidate(s) {
			break
		}
		before := s.Signature()
		if err := f.Apply(s); err != nil {
			t.Fatalf("%s.Apply(%q): %v", f.Name, code, err)
		}
		s.ClearEmptyTokens()
		if s.Signature() == before {
			break
		}
	}
	return s.Code()
}

func runCases(t *testing.T, f fixer.Fixer, cases []fixCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.want
			if want == "" {
				want = tc.in
			}
			got := applyUntilStable(t, f, tc.in)
			if got != want {
				t.Fatalf("%s:\n got %q\nwant %q", f.Name, got, want)
			}
			if again := applyUntilStable(t, f, got); again != got {
				t.Fatalf("%s is not idempotent:\n got %q\nwant %q", f.Name, again, got)
			}
		})
	}
}

func configure(t *testing.T, f fixer.Fixer, opts fixer.Options) fixer.Fixer {
	t.Helper()
	configured, err := f.Configure(opts)
	if err != nil {
		t.Fatalf("%s.Configure(%v): %v", f.Name, opts, err)
	}
	return configured
}
