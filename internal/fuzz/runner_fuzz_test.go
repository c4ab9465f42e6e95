package fuzztests

import (
	"context"
	"errors"
	"testing"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/fixers"
	"github.com/bankiru/PHP-CS-Fixer/internal/lexer"
	"github.com/bankiru/PHP-CS-Fixer/internal/runner"
	"github.com/bankiru/PHP-CS-Fixer/internal/testkit"
)

func FuzzRunnerSymfony(f *testing.F) {
	addCorpusSeeds(f)

	reg, err := fixers.NewRegistry()
	if err != nil {
		f.Fatal(err)
	}
	rules, err := fixer.ParseRules("@Symfony,@risky")
	if err != nil {
		f.Fatal(err)
	}
	resolved, err := reg.Resolve(fixer.RuleSet{Rules: rules, AllowRisky: true})
	if err != nil {
		f.Fatal(err)
	}
	r := runner.New(resolved.Fixers, runner.Options{})

	f.Fuzz(func(t *testing.T, input []byte) {
		res := r.Fix(context.Background(), "fuzz.php", clampInput(input))
		if res.Status == runner.StatusError {
			var fe *runner.FixerError
			if !errors.Is(res.Err, lexer.ErrTokenization) && !errors.As(res.Err, &fe) {
				t.Fatalf("unexpected error kind: %v", res.Err)
			}
			return
		}
		// результат фиксеров обязан оставаться лексируемым
		if _, err := testkit.CheckRoundTrip(string(res.Fixed)); err != nil {
			t.Fatalf("fixed output broken: %v\ninput: %q\noutput: %q", err, input, res.Fixed)
		}
	})
}
