package fixer_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

func stub(name string, priority int, groups ...string) fixer.Fixer {
	return fixer.Fixer{
		Name:      name,
		Priority:  priority,
		Groups:    groups,
		Candidate: func(*tokens.Stream) bool { return true },
		Apply:     func(*tokens.Stream) error { return nil },
	}
}

func newRegistry(t *testing.T, fixers ...fixer.Fixer) *fixer.Registry {
	t.Helper()
	r := fixer.NewRegistry()
	if err := r.Register(fixers...); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return r
}

func TestRegisterDuplicate(t *testing.T) {
	r := newRegistry(t, stub("a", 0))
	err := r.Register(stub("a", 1))
	if !errors.Is(err, fixer.ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
	var dup *fixer.DuplicateError
	if !errors.As(err, &dup) || dup.Name != "a" {
		t.Fatalf("expected *DuplicateError for a, got %v", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	bad := []fixer.Fixer{
		{Name: "", Candidate: stub("x", 0).Candidate, Apply: stub("x", 0).Apply},
		{Name: "Bad-Name", Candidate: stub("x", 0).Candidate, Apply: stub("x", 0).Apply},
		{Name: "no_apply", Candidate: stub("x", 0).Candidate},
		{Name: "no_candidate", Apply: stub("x", 0).Apply},
		stub("bad_group", 0, "PSR2"),
	}
	for _, f := range bad {
		if err := fixer.NewRegistry().Register(f); !errors.Is(err, fixer.ErrInvalidFixer) {
			t.Fatalf("%q: expected ErrInvalidFixer, got %v", f.Name, err)
		}
	}
}

func TestResolveOrder(t *testing.T) {
	r := newRegistry(t,
		stub("low", -10, "@G"),
		stub("first", 0, "@G"),
		stub("high", 50, "@G"),
		stub("second", 0, "@G"),
	)
	res, err := r.Resolve(fixer.RuleSet{Rules: []fixer.Rule{{Name: "@G", Enabled: true}}})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"high", "first", "second", "low"}
	if diff := cmp.Diff(want, res.Names()); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}

func TestResolveOverrides(t *testing.T) {
	r := newRegistry(t, stub("a", 0, "@G"), stub("b", 0, "@G"), stub("c", 0))
	rules, err := fixer.ParseRules("@G,-b,c")
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Resolve(fixer.RuleSet{Rules: rules})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, res.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	res, err = r.Resolve(fixer.RuleSet{Rules: []fixer.Rule{{Name: "b", Enabled: false}, {Name: "@G", Enabled: true}}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, res.Names()); diff != "" {
		t.Fatalf("later group must win (-want +got):\n%s", diff)
	}
}

func TestResolveUnknownSuggests(t *testing.T) {
	r := newRegistry(t, stub("array_syntax", 0), stub("lowercase_cast", 0))
	_, err := r.Resolve(fixer.RuleSet{Rules: []fixer.Rule{{Name: "aray_syntax", Enabled: true}}})
	var unknown *fixer.UnknownRuleError
	if !errors.As(err, &unknown) || !errors.Is(err, fixer.ErrUnknownRule) {
		t.Fatalf("expected *UnknownRuleError, got %v", err)
	}
	if len(unknown.Suggestions) == 0 || unknown.Suggestions[0] != "array_syntax" {
		t.Fatalf("expected array_syntax suggestion, got %v", unknown.Suggestions)
	}
	if _, err := r.Resolve(fixer.RuleSet{Rules: []fixer.Rule{{Name: "@Nope", Enabled: true}}}); !errors.Is(err, fixer.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule for group, got %v", err)
	}
}

func TestFind(t *testing.T) {
	r := newRegistry(t, stub("array_syntax", 0))
	if f, err := r.Find("array_syntax"); err != nil || f.Name != "array_syntax" {
		t.Fatalf("Find(array_syntax) = %v, %v", f.Name, err)
	}
	_, err := r.Find("array_sintax")
	var unknown *fixer.UnknownRuleError
	if !errors.As(err, &unknown) || len(unknown.Suggestions) == 0 || unknown.Suggestions[0] != "array_syntax" {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestResolveRisky(t *testing.T) {
	risky := stub("danger", 0)
	risky.Risky = true
	r := newRegistry(t, stub("safe", 0), risky)
	rs := fixer.RuleSet{Rules: []fixer.Rule{{Name: "safe", Enabled: true}, {Name: "danger", Enabled: true}}}
	if _, err := r.Resolve(rs); !errors.Is(err, fixer.ErrRiskyNotAllowed) {
		t.Fatalf("expected ErrRiskyNotAllowed, got %v", err)
	}
	rs.AllowRisky = true
	res, err := r.Resolve(rs)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"safe", "danger"}, res.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	groups := r.Groups()
	if diff := cmp.Diff([]string{"danger"}, groups[fixer.RiskyGroup]); diff != "" {
		t.Fatalf("@risky members (-want +got):\n%s", diff)
	}
}

func TestResolveOptions(t *testing.T) {
	configurable := stub("conf", 0)
	configurable.OptionSpecs = []fixer.OptionSpec{{Name: "mode", Default: "a", Allowed: []string{"a", "b"}}}
	configurable.Configure = func(opts fixer.Options) (fixer.Fixer, error) {
		if err := opts.CheckKnown("conf", configurable.OptionSpecs); err != nil {
			return fixer.Fixer{}, err
		}
		mode, err := opts.String("conf", "mode", "a", "a", "b")
		if err != nil {
			return fixer.Fixer{}, err
		}
		f := configurable
		f.Description = "mode " + mode
		return f, nil
	}
	r := newRegistry(t, configurable, stub("plain", 0))

	res, err := r.Resolve(fixer.RuleSet{Rules: []fixer.Rule{{Name: "conf", Enabled: true, Options: fixer.Options{"mode": "b"}}}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Fixers[0].Description != "mode b" {
		t.Fatalf("options not applied: %q", res.Fixers[0].Description)
	}
	if res.Fingerprint != `[{"name":"conf","options":{"mode":"b"}}]` {
		t.Fatalf("unexpected fingerprint %s", res.Fingerprint)
	}

	cases := []fixer.Rule{
		{Name: "conf", Enabled: true, Options: fixer.Options{"mode": "c"}},
		{Name: "conf", Enabled: true, Options: fixer.Options{"other": 1}},
		{Name: "plain", Enabled: true, Options: fixer.Options{"x": true}},
	}
	for _, rule := range cases {
		if _, err := r.Resolve(fixer.RuleSet{Rules: []fixer.Rule{rule}}); !errors.Is(err, fixer.ErrInvalidOption) {
			t.Fatalf("%v: expected ErrInvalidOption, got %v", rule, err)
		}
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	r := newRegistry(t, stub("a", 0, "@G"), stub("b", 5, "@G"))
	rs := fixer.RuleSet{Rules: []fixer.Rule{{Name: "@G", Enabled: true}}}
	first, err := r.Resolve(rs)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		again, err := r.Resolve(rs)
		if err != nil {
			t.Fatal(err)
		}
		if again.Fingerprint != first.Fingerprint {
			t.Fatalf("fingerprint changed: %s vs %s", again.Fingerprint, first.Fingerprint)
		}
	}
	if first.Fingerprint != `[{"name":"b"},{"name":"a"}]` {
		t.Fatalf("unexpected fingerprint %s", first.Fingerprint)
	}
}
