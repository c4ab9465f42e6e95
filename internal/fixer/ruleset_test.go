package fixer_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bankiru/PHP-CS-Fixer/internal/fixer"
)

func TestParseRules(t *testing.T) {
	cases := []struct {
		in   string
		want []fixer.Rule
	}{
		{"", nil},
		{"a, -b ,@PSR2", []fixer.Rule{{Name: "a", Enabled: true}, {Name: "b"}, {Name: "@PSR2", Enabled: true}}},
		{`{"array_syntax":{"syntax":"long"},"lowercase_cast":false}`, []fixer.Rule{
			{Name: "array_syntax", Enabled: true, Options: fixer.Options{"syntax": "long"}},
			{Name: "lowercase_cast"},
		}},
		{`{"z":true,"a":true}`, []fixer.Rule{{Name: "z", Enabled: true}, {Name: "a", Enabled: true}}},
	}
	for _, tc := range cases {
		got, err := fixer.ParseRules(tc.in)
		if err != nil {
			t.Fatalf("ParseRules(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ParseRules(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseRulesErrors(t *testing.T) {
	for _, in := range []string{"a,-", `{"a":1}`, `{"a":`, `{"@G":{"x":1}}`} {
		_, err := fixer.ParseRules(in)
		if err == nil {
			t.Fatalf("ParseRules(%q): expected error", in)
		}
		if !errors.Is(err, fixer.ErrInvalidRules) && !errors.Is(err, fixer.ErrInvalidOption) {
			t.Fatalf("ParseRules(%q): unexpected error %v", in, err)
		}
	}
}
