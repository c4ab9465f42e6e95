package fixer

import (
	"fmt"
	"slices"
)

// CheckKnown rejects option keys not listed in specs.
func (o Options) CheckKnown(fixer string, specs []OptionSpec) error {
	for key := range o {
		if !slices.ContainsFunc(specs, func(s OptionSpec) bool { return s.Name == key }) {
			return &OptionError{Fixer: fixer, Option: key, Reason: "unknown option"}
		}
	}
	return nil
}

// String reads a string option; def is used when it is absent.
// A non-empty allowed list restricts the value.
func (o Options) String(fixer, name, def string, allowed ...string) (string, error) {
	raw, ok := o[name]
	if !ok {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &OptionError{Fixer: fixer, Option: name, Reason: fmt.Sprintf("expected string, got %T", raw)}
	}
	if len(allowed) > 0 && !slices.Contains(allowed, s) {
		return "", &OptionError{Fixer: fixer, Option: name, Reason: fmt.Sprintf("%q is not one of %v", s, allowed)}
	}
	return s, nil
}
