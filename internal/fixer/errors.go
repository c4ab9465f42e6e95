package fixer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateRegistration is returned when two fixers share a name.
	ErrDuplicateRegistration = errors.New("fixer: duplicate registration")
	// ErrInvalidFixer is returned for incomplete descriptors.
	ErrInvalidFixer = errors.New("fixer: invalid descriptor")
	// ErrUnknownRule is returned when a rule set names an unregistered fixer or group.
	ErrUnknownRule = errors.New("fixer: unknown rule")
	// ErrRiskyNotAllowed is returned when a risky fixer is enabled without permission.
	ErrRiskyNotAllowed = errors.New("fixer: risky rule not allowed")
	// ErrInvalidOption is returned for rejected rule options.
	ErrInvalidOption = errors.New("fixer: invalid option")
	// ErrInvalidRules is returned when a rules string cannot be parsed.
	ErrInvalidRules = errors.New("fixer: invalid rules")
)

// DuplicateError names the fixer registered twice.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("fixer: %q is already registered", e.Name)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicateRegistration }

// UnknownRuleError carries close matches for the misspelled name.
type UnknownRuleError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownRuleError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("fixer: unknown rule %q", e.Name)
	}
	return fmt.Sprintf("fixer: unknown rule %q, did you mean %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownRuleError) Unwrap() error { return ErrUnknownRule }

// RiskyError lists risky fixers enabled without AllowRisky.
type RiskyError struct {
	Names []string
}

func (e *RiskyError) Error() string {
	return fmt.Sprintf("fixer: risky rules require allow-risky: %s", strings.Join(e.Names, ", "))
}

func (e *RiskyError) Unwrap() error { return ErrRiskyNotAllowed }

// OptionError describes a rejected option value.
type OptionError struct {
	Fixer  string
	Option string
	Reason string
}

func (e *OptionError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("fixer: %s: %s", e.Fixer, e.Reason)
	}
	return fmt.Sprintf("fixer: %s: option %q: %s", e.Fixer, e.Option, e.Reason)
}

func (e *OptionError) Unwrap() error { return ErrInvalidOption }
