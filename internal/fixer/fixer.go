// Package fixer defines the fixer descriptor, the registry of available
// fixers and the resolution of a rule set into an ordered active list.
package fixer

import (
	"github.com/bankiru/PHP-CS-Fixer/internal/tokens"
)

// Options holds per-rule configuration as decoded from the command line or a
// config file.
type Options map[string]any

// OptionSpec documents one accepted option.
type OptionSpec struct {
	Name        string
	Description string
	Default     any
	Allowed     []string // nil: any value
}

// Fixer is a flat descriptor of a rewrite rule.
//
// Candidate must be cheap and side-effect free; Apply mutates the stream in
// place and must be a no-op when invoked twice in a row. Configure returns
// a copy bound to the given options and is nil for fixers without options.
type Fixer struct {
	Name        string
	Description string
	Priority    int // higher runs earlier
	Risky       bool
	Groups      []string
	OptionSpecs []OptionSpec
	Samples     []Sample

	Candidate func(s *tokens.Stream) bool
	Apply     func(s *tokens.Stream) error
	Configure func(opts Options) (Fixer, error)
}

// Sample is a before/after pair shown by describe.
type Sample struct {
	Before  string
	After   string
	Options Options
}

// InGroup reports whether the fixer is a member of group.
func (f Fixer) InGroup(group string) bool {
	for _, g := range f.Groups {
		if g == group {
			return true
		}
	}
	return false
}
