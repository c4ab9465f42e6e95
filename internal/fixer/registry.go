package fixer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RiskyGroup is the implicit group of every risky fixer.
const RiskyGroup = "@risky"

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Registry is the catalog of fixers known to the process. It is built once at
// startup and read-only afterwards.
type Registry struct {
	byName map[string]int
	fixers []Fixer // registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds fixers in order. It stops at the first invalid or duplicate one.
func (r *Registry) Register(fixers ...Fixer) error {
	for _, f := range fixers {
		if err := validate(f); err != nil {
			return err
		}
		if _, ok := r.byName[f.Name]; ok {
			return &DuplicateError{Name: f.Name}
		}
		r.byName[f.Name] = len(r.fixers)
		r.fixers = append(r.fixers, f)
	}
	return nil
}

func validate(f Fixer) error {
	switch {
	case !namePattern.MatchString(f.Name):
		return fmt.Errorf("%w: bad name %q", ErrInvalidFixer, f.Name)
	case f.Candidate == nil:
		return fmt.Errorf("%w: %s has no candidate check", ErrInvalidFixer, f.Name)
	case f.Apply == nil:
		return fmt.Errorf("%w: %s has no apply", ErrInvalidFixer, f.Name)
	}
	for _, g := range f.Groups {
		if !strings.HasPrefix(g, "@") || g == RiskyGroup {
			return fmt.Errorf("%w: %s: bad group %q", ErrInvalidFixer, f.Name, g)
		}
	}
	return nil
}

// Lookup finds a fixer by name.
func (r *Registry) Lookup(name string) (Fixer, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Fixer{}, false
	}
	return r.fixers[i], true
}

// Find is Lookup for user-supplied names: unknown names yield an
// *UnknownRuleError with suggestions.
func (r *Registry) Find(name string) (Fixer, error) {
	if f, ok := r.Lookup(name); ok {
		return f, nil
	}
	return Fixer{}, &UnknownRuleError{Name: name, Suggestions: r.suggest(name)}
}

// Len returns the number of registered fixers.
func (r *Registry) Len() int { return len(r.fixers) }

// All returns fixers in registration order.
func (r *Registry) All() []Fixer {
	out := make([]Fixer, len(r.fixers))
	copy(out, r.fixers)
	return out
}

// Names returns fixer names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fixers))
	for _, f := range r.fixers {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Groups maps every group, @risky included, to its members in registration order.
func (r *Registry) Groups() map[string][]string {
	groups := make(map[string][]string)
	for _, f := range r.fixers {
		for _, g := range f.Groups {
			groups[g] = append(groups[g], f.Name)
		}
		if f.Risky {
			groups[RiskyGroup] = append(groups[RiskyGroup], f.Name)
		}
	}
	return groups
}

// GroupNames returns group names sorted alphabetically.
func (r *Registry) GroupNames() []string {
	groups := r.Groups()
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) members(group string) ([]int, bool) {
	var idx []int
	for i, f := range r.fixers {
		if f.InGroup(group) || (group == RiskyGroup && f.Risky) {
			idx = append(idx, i)
		}
	}
	return idx, len(idx) > 0
}

// suggest returns up to three known names close to name.
func (r *Registry) suggest(name string) []string {
	targets := append(r.Names(), r.GroupNames()...)
	ranks := fuzzy.RankFindFold(name, targets)
	if len(ranks) == 0 {
		// запасной вариант: совпадение по префиксу до первого '_'
		head, _, _ := strings.Cut(strings.TrimPrefix(name, "@"), "_")
		for _, t := range targets {
			if head != "" && strings.Contains(t, head) {
				ranks = append(ranks, fuzzy.Rank{Target: t, Distance: len(t)})
			}
		}
	}
	sort.Stable(ranks)
	out := make([]string, 0, 3)
	for _, rk := range ranks {
		if len(out) == cap(out) {
			break
		}
		out = append(out, rk.Target)
	}
	return out
}
