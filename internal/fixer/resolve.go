package fixer

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Resolved is the ordered active fixer list of a rule set.
type Resolved struct {
	Fixers []Fixer
	// Fingerprint serializes names and options deterministically.
	Fingerprint string
}

// Names lists the active fixer names in run order.
func (r Resolved) Names() []string {
	names := make([]string, len(r.Fixers))
	for i, f := range r.Fixers {
		names[i] = f.Name
	}
	return names
}

type ruleState struct {
	enabled bool
	options Options
}

// Resolve expands groups, applies toggles and options, and orders the result
// by descending priority with registration order breaking ties.
func (r *Registry) Resolve(rs RuleSet) (Resolved, error) {
	state := make(map[int]*ruleState)
	for _, rule := range rs.Rules {
		if rule.IsGroup() {
			idx, ok := r.members(rule.Name)
			if !ok {
				return Resolved{}, &UnknownRuleError{Name: rule.Name, Suggestions: r.suggest(rule.Name)}
			}
			for _, i := range idx {
				state[i] = &ruleState{enabled: rule.Enabled}
			}
			continue
		}
		i, ok := r.byName[rule.Name]
		if !ok {
			return Resolved{}, &UnknownRuleError{Name: rule.Name, Suggestions: r.suggest(rule.Name)}
		}
		state[i] = &ruleState{enabled: rule.Enabled, options: rule.Options}
	}

	active := make([]int, 0, len(state))
	for i := range r.fixers {
		if st, ok := state[i]; ok && st.enabled {
			active = append(active, i)
		}
	}

	var risky []string
	fixers := make([]Fixer, 0, len(active))
	entries := make([]fingerprintEntry, 0, len(active))
	for _, i := range active {
		f := r.fixers[i]
		opts := state[i].options
		if f.Risky && !rs.AllowRisky {
			risky = append(risky, f.Name)
			continue
		}
		if len(opts) > 0 {
			if f.Configure == nil {
				return Resolved{}, &OptionError{Fixer: f.Name, Reason: "fixer takes no options"}
			}
			configured, err := f.Configure(opts)
			if err != nil {
				return Resolved{}, fmt.Errorf("fixer: configure %s: %w", f.Name, err)
			}
			f = configured
		}
		fixers = append(fixers, f)
		entries = append(entries, fingerprintEntry{Name: f.Name, Options: opts})
	}
	if len(risky) > 0 {
		return Resolved{}, &RiskyError{Names: risky}
	}

	// порядок детерминирован: приоритет по убыванию, затем порядок регистрации
	order := make([]int, len(fixers))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fixers[order[a]].Priority > fixers[order[b]].Priority
	})
	res := Resolved{Fixers: make([]Fixer, len(fixers))}
	sortedEntries := make([]fingerprintEntry, len(entries))
	for pos, i := range order {
		res.Fixers[pos] = fixers[i]
		sortedEntries[pos] = entries[i]
	}
	fp, err := json.Marshal(sortedEntries)
	if err != nil {
		return Resolved{}, fmt.Errorf("fixer: fingerprint: %w", err)
	}
	res.Fingerprint = string(fp)
	return res, nil
}

// encoding/json sorts map keys, which keeps options stable.
type fingerprintEntry struct {
	Name    string  `json:"name"`
	Options Options `json:"options,omitempty"`
}
