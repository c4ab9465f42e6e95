package fixer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Rule enables or disables a fixer or a group. Options apply to single
// fixers only.
type Rule struct {
	Name    string
	Enabled bool
	Options Options
}

// IsGroup reports whether the rule names a group.
func (r Rule) IsGroup() bool { return strings.HasPrefix(r.Name, "@") }

// RuleSet is an ordered rule list; later rules override earlier ones.
type RuleSet struct {
	Rules      []Rule
	AllowRisky bool
}

// With returns a copy of the set with rules appended.
func (rs RuleSet) With(rules ...Rule) RuleSet {
	out := RuleSet{AllowRisky: rs.AllowRisky, Rules: make([]Rule, 0, len(rs.Rules)+len(rules))}
	out.Rules = append(out.Rules, rs.Rules...)
	out.Rules = append(out.Rules, rules...)
	return out
}

// ParseRules parses either the comma form "a,-b,@PSR2" or a JSON object
// {"array_syntax":{"syntax":"long"},"lowercase_cast":false}. JSON key order
// is kept.
func ParseRules(text string) ([]Rule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if strings.HasPrefix(text, "{") {
		return parseJSONRules([]byte(text))
	}
	var rules []Rule
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		enabled := true
		if strings.HasPrefix(part, "-") {
			enabled = false
			part = strings.TrimSpace(part[1:])
		}
		if part == "" {
			return nil, fmt.Errorf("%w: empty rule name in %q", ErrInvalidRules, text)
		}
		rules = append(rules, Rule{Name: part, Enabled: enabled})
	}
	return rules, nil
}

func parseJSONRules(data []byte) ([]Rule, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidRules)
	}
	var rules []Rule
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
		}
		name, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRules, name, err)
		}
		rule, err := RuleFromValue(name, decodeRaw(raw))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	return rules, nil
}

func decodeRaw(raw json.RawMessage) any {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

// RuleFromValue builds a rule from a config value: a bool toggles the rule,
// a table enables it with options.
func RuleFromValue(name string, value any) (Rule, error) {
	switch v := value.(type) {
	case bool:
		return Rule{Name: name, Enabled: v}, nil
	case map[string]any:
		if strings.HasPrefix(name, "@") {
			return Rule{}, &OptionError{Fixer: name, Reason: "groups take no options"}
		}
		return Rule{Name: name, Enabled: true, Options: Options(v)}, nil
	default:
		return Rule{}, fmt.Errorf("%w: %s: expected bool or table, got %T", ErrInvalidRules, name, value)
	}
}
