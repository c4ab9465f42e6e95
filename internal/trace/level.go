package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only error events
	LevelPhase               // driver + file boundaries
	LevelDetail              // fixed-point passes
	LevelDebug               // every fixer application
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// finest returns the most detailed scope recorded at l; zero when only
// error events pass.
func (l Level) finest() Scope {
	switch l {
	case LevelPhase:
		return ScopeFile
	case LevelDetail:
		return ScopePass
	case LevelDebug:
		return ScopeFixer
	}
	return 0
}

// ShouldEmit reports whether regular events of scope are recorded at l.
func (l Level) ShouldEmit(scope Scope) bool {
	return scope != 0 && scope <= l.finest()
}

func (l Level) accepted(ev *Event) bool {
	if l == LevelOff {
		return false
	}
	return ev.Error || ev.Kind == KindHeartbeat || l.ShouldEmit(ev.Scope)
}
