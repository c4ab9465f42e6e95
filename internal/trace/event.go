package trace

import "time"

// Kind is the type of a trace event.
type Kind uint8

const (
	KindBegin     Kind = iota + 1 // span start
	KindEnd                       // span end
	KindPoint                     // instant event
	KindHeartbeat                 // periodic liveness signal
)

var kindNames = [...]string{
	KindBegin:     "begin",
	KindEnd:       "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string { return nameOf(kindNames[:], int(k)) }

// Scope orders events from the coarse driver level down to single fixers.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // whole batch
	ScopeFile                    // one file
	ScopePass                    // one fixed-point pass
	ScopeFixer                   // one fixer application
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopeFile:   "file",
	ScopePass:   "pass",
	ScopeFixer:  "fixer",
}

func (s Scope) String() string { return nameOf(scopeNames[:], int(s)) }

func nameOf(names []string, i int) string {
	if i <= 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// Event is one trace record. Tracers get a pointer and must copy the event
// before keeping it.
type Event struct {
	Time     time.Time
	Seq      uint64 // глобальный, монотонный
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корневых
	File     string // файл, к которому относится событие
	Name     string // "fix", "pass:2", имя фиксера
	Detail   string
	Error    bool // recorded at every level except off
	Attrs    map[string]string
}
