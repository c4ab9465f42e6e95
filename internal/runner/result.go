package runner

import "time"

// Status is the outcome of fixing one file.
type Status uint8

const (
	StatusClean Status = iota
	StatusFixed
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusFixed:
		return "fixed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the per-file outcome consumed by reporters and the cache.
type Result struct {
	Name     string
	Original []byte
	Fixed    []byte
	Applied  []string // each fixer once, in first-applied order
	Diff     string
	Status   Status
	Err      error // set when Status is StatusError
	Warning  error // *ConvergenceWarning, non-fatal
	Cached   bool  // skipped via cache; the runner was not invoked
	Passes   int
	Duration time.Duration
}

// Changed reports whether the fixed text differs from the original.
func (r Result) Changed() bool { return r.Status == StatusFixed }
