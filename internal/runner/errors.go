package runner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFixerRuntime is wrapped by every failure raised from a fixer's Apply.
	ErrFixerRuntime = errors.New("runner: fixer failed")
	// ErrConvergence is wrapped by ConvergenceWarning.
	ErrConvergence = errors.New("runner: no fixed point within pass cap")
)

// FixerError is a per-file failure caused by one fixer.
// It matches both ErrFixerRuntime and the underlying cause.
type FixerError struct {
	Fixer string
	Err   error
}

func (e *FixerError) Error() string {
	return fmt.Sprintf("runner: fixer %s: %v", e.Fixer, e.Err)
}

func (e *FixerError) Unwrap() []error { return []error{ErrFixerRuntime, e.Err} }

// ConvergenceWarning reports a file that still changed in its last allowed pass.
// The last stream state is kept.
type ConvergenceWarning struct {
	Passes int
	Fixers []string // fixers that changed the stream in the last pass
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("runner: no fixed point after %d passes (still changing: %s)", w.Passes, strings.Join(w.Fixers, ", "))
}

func (w *ConvergenceWarning) Unwrap() error { return ErrConvergence }
