// Package report renders the outcome of a fixing run as txt, json or xml.
package report

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/bankiru/PHP-CS-Fixer/internal/runner"
)

var (
	// ErrDuplicateReporter is returned when a format is registered twice.
	ErrDuplicateReporter = errors.New("report: duplicate format")
	// ErrUnknownFormat is returned by ByFormat for unregistered formats.
	ErrUnknownFormat = errors.New("report: unknown format")
)

// Summary is everything a reporter needs about a run.
type Summary struct {
	Changed []runner.Result // fixed (or, with DryRun, fixable) files
	Errors  []runner.Result
	Cached  []runner.Result // skipped by a cache hit

	DryRun            bool
	Decorated         bool
	ShowAppliedFixers bool
	ShowDiff          bool

	Duration time.Duration
	MemoryMB float64
}

// Reporter renders a Summary in one format.
type Reporter interface {
	Format() string
	Generate(s Summary) (string, error)
}

// Factory maps format names to reporters.
type Factory struct {
	reporters map[string]Reporter
}

// NewFactory returns an empty factory.
func NewFactory() *Factory {
	return &Factory{reporters: make(map[string]Reporter)}
}

// Register adds reporters; a format may be registered once.
func (f *Factory) Register(rs ...Reporter) error {
	for _, r := range rs {
		format := r.Format()
		if _, dup := f.reporters[format]; dup {
			return fmt.Errorf("%w: report for format %q is already registered", ErrDuplicateReporter, format)
		}
		f.reporters[format] = r
	}
	return nil
}

// RegisterBuiltins registers the txt, json and xml reporters.
func (f *Factory) RegisterBuiltins() error {
	return f.Register(Text{}, JSON{}, XML{})
}

// ByFormat returns the reporter registered for format.
func (f *Factory) ByFormat(format string) (Reporter, error) {
	r, ok := f.reporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, format, f.Formats())
	}
	return r, nil
}

// Formats returns the registered format names, sorted.
func (f *Factory) Formats() []string {
	out := make([]string, 0, len(f.reporters))
	for name := range f.reporters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// number renders a rounded value without trailing zeros: 2.5, 1.234.
func number(v float64) string { return strconv.FormatFloat(round3(v), 'f', -1, 64) }
