package driver

import (
	"slices"
	"strings"
	"time"

	"github.com/bankiru/PHP-CS-Fixer/internal/runner"
)

// Batch holds one result per input file, sorted by path.
type Batch struct {
	Results  []runner.Result
	Duration time.Duration
}

func newBatch(results []runner.Result, dur time.Duration) *Batch {
	slices.SortStableFunc(results, func(a, b runner.Result) int {
		return strings.Compare(a.Name, b.Name)
	})
	return &Batch{Results: results, Duration: dur}
}

func (b *Batch) filter(keep func(*runner.Result) bool) []runner.Result {
	var out []runner.Result
	for i := range b.Results {
		if keep(&b.Results[i]) {
			out = append(out, b.Results[i])
		}
	}
	return out
}

// Changed returns the fixed files.
func (b *Batch) Changed() []runner.Result {
	return b.filter(func(r *runner.Result) bool { return r.Status == runner.StatusFixed })
}

// Failed returns the files that could not be processed.
func (b *Batch) Failed() []runner.Result {
	return b.filter(func(r *runner.Result) bool { return r.Status == runner.StatusError })
}

// Cached returns the files skipped by a cache hit.
func (b *Batch) Cached() []runner.Result {
	return b.filter(func(r *runner.Result) bool { return r.Cached })
}

// Warnings returns the files that hit the pass cap.
func (b *Batch) Warnings() []runner.Result {
	return b.filter(func(r *runner.Result) bool { return r.Warning != nil })
}
