// Package observ measures the phases of one CLI run.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase is one measured step. Dur stays zero while the phase runs.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
	done  bool
}

// Timer records phases (collect, fix, cache, report) in start order.
// A nil *Timer ignores all calls; all methods are safe for concurrent use.
type Timer struct {
	mu      sync.Mutex
	created time.Time
	phases  []Phase
}

func NewTimer() *Timer {
	return &Timer{created: time.Now(), phases: make([]Phase, 0, 8)}
}

// Track starts a phase and returns the function that ends it. Only the first
// call of the returned function counts.
func (t *Timer) Track(name string) (done func(note string)) {
	if t == nil {
		return func(string) {}
	}
	t.mu.Lock()
	idx := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	t.mu.Unlock()

	return func(note string) {
		t.mu.Lock()
		defer t.mu.Unlock()
		p := &t.phases[idx]
		if p.done {
			return
		}
		p.Dur, p.Note, p.done = time.Since(p.Start), note, true
	}
}

// PhaseReport is the serializable view of one phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
	Running    bool    `json:"running,omitempty"`
}

// Report: TotalMS суммирует фазы, WallMS считает от создания таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	WallMS  float64       `json:"wall_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	r := Report{WallMS: millis(time.Since(t.created))}
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		r.Phases = append(r.Phases, PhaseReport{
			Name:       p.Name,
			DurationMS: millis(p.Dur),
			Note:       p.Note,
			Running:    !p.done,
		})
	}
	r.TotalMS = millis(total)
	return r
}

// Summary renders the report as an aligned table.
func (t *Timer) Summary() string {
	r := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-12s %9.2f ms", p.Name, p.DurationMS)
		switch {
		case p.Running:
			b.WriteString("  (running)")
		case p.Note != "":
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %9.2f ms\n", "total", r.TotalMS)
	fmt.Fprintf(&b, "  %-12s %9.2f ms\n", "wall", r.WallMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
