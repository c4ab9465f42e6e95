package trace

import (
	"fmt"
	"io"
	"sync"
)

// RingTracer keeps the last N accepted events in memory.
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	total uint64 // принятых событий; следующий слот buf[total%cap]
	level Level
}

// NewRingTracer creates a ring of the given capacity (default 4096).
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{buf: make([]Event, 0, capacity), level: level}
}

// Emit stores a copy of ev, overwriting the oldest event when full.
func (r *RingTracer) Emit(ev *Event) {
	if !r.level.accepted(ev) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.buf) < cap(r.buf) {
		r.buf = append(r.buf, *ev)
	} else {
		r.buf[r.total%uint64(cap(r.buf))] = *ev
	}
	r.total++
}

// Snapshot returns the stored events oldest first.
func (r *RingTracer) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, 0, len(r.buf))
	if len(r.buf) < cap(r.buf) {
		return append(out, r.buf...)
	}
	start := r.total % uint64(cap(r.buf))
	out = append(out, r.buf[start:]...)
	return append(out, r.buf[:start]...)
}

// Dropped returns how many events were overwritten.
func (r *RingTracer) Dropped() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total - uint64(len(r.buf))
}

// Dump writes the stored events to w, preceded by a note when some were lost.
func (r *RingTracer) Dump(w io.Writer, format Format) error {
	if n := r.Dropped(); n > 0 && format != FormatNDJSON {
		if _, err := fmt.Fprintf(w, "... %d earlier events dropped\n", n); err != nil {
			return err
		}
	}
	for _, ev := range r.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (r *RingTracer) Flush() error { return nil }
func (r *RingTracer) Close() error { return nil }
func (r *RingTracer) Level() Level { return r.level }
