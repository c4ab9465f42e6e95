package trace

import (
	"sync/atomic"
	"time"
)

var (
	seq       atomic.Uint64
	spanIDs   atomic.Uint64
	openSpans atomic.Int64
)

// OpenSpans returns how many recorded spans have begun but not ended yet.
func OpenSpans() int64 { return openSpans.Load() }

// Span tracks one begin/end pair.
//
// A span whose scope is filtered out by the tracer level is silent: it emits
// nothing on begin or end but still forwards error events and passes its
// parent through to children. A nil *Span is a valid silent span.
type Span struct {
	tracer  Tracer
	id      uint64 // 0 для тихого спана
	parent  uint64
	scope   Scope
	file    string
	name    string
	started time.Time
	attrs   map[string]string
	ended   bool
}

// Begin starts a span under parent (0 for a root).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return begin(t, scope, "", name, parent)
}

// BeginFile starts the file-level span; all children inherit file.
func BeginFile(t Tracer, file string, parent uint64) *Span {
	return begin(t, ScopeFile, file, "fix", parent)
}

func begin(t Tracer, scope Scope, file, name string, parent uint64) *Span {
	if t == nil {
		t = Nop
	}
	s := &Span{tracer: t, parent: parent, scope: scope, file: file, name: name}
	if !Enabled(t) || !t.Level().ShouldEmit(scope) {
		return s
	}
	s.id = spanIDs.Add(1)
	s.started = time.Now()
	openSpans.Add(1)
	t.Emit(&Event{
		Time:     s.started,
		Seq:      seq.Add(1),
		Kind:     KindBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: parent,
		File:     file,
		Name:     name,
	})
	return s
}

// Child starts a finer-grained span below s.
func (s *Span) Child(scope Scope, name string) *Span {
	if s == nil {
		return begin(Nop, scope, "", name, 0)
	}
	return begin(s.tracer, scope, s.file, name, s.ID())
}

// ID is the span's own ID, or the inherited parent for a silent span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	if s.id == 0 {
		return s.parent
	}
	return s.id
}

// WithAttr attaches a key-value pair to the end event.
func (s *Span) WithAttr(key, value string) *Span {
	if s == nil || s.id == 0 {
		return s
	}
	if s.attrs == nil {
		s.attrs = make(map[string]string)
	}
	s.attrs[key] = value
	return s
}

// End emits the end event and returns the span duration. Later calls are
// no-ops.
func (s *Span) End(detail string) time.Duration {
	return s.end(detail, false)
}

// Fail ends the span as failed. A silent span reports err as an error point.
func (s *Span) Fail(err error) time.Duration {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	if s != nil && s.id == 0 && !s.ended {
		s.ended = true
		s.ErrorPoint(s.name, detail, nil)
		return 0
	}
	return s.end(detail, true)
}

func (s *Span) end(detail string, failed bool) time.Duration {
	if s == nil || s.id == 0 || s.ended {
		return 0
	}
	s.ended = true
	openSpans.Add(-1)
	dur := time.Since(s.started)
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Seq:      seq.Add(1),
		Kind:     KindEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		File:     s.file,
		Name:     s.name,
		Detail:   detail,
		Error:    failed,
		Attrs:    s.attrs,
	})
	return dur
}

// ErrorPoint emits an error event below s, tagged with its file.
func (s *Span) ErrorPoint(name, detail string, attrs map[string]string) {
	if s == nil {
		return
	}
	emitError(s.tracer, s.scope, s.file, name, detail, s.ID(), attrs)
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !Enabled(t) || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      seq.Add(1),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}

// Error emits an error event. It is recorded at every level except off.
func Error(t Tracer, scope Scope, name, detail string, attrs map[string]string) {
	emitError(t, scope, "", name, detail, 0, attrs)
}

func emitError(t Tracer, scope Scope, file, name, detail string, parent uint64, attrs map[string]string) {
	if !Enabled(t) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      seq.Add(1),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		File:     file,
		Name:     name,
		Detail:   detail,
		Error:    true,
		Attrs:    attrs,
	})
}
