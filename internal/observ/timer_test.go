package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("collect")
	done("3 files")
	done("ignored")
	tm.Track("fix")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("unexpected report: %+v", r)
	}
	if p := r.Phases[0]; p.Name != "collect" || p.Note != "3 files" || p.Running {
		t.Fatalf("unexpected first phase: %+v", p)
	}
	if !r.Phases[1].Running {
		t.Fatalf("unfinished phase must be running: %+v", r.Phases[1])
	}
	if r.WallMS < r.TotalMS {
		t.Fatalf("wall %.3f < total %.3f", r.WallMS, r.TotalMS)
	}
	s := tm.Summary()
	for _, want := range []string{"collect", "// 3 files", "(running)", "wall"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary lacks %q:\n%s", want, s)
		}
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Track("file")("")
		}()
	}
	wg.Wait()
	if n := len(tm.Report().Phases); n != 16 {
		t.Fatalf("expected 16 phases, got %d", n)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("fix")("")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer must report nothing: %+v", r)
	}
	if !strings.HasPrefix(tm.Summary(), "timings:") {
		t.Fatal("nil timer summary must still render")
	}
}
