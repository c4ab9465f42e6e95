package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bankiru/PHP-CS-Fixer/internal/driver"
)

func TestApplyEvent(t *testing.T) {
	m := NewProgressModel("fixing", []string{"a.php", "b.php", "c.php", "d.php"}, nil).(*progressModel)
	events := []driver.Event{
		{File: "a.php", Stage: driver.StageFix, Status: driver.StatusWorking},
		{File: "a.php", Stage: driver.StageFix, Status: driver.StatusDone, Changed: true},
		{File: "b.php", Stage: driver.StageFix, Status: driver.StatusDone, Cached: true},
		{File: "c.php", Stage: driver.StageRead, Status: driver.StatusError, Err: errors.New("boom")},
		{File: "c.php", Stage: driver.StageFix, Status: driver.StatusWorking},
		{File: "d.php", Stage: driver.StageFix, Status: driver.StatusWorking},
		{File: "unknown.php", Stage: driver.StageFix, Status: driver.StatusDone},
	}
	for _, ev := range events {
		m.applyEvent(ev)
	}

	var got []string
	for _, f := range m.files {
		got = append(got, f.status)
	}
	if diff := cmp.Diff([]string{"fixed", "cached", "error", "fixing"}, got); diff != "" {
		t.Fatalf("statuses (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]int{"fixed": 1, "cached": 1, "error": 1}, m.tally); diff != "" {
		t.Fatalf("tally (-want +got):\n%s", diff)
	}
	if want := 3.5 / 4; m.percent() != want {
		t.Fatalf("percent = %v, want %v", m.percent(), want)
	}

	view := m.View()
	for _, want := range []string{"fixing 3/4", "fixed 1", "clean 0", "d.php", "c.php: boom"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "a.php") {
		t.Fatalf("finished files must only be counted:\n%s", view)
	}
}

func TestViewLimitsActiveFiles(t *testing.T) {
	var files []string
	for i := range 20 {
		files = append(files, fmt.Sprintf("f%02d.php", i))
	}
	m := NewProgressModel("fixing", files, nil).(*progressModel)
	for _, f := range files {
		m.applyEvent(driver.Event{File: f, Stage: driver.StageFix, Status: driver.StatusWorking})
	}
	view := m.View()
	if !strings.Contains(view, "f07.php") || strings.Contains(view, "f08.php") {
		t.Fatalf("expected the first %d active files only:\n%s", maxActive, view)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"src/a.php", 20, "src/a.php"},
		{"src/very/long/path.php", 10, "src/ver..."},
		{"abcdef", 2, "ab"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
