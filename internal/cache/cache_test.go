package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bankiru/PHP-CS-Fixer/internal/cache"
	"github.com/bankiru/PHP-CS-Fixer/internal/trace"
)

func TestFingerprint(t *testing.T) {
	base := cache.Fingerprint(`[{"name":"a"}]`, "1.0", []byte("<?php"))
	if base != cache.Fingerprint(`[{"name":"a"}]`, "1.0", []byte("<?php")) {
		t.Fatalf("fingerprint must be deterministic")
	}
	others := []cache.Key{
		cache.Fingerprint(`[{"name":"b"}]`, "1.0", []byte("<?php")),
		cache.Fingerprint(`[{"name":"a"}]`, "1.1", []byte("<?php")),
		cache.Fingerprint(`[{"name":"a"}]`, "1.0", []byte("<?php ")),
	}
	for i, k := range others {
		if k == base {
			t.Fatalf("variant %d collides with base key", i)
		}
	}
	if cache.Fingerprint("ab", "c", nil) == cache.Fingerprint("a", "bc", nil) {
		t.Fatalf("fields must be length-prefixed")
	}
	if len(base.String()) != 64 {
		t.Fatalf("unexpected hex key %q", base.String())
	}
}

func TestMemoryStore(t *testing.T) {
	s := cache.NewMemoryStore()
	k := cache.Fingerprint("r", "v", []byte("x"))
	if _, ok := s.Get(k); ok {
		t.Fatalf("empty store must miss")
	}
	s.Set(k, false)
	s.Set(k, true)
	if clean, ok := s.Get(k); !ok || !clean {
		t.Fatalf("expected last write to win, got %v %v", clean, ok)
	}

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := cache.Fingerprint("r", "v", []byte{byte(i)})
			s.Set(key, i%2 == 0)
			s.Get(key)
		}()
	}
	wg.Wait()
	if s.Len() != 17 {
		t.Fatalf("expected 17 entries, got %d", s.Len())
	}
}

func TestNopStore(t *testing.T) {
	var s cache.NopStore
	k := cache.Fingerprint("r", "v", nil)
	s.Set(k, true)
	if _, ok := s.Get(k); ok {
		t.Fatalf("nop store must never hit")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.mp")
	clean := cache.Fingerprint("r", "v", []byte("clean"))
	dirty := cache.Fingerprint("r", "v", []byte("dirty"))

	s := cache.OpenFile(path, trace.Nop)
	if s.LoadErr() != nil {
		t.Fatalf("missing file must not be an error: %v", s.LoadErr())
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("clean store must not write a file")
	}

	s.Set(clean, true)
	s.Set(dirty, false)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	reopened := cache.OpenFile(path, trace.Nop)
	if v, ok := reopened.Get(clean); !ok || !v {
		t.Fatalf("clean verdict lost: %v %v", v, ok)
	}
	if v, ok := reopened.Get(dirty); !ok || v {
		t.Fatalf("dirty verdict lost: %v %v", v, ok)
	}
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "tmp-*"))
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.mp")
	if err := os.WriteFile(path, []byte("\xc1 definitely not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	ring := trace.NewRingTracer(16, trace.LevelError)
	s := cache.OpenFile(path, ring)
	if !errors.Is(s.LoadErr(), cache.ErrCacheRead) {
		t.Fatalf("expected ErrCacheRead, got %v", s.LoadErr())
	}
	if _, ok := s.Get(cache.Fingerprint("r", "v", nil)); ok {
		t.Fatalf("corrupt cache must start empty")
	}
	events := ring.Snapshot()
	if len(events) != 1 || events[0].Name != "cache_read_error" || !events[0].Error {
		t.Fatalf("expected one cache_read_error event, got %+v", events)
	}

	// corrupt file is replaced on the next flush
	s.Set(cache.Fingerprint("r", "v", nil), true)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if cache.OpenFile(path, trace.Nop).LoadErr() != nil {
		t.Fatalf("rewritten cache must load cleanly")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	got, err := cache.DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "php-cs-fixer", "cache.mp"); got != want {
		t.Fatalf("DefaultPath = %q, want %q", got, want)
	}
}
