package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bankiru/PHP-CS-Fixer/internal/trace"
)

// увеличиваем при изменении формата filePayload
const schemaVersion uint16 = 1

// ErrCacheRead marks an unreadable cache file. It is reported through the
// tracer and never fails a run.
var ErrCacheRead = errors.New("cache: read failed")

// ReadError carries the path and cause of an unreadable cache file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cache: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error { return []error{ErrCacheRead, e.Err} }

type filePayload struct {
	Schema  uint16
	Entries map[string]bool // hex(Key) -> clean
}

// FileStore is a MemoryStore persisted to a single msgpack file.
type FileStore struct {
	path    string
	mem     *MemoryStore
	mu      sync.Mutex
	dirty   bool
	loadErr error
}

// DefaultPath returns $XDG_CACHE_HOME/php-cs-fixer/cache.mp, falling back to
// ~/.cache when XDG_CACHE_HOME is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "php-cs-fixer", "cache.mp"), nil
}

// OpenFile loads the cache at path. A missing file yields an empty store.
// A corrupt file or one from another schema also yields an empty store; the
// problem is emitted as a "cache_read_error" event and returned as LoadErr.
func OpenFile(path string, tracer trace.Tracer) *FileStore {
	s := &FileStore{path: path, mem: NewMemoryStore()}
	if err := s.load(); err != nil {
		trace.Error(tracer, trace.ScopeDriver, "cache_read_error", err.Error(), map[string]string{"path": path})
		s.loadErr = err
	}
	return s
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &ReadError{Path: s.path, Err: err}
	}
	var payload filePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return &ReadError{Path: s.path, Err: err}
	}
	if payload.Schema != schemaVersion {
		return &ReadError{Path: s.path, Err: fmt.Errorf("schema %d, want %d", payload.Schema, schemaVersion)}
	}
	for hexKey, clean := range payload.Entries {
		k, ok := parseKey(hexKey)
		if !ok {
			continue
		}
		s.mem.entries[k] = clean
	}
	return nil
}

func parseKey(s string) (Key, bool) {
	var k Key
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(k) {
		return k, false
	}
	copy(k[:], b)
	return k, true
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// LoadErr returns the error that made OpenFile start from an empty store.
func (s *FileStore) LoadErr() error { return s.loadErr }

func (s *FileStore) Get(k Key) (clean, ok bool) { return s.mem.Get(k) }

func (s *FileStore) Set(k Key, clean bool) {
	if prev, ok := s.mem.Get(k); ok && prev == clean {
		return
	}
	s.mem.Set(k, clean)
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// Flush writes the store if anything changed since it was opened or last
// flushed. The file is replaced atomically.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}

	payload := filePayload{Schema: schemaVersion}
	s.mem.mu.RLock()
	payload.Entries = make(map[string]bool, len(s.mem.entries))
	for k, clean := range s.mem.entries {
		payload.Entries[k.String()] = clean
	}
	s.mem.mu.RUnlock()

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("cache: write %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}

func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), path)
}
