// Package cache remembers which file contents are already clean under a given
// rule set and tool version, so unchanged files skip lexing entirely.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"
)

// Key identifies (rule set fingerprint, tool version, content) triples.
type Key [sha256.Size]byte

// String returns the hex form used on disk.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Fingerprint derives the cache key. Fields are length-prefixed so that
// ("ab", "c") and ("a", "bc") never collide.
func Fingerprint(ruleset, version string, content []byte) Key {
	sum := sha256.Sum256(content)
	h := sha256.New()
	writeField(h, []byte(ruleset))
	writeField(h, []byte(version))
	writeField(h, sum[:])
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

func writeField(h interface{ Write([]byte) (int, error) }, b []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(b)))
	_, _ = h.Write(n[:])
	_, _ = h.Write(b)
}

// Store is a clean/dirty verdict map. Implementations are safe for
// concurrent use; concurrent Set calls for one key are last-writer-wins.
type Store interface {
	Get(k Key) (clean, ok bool)
	Set(k Key, clean bool)
	Flush() error
}

// MemoryStore keeps verdicts for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[Key]bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Key]bool)}
}

func (s *MemoryStore) Get(k Key) (clean, ok bool) {
	s.mu.RLock()
	clean, ok = s.entries[k]
	s.mu.RUnlock()
	return clean, ok
}

func (s *MemoryStore) Set(k Key, clean bool) {
	s.mu.Lock()
	s.entries[k] = clean
	s.mu.Unlock()
}

func (s *MemoryStore) Flush() error { return nil }

// Len returns the number of stored verdicts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// NopStore never remembers anything.
type NopStore struct{}

func (NopStore) Get(Key) (clean, ok bool) { return false, false }
func (NopStore) Set(Key, bool)            {}
func (NopStore) Flush() error             { return nil }
