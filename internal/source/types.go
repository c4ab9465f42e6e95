// Package source holds PHP file contents together with the line index used
// to turn byte offsets into positions for error messages.
package source

import "crypto/sha256"

type (
	// FileID identifies a file within one FileSet.
	FileID uint32
	// Digest is a SHA-256 content hash.
	Digest [sha256.Size]byte
)

// File is one source file. Content is kept byte for byte: a file nobody
// touches must be written back unchanged.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    Digest
	Virtual bool // добавлен из памяти (тест, stdin)
	HasBOM  bool
	lines   []uint32 // offsets of '\n'
}

// LineCol is a 1-based position.
type LineCol struct {
	Line uint32
	Col  uint32
}
