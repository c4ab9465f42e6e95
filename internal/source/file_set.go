package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"fortio.org/safecast"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileSet owns the files of one run. Safe for concurrent use.
type FileSet struct {
	mu    sync.RWMutex
	files []*File
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// Add stores content verbatim and returns a fresh FileID, even for a path
// that was added before.
func (fs *FileSet) Add(path string, content []byte) FileID {
	return fs.add(&File{Path: filepath.ToSlash(filepath.Clean(path)), Content: content})
}

// AddVirtual adds an in-memory file; name is kept as given.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.add(&File{Path: name, Content: content, Virtual: true})
}

// Load reads path from disk and adds it.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the collected file list
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fs.Add(path, content), nil
}

func (fs *FileSet) add(f *File) FileID {
	f.Hash = sha256.Sum256(f.Content)
	f.HasBOM = bytes.HasPrefix(f.Content, utf8BOM)
	f.lines = indexLines(f.Content)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	f.ID = FileID(n)
	fs.files = append(fs.files, f)
	return f.ID
}

// Get returns the file for id or nil when it is unknown.
func (fs *FileSet) Get(id FileID) *File {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if int(id) >= len(fs.files) {
		return nil
	}
	return fs.files[id]
}

func (fs *FileSet) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.files)
}

func indexLines(content []byte) []uint32 {
	var out []uint32
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return out
		}
		off += i
		// файлы длиннее 4 GiB лексер всё равно не примет
		out = append(out, uint32(off)) // #nosec G115
		off++
	}
}

// Position converts a byte offset into a line and column.
func (f *File) Position(off uint32) LineCol {
	// число переводов строки строго до off
	line, _ := slices.BinarySearch(f.lines, off)
	var lineStart uint32
	if line > 0 {
		lineStart = f.lines[line-1] + 1
	}
	return LineCol{Line: uint32(line + 1), Col: off - lineStart + 1} // #nosec G115
}

// LineEnding returns "\r\n" when the first line ends with it, "\n" otherwise.
func (f *File) LineEnding() string {
	if len(f.lines) > 0 && f.lines[0] > 0 && f.Content[f.lines[0]-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// DisplayPath returns target relative to baseDir with forward slashes.
// Targets outside baseDir are returned cleaned but otherwise as given.
func DisplayPath(target, baseDir string) string {
	clean := filepath.ToSlash(filepath.Clean(target))
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return clean
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return clean
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return clean
	}
	return filepath.ToSlash(rel)
}
