package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// ErrNoSourceFiles is returned by FixPaths when the paths hold no PHP files.
var ErrNoSourceFiles = errors.New("driver: no source files found")

// DefaultExtensions lists the file extensions collected from directories.
var DefaultExtensions = []string{".php"}

// skipDirs are never descended into.
var skipDirs = []string{".git", ".hg", ".svn", "vendor", "node_modules"}

// Collect returns the files FixPaths would process for paths.
func Collect(ctx context.Context, paths, exts []string) ([]string, error) {
	return collectSourceFiles(ctx, paths, exts)
}

// collectSourceFiles expands paths into a sorted, deduplicated file list.
// Files named explicitly are kept whatever their extension.
func collectSourceFiles(ctx context.Context, paths, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	matches := func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		return slices.Contains(exts, ext)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && slices.Contains(skipDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if matches(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
