// Package fileio is the Byte/Bit I/O helpers component of spec.md §2:
// read a file into bytes, write bytes to a file. It is explicitly
// out-of-scope engineering per spec.md §1 ("raw file/directory I/O
// primitives") — a thin, scoped-acquisition wrapper around the standard
// library, not a subject of its own invariants.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorskim/huffarc/internal/errs"
)

// ReadFile reads the whole contents of path into memory.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", errs.IoUnavailable, path, err)
	}
	return data, nil
}

// WriteFile writes data to path, creating it if necessary and
// truncating any existing content, with standard owner-readable
// permissions.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", errs.IoUnavailable, path, err)
	}
	return nil
}

// MkdirAll creates path and any missing parents.
func MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory %s: %v", errs.IoUnavailable, path, err)
	}
	return nil
}

// DirEntry describes one child of a directory, as returned by
// ReadDirEntries.
type DirEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// ReadDirEntries enumerates the immediate children of dir. The order
// is whatever the underlying directory-listing facility returns;
// spec.md §4.5 does not require it to be sorted.
func ReadDirEntries(dir string) ([]DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading directory %s: %v", errs.IoUnavailable, dir, err)
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DirEntry{
			Name:  e.Name(),
			IsDir: e.IsDir(),
			Path:  filepath.Join(dir, e.Name()),
		})
	}
	return out, nil
}
