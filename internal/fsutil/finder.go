// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns their paths sorted lexicographically
// so repeated runs visit files in the same order on every platform.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Matcher reports whether a path relative to a root matches any of a set of
// glob patterns. Patterns use '/' as separator; '*' stays within one path
// segment and '**' crosses segments.
type Matcher struct {
	root     string
	patterns []glob.Glob
}

// NewMatcher compiles patterns for paths below root.
func NewMatcher(root string, patterns []string) (*Matcher, error) {
	m := &Matcher{root: root}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}

// Match reports whether path matches one of the patterns. Paths outside the
// root never match.
func (m *Matcher) Match(path string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(m.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range m.patterns {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Filter returns the paths that do not match any pattern.
func (m *Matcher) Filter(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !m.Match(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
