// Package snapshot copies a filtered view of the source tree into an
// experiment directory for reproducibility.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// defaultPatterns is the hard-coded exclusion set, matched against each path
// component of a candidate relative to the source root. It overlaps with
// .gitignore; both sources apply, since the ignore file cannot speak for
// subtrees it is itself excluded from.
var defaultPatterns = []string{
	".*",          // dotfiles, including .git
	"data",        // local datasets
	"__pycache__", // python bytecode cache
	"*.pyc",
	"*.ipynb",
	"checkpoints", // run outputs
}

// Filter decides which paths are left out of a snapshot.
type Filter struct {
	patterns []string
	ignored  *ignore.GitIgnore
}

// DefaultFilter returns the standard exclusion set.
func DefaultFilter() *Filter {
	return &Filter{patterns: defaultPatterns}
}

// NewFilter builds a filter from explicit component patterns.
func NewFilter(patterns []string) *Filter {
	return &Filter{patterns: patterns}
}

// LoadIgnoreFile adds the exclusions declared in a gitignore-style file.
// A missing file is fine; an unreadable one is not.
func (f *Filter) LoadIgnoreFile(path string) error {
	ign, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read ignore file %s: %w", path, err)
	}
	f.ignored = ign
	return nil
}

// Excluded reports whether rel, a path relative to the source root, should
// be left out of the snapshot.
func (f *Filter) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, "/") {
		for _, pat := range f.patterns {
			if ok, _ := filepath.Match(pat, part); ok {
				return true
			}
		}
	}
	return f.ignored != nil && f.ignored.MatchesPath(rel)
}
