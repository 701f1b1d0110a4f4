// Package fs provides file system adapters for walking source trees and
// fingerprinting rules.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirWalker = (*Walker)(nil)

// Walker provides directory walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDirs yields every directory below root as a slash-separated path
// relative to root. The root itself is not yielded. VCS metadata directories,
// the nonopt state directory and directories whose name matches one of the
// ignore globs are skipped along with their contents.
//
// If root cannot be read, or a directory below it fails to open, the error is
// yielded once and the walk stops.
func (w *Walker) WalkDirs(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path))
				return filepath.SkipAll
			}
			if !d.IsDir() || path == root {
				return nil
			}
			if w.shouldSkipDir(d.Name(), ignores) {
				return filepath.SkipDir
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				yield("", zerr.With(zerr.Wrap(err, "failed to relativize directory"), "path", path))
				return filepath.SkipAll
			}
			if !yield(filepath.ToSlash(rel), nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string, ignores []string) bool {
	switch name {
	case ".git", ".jj", ".hg", domain.StateDir:
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
