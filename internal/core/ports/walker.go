package ports

import "iter"

// DirWalker lists the directories of a source tree.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type DirWalker interface {
	// WalkDirs yields slash-separated directory paths relative to root.
	// A walk failure is yielded once as a non-nil error and ends the sequence.
	WalkDirs(root string, ignores []string) iter.Seq2[string, error]
}
