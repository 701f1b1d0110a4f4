package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nonopt/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the rule hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.DirWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.RuleHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuleHasher, error) {
			return NewHasher(), nil
		},
	})
}
