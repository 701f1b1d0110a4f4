package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nonopt/internal/core/ports"
)

// NodeID is the unique identifier for the decision store Graft node.
const NodeID graft.ID = "adapter.decision_store"

func init() {
	graft.Register(graft.Node[ports.DecisionStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DecisionStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
