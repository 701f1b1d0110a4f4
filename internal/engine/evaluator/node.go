package evaluator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nonopt/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nonopt/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nonopt/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nonopt/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nonopt/internal/core/ports"
)

// NodeID is the unique identifier for the evaluator Graft node.
const NodeID graft.ID = "engine.evaluator"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Evaluator, error) {
			walker, err := graft.Dep[ports.DirWalker](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.RuleHasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.DecisionStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewEvaluator(walker, hasher, store, telemetry, log), nil
		},
	})
}
