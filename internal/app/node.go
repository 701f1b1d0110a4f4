package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nonopt/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nonopt/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nonopt/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nonopt/internal/core/ports"
	"go.trai.ch/nonopt/internal/engine/evaluator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			evaluator.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RuleLoader](ctx)
			if err != nil {
				return nil, err
			}

			eval, err := graft.Dep[*evaluator.Evaluator](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, eval), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
