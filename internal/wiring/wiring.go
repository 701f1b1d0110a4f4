// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nonopt/internal/adapters/cas"
	_ "go.trai.ch/nonopt/internal/adapters/config"
	_ "go.trai.ch/nonopt/internal/adapters/fs"
	_ "go.trai.ch/nonopt/internal/adapters/logger"
	_ "go.trai.ch/nonopt/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/nonopt/internal/app"
	_ "go.trai.ch/nonopt/internal/engine/evaluator"
)
