package ports

import "go.trai.ch/nonopt/internal/core/domain"

// RuleLoader defines the interface for loading the optimization override rule.
//
//go:generate mockgen -source=rule_loader.go -destination=mocks/mock_rule_loader.go -package=mocks
type RuleLoader interface {
	// Load reads the hook configuration from the given working directory and returns the rule.
	Load(cwd string) (*domain.OptimizationRule, error)
	// LoadFile reads the hook configuration from an explicit file path.
	LoadFile(path string) (*domain.OptimizationRule, error)
}
