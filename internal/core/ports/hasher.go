package ports

import "go.trai.ch/nonopt/internal/core/domain"

// RuleHasher computes a stable fingerprint of a rule.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type RuleHasher interface {
	RuleFingerprint(rule *domain.OptimizationRule) string
}
