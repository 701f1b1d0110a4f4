package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports"
)

var _ ports.RuleHasher = (*Hasher)(nil)

// Hasher fingerprints rules so stored decisions can be invalidated when the
// prefix list changes.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// RuleFingerprint computes the XXHash of the rule's key and ordered prefixes.
func (h *Hasher) RuleFingerprint(rule *domain.OptimizationRule) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(rule.Key())
	_, _ = hasher.Write([]byte{0})

	for _, p := range rule.Prefixes() {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64())
}
