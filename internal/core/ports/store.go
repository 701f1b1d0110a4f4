package ports

import "go.trai.ch/nonopt/internal/core/domain"

// DecisionStore persists per-directory decisions between scans.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DecisionStore interface {
	// Get returns the stored record for relDir, or nil if there is none.
	Get(relDir string) (*domain.DecisionRecord, error)
	// PutAll stores the records and flushes them.
	PutAll(records []domain.DecisionRecord) error
}
