// Package evaluator applies the optimization override rule to directories.
package evaluator

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Evaluator runs the hook for single directories and whole source trees.
type Evaluator struct {
	walker    ports.DirWalker
	hasher    ports.RuleHasher
	store     ports.DecisionStore
	telemetry ports.Telemetry
	logger    ports.Logger
	workers   int
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(
	walker ports.DirWalker,
	hasher ports.RuleHasher,
	store ports.DecisionStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Evaluator {
	return &Evaluator{
		walker:    walker,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		workers:   runtime.NumCPU(),
	}
}

// Evaluate runs the hook for relDir against flags, mutating flags in place.
func (e *Evaluator) Evaluate(rule *domain.OptimizationRule, relDir string, flags domain.CompileFlags) domain.Decision {
	d := rule.Apply(relDir, flags)
	if d.Matched {
		e.logger.Info(fmt.Sprintf("disabling %s for %s (prefix %s)", rule.Key(), relDir, d.Prefix))
	}
	return d
}

// ScanOptions configures a scan.
type ScanOptions struct {
	// Ignores are directory name globs skipped during the walk.
	Ignores []string
	// NoCache ignores stored decisions.
	NoCache bool
}

// Scan evaluates the rule for every directory below root and returns the
// decisions sorted by path. Each directory gets its own CompileFlags.
func (e *Evaluator) Scan(
	ctx context.Context,
	rule *domain.OptimizationRule,
	root string,
	opts ScanOptions,
) ([]domain.Decision, error) {
	ctx, vertex := e.telemetry.Record(ctx, "scan "+root)

	decisions, err := e.scan(ctx, rule, root, opts, vertex)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	return decisions, nil
}

func (e *Evaluator) scan(
	ctx context.Context,
	rule *domain.OptimizationRule,
	root string,
	opts ScanOptions,
	vertex ports.Vertex,
) ([]domain.Decision, error) {
	fingerprint := e.hasher.RuleFingerprint(rule)

	var (
		mu        sync.Mutex
		decisions []domain.Decision
		fresh     []domain.DecisionRecord
		hits      int
		walkErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for relDir, err := range e.walker.WalkDirs(root, opts.Ignores) {
		if err != nil {
			walkErr = err
			break
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			d, cached, err := e.evaluateDir(rule, relDir, fingerprint, opts.NoCache)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			decisions = append(decisions, d)
			if cached {
				hits++
			} else {
				fresh = append(fresh, domain.NewDecisionRecord(d, fingerprint))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "scan failed")
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, "failed to walk source tree"), "root", root)
	}
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "scan cancelled")
	}

	if len(fresh) > 0 {
		if err := e.store.PutAll(fresh); err != nil {
			return nil, zerr.Wrap(err, "failed to store decisions")
		}
	} else if len(decisions) > 0 {
		vertex.Cached()
	}

	slices.SortFunc(decisions, func(a, b domain.Decision) int {
		return strings.Compare(a.RelativeDir, b.RelativeDir)
	})

	_, _ = fmt.Fprintf(vertex.Stdout(), "%d directories, %d from store\n", len(decisions), hits)
	return decisions, nil
}

// evaluateDir returns the stored decision for relDir when it was produced by
// the same rule, and evaluates it otherwise.
func (e *Evaluator) evaluateDir(
	rule *domain.OptimizationRule,
	relDir, fingerprint string,
	noCache bool,
) (domain.Decision, bool, error) {
	if !noCache {
		rec, err := e.store.Get(relDir)
		if err != nil {
			return domain.Decision{}, false, zerr.With(zerr.Wrap(err, "failed to read stored decision"), "dir", relDir)
		}
		if rec != nil && rec.Fingerprint == fingerprint {
			return rec.Decision(), true, nil
		}
	}

	return e.Evaluate(rule, relDir, domain.CompileFlags{}), false, nil
}
