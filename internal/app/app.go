// Package app implements the application layer for nonopt.
package app

import (
	"context"

	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports"
	"go.trai.ch/nonopt/internal/engine/evaluator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.RuleLoader
	evaluator *evaluator.Evaluator
}

// New creates a new App instance.
func New(loader ports.RuleLoader, eval *evaluator.Evaluator) *App {
	return &App{
		loader:    loader,
		evaluator: eval,
	}
}

// Options holds settings shared by all commands.
type Options struct {
	// ConfigPath is an explicit hook file. When empty the working directory is searched.
	ConfigPath string
}

// EvalResult is the outcome of running the hook for one directory.
type EvalResult struct {
	Flags    domain.CompileFlags
	Decision domain.Decision
}

// ScanOptions configures App.Scan.
type ScanOptions struct {
	Options
	Ignores []string
	NoCache bool
}

// Rule loads the active optimization override rule.
func (a *App) Rule(opts Options) (*domain.OptimizationRule, error) {
	var (
		rule *domain.OptimizationRule
		err  error
	)
	if opts.ConfigPath != "" {
		rule, err = a.loader.LoadFile(opts.ConfigPath)
	} else {
		rule, err = a.loader.Load(".")
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return rule, nil
}

// Eval runs the hook for relDir over the compile flags described by the
// KEY=VALUE assignments and returns the resulting flags.
func (a *App) Eval(relDir string, assignments []string, opts Options) (*EvalResult, error) {
	rule, err := a.Rule(opts)
	if err != nil {
		return nil, err
	}

	flags, err := domain.ParseCompileFlags(assignments)
	if err != nil {
		return nil, err
	}

	d := a.evaluator.Evaluate(rule, relDir, flags)
	return &EvalResult{Flags: flags, Decision: d}, nil
}

// Scan runs the hook for every directory below root.
func (a *App) Scan(ctx context.Context, root string, opts ScanOptions) ([]domain.Decision, error) {
	rule, err := a.Rule(opts.Options)
	if err != nil {
		return nil, err
	}

	decisions, err := a.evaluator.Scan(ctx, rule, root, evaluator.ScanOptions{
		Ignores: opts.Ignores,
		NoCache: opts.NoCache,
	})
	if err != nil {
		return nil, zerr.With(err, "root", root)
	}
	return decisions, nil
}
