// Package config provides the hook configuration loader for nonopt.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the hook file looked up in the working directory.
const DefaultFilename = "nonopt.yaml"

var _ ports.RuleLoader = (*FileRuleLoader)(nil)

// FileRuleLoader implements ports.RuleLoader using a YAML file.
// A missing file yields the built-in rule.
type FileRuleLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileRuleLoader looking for DefaultFilename.
func NewLoader(log ports.Logger) *FileRuleLoader {
	return &FileRuleLoader{Filename: DefaultFilename, logger: log}
}

// Load reads the hook configuration from the given working directory.
func (l *FileRuleLoader) Load(cwd string) (*domain.OptimizationRule, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	rule, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		if l.logger != nil {
			l.logger.Info("no hook file at " + path + ", using built-in prefixes")
		}
		return domain.DefaultRule(), nil
	}
	return rule, err
}

// LoadFile reads the hook file at path. Unlike Load, a missing file is an error.
func (l *FileRuleLoader) LoadFile(path string) (*domain.OptimizationRule, error) {
	return Load(path)
}

// Load reads a hook file from the given path and returns the rule it describes.
func Load(path string) (*domain.OptimizationRule, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read hook file"), "path", path)
	}

	var hookfile Hookfile
	if err := yaml.Unmarshal(data, &hookfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse hook file"), "path", path)
	}

	return hookfile.rule()
}

func (h *Hookfile) rule() (*domain.OptimizationRule, error) {
	key := h.Key
	if key == "" {
		key = domain.OptimizeKey
	}

	prefixes := domain.DefaultRule().Prefixes()
	if h.Prefixes != nil {
		prefixes = *h.Prefixes
	}

	rule, err := domain.NewOptimizationRuleForKey(key, prefixes...)
	if err != nil {
		return nil, zerr.Wrap(err, "invalid hook file")
	}
	return rule, nil
}
