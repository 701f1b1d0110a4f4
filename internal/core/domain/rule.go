package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// defaultNonOptPrefixes lists the WebGPU source directories that are built
// without optimization. Read it through DefaultRule().Prefixes().
var defaultNonOptPrefixes = []string{
	"dom/webgpu/",
	"gfx/wgpu_bindings",
	"third_party/rust/naga",
	"third_party/rust/wgpu-core",
	"third_party/rust/wgpu-hal",
	"third_party/rust/wgpu-types",
}

// OptimizationRule suppresses optimization flags for directories that start
// with one of its prefixes. A rule is immutable once built.
type OptimizationRule struct {
	prefixes []string
	key      string
}

// NewOptimizationRule builds a rule clearing OptimizeKey for the given prefixes.
func NewOptimizationRule(prefixes ...string) (*OptimizationRule, error) {
	return NewOptimizationRuleForKey(OptimizeKey, prefixes...)
}

// NewOptimizationRuleForKey builds a rule clearing the given flag key.
func NewOptimizationRuleForKey(key string, prefixes ...string) (*OptimizationRule, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrEmptyFlagKey
	}
	if len(prefixes) == 0 {
		return nil, ErrEmptyPrefixList
	}
	for _, p := range prefixes {
		if err := validatePrefix(p); err != nil {
			return nil, err
		}
	}
	return &OptimizationRule{
		prefixes: slices.Clone(prefixes),
		key:      key,
	}, nil
}

// DefaultRule returns the rule over the built-in WebGPU prefix list.
func DefaultRule() *OptimizationRule {
	return &OptimizationRule{
		prefixes: slices.Clone(defaultNonOptPrefixes),
		key:      OptimizeKey,
	}
}

// Prefixes returns a copy of the ordered prefix list.
func (r *OptimizationRule) Prefixes() []string {
	return slices.Clone(r.prefixes)
}

// Key returns the compile-flags entry the rule clears.
func (r *OptimizationRule) Key() string {
	return r.key
}

// Match reports the first prefix relDir starts with.
func (r *OptimizationRule) Match(relDir string) (string, bool) {
	if relDir == "" {
		return "", false
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(relDir, p) {
			return p, true
		}
	}
	return "", false
}

// Apply is the hook body. When relDir matches, the rule's flag entry is set to
// an empty sequence. Otherwise flags is not written to at all.
//
// flags must be non-nil: the host owns the mapping and Apply writes into it in
// place, so a match against a nil map panics like any nil-map assignment.
func (r *OptimizationRule) Apply(relDir string, flags CompileFlags) Decision {
	prefix, ok := r.Match(relDir)
	if ok {
		flags[r.key] = []string{}
	}
	return Decision{
		RelativeDir: relDir,
		Matched:     ok,
		Prefix:      prefix,
	}
}

// validatePrefix checks that p is a well-formed relative path fragment.
func validatePrefix(p string) error {
	if !wellFormed(p) {
		return zerr.With(zerr.Wrap(ErrMalformedPrefix, "invalid prefix"), "prefix", p)
	}
	return nil
}

func wellFormed(p string) bool {
	if p == "" || strings.TrimSpace(p) != p {
		return false
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return false
	}
	for seg := range strings.SplitSeq(strings.TrimSuffix(p, "/"), "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}
