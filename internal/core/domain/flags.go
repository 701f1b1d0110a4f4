package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// OptimizeKey is the compile-flags entry holding the optimization flags.
const OptimizeKey = "OPTIMIZE"

// CompileFlags is the per-directory compiler flag configuration handed to a hook
// by the host build framework. An entry set to an empty sequence means
// "pass no flags of this kind".
type CompileFlags map[string][]string

// Lookup returns the flags stored under key and whether the key is present.
func (f CompileFlags) Lookup(key string) ([]string, bool) {
	v, ok := f[key]
	return v, ok
}

// Clone returns a deep copy of the flags.
func (f CompileFlags) Clone() CompileFlags {
	if f == nil {
		return nil
	}
	out := make(CompileFlags, len(f))
	for k, v := range f {
		out[k] = slices.Clone(v)
	}
	return out
}

// Keys returns the flag keys in sorted order.
func (f CompileFlags) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// ParseCompileFlags builds a CompileFlags value from KEY=VALUE assignments.
// Repeated keys accumulate values in order. "KEY=" records the key with no values.
func ParseCompileFlags(assignments []string) (CompileFlags, error) {
	flags := make(CompileFlags, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(ErrMalformedFlag, "invalid flag"), "assignment", a)
		}
		cur := flags[key]
		if cur == nil {
			cur = []string{}
		}
		if value != "" {
			cur = append(cur, value)
		}
		flags[key] = cur
	}
	return flags, nil
}
