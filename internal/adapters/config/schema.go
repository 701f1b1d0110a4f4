package config

// Hookfile represents the structure of the nonopt.yaml configuration file.
type Hookfile struct {
	Version string `yaml:"version"`
	// Key is the compile-flags entry to clear. Defaults to OPTIMIZE.
	Key string `yaml:"key"`
	// Prefixes replaces the built-in non-opt prefix list when present.
	Prefixes *[]string `yaml:"prefixes"`
}
