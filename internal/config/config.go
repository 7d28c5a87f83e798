// Package config loads the optional .blangrc.yaml file (SPEC_FULL.md
// §2.2): ambient CLI knobs only, never source-language semantics.
// Decoded with github.com/goccy/go-yaml, the teacher's own indirect
// dependency, preferred over gopkg.in/yaml.v3 for its struct-tag-driven
// decoding and better error positions.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds every non-spec-mandated CLI knob a .blangrc.yaml may set.
type Config struct {
	// OutputPath is the default destination for `blang build`'s IR text
	// ("-" or empty means stdout).
	OutputPath string `yaml:"output"`
	// FailOnDiagnostic makes `blang check` exit non-zero when any
	// diagnostic fires. Defaults to true; set false in .blangrc.yaml for a
	// lenient CI mode that only reports diagnostics without failing.
	FailOnDiagnostic bool `yaml:"failOnDiagnostic"`
	// Coalesce controls whether the empty-block pass (spec.md §4.11) runs
	// by default; --no-coalesce on the command line always overrides it.
	Coalesce bool `yaml:"coalesce"`
	// TraceFormat is the default --trace-format ("text" or "json").
	TraceFormat string `yaml:"traceFormat"`
	// Verbose enables ambient operational logging to stderr.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no .blangrc.yaml is found.
func Default() *Config {
	return &Config{Coalesce: true, TraceFormat: "text", FailOnDiagnostic: true}
}

// Load reads path, or ./.blangrc.yaml if path is empty, and merges it
// onto Default(). A missing file is not an error; explicit fields set in
// the file override the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ".blangrc.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
