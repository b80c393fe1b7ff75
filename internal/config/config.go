// =============================================================================
// Competency Framework Reformatter - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers:
//   - Directory layout (input, output, archive)
//   - Logging (file, level)
//   - Reformatting defaults (root identifier, curated prefix overrides)
//
// The curated prefix table is how known program names get hand-picked
// prefixes instead of heuristic ones; it defaults to empty, in which case
// every prefix is derived from the program name.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputDir is the directory scanned (non-recursively) for competency
	// definition files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where reformatted CSV files are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where source files are moved after
	// successful processing, when ArchiveOnSuccess is set.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveOnSuccess moves processed source files to ArchiveDir.
	// Default: false
	ArchiveOnSuccess bool `yaml:"archive_on_success"`

	// StopOnError aborts the batch on the first per-file failure instead of
	// logging it and continuing.
	// Default: false
	StopOnError bool `yaml:"stop_on_error"`

	// DefaultRootID is the framework root identifier used when the user
	// supplies nothing at the prompt.
	// Default: "2299"
	DefaultRootID string `yaml:"default_root_id"`

	// PrefixOverrides maps known full program names to curated prefixes,
	// consulted before heuristic prefix derivation.
	PrefixOverrides map[string]string `yaml:"prefix_overrides"`

	// LogFile is the path to the application log file. Empty logs to stderr.
	LogFile string `yaml:"log_file"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// validates it. A missing file is not an error: the defaults are used, so
// the tool runs without any configuration at all.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file; run on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.DefaultRootID == "" {
		cfg.DefaultRootID = "2299"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration for values the rest of the application
// cannot work with.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
