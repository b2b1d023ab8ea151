// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-screener/internal/matching"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	LexiconPath string `json:"lexicon_path,omitempty"` // Path to a lexicon overlay JSON file

	// Behavior
	Workers     int     `json:"workers,omitempty"`      // Parallel workers for batch parsing/matching
	Quality     float64 `json:"quality,omitempty"`      // Default OCR quality when documents carry none
	Verbose     bool    `json:"verbose,omitempty"`      // Print detailed debug information
	JSONLogs    bool    `json:"json_logs,omitempty"`    // Emit JSON-encoded logs instead of console
	DatabaseURL string  `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Scoring coefficients; zero values fall back to the defaults.
	Coefficients *matching.Coefficients `json:"coefficients,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Quality < 0 || c.Quality > 1 {
		return fmt.Errorf("config error: 'quality' must be between 0 and 1")
	}

	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	if c.Coefficients != nil {
		shares := c.Coefficients.MustHaveShare + c.Coefficients.NiceToHaveShare
		if shares != 0 && (shares < 0.99 || shares > 1.01) {
			return fmt.Errorf("config error: skill shares must sum to 1, got %.2f", shares)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	if result.Quality == 0 {
		if defaults.Quality > 0 {
			result.Quality = defaults.Quality
		} else {
			result.Quality = 1.0 // Clean text unless the OCR stage says otherwise
		}
	}

	if result.Coefficients == nil {
		result.Coefficients = defaults.Coefficients
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ScoringCoefficients returns the configured coefficients, falling back
// to the built-in defaults.
func (c *Config) ScoringCoefficients() matching.Coefficients {
	if c.Coefficients == nil {
		return matching.DefaultCoefficients()
	}
	return *c.Coefficients
}
