// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/job-matcher/internal/ranking"
)

// APIKeyEnv is the environment variable consulted when no API key is configured
const APIKeyEnv = "GEMINI_API_KEY"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile string `json:"profile,omitempty"` // Path to candidate profile JSON
	Jobs    string `json:"jobs,omitempty"`    // Path to job listings JSON
	Out     string `json:"out,omitempty"`     // Path to write ranked results

	// Embeddings
	APIKey            string `json:"api_key,omitempty"`            // Gemini API key
	EmbeddingModel    string `json:"embedding_model,omitempty"`    // Embedding model name
	EmbeddingTimeout  string `json:"embedding_timeout,omitempty"`  // Per-call timeout, e.g. "5s"
	DisableEmbeddings bool   `json:"disable_embeddings,omitempty"` // Score with lexical fallback only

	// Scoring
	Weights       *ranking.Weights `json:"weights,omitempty"`        // Component weights, must sum to 1.0
	SemanticBlend *float64         `json:"semantic_blend,omitempty"` // Share of whole-profile similarity (0.0-1.0)
	CurrentYear   int              `json:"current_year,omitempty"`   // Year used for "Present" end dates
	Workers       int              `json:"workers,omitempty"`        // Listings scored concurrently
	Top           int              `json:"top,omitempty"`            // Results kept in the output, 0 for all

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
	JSONLogs bool `json:"json_logs,omitempty"` // Emit structured logs as JSON
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
	if c.Top < 0 {
		return fmt.Errorf("config error: 'top' must be non-negative")
	}
	if c.CurrentYear < 0 {
		return fmt.Errorf("config error: 'current_year' must be non-negative")
	}

	if c.EmbeddingTimeout != "" {
		timeout, err := time.ParseDuration(c.EmbeddingTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'embedding_timeout': %w", err)
		}
		if timeout <= 0 {
			return fmt.Errorf("config error: 'embedding_timeout' must be positive")
		}
	}

	if _, err := c.RankingConfig(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.Jobs != "" {
		if _, err := os.Stat(c.Jobs); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Jobs)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.EmbeddingTimeout == "" {
		result.EmbeddingTimeout = defaults.EmbeddingTimeout
	}

	// Int fields: use default if zero
	if result.CurrentYear == 0 {
		result.CurrentYear = defaults.CurrentYear
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Top == 0 {
		result.Top = defaults.Top
	}

	// Pointer fields: use default if unset
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.SemanticBlend == nil {
		result.SemanticBlend = defaults.SemanticBlend
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveAPIKey returns the configured API key, falling back to the GEMINI_API_KEY environment variable.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(APIKeyEnv)
}

// Timeout returns the embedding timeout, or fallback when none is configured.
func (c *Config) Timeout(fallback time.Duration) time.Duration {
	if c.EmbeddingTimeout == "" {
		return fallback
	}
	timeout, err := time.ParseDuration(c.EmbeddingTimeout)
	if err != nil || timeout <= 0 {
		return fallback
	}
	return timeout
}

// RankingConfig builds the scoring policy from the defaults overlaid with configured values.
func (c *Config) RankingConfig() (ranking.Config, error) {
	cfg := ranking.DefaultConfig()
	if c.Weights != nil {
		cfg.Weights = *c.Weights
	}
	if c.SemanticBlend != nil {
		cfg.SemanticBlend = *c.SemanticBlend
	}
	if c.CurrentYear > 0 {
		cfg.CurrentYear = c.CurrentYear
	}
	if err := cfg.Validate(); err != nil {
		return ranking.Config{}, err
	}
	return cfg, nil
}
