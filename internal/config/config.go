// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Profile string `json:"profile,omitempty"` // Path to a profile JSON file
	Job     string `json:"job,omitempty"`     // Path to a single job JSON file
	Jobs    string `json:"jobs,omitempty"`    // Path to a job-array JSON file

	// Identity (for DB-backed runs)
	UserID    string `json:"user_id,omitempty" validate:"omitempty,uuid4"`
	PersonaID string `json:"persona_id,omitempty" validate:"omitempty,uuid4"`

	// Scoring
	MinScore         int  `json:"min_score,omitempty" validate:"gte=0,lte=100"`
	TopN             int  `json:"top_n,omitempty" validate:"gte=0"`
	IncludeSkillGaps bool `json:"include_skill_gaps,omitempty"`

	// Behavior
	DatabaseURL string `json:"database_url,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
	JSONOutput  bool   `json:"json_output,omitempty"`
}

var validate = validator.New()

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
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Job != "" && c.Jobs != "" {
		return fmt.Errorf("config error: 'job' and 'jobs' are mutually exclusive")
	}

	for name, path := range map[string]string{"profile": c.Profile, "job": c.Job, "jobs": c.Jobs} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.PersonaID == "" {
		result.PersonaID = defaults.PersonaID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
