// Package config provides configuration loading and validation for the
// CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/resume-scorer/internal/scoring"
)

// Config is the file-loadable configuration. All fields are optional;
// missing values fall back to defaults or CLI flags.
type Config struct {
	// Inputs
	Resume         string `json:"resume,omitempty"`          // Path to resume text file
	Job            string `json:"job,omitempty"`             // Path to job requirement text file
	JobURL         string `json:"job_url,omitempty"`         // URL to fetch the job posting from
	DictionaryDir  string `json:"dictionary_dir,omitempty"`  // Directory with dictionary override JSON files
	ResumeFormat   string `json:"resume_format,omitempty"`   // Format tag for the resume payload (txt, md, html)
	RequirementFmt string `json:"requirement_fmt,omitempty"` // Format tag for the requirement payload

	// Scoring
	Weights *scoring.Weights `json:"weights,omitempty"` // Category weight overrides; must sum to 1.0

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Render JS-heavy job pages in a headless browser
	Parallel   bool `json:"parallel,omitempty"`    // Evaluate scoring rules concurrently
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// DefaultPort is the HTTP listen port when none is configured.
const DefaultPort = 8080

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv overlays environment variables on the config. Environment
// values win over file values so deployments can override without
// editing files.
func (c *Config) FromEnv() {
	if v := os.Getenv("RESUME_SCORER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("RESUME_SCORER_DICTIONARY_DIR"); v != "" {
		c.DictionaryDir = v
	}
	if v := os.Getenv("RESUME_SCORER_USE_BROWSER"); v != "" {
		c.UseBrowser = v == "1" || v == "true"
	}
	if v := os.Getenv("RESUME_SCORER_VERBOSE"); v != "" {
		c.Verbose = v == "1" || v == "true"
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: invalid weights: %w", err)
		}
	}
	for name, path := range map[string]string{"resume": c.Resume, "job": c.Job} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}
	if c.DictionaryDir != "" {
		info, err := os.Stat(c.DictionaryDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("config error: dictionary_dir is not a directory: %s", c.DictionaryDir)
		}
	}
	return nil
}

// EffectivePort returns the configured port or the default.
func (c *Config) EffectivePort() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}

// EffectiveWeights returns the configured weights or the defaults.
func (c *Config) EffectiveWeights() scoring.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return scoring.DefaultWeights()
}
