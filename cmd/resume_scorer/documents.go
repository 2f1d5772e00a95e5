package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/decoding"
	"github.com/jonathan/resume-scorer/internal/dictionary"
	"github.com/jonathan/resume-scorer/internal/extraction"
	"github.com/jonathan/resume-scorer/internal/schemas"
)

// loadConfig reads the config file if one was given, overlays the
// environment and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if dictDir != "" {
		cfg.DictionaryDir = dictDir
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDictionaryOverrides validates and merges user dictionary files.
func applyDictionaryOverrides(cfg *config.Config) error {
	if cfg.DictionaryDir == "" {
		return nil
	}
	if err := schemas.ValidateDictionaryDir(cfg.DictionaryDir); err != nil {
		return fmt.Errorf("dictionary overrides rejected: %w", err)
	}
	return dictionary.MergeOverrides(cfg.DictionaryDir)
}

// formatForPath guesses a decoder format tag from a file extension.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "html"
	case ".md":
		return "md"
	default:
		return "txt"
	}
}

// resolveFormat returns the configured format override, or the tag guessed
// from the file extension.
func resolveFormat(path, override string) string {
	if override != "" {
		return override
	}
	return formatForPath(path)
}

// loadDocument reads a document file and decodes it to plain text. An empty
// format means guess from the file extension.
func loadDocument(path, format string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	result, err := decoding.NewRegistry().Decode(data, resolveFormat(path, format))
	if err != nil {
		return "", err
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", path, warning)
	}
	return result.Text, nil
}

// resolveRequirement loads the job requirement text from a file or by
// extracting a live job posting. Flags win over config file values.
func resolveRequirement(ctx context.Context, cfg *config.Config, jobPath, jobURL string) (string, error) {
	if jobPath == "" && jobURL == "" {
		jobPath, jobURL = cfg.Job, cfg.JobURL
	}
	switch {
	case jobPath != "":
		return loadDocument(jobPath, cfg.RequirementFmt)
	case jobURL != "":
		opts := extraction.DefaultFetchOptions()
		opts.RenderJS = cfg.UseBrowser
		posting, err := extraction.FromURL(ctx, jobURL, opts)
		if err != nil {
			return "", err
		}
		if cfg.Verbose && posting.Title != "" {
			fmt.Fprintf(os.Stderr, "Extracted posting: %s (%s)\n", posting.Title, posting.Source)
		}
		return posting.Description, nil
	default:
		return "", fmt.Errorf("either --job or --job-url is required")
	}
}
