package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/scoring"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"use_browser": true,
		"weights": {
			"keyword_match": 0.4,
			"skill_alignment": 0.3,
			"formatting": 0.1,
			"impact": 0.1,
			"readability": 0.1
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.UseBrowser)
	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 0.4, cfg.Weights.KeywordMatch)
	require.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "empty config is valid",
			cfg:  Config{},
		},
		{
			name:    "job and job_url are mutually exclusive",
			cfg:     Config{Job: "job.txt", JobURL: "https://example.com"},
			wantErr: true,
		},
		{
			name:    "port out of range",
			cfg:     Config{Port: 70000},
			wantErr: true,
		},
		{
			name:    "weights must sum to one",
			cfg:     Config{Weights: &scoring.Weights{KeywordMatch: 1.0, SkillAlignment: 1.0}},
			wantErr: true,
		},
		{
			name:    "missing resume file",
			cfg:     Config{Resume: "/no/such/resume.txt"},
			wantErr: true,
		},
		{
			name:    "dictionary dir must exist",
			cfg:     Config{DictionaryDir: "/no/such/dir"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RESUME_SCORER_PORT", "7777")
	t.Setenv("RESUME_SCORER_USE_BROWSER", "true")
	t.Setenv("RESUME_SCORER_VERBOSE", "1")

	cfg := Config{}
	cfg.FromEnv()

	assert.Equal(t, 7777, cfg.Port)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.Verbose)
}

func TestEffectiveDefaults(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, DefaultPort, cfg.EffectivePort())
	assert.Equal(t, scoring.DefaultWeights(), cfg.EffectiveWeights())

	cfg.Port = 9000
	assert.Equal(t, 9000, cfg.EffectivePort())
}
