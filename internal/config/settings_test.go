package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunSettings_Defaults(t *testing.T) {
	s, err := LoadRunSettings(NewSettingsReader(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultRuns, s.Runs)
	assert.Equal(t, DefaultThreshold, s.Threshold)
	assert.Equal(t, DefaultIterations, s.Iterations)
	assert.Equal(t, 0, s.Workers)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, "console", s.Format)
}

func TestLoadRunSettings_Environment(t *testing.T) {
	t.Setenv("SWRGO_RUNS", "250")
	t.Setenv("SWRGO_THRESHOLD", "0.95")
	t.Setenv("SWRGO_SEED", "12345")

	s, err := LoadRunSettings(NewSettingsReader(), "")
	require.NoError(t, err)

	assert.Equal(t, 250, s.Runs)
	assert.Equal(t, 0.95, s.Threshold)
	assert.Equal(t, uint64(12345), s.Seed)
}

func TestLoadRunSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: 500\nworkers: 2\nformat: json\n"), 0644))

	s, err := LoadRunSettings(NewSettingsReader(), path)
	require.NoError(t, err)

	assert.Equal(t, 500, s.Runs)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, DefaultThreshold, s.Threshold)
}

func TestLoadRunSettings_MissingFile(t *testing.T) {
	_, err := LoadRunSettings(NewSettingsReader(), filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings")
}

func TestRunSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings RunSettings
		wantErr  string
	}{
		{"valid", RunSettings{Runs: 10, Threshold: 0.9, Iterations: 15}, ""},
		{"zero runs", RunSettings{Runs: 0, Threshold: 0.9, Iterations: 15}, "runs must be positive"},
		{"threshold above one", RunSettings{Runs: 10, Threshold: 1.1, Iterations: 15}, "threshold must be between"},
		{"zero iterations", RunSettings{Runs: 10, Threshold: 0.9}, "iterations must be positive"},
		{"negative workers", RunSettings{Runs: 10, Threshold: 0.9, Iterations: 15, Workers: -1}, "workers cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
