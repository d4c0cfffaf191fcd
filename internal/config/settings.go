package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Setting keys, shared by flags, environment (SWRGO_<KEY>) and settings files
const (
	KeyRuns       = "runs"
	KeyThreshold  = "threshold"
	KeyIterations = "iterations"
	KeyWorkers    = "workers"
	KeySeed       = "seed"
	KeyFormat     = "format"
)

// Run defaults
const (
	DefaultRuns       = 1000
	DefaultThreshold  = 0.90
	DefaultIterations = 15
)

// RunSettings controls how a solve is executed, as opposed to what is solved
type RunSettings struct {
	Runs       int     `mapstructure:"runs"`
	Threshold  float64 `mapstructure:"threshold"`
	Iterations int     `mapstructure:"iterations"`
	Workers    int     `mapstructure:"workers"` // 0 means one per CPU
	Seed       uint64  `mapstructure:"seed"`    // 0 means seed from the clock
	Format     string  `mapstructure:"format"`
}

// NewSettingsReader returns a viper instance with defaults and SWRGO_
// environment overrides wired up
func NewSettingsReader() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRuns, DefaultRuns)
	v.SetDefault(KeyThreshold, DefaultThreshold)
	v.SetDefault(KeyIterations, DefaultIterations)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyFormat, "console")

	v.SetEnvPrefix("SWRGO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadRunSettings reads an optional settings file into v and decodes the result
func LoadRunSettings(v *viper.Viper, settingsFile string) (*RunSettings, error) {
	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", settingsFile, err)
		}
	}

	var s RunSettings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &s, nil
}

// Validate checks the settings are usable
func (s *RunSettings) Validate() error {
	if s.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", s.Runs)
	}
	if s.Threshold < 0 || s.Threshold > 1 {
		return fmt.Errorf("threshold must be between 0 and 1, got %v", s.Threshold)
	}
	if s.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", s.Iterations)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", s.Workers)
	}
	return nil
}
