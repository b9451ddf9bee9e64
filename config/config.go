// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide settings. Command-line flags may override
// any of them.
type Config struct {
	// Seed drives the die; 0 means seed from the current time.
	Seed int64 `env:"PIG_SEED"`
	// TimeLimit is the wall-clock budget of a timed game.
	TimeLimit time.Duration `env:"PIG_TIME_LIMIT" envDefault:"60s"`
	// LogLevel sets the zerolog level for diagnostics on stderr.
	LogLevel string `env:"PIG_LOG_LEVEL" envDefault:"info"`
	// ResultsDir is where benchmark series store their records.
	ResultsDir string `env:"PIG_RESULTS_DIR" envDefault:"results"`
}

// Parse loads Config from the environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
