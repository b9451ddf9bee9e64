package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := Parse()
		require.NoError(t, err)

		require.Equal(t, int64(0), cfg.Seed)
		require.Equal(t, 60*time.Second, cfg.TimeLimit)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "results", cfg.ResultsDir)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("PIG_SEED", "12345")
		t.Setenv("PIG_TIME_LIMIT", "90s")
		t.Setenv("PIG_LOG_LEVEL", "debug")
		t.Setenv("PIG_RESULTS_DIR", "out")

		cfg, err := Parse()
		require.NoError(t, err)

		require.Equal(t, int64(12345), cfg.Seed)
		require.Equal(t, 90*time.Second, cfg.TimeLimit)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "out", cfg.ResultsDir)
	})

	t.Run("should reject a malformed duration", func(t *testing.T) {
		t.Setenv("PIG_TIME_LIMIT", "soon")

		_, err := Parse()
		require.Error(t, err)
	})
}
