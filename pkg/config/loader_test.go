package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/therapist-admin/pkg/config"
)

type dashboardConfig struct {
	Store      string        `env:"CFGTEST_STORE" envDefault:"postgres"`
	ScanLimit  int           `env:"CFGTEST_SCAN_LIMIT" envDefault:"100"`
	SummaryTTL time.Duration `env:"CFGTEST_SUMMARY_TTL" envDefault:"30s"`
	Validate   bool          `env:"CFGTEST_VALIDATE"`
}

type requiredConfig struct {
	DSN string `env:"CFGTEST_REQUIRED_DSN,required"`
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	var cfg dashboardConfig
	require.NoError(t, config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, "postgres", cfg.Store)
	assert.Equal(t, 100, cfg.ScanLimit)
	assert.Equal(t, 30*time.Second, cfg.SummaryTTL)
	assert.False(t, cfg.Validate)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CFGTEST_STORE", "memory")
	t.Setenv("CFGTEST_SCAN_LIMIT", "25")
	t.Setenv("CFGTEST_VALIDATE", "true")

	var cfg dashboardConfig
	require.NoError(t, config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, 25, cfg.ScanLimit)
	assert.True(t, cfg.Validate)
}

func TestLoad_DotenvFile(t *testing.T) {
	// Setenv registers cleanup; the empty value is replaced via Unsetenv so the file applies.
	t.Setenv("CFGTEST_SUMMARY_TTL", "")
	require.NoError(t, os.Unsetenv("CFGTEST_SUMMARY_TTL"))
	t.Setenv("CFGTEST_STORE", "postgres")

	path := writeEnv(t, "CFGTEST_SUMMARY_TTL=1m\nCFGTEST_STORE=memory\n")

	var cfg dashboardConfig
	require.NoError(t, config.Load(&cfg, path))

	assert.Equal(t, time.Minute, cfg.SummaryTTL)
	assert.Equal(t, "postgres", cfg.Store, "process environment wins over the file")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[dashboardConfig](nil), config.ErrNilPointer)
	})

	t.Run("required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("CFGTEST_SCAN_LIMIT", "many")
		var cfg dashboardConfig
		err := config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("must load panics", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg, filepath.Join(t.TempDir(), "missing.env"))
		})
	})
}
