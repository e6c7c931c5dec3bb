package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOTTO_LOG_LEVEL", "")
	t.Setenv("LOTTO_LOG_FORMAT", "")
	t.Setenv("LOTTO_LOCALE", "")
	t.Setenv("LOTTO_MANUAL_TICKETS", "")
	t.Setenv("LOTTO_METRICS_FILE", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "ko-KR", cfg.Locale)
	assert.Empty(t, cfg.ManualTickets)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOTTO_LOG_LEVEL", "debug")
	t.Setenv("LOTTO_LOG_FORMAT", "json")
	t.Setenv("LOTTO_LOCALE", "en-US")
	t.Setenv("LOTTO_MANUAL_TICKETS", "1,2,3,4,5,6")
	t.Setenv("LOTTO_METRICS_FILE", "/var/lib/node_exporter/lotto.prom")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "1,2,3,4,5,6", cfg.ManualTickets)
	assert.Equal(t, "/var/lib/node_exporter/lotto.prom", cfg.MetricsFile)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log level", key: "LOTTO_LOG_LEVEL", value: "loud"},
		{name: "unknown locale", key: "LOTTO_LOCALE", value: "not a tag!"},
		{name: "unknown log format", key: "LOTTO_LOG_FORMAT", value: "xml"},
		{name: "unknown environment", key: "ENVIRONMENT", value: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOTTO_LOCALE=de-DE\n"), 0o600))
	t.Chdir(dir)

	// godotenv never overrides variables that are already set
	t.Setenv("LOTTO_LOCALE", "")
	require.NoError(t, os.Unsetenv("LOTTO_LOCALE"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "de-DE", cfg.Locale)
}

func TestGet_UsesTestConfig(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	testCfg := NewTestConfig()
	SetTestConfig(testCfg)

	assert.Same(t, testCfg, Get())
}

func TestLoad_AcceptsEveryLogrusLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"} {
		t.Run(level, func(t *testing.T) {
			t.Setenv("LOTTO_LOG_LEVEL", level)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, level, cfg.LogLevel)
		})
	}
}

func TestResolve_ReturnsLoadError(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)
	t.Setenv("LOTTO_LOG_FORMAT", "xml")

	cfg, err := Resolve()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "invalid configuration")

	assert.Panics(t, func() { Get() })
}
