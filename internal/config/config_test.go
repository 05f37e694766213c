package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Calculator config
	assert.Equal(t, "double", cfg.Calculator.Type)
	assert.Equal(t, "text", cfg.Calculator.Format)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Metrics config
	assert.False(t, cfg.Metrics.Enabled)

	assert.NoError(t, cfg.Validate())
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "double", cfg.Calculator.Type)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"CALC_TYPE":    "long",
		"CALC_FORMAT":  "json",
		"LOG_LEVEL":    "debug",
		"LOG_DEV":      "true",
		"CALC_METRICS": "true",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "long", cfg.Calculator.Type)
	assert.Equal(t, "json", cfg.Calculator.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("CALC_TYPE", "decimal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "decimal", cfg.Calculator.Type)
	assert.Equal(t, "text", cfg.Calculator.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown type", "CALC_TYPE", "complex"},
		{"unknown format", "CALC_FORMAT", "xml"},
		{"malformed bool", "LOG_DEV", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)

			cfg := LoadOrDefault()
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestValidateFormatCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Calculator.Format = "YAML"
	assert.NoError(t, cfg.Validate())
}
