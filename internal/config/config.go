package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/calculator/internal/calculator"
)

// Output formats understood by the console.
var Formats = []string{"text", "json", "yaml", "toml"}

// Config holds all application configuration.
type Config struct {
	Calculator CalculatorConfig
	Logging    LogConfig
	Metrics    MetricsConfig
}

// CalculatorConfig selects the numeric representation and output format.
type CalculatorConfig struct {
	Type   string `envconfig:"CALC_TYPE" default:"double"`
	Format string `envconfig:"CALC_FORMAT" default:"text"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig controls the evaluation metrics summary.
type MetricsConfig struct {
	Enabled bool `envconfig:"CALC_METRICS" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			Type:   "double",
			Format: "text",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate checks that the representation and format are known.
func (c *Config) Validate() error {
	if _, err := calculator.ParseRepresentation(c.Calculator.Type); err != nil {
		return fmt.Errorf("invalid CALC_TYPE: %w", err)
	}

	format := strings.ToLower(c.Calculator.Format)
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid CALC_FORMAT %q: must be one of %s", c.Calculator.Format, strings.Join(Formats, ", "))
}
