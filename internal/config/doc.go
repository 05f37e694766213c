// Package config provides 12-factor configuration for the calculator CLI.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags override environment variables.
//
// Configuration Sections:
//   - Calculator: numeric representation and output format
//   - Logging: log level and output mode
//   - Metrics: evaluation metrics summary
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	rep, _ := calculator.ParseRepresentation(cfg.Calculator.Type)
//
// Environment Variables:
//   - CALC_TYPE, CALC_FORMAT
//   - LOG_LEVEL, LOG_DEV
//   - CALC_METRICS
package config
