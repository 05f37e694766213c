// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON lines on stderr
//   - Development: colored console output at debug level
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.ForEvaluation(id, "int").Info("evaluated", zap.String("operator", "+"))
package logging
