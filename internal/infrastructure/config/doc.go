// Package config provides 12-factor configuration for the engine.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Metrics: Prometheus collectors and their namespace
//   - Math: Tool-layer defaults (histogram bins, date range cap)
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED, METRICS_NAMESPACE
//   - MATH_DEFAULT_BINS, MATH_MAX_RANGE_POINTS
package config
