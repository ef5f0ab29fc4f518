// Package logging provides structured logging using uber/zap.
//
// Two encodings are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Only the service registry logs. Numeric packages stay silent and report
// problems through returned errors.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "debug"})
//	callLog := logger.ForCall("call_01H...", "math.quantile")
//	callLog.Debug("tool executed", zap.Duration("duration", d))
package logging
