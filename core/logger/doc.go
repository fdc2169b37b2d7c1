// Package logger builds the zap logger used across bird-herd.
//
// New reads a Config:
//   - Level: debug, info, warn or error (default info). "debug" switches to
//     zap's development config; every other level uses the production config.
//   - Format: json (default) or console. Console output is colored and drops
//     stack traces.
//
// Both fields are loaded by core/config from LOG_LEVEL and LOG_FORMAT.
//
// WithRayID returns a child logger carrying the request's ray_id, so the lines
// written while serving one bird query can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	logger.WithRayID(log, c).Warn("Rejected bird request", zap.Error(err))
package logger
