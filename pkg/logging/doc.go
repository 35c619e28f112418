/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging wraps log/slog with servicer's conventions: JSON
// records on stderr, module and version attributes on every record,
// and source locations at debug level.
//
// Logs go to stderr so they never interleave with command output,
// which is what scripts consume from stdout.
//
// # Usage
//
// Set the default logger early, then use slog as normal:
//
//	logging.SetDefaultStructuredLoggerWithLevel("servicer", version, "warn")
//	slog.Info("unit definition written", "unit", name)
//
// # Log Levels
//
// Levels are parsed case-insensitively: DEBUG, INFO, WARN/WARNING,
// ERROR. Unknown values fall back to INFO. SetDefaultStructuredLogger
// reads the level from the LOG_LEVEL environment variable:
//
//	LOG_LEVEL=debug servicer create index.js --dry-run
package logging
