/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts a level name to a slog.Level. Unknown or empty
// values fall back to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger returns a JSON slog.Logger writing to stderr with
// module and version attributes attached to every record. Debug level
// also records source locations.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs the structured logger as the
// process default, taking the level from the LOG_LEVEL environment
// variable (Info when unset).
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv("LOG_LEVEL"))
}

// SetDefaultStructuredLoggerWithLevel installs the structured logger as
// the process default with an explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger bridges the standard library log package onto the
// structured handler, for collaborators that only accept *log.Logger.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}
