// Package logging assembles structured slog loggers and formatting helpers
// used across VibeManga's core components.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes context-aware helpers so scanner, matcher,
// renamer, and deduper code can automatically tag log lines with the
// operation and series identity in play. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup to ensure new
// components emit data with the same shape across the system.
package logging
