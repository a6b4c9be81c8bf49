// Package logging configures the slog loggers used across the engine and CLI.
//
// It wraps log/slog with console and JSON handlers, shared attribute
// constructors, and helpers for component-scoped loggers so that the diff
// engine, summary pipeline, and cache all emit uniformly shaped records.
package logging
