// Package logging defines the minimal structured-logging interface used by
// the gratitude client. The CLI wires an slog-backed implementation; tests
// use Discard.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs, e.g.:
//
//	log.Warn(ctx, "profile push failed", "err", err)
type Logger interface {
	// Debug logs chatty diagnostics (sync decisions, cache state).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operation events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs degraded-but-recoverable conditions. Remote failures are
	// warnings, never errors: local data stays authoritative.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures of the current operation.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
