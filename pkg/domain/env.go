package domain

import (
	"io"
	"log/slog"
)

// Env is the cross-cutting handle passed alongside the state to every
// transition call. It is owned by the driver, borrowed by the core for the
// duration of one call, and never stored inside a state variant. One Env may
// be shared across many machine instances.
type Env struct {
	// Logger receives one structured record per exit hook
	// (state name + dwell duration). Nil is fine; Log falls back to a no-op.
	Logger *slog.Logger

	// Hooks receives lifecycle events (enter, exit, rejection).
	Hooks Hooks
}

var nopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Log returns the configured logger, or a no-op logger when e or e.Logger
// is nil, so the core never has to nil-check.
func (e *Env) Log() *slog.Logger {
	if e == nil || e.Logger == nil {
		return nopLogger
	}
	return e.Logger
}

// Observe returns the configured hooks; safe on a nil Env.
func (e *Env) Observe() Hooks {
	if e == nil {
		return Hooks{}
	}
	return e.Hooks
}
