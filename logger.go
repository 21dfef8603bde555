package ggapp

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggapp/store"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for ggapp and everything it drives: the
// same logger is handed to gg and to the persisted store, so one call
// covers the whole rendering stack.
//
// By default, ggapp produces no log output. SetLogger is safe for
// concurrent use: it stores the new logger atomically. Pass nil to disable
// logging (restore the default silent behavior).
//
// Log levels used by ggapp:
//   - [slog.LevelDebug]: probe heuristics, selection-state details
//   - [slog.LevelInfo]: the chosen backend and launch lifecycle
//   - [slog.LevelWarn]: degraded persistence, indeterminate probes,
//     per-frame presentation problems
func SetLogger(l *slog.Logger) {
	stored := l
	if stored == nil {
		stored = newNopLogger()
	}
	loggerPtr.Store(stored)

	// Propagate so the stack shares one configuration. Both accept nil as
	// "restore silence".
	gg.SetLogger(l)
	store.SetLogger(l)
}

// Logger returns the current logger used by ggapp.
// The driver packages call this to share the same logger configuration
// without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
