package cfd

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by cfd. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: draw passes, scale domains, layer counts
//   - [slog.LevelWarn]: features skipped for degenerate input
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
