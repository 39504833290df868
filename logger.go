// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package raster3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled always returns false, so
// a disabled logger costs nothing beyond the atomic load.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the pipeline for recoverable,
// non-fatal diagnostics. The pipeline logs one [slog.LevelWarn] record
// per Indexed triangle skipped for an out-of-range index; degenerate
// triangles and clip decisions are not logged. By default the
// pipeline produces no log output. Pass nil to restore that default.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently in use.
func Logger() *slog.Logger { return loggerPtr.Load() }
