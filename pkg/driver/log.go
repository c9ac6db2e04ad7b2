package driver

import (
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
)

// NewLogger returns a logger writing to w. Debug lines are dropped unless
// debug is set.
func NewLogger(w logger.SyncWriter, debug bool) slog.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   w,
		IncludeDebug: debug,
	})
}

// NopLogger discards everything.
func NopLogger() slog.Logger {
	return logger.NewNopLogger()
}
