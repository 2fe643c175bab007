package dither

import (
	"log/slog"
	"sync/atomic"
)

// discardLogger drops every record; its handler reports all levels disabled
// so callers skip formatting entirely.
var discardLogger = slog.New(slog.DiscardHandler)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(discardLogger)
}

// SetLogger configures the logger used by the package and the decomposers
// it builds. By default nothing is logged. Pass nil to restore the silent
// default.
//
// Log levels used:
//   - [slog.LevelDebug]: decomposer construction, skipped degenerate simplices, timings
//   - [slog.LevelWarn]: a strategy failed to build and the fallback was used
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
