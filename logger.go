// SPDX-License-Identifier: MIT

package geometry

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger for geometry and all its subpackages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Debug: per-encode diagnostics (format, size, workers, bytes written).
//   - Warn: encodes aborted by context cancellation.
//
// Example:
//
//	l, _ := zap.NewDevelopment()
//	geometry.SetLogger(l)
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Subpackages call this to share the same
// configuration. Safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
