package view

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the view package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the view package's logger. A nil logger restores
// the no-op default. Views created with WithLogger keep their own logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
