// Package logger holds the process-wide zap logger. Output goes to stderr so
// command results on stdout stay machine readable.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init replaces the global logger with a console logger at level.
func Init(level zap.AtomicLevel) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces the global logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Sugar returns the global sugared logger.
func Sugar() *zap.SugaredLogger {
	return Logger().Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger().Sync()
}
