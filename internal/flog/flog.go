// Package flog is a minimal debug logger: a thin wrapper over the standard
// library's log.Logger that no-ops unless explicitly enabled, so callers
// can leave Debugf calls in hot loops without a flag check at every site.
package flog

import (
	"log"
	"os"
)

// Logger writes debug lines to an underlying *log.Logger when enabled.
type Logger struct {
	enabled bool
	l       *log.Logger
}

// New returns a Logger writing to stderr, active only when enabled is true.
func New(enabled bool) *Logger {
	return &Logger{enabled: enabled, l: log.New(os.Stderr, "furia: ", log.LstdFlags)}
}

// Debugf logs a formatted line iff the logger is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	l.l.Printf(format, args...)
}
