// Package diag provides the opt-in diagnostic channel used by the dictionary
// loaders and the public facade. It is silent by default.
package diag

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	verbose bool
	logger  = newLogger(false)
)

func newLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetOutput(logrus.StandardLogger().Out)
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetOutput(io.Discard)
	}
	return l
}

// SetVerbose toggles the process-wide diagnostic channel. Disabled by default.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	logger = newLogger(v)
}

// IsVerbose reports whether the diagnostic channel is currently enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// Log returns the current diagnostic logger. Safe to call concurrently;
// callers should not cache the result across a SetVerbose call.
func Log() logrus.FieldLogger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
