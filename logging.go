// Package-level structured logging configuration.
//
// Logging is an infrastructure cross-cutting concern shared by every
// primitive in the package, so a single package-level logger is used
// rather than threading per-instance configuration through each type.
// The backend is logiface; callers plug in zerolog/logrus/slog via the
// corresponding logiface adapter.

package procsync

import (
	"sync"

	"github.com/joeycumines/logiface"
)

var globalLogger struct {
	sync.RWMutex
	logger *logiface.Logger[logiface.Event]
}

// SetLogger sets the package-level structured logger. A nil logger
// disables logging (the default).
func SetLogger(logger *logiface.Logger[logiface.Event]) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	globalLogger.logger = logger
}

func getLogger() *logiface.Logger[logiface.Event] {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	return globalLogger.logger
}

// logWarn records an unexpected-but-survivable condition, e.g. an OS wait
// primitive reporting failure. Hot paths call it only on failure branches.
func logWarn(op string, err error, msg string) {
	if l := getLogger(); l != nil {
		b := l.Warning().Str("op", op)
		if err != nil {
			b = b.Err(err)
		}
		b.Log(msg)
	}
}

func logDebug(op string, msg string) {
	if l := getLogger(); l != nil {
		l.Debug().Str("op", op).Log(msg)
	}
}
