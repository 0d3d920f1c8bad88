// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger replaces the package logger used when no WithLogger option is
// given. Passing nil restores the default, which discards every record.
// Only debug-level records are emitted (dispatch decisions, pool sizes).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	pkgLogger.Store(l)
}

func packageLogger() *slog.Logger { return pkgLogger.Load() }
