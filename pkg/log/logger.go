// Package log provides structured logging for regression analysis runs.
// It is built on log/slog with a handler that extracts stack traces from
// cockroachdb/errors values, plus standard attribute keys so per-response
// log lines stay filterable.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Setup installs a JSON slog logger at the given level as the process
// default. Errors logged under the "error" key get a "stacktrace"
// attribute when they carry one, and a "failed_operation" attribute when
// they come from the estimation error taxonomy.
func Setup(loglevel string) {
	slog.SetDefault(NewLogger(os.Stdout, loglevel))
}

// NewLogger builds a JSON logger writing to w.
func NewLogger(w io.Writer, loglevel string) *slog.Logger {
	ops := slog.HandlerOptions{
		Level: ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(w, &ops)
	return slog.New(WrapByStackHandler(handler))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr wraps an error as a slog attribute under the standard error
// key, so the stack handler can pick it up.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
