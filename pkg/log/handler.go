package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	pkgerrors "github.com/regsuite/regsuite/pkg/errors"
)

// errAnnotateHandler enriches records that carry an error attribute:
// a cockroachdb stack trace becomes a stacktrace attribute, and the
// operation recorded by a taxonomy error (ols.Fit, diagnostics.Sensitivity)
// becomes a failed_operation attribute. Records without an error pass
// through untouched.
type errAnnotateHandler struct {
	next slog.Handler
}

// WrapByStackHandler wraps a slog handler with the error annotation.
func WrapByStackHandler(next slog.Handler) slog.Handler {
	return &errAnnotateHandler{next: next}
}

func (h *errAnnotateHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h *errAnnotateHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := recordError(r); err != nil {
		var extra []slog.Attr
		if details := errors.GetSafeDetails(err).SafeDetails; len(details) > 0 {
			extra = append(extra, slog.String(StacktraceAttrKey, details[0]))
		}
		if op, ok := pkgerrors.OperationOf(err); ok {
			extra = append(extra, slog.String(FailedOpKey, op))
		}
		r.AddAttrs(extra...)
	}
	return h.next.Handle(ctx, r)
}

func (h *errAnnotateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errAnnotateHandler{next: h.next.WithAttrs(attrs)}
}

func (h *errAnnotateHandler) WithGroup(g string) slog.Handler {
	return &errAnnotateHandler{next: h.next.WithGroup(g)}
}

// recordError returns the error logged under the standard error key, or
// nil when the record carries none.
func recordError(r slog.Record) error {
	var found error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			found = err
		}
		return false
	})
	return found
}
