package log

import (
	stderrors "errors"
	"io"

	"github.com/rs/zerolog"

	pkgerrors "github.com/regsuite/regsuite/pkg/errors"
)

// InstallZerologWarnings routes pkg/errors warnings to a zerolog logger
// writing to w. Typed errors that implement zerolog.LogObjectMarshaler are
// embedded as structured fields.
func InstallZerologWarnings(w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	pkgerrors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj := asLogObject(warning); obj != nil {
			event = event.EmbedObject(obj)
		}
		event.Msg(warning.Error())
	})
	return logger
}

// asLogObject walks the error chain looking for a structured marshaler.
// Stack-trace wrappers from cockroachdb/errors sit above the typed error.
func asLogObject(err error) zerolog.LogObjectMarshaler {
	for err != nil {
		if obj, ok := err.(zerolog.LogObjectMarshaler); ok {
			return obj
		}
		err = stderrors.Unwrap(err)
	}
	return nil
}
