package log

import (
	"bytes"
	"strings"
	"testing"

	pkgerrors "github.com/regsuite/regsuite/pkg/errors"
)

func TestNewLoggerAddsStacktraceForWrappedErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	err := pkgerrors.NewSingularDesignError("ols.Fit", []string{"a", "a"})
	logger.Error("fit failed", ErrAttr(err))

	out := buf.String()
	if !strings.Contains(out, `"`+ErrAttrKey+`"`) {
		t.Errorf("output missing error attribute:\n%s", out)
	}
	if !strings.Contains(out, StacktraceAttrKey) {
		t.Errorf("output missing stacktrace attribute:\n%s", out)
	}
	if !strings.Contains(out, "singular design matrix") {
		t.Errorf("output missing error message:\n%s", out)
	}
	if !strings.Contains(out, `"`+FailedOpKey+`":"ols.Fit"`) {
		t.Errorf("output missing failed operation attribute:\n%s", out)
	}
}

func TestNewLoggerLeavesErrorFreeRecordsAlone(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	logger.Info("model fitted", ResponseKey, "yield")

	out := buf.String()
	if strings.Contains(out, StacktraceAttrKey) || strings.Contains(out, FailedOpKey) {
		t.Errorf("record without an error was annotated:\n%s", out)
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("below threshold")
	if buf.Len() != 0 {
		t.Errorf("info record emitted at warn level: %s", buf.String())
	}

	logger.Warn("at threshold")
	if buf.Len() == 0 {
		t.Error("warn record dropped at warn level")
	}
}

func TestToLogLevelPanicsOnUnknownLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ToLogLevel(bogus) did not panic")
		}
	}()
	ToLogLevel("bogus")
}

func TestInstallZerologWarningsEmitsStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	InstallZerologWarnings(&buf)
	defer pkgerrors.SetZerologWarnFunc(nil)

	pkgerrors.Warn(pkgerrors.NewDivisionByZeroError("diagnostics.Sensitivity", "beta"))

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"operation":"diagnostics.Sensitivity"`,
		`"term":"beta"`,
		`"type":"DivisionByZeroError"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}
