// Package errors provides the error handling and warning system for the
// whole project. Estimation failures are typed so callers can attach them
// to the response that produced them and keep processing the rest of a
// batch; diagnostics report non-fatal conditions through the warning hook.
package errors

import (
	stderrors "errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to the standard logger.
		log.Printf("regsuite-warning: %v\n", w)
	}
	// zerolog sink, installed lazily to avoid a circular import with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// Diagnostics use warnings for conditions that must not abort a batch,
// such as an undefined sensitivity ratio.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a non-fatal warning through the configured sink.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Estimation error taxonomy
//
// ===========================================================================

// InsufficientDataError indicates that a fit was requested with fewer
// complete observations than design-matrix columns, leaving no residual
// degrees of freedom.
type InsufficientDataError struct {
	Op           string
	Observations int
	Columns      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("regsuite: %s: insufficient data: %d complete observations for a design with %d columns",
		e.Op, e.Observations, e.Columns)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("observations", e.Observations).
		Int("columns", e.Columns).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError creates an InsufficientDataError with a stack trace.
func NewInsufficientDataError(op string, observations, columns int) error {
	err := &InsufficientDataError{Op: op, Observations: observations, Columns: columns}
	return errors.WithStack(err)
}

// SingularDesignError indicates a singular normal-equations matrix, which
// means collinear or duplicate predictors prevent a unique estimate.
type SingularDesignError struct {
	Op         string
	Predictors []string
}

func (e *SingularDesignError) Error() string {
	return fmt.Sprintf("regsuite: %s: singular design matrix for predictors [%s]: collinear or duplicate columns",
		e.Op, strings.Join(e.Predictors, ", "))
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *SingularDesignError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Strs("predictors", e.Predictors).
		Str("type", "SingularDesignError")
}

// NewSingularDesignError creates a SingularDesignError with a stack trace.
func NewSingularDesignError(op string, predictors []string) error {
	err := &SingularDesignError{Op: op, Predictors: predictors}
	return errors.WithStack(err)
}

// DivisionByZeroError indicates a zero denominator in a derived ratio,
// such as the relative standard error of a zero coefficient.
type DivisionByZeroError struct {
	Op   string
	Term string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("regsuite: %s: division by zero for %q", e.Op, e.Term)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DivisionByZeroError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("term", e.Term).
		Str("type", "DivisionByZeroError")
}

// NewDivisionByZeroError creates a DivisionByZeroError with a stack trace.
func NewDivisionByZeroError(op, term string) error {
	err := &DivisionByZeroError{Op: op, Term: term}
	return errors.WithStack(err)
}

// DimensionError indicates that input data dimensions disagree.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("regsuite: %s: dimension mismatch on axis %d (%s): expected %d, got %d",
		e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError indicates an invalid argument value, such as an unknown
// column name or an empty predictor list.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("regsuite: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// Operation returns the operation that produced the error.
func (e *InsufficientDataError) Operation() string { return e.Op }

// Operation returns the operation that produced the error.
func (e *SingularDesignError) Operation() string { return e.Op }

// Operation returns the operation that produced the error.
func (e *DivisionByZeroError) Operation() string { return e.Op }

// Operation returns the operation that produced the error.
func (e *DimensionError) Operation() string { return e.Op }

// Operation returns the operation that produced the error.
func (e *ValueError) Operation() string { return e.Op }

// OperationOf walks the error chain and returns the operation recorded by
// the innermost taxonomy error, if any. Stack and message wrappers sit
// above the typed error, so the walk unwraps through them.
func OperationOf(err error) (string, bool) {
	for err != nil {
		if op, ok := err.(interface{ Operation() string }); ok {
			return op.Operation(), true
		}
		err = stderrors.Unwrap(err)
	}
	return "", false
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an empty table or column set is supplied.
	ErrEmptyData = New("empty data")

	// ErrZeroVariance is returned when the response has no variation about
	// its mean, so R-squared and the F statistic are undefined.
	ErrZeroVariance = New("response has zero variance")
)
