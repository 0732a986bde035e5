// Package errs defines the error taxonomy shared across the engine.
//
// Callers are expected to preserve the distinction when mapping to
// responses: ValidationError means resubmission with corrected input can
// help, NotFoundError means the referenced record does not exist, and
// AnalysisError means an internal fault that retrying will not fix.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports caller-supplied input violating a precondition
// (empty text, draft too short, malformed canon data). Never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Msg
}

// Validationf builds a ValidationError with a formatted message
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced profile or taxonomy domain that
// does not exist. Surfaced as-is, never retried.
type NotFoundError struct {
	Kind string // "profile", "domain", ...
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// AnalysisError wraps an unexpected internal fault during scoring or
// synthesis. It carries enough context to reproduce: a hash of the input
// text and the snapshot version the fault occurred against.
type AnalysisError struct {
	Op              string // which stage failed, e.g. "score"
	TextHash        string
	SnapshotVersion string
	Err             error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed at %s (text %s, snapshot %s): %v",
		e.Op, e.TextHash, e.SnapshotVersion, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
