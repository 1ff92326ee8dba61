// Package errors provides structured error types for the thesis
// export service.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrMissingField   = errors.New("missing required field")
	ErrUnknownFormat  = errors.New("unknown export format")
	ErrExportInFlight = errors.New("export already in progress")
	ErrRenderFailure  = errors.New("render failure")
	ErrTimeout        = errors.New("operation timed out")
)

// ExportError describes a failed export: which format, which pipeline
// stage, and the underlying cause. Exports fail atomically, so an
// ExportError always means no artifact was produced.
type ExportError struct {
	Format string
	Stage  string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed at %s: %v", e.Format, e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// NewExportError wraps err with format and stage context.
func NewExportError(format, stage string, err error) *ExportError {
	return &ExportError{Format: format, Stage: stage, Err: err}
}

// IsValidation reports whether err is a request validation failure, as
// opposed to a rendering failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrMissingField) || errors.Is(err, ErrUnknownFormat)
}

// IsRetryable reports whether the caller may retry the operation.
// Validation failures are not retryable; timeouts and in-flight
// rejections are.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrExportInFlight)
}
