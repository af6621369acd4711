package errors

import (
	"errors"
	"fmt"
)

// ReasonInterrupted is the stop reason when the user presses Ctrl+C in the lookup UI.
const ReasonInterrupted = "interrupted"

// StopProcessingError ends an interactive lookup session at the user's request.
// The CLI treats it as a clean exit.
type StopProcessingError struct {
	Reason string
	// Lookups counts the lookups finished before the stop.
	Lookups int
	// Err is the failure that caused the stop, if any.
	Err error
}

func (e *StopProcessingError) Error() string {
	msg := "lookup session stopped"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Lookups > 0 {
		msg += fmt.Sprintf(" after %d lookups", e.Lookups)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StopProcessingError) Unwrap() error {
	return e.Err
}

// NewStopProcessingError creates a StopProcessingError with the provided reason.
func NewStopProcessingError(reason string) *StopProcessingError {
	return &StopProcessingError{Reason: reason}
}

// IsStopProcessingError reports whether err is a StopProcessingError (even when wrapped).
func IsStopProcessingError(err error) bool {
	var stopErr *StopProcessingError
	return errors.As(err, &stopErr)
}
