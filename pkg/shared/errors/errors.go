package errors

import (
	"fmt"
)

// ValidationError marks a lint run that completed but produced findings. It
// is distinct from I/O and parse failures so the caller can map it to the
// validation exit code.
type ValidationError struct {
	Summary string
}

// Error implements the error interface, rendering the failure summary line.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Makefile validation failed: %s", e.Summary)
}

// NewValidationError creates a ValidationError carrying the findings summary.
func NewValidationError(summary string) error {
	return &ValidationError{Summary: summary}
}
