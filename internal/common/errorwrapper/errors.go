package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied indicates access permission issues
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrMalformedInput indicates text that cannot be decoded or split
	ErrMalformedInput = errors.New("malformed input")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// PathError represents filesystem path errors with the offending path attached
type PathError struct {
	Path    string
	Reason  string
	Wrapped error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path error for '%s': %s", e.Path, e.Reason)
}

func (e *PathError) Unwrap() error {
	return e.Wrapped
}

// NewPathError creates a new path error
func NewPathError(path, reason string, wrapped error) *PathError {
	return &PathError{
		Path:    path,
		Reason:  reason,
		Wrapped: wrapped,
	}
}
