// Package errors provides typed errors for diff-cover
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrTool indicates an external quality tool reported a failure
	ErrTool
	// ErrReport indicates a coverage report could not be read or parsed
	ErrReport
	// ErrValidation indicates an input validation error
	ErrValidation
)

// CICDError is the base error type for all diff-cover errors
type CICDError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *CICDError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *CICDError) Unwrap() error {
	return e.Cause
}

// New creates a new CICDError
func New(errType ErrorType, message string, cause error) *CICDError {
	return &CICDError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *CICDError) WithContext(key string, value interface{}) *CICDError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var cicdErr *CICDError
	if err == nil {
		return false
	}
	if errors.As(err, &cicdErr) {
		return cicdErr.Type == errType
	}
	return false
}

// ShouldFailRun returns true if the error should stop a report run.
// Tool failures only affect the reporter that produced them.
func ShouldFailRun(err error) bool {
	var cicdErr *CICDError
	if !errors.As(err, &cicdErr) {
		return err != nil
	}

	switch cicdErr.Type {
	case ErrConfig, ErrValidation, ErrReport:
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrTool:
		return "TOOL"
	case ErrReport:
		return "REPORT"
	case ErrValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *CICDError {
	return New(ErrConfig, message, cause)
}

// ToolError creates a quality tool failure. message carries the tool's raw
// error-channel text.
func ToolError(message string, cause error) *CICDError {
	return New(ErrTool, message, cause)
}

// ReportError creates a coverage report error
func ReportError(message string, cause error) *CICDError {
	return New(ErrReport, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *CICDError {
	return New(ErrValidation, message, cause)
}
