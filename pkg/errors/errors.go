package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Grid mutation errors
	ErrInvalidAssignment ErrorCode = "INVALID_ASSIGNMENT"
	ErrOutOfBounds       ErrorCode = "OUT_OF_BOUNDS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// GridError represents a structured error with code and details
type GridError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GridError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GridError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GridError) Is(target error) bool {
	var targetErr *GridError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GridError with the given code and message
func New(code ErrorCode, message string) *GridError {
	return &GridError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GridError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GridError {
	return &GridError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GridError
func Wrap(err error, code ErrorCode, message string) *GridError {
	if err == nil {
		return nil
	}
	return &GridError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GridError {
	if err == nil {
		return nil
	}
	return &GridError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GridError) WithDetail(key string, value interface{}) *GridError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GridError) WithDetails(details map[string]interface{}) *GridError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gridErr *GridError
	if errors.As(err, &gridErr) {
		return gridErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GridError
func GetErrorCode(err error) ErrorCode {
	var gridErr *GridError
	if errors.As(err, &gridErr) {
		return gridErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GridError
func GetErrorDetails(err error) map[string]interface{} {
	var gridErr *GridError
	if errors.As(err, &gridErr) {
		return gridErr.Details
	}
	return nil
}
