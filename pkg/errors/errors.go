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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Walk errors
	ErrWalk ErrorCode = "WALK"

	// Rewrite errors
	ErrFileOpen      ErrorCode = "FILE_OPEN"
	ErrFileRead      ErrorCode = "FILE_READ"
	ErrScratchCreate ErrorCode = "SCRATCH_CREATE"
	ErrScratchWrite  ErrorCode = "SCRATCH_WRITE"
	ErrReplace       ErrorCode = "REPLACE"
	ErrEncoding      ErrorCode = "ENCODING"
)

// AnnofixError represents a structured error with code and details
type AnnofixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AnnofixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AnnofixError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AnnofixError) Is(target error) bool {
	var targetErr *AnnofixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AnnofixError with the given code and message
func New(code ErrorCode, message string) *AnnofixError {
	return &AnnofixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AnnofixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AnnofixError {
	return &AnnofixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AnnofixError
func Wrap(err error, code ErrorCode, message string) *AnnofixError {
	if err == nil {
		return nil
	}
	return &AnnofixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AnnofixError {
	if err == nil {
		return nil
	}
	return &AnnofixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AnnofixError) WithDetail(key string, value interface{}) *AnnofixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var annofixErr *AnnofixError
	if errors.As(err, &annofixErr) {
		return annofixErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AnnofixError
func GetErrorCode(err error) ErrorCode {
	var annofixErr *AnnofixError
	if errors.As(err, &annofixErr) {
		return annofixErr.Code
	}
	return ErrUnknown
}
