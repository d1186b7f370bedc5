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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Filter errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Formatter errors
	ErrFormatUnknown ErrorCode = "FORMAT_UNKNOWN"

	// Catalog errors
	ErrCatalogRead     ErrorCode = "CATALOG_READ"
	ErrCatalogParse    ErrorCode = "CATALOG_PARSE"
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
)

// PkglsError represents a structured error with code and details
type PkglsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PkglsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PkglsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PkglsError) Is(target error) bool {
	var targetErr *PkglsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PkglsError with the given code and message
func New(code ErrorCode, message string) *PkglsError {
	return &PkglsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PkglsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PkglsError {
	return &PkglsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PkglsError
func Wrap(err error, code ErrorCode, message string) *PkglsError {
	if err == nil {
		return nil
	}
	return &PkglsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PkglsError {
	if err == nil {
		return nil
	}
	return &PkglsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PkglsError) WithDetail(key string, value interface{}) *PkglsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsCode checks whether err carries the given error code anywhere in its chain
func IsCode(err error, code ErrorCode) bool {
	var perr *PkglsError
	for errors.As(err, &perr) {
		if perr.Code == code {
			return true
		}
		err = perr.Wrapped
		if err == nil {
			return false
		}
	}
	return false
}
