// Package errors provides coded, structured errors for snxml. Codes give
// tests and callers something stable to match on while messages stay free
// to change.
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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// File errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Document errors
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"
	ErrUserNotFound  ErrorCode = "USER_NOT_FOUND"

	// Compression errors
	ErrCompress   ErrorCode = "COMPRESS"
	ErrDecompress ErrorCode = "DECOMPRESS"
)

// SnxmlError represents a structured error with code and details
type SnxmlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SnxmlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SnxmlError) Unwrap() error {
	return e.Wrapped
}

// Is matches two SnxmlErrors by code
func (e *SnxmlError) Is(target error) bool {
	var targetErr *SnxmlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SnxmlError with the given code and message
func New(code ErrorCode, message string) *SnxmlError {
	return &SnxmlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SnxmlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SnxmlError {
	return &SnxmlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SnxmlError
func Wrap(err error, code ErrorCode, message string) *SnxmlError {
	if err == nil {
		return nil
	}
	return &SnxmlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SnxmlError {
	if err == nil {
		return nil
	}
	return &SnxmlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail key-value pair to the error
func (e *SnxmlError) WithDetail(key string, value interface{}) *SnxmlError {
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from any error, returning ErrUnknown for
// errors that are not SnxmlErrors.
func GetCode(err error) ErrorCode {
	var snxmlErr *SnxmlError
	if errors.As(err, &snxmlErr) {
		return snxmlErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
