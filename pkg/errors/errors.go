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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Store errors
	ErrStoreOpen   ErrorCode = "STORE_OPEN"
	ErrStoreDecode ErrorCode = "STORE_DECODE"
	ErrStoreEncode ErrorCode = "STORE_ENCODE"
	ErrStoreWrite  ErrorCode = "STORE_WRITE"

	// Codec errors
	ErrCodecUnknown     ErrorCode = "CODEC_UNKNOWN"
	ErrCodecUnsupported ErrorCode = "CODEC_UNSUPPORTED"
)

// DokvError represents a structured error with code and details
type DokvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DokvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DokvError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DokvError carrying the same code
func (e *DokvError) Is(target error) bool {
	var targetErr *DokvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DokvError with the given code and message
func New(code ErrorCode, message string) *DokvError {
	return &DokvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DokvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DokvError {
	return &DokvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DokvError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DokvError {
	if err == nil {
		return nil
	}
	return &DokvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DokvError {
	if err == nil {
		return nil
	}
	return &DokvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DokvError) WithDetail(key string, value interface{}) *DokvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DokvError) WithDetails(details map[string]interface{}) *DokvError {
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
	var dokvErr *DokvError
	if errors.As(err, &dokvErr) {
		return dokvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DokvError
func GetErrorCode(err error) ErrorCode {
	var dokvErr *DokvError
	if errors.As(err, &dokvErr) {
		return dokvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DokvError
func GetErrorDetails(err error) map[string]interface{} {
	var dokvErr *DokvError
	if errors.As(err, &dokvErr) {
		return dokvErr.Details
	}
	return nil
}
