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

	// Path shape errors, raised without touching the filesystem
	ErrMalformedPath     ErrorCode = "MALFORMED_PATH"
	ErrInvalidJoin       ErrorCode = "INVALID_JOIN"
	ErrCannotNormalize   ErrorCode = "CANNOT_NORMALIZE"
	ErrNotUnderBase      ErrorCode = "NOT_UNDER_BASE"
	ErrUndefinedVariable ErrorCode = "UNDEFINED_VARIABLE"

	// Path kind errors, raised after consulting an oracle
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"
	ErrNotAFile      ErrorCode = "NOT_A_FILE"
	ErrDoesNotExist  ErrorCode = "DOES_NOT_EXIST"
	ErrNotFound      ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// PathError represents a structured error with code, offending path and details.
// The code and path are the contract; Message is for humans.
type PathError struct {
	Code    ErrorCode
	Message string
	Path    string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(": %q", e.Path)
	}
	if e.Wrapped != nil {
		msg += fmt.Sprintf(": %v", e.Wrapped)
	}
	return msg
}

// Unwrap implements the errors.Unwrap interface
func (e *PathError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathError) Is(target error) bool {
	var targetErr *PathError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathError with the given code and message
func New(code ErrorCode, message string) *PathError {
	return &PathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathError {
	return &PathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathError
func Wrap(err error, code ErrorCode, message string) *PathError {
	if err == nil {
		return nil
	}
	return &PathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathError {
	if err == nil {
		return nil
	}
	return &PathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Sentinel returns a bare error carrying only a code, for use as an
// errors.Is target.
func Sentinel(code ErrorCode) error {
	return &PathError{Code: code}
}

// WithPath records the rendered path the error is about
func (e *PathError) WithPath(path string) *PathError {
	e.Path = path
	return e
}

// WithDetail adds a detail to the error
func (e *PathError) WithDetail(key string, value interface{}) *PathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PathError) WithDetails(details map[string]interface{}) *PathError {
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
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathError
func GetErrorCode(err error) ErrorCode {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Code
	}
	return ErrUnknown
}

// GetErrorPath returns the offending path recorded on an error, or "" if none
func GetErrorPath(err error) string {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}
	return ""
}

// GetErrorDetails returns the details from an error, or nil if not a PathError
func GetErrorDetails(err error) map[string]interface{} {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Details
	}
	return nil
}
