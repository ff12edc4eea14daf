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
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Block errors
	ErrBlockNotFound ErrorCode = "BLOCK_NOT_FOUND"
	ErrBlockInvalid  ErrorCode = "BLOCK_INVALID"
	ErrBlockInstall  ErrorCode = "BLOCK_INSTALL"

	// Rule store errors
	ErrRuleStoreRead  ErrorCode = "RULE_STORE_READ"
	ErrRuleStoreWrite ErrorCode = "RULE_STORE_WRITE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// DevwError represents a structured error with code and details
type DevwError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DevwError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DevwError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DevwError carrying the same code.
func (e *DevwError) Is(target error) bool {
	var targetErr *DevwError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DevwError with the given code and message
func New(code ErrorCode, message string) *DevwError {
	return &DevwError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DevwError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DevwError {
	return &DevwError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DevwError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &DevwError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &DevwError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DevwError) WithDetail(key string, value interface{}) *DevwError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var devwErr *DevwError
	if errors.As(err, &devwErr) {
		return devwErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DevwError
func GetErrorCode(err error) ErrorCode {
	var devwErr *DevwError
	if errors.As(err, &devwErr) {
		return devwErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DevwError
func GetErrorDetails(err error) map[string]interface{} {
	var devwErr *DevwError
	if errors.As(err, &devwErr) {
		return devwErr.Details
	}
	return nil
}
