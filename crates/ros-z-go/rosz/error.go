package rosz

import (
	"fmt"
)

// ErrorCode classifies failures of the type-support runtime
type ErrorCode int32

const (
	// ErrorCodeSuccess indicates the operation completed successfully
	ErrorCodeSuccess ErrorCode = 0

	// ErrorCodeSerializationFailed indicates CDR serialization failed
	ErrorCodeSerializationFailed ErrorCode = -1

	// ErrorCodeDeserializationFailed indicates CDR deserialization failed
	ErrorCodeDeserializationFailed ErrorCode = -2

	// ErrorCodeTypeSupportNotFound indicates no type support is registered under the requested name
	ErrorCodeTypeSupportNotFound ErrorCode = -3

	// ErrorCodeTypeMismatch indicates a callback received a message of another type
	ErrorCodeTypeMismatch ErrorCode = -4

	// ErrorCodeDuplicateTypeSupport indicates a type support was registered twice
	ErrorCodeDuplicateTypeSupport ErrorCode = -5

	// ErrorCodeInvalidTypeSupport indicates a handle with missing callbacks or names
	ErrorCodeInvalidTypeSupport ErrorCode = -6

	// ErrorCodeUnknown indicates an unknown error occurred
	ErrorCodeUnknown ErrorCode = -100
)

// RoszError represents a structured error from the type-support runtime
type RoszError struct {
	code ErrorCode
	msg  string
	err  error
}

// Error implements the error interface
func (e RoszError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v (code: %d)", e.msg, e.err, e.code)
	}
	return fmt.Sprintf("%s (code: %d)", e.msg, e.code)
}

// Code returns the error code
func (e RoszError) Code() ErrorCode {
	return e.code
}

// Message returns the error message without the code or cause
func (e RoszError) Message() string {
	return e.msg
}

// Unwrap returns the underlying cause, typically a cdr error
func (e RoszError) Unwrap() error {
	return e.err
}

// NewRoszError creates a new RoszError with the given code and message
func NewRoszError(code ErrorCode, msg string) RoszError {
	return RoszError{code: code, msg: msg}
}

// WrapRoszError creates a RoszError that carries err as its cause
func WrapRoszError(code ErrorCode, err error, msg string) RoszError {
	return RoszError{code: code, msg: msg, err: err}
}

// NewTypeMismatchError reports that the type support for dataType was handed msg.
func NewTypeMismatchError(dataType string, msg Message) RoszError {
	return NewRoszError(ErrorCodeTypeMismatch,
		fmt.Sprintf("type support for %s cannot handle %T", dataType, msg))
}

// Is reports whether target matches this error by comparing error codes.
// This enables errors.Is() support for RoszError.
// Uses direct type assertion (not errors.As) to avoid recursive chain walking.
func (e RoszError) Is(target error) bool {
	t, ok := target.(RoszError)
	if ok {
		return e.code == t.code
	}
	return false
}

// Sentinel errors for common failure modes
var (
	ErrSerializationFailed   = NewRoszError(ErrorCodeSerializationFailed, "serialization failed")
	ErrDeserializationFailed = NewRoszError(ErrorCodeDeserializationFailed, "deserialization failed")

	// ErrTypeSupportNotFound is returned by lookups for names nothing registered.
	ErrTypeSupportNotFound = NewRoszError(ErrorCodeTypeSupportNotFound, "type support not found")

	// ErrTypeMismatch is returned by callbacks handed a message of the wrong Go type.
	// Use errors.Is(err, rosz.ErrTypeMismatch) to detect it.
	ErrTypeMismatch = NewRoszError(ErrorCodeTypeMismatch, "message type mismatch")

	ErrDuplicateTypeSupport = NewRoszError(ErrorCodeDuplicateTypeSupport, "type support already registered")
	ErrInvalidTypeSupport   = NewRoszError(ErrorCodeInvalidTypeSupport, "invalid type support")
)
