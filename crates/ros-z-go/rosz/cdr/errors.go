package cdr

import (
	"fmt"
)

// ErrorCode is the machine-readable reason of a cursor failure.
type ErrorCode uint32

const (
	// ErrNotEnoughData means the buffer ended before the value being read.
	ErrNotEnoughData ErrorCode = iota + 1
	// ErrInvalidBool means a boolean byte was neither 0 nor 1.
	ErrInvalidBool
	// ErrSequenceTooLong means a sequence count does not fit in uint32.
	ErrSequenceTooLong
	// ErrStringTooLong means a string length does not fit in uint32.
	ErrStringTooLong
	// ErrBadEncapsulation means the encapsulation header is not CDR_LE or CDR_BE.
	ErrBadEncapsulation
	// ErrBoundExceeded means a bounded sequence or string is longer than its bound.
	ErrBoundExceeded
)

// Error implements error for ErrorCode
func (e ErrorCode) Error() string {
	switch e {
	case ErrNotEnoughData:
		return "not enough data"
	case ErrInvalidBool:
		return "invalid boolean value"
	case ErrSequenceTooLong:
		return "sequence length exceeds uint32"
	case ErrStringTooLong:
		return "string length exceeds uint32"
	case ErrBadEncapsulation:
		return "unsupported encapsulation"
	case ErrBoundExceeded:
		return "bound exceeded"
	default:
		return "unknown error code"
	}
}

// Code returns the error code itself so that wrapped cursor errors can be
// classified with errors.As.
func (e ErrorCode) Code() ErrorCode {
	return e
}

// valueError refers to a single offending value.
type valueError struct {
	ErrorCode
	value interface{}
}

func newValueError(code ErrorCode, value interface{}) valueError {
	return valueError{
		ErrorCode: code,
		value:     value,
	}
}

func (e valueError) Error() string {
	return fmt.Sprintf("%s: %v", e.ErrorCode.Error(), e.value)
}

func (e valueError) Unwrap() error {
	return e.ErrorCode
}

// expectError compares what was needed with what was found.
type expectError struct {
	ErrorCode
	expect interface{}
	actual interface{}
}

func newExpectError(code ErrorCode, expect, actual interface{}) expectError {
	return expectError{
		ErrorCode: code,
		expect:    expect,
		actual:    actual,
	}
}

func (e expectError) Error() string {
	return fmt.Sprintf("%s: expected %v, got %v", e.ErrorCode.Error(), e.expect, e.actual)
}

func (e expectError) Unwrap() error {
	return e.ErrorCode
}

// CheckBound returns ErrBoundExceeded when length is larger than bound.
func CheckBound(length, bound int) error {
	if length > bound {
		return newExpectError(ErrBoundExceeded, fmt.Sprintf("at most %d", bound), length)
	}
	return nil
}
