// Package errors provides coded errors for the paint board.
//
// Codes let front ends tell rejected input (a bad color, an unknown tool) apart
// from failures of the program itself without matching on message text.
//
//	err := errors.New(errors.ErrCodeInvalidColor, "unrecognised color %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // keep the previous color
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidTool   Code = "INVALID_TOOL"
	ErrCodeInvalidAction Code = "INVALID_ACTION"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error around an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any error in err's chain carries code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the code from err, or "" when err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Message returns the human-readable part of err without the code prefix.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
