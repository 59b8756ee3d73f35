// Package errors provides structured error types for svg2puml.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each code maps to one failure class of the conversion pipeline:
//   - RASTERIZER_NOT_FOUND: no usable rasterizer on the host; fatal to the run
//   - PROCESS_ERROR: a rasterizer invocation failed; recovered per file
//   - DECODE_ERROR: a produced raster could not be decoded; recovered per file
//   - IO_ERROR: directory creation, raster read, or sprite write failed; recovered per file
//   - DIRECTORY_ERROR: a tree walk failed; fatal for the input walk, non-fatal for indexing
//
// # Usage
//
//	err := errors.New(errors.ErrCodeProcess, "rasterizer exited with code %d", code)
//	if errors.Is(err, errors.ErrCodeProcess) {
//	    // Handle per-file failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "create directory %s", dir)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the conversion pipeline failure classes.
const (
	// Fatal precondition: no rasterizer available on the host.
	ErrCodeRasterizerNotFound Code = "RASTERIZER_NOT_FOUND"

	// Per-file failures, recovered by the batch loop.
	ErrCodeProcess Code = "PROCESS_ERROR"
	ErrCodeDecode  Code = "DECODE_ERROR"
	ErrCodeIO      Code = "IO_ERROR"

	// Tree walk failures.
	ErrCodeDirectory Code = "DIRECTORY_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
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

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
