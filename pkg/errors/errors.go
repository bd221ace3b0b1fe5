// Package errors provides structured error types for codevideo.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the scene libraries
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures and programmer errors
//   - UNSUPPORTED_*: Inputs the tool knows it cannot handle
//   - *_NOT_FOUND: Missing resources
//   - EXTERNAL_TOOL: Failures of the external rendering/media toolchain
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedFileType, "no lexer for %s", path)
//	if errors.Is(err, errors.ErrCodeUnsupportedFileType) {
//	    // Handle unsupported input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeExternalTool, origErr, "ffmpeg concat failed")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidColor     Code = "INVALID_COLOR"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Parsing and layout errors
	ErrCodeUnsupportedFileType Code = "UNSUPPORTED_FILE_TYPE"
	ErrCodeDanglingTerminator  Code = "DANGLING_TERMINATOR"
	ErrCodeAmbiguousConnection Code = "AMBIGUOUS_CONNECTION"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeNoMoreMusic  Code = "NO_MORE_MUSIC"

	// External toolchain errors
	ErrCodeExternalTool Code = "EXTERNAL_TOOL"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// As is errors.As from the standard library.
func As(err error, target any) bool { return errors.As(err, target) }

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

// ToolError carries the stderr output of a failed external command.
type ToolError struct {
	Tool   string // Executable name
	Stderr string // Captured standard error (may be empty)
	Err    error  // Exit or lookup error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

// Unwrap returns the underlying exit or lookup error.
func (e *ToolError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *ToolError) Code() Code {
	return ErrCodeExternalTool
}

// Tool returns an EXTERNAL_TOOL error wrapping a ToolError for tool.
func Tool(tool, stderr string, err error) *Error {
	return Wrap(ErrCodeExternalTool, &ToolError{Tool: tool, Stderr: stderr, Err: err}, "%s failed", tool)
}
