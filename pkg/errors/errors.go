// Package errors provides structured error types for crafttree.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library callers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - EMPTY_*: Precondition violations on empty input
//   - SEARCH_*: Failures reported by the upstream recipe search service
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidElement, "invalid element name: %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidElement) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
//
// Unresolvable elements and cyclic recipes are not errors: the tree builder
// models them as (flagged) leaves.
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidElement Code = "INVALID_ELEMENT"
	ErrCodeInvalidAlgo    Code = "INVALID_ALGO"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle   Code = "INVALID_STYLE"
	ErrCodeInvalidVizType Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Precondition violations
	ErrCodeEmptyRecipes Code = "EMPTY_RECIPES"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Upstream search service errors
	ErrCodeSearchFailed Code = "SEARCH_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
	var se *SearchError
	if errors.As(err, &se) {
		return se.Error()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// SearchError carries the failure envelope returned by the recipe search
// service: {"error": true, "type": "...", "message": "..."} or
// {"error": "..."}.
type SearchError struct {
	Type    string // Service-defined failure type (e.g. "not_found")
	Message string
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Type != "":
		return "search failed: " + e.Type
	default:
		return "search failed"
	}
}

// Code returns the error code for this error type.
func (e *SearchError) Code() Code {
	return ErrCodeSearchFailed
}

// Search wraps a service failure envelope as an *Error with
// ErrCodeSearchFailed so callers can match on the code.
func Search(typ, message string) *Error {
	se := &SearchError{Type: typ, Message: message}
	return Wrap(ErrCodeSearchFailed, se, "recipe search failed")
}
