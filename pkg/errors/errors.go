// Package errors provides custom error types for the examcheck system.
// Cross-validation itself never fails at runtime (data disagreements are
// surfaced as inconsistency records, not errors), so the types here cover
// construction, decoding, and the CLI surface only.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// Common sentinel errors for the examcheck system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecode indicates that an extraction document could not be decoded
	ErrDecode = errors.New("decode failed")

	// ErrConfirmationRequired indicates that cross-validation flagged
	// disagreements that need human review before the result is trusted
	ErrConfirmationRequired = errors.New("user confirmation required")
)

// DecodeError represents a failure to decode an extraction document
type DecodeError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decoding extraction %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decoding extraction: %v", e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(path string, err error) *DecodeError {
	return &DecodeError{Path: path, Err: err}
}

// OptionError represents an invalid validator option
type OptionError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface
func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s: %s (got %v)", e.Option, e.Message, e.Value)
}

// Is implements errors.Is support
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewOptionError creates a new OptionError
func NewOptionError(option string, value any, message string) *OptionError {
	return &OptionError{Option: option, Value: value, Message: message}
}
