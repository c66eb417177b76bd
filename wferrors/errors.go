// Package wferrors provides structured error types for wordfmt.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell a bad argument apart from a broken
// override file or a failed code generation.
//
// # Error Categories
//
//   - ArgumentError: missing or invalid format arguments
//   - ParseError: malformed override files or format names read from input
//   - ConfigError: invalid configuration options
//   - GenerateError: code generation failures
package wferrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidArgument indicates a missing or invalid argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrGenerate indicates a code generation failure.
	ErrGenerate = errors.New("generate error")
)

// ArgumentError represents a missing or invalid argument to a conversion.
type ArgumentError struct {
	// Argument is the name of the offending argument (e.g., "target")
	Argument string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the problem
	Message string
}

// Error returns a human-readable error message.
func (e *ArgumentError) Error() string {
	msg := "invalid argument"
	if e.Argument != "" {
		msg += " " + e.Argument
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ArgumentError has no underlying cause.
func (e *ArgumentError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ParseError represents a failure to parse an override file or other input.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, unreadable files, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// GenerateError represents a failure while generating code.
type GenerateError struct {
	// TypeName is the Go type being generated
	TypeName string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *GenerateError) Error() string {
	msg := "generate error"
	if e.TypeName != "" {
		msg += " for " + e.TypeName
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *GenerateError) Is(target error) bool {
	return target == ErrGenerate
}
