// Package errors defines the typed errors returned by stylesheet loading and
// compilation. The style engine itself has no error path.
package errors

import (
	"fmt"
)

// ParseError represents a stylesheet that could not be read or decoded, with
// optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a stylesheet field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CompileError reports a preset that could not be compiled, such as one that
// was cancelled or references a preset the sheet does not define.
type CompileError struct {
	Preset string
	Err    error
}

// NewCompileError constructs a CompileError for the given preset.
func NewCompileError(preset string, err error) error {
	return &CompileError{Preset: preset, Err: err}
}

func (e *CompileError) Error() string {
	if e == nil {
		return ""
	}
	if e.Preset != "" {
		return fmt.Sprintf("compile error in preset %s: %v", e.Preset, e.Err)
	}
	return fmt.Sprintf("compile error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *CompileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
