// Package errors provides custom error types for the offboard system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the offboard system
var (
	// ErrValidationFailed indicates that the output failed the validation gate
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingColumn indicates that a required column is absent from a table
	ErrMissingColumn = errors.New("missing column")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ValidationError represents a failure of one of the output validation rules.
type ValidationError struct {
	Rule    string   // Name of the rule that failed
	Message string   // Human-readable reason
	Emails  []string // Offending emails, when the rule identifies them
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Emails) > 0 {
		return fmt.Sprintf("validation failed (%s): %s: %s", e.Rule, e.Message, strings.Join(sorted(e.Emails), ", "))
	}
	if e.Rule != "" {
		return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates a new ValidationError
func NewValidationError(rule, message string, emails ...string) *ValidationError {
	return &ValidationError{Rule: rule, Message: message, Emails: emails}
}

// SchemaError represents a table that is missing required columns.
type SchemaError struct {
	Table   string   // Which table (roster, terminations, output)
	Missing []string // Missing column names
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s table is missing required columns: %s", e.Table, strings.Join(sorted(e.Missing), ", "))
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrMissingColumn
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(table string, missing []string) *SchemaError {
	return &SchemaError{Table: table, Missing: missing}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml", etc.
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s file %s at line %d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ProcessError represents an unexpected internal failure recovered at the
// pipeline boundary. The Stage names where in the pipeline it surfaced.
type ProcessError struct {
	Stage   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ProcessError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("processing error during %s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("processing error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError
func NewProcessError(stage, message string, err error) *ProcessError {
	return &ProcessError{
		Stage:   stage,
		Message: message,
		Err:     err,
	}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsMissingColumn checks if an error is a missing-column schema error
func IsMissingColumn(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapProcess wraps an error as a ProcessError
func WrapProcess(stage string, err error) error {
	if err == nil {
		return nil
	}
	return NewProcessError(stage, err.Error(), err)
}

// sorted returns a sorted copy so error messages are deterministic.
func sorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
