package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrUnsupportedVersion indicates the document's OAS version is not supported.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrWrongDataType indicates one or more values failed type validation.
	ErrWrongDataType = errors.New("wrong data type")

	// ErrMissingPathParam indicates unresolved path template placeholders.
	ErrMissingPathParam = errors.New("missing path parameter")
)

// ParseError represents a failure to parse an OpenAPI document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
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
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
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
// This includes invalid options, missing required inputs, and unknown
// formatter tags.
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

// UnsupportedVersionError is returned when a document declares an OAS
// version outside the set a component can work with. It is raised at
// construction time, before any serialization call.
type UnsupportedVersionError struct {
	// Version is the version string declared by the document ("" if unknown)
	Version string
	// Supported lists the accepted version series (e.g., "3.0.x")
	Supported []string
}

// Error returns a human-readable error message.
func (e *UnsupportedVersionError) Error() string {
	v := e.Version
	if v == "" {
		v = "unknown"
	}
	msg := fmt.Sprintf("unsupported OpenAPI version %q", v)
	if len(e.Supported) > 0 {
		msg += " (supported: " + strings.Join(e.Supported, ", ") + ")"
	}
	return msg
}

// Unwrap returns nil as UnsupportedVersionError has no underlying cause.
func (e *UnsupportedVersionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// DataTypeProblem records one mismatch between a supplied value and the
// type it was expected to have. DataTypeProblem implements error so that
// problems can be aggregated with ordinary error tooling.
type DataTypeProblem struct {
	// Expected is the expected type label (e.g., "string", "string:email")
	Expected string
	// Name is the parameter or field name
	Name string
	// Value is the offending value
	Value any
}

// Error returns a human-readable description of the problem.
func (p DataTypeProblem) Error() string {
	return fmt.Sprintf("%s: expected %s, got %#v", p.Name, p.Expected, p.Value)
}

// WrongDataTypeError is returned when one or more supplied values fail
// type or format validation. Problems holds every violation found in a
// single pass, in the order they were discovered.
type WrongDataTypeError struct {
	// Path is the path template (or field path) being serialized
	Path string
	// Problems lists every violation found
	Problems []DataTypeProblem
	// Cause is the aggregated problems as a single error chain, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WrongDataTypeError) Error() string {
	msg := "wrong data type"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if len(e.Problems) > 0 {
		parts := make([]string, len(e.Problems))
		for i, p := range e.Problems {
			parts[i] = p.Error()
		}
		msg += ": " + strings.Join(parts, "; ")
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WrongDataTypeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WrongDataTypeError) Is(target error) bool {
	return target == ErrWrongDataType
}

// MissingPathParamError is returned when placeholders remain in a path
// template after every supplied value has been substituted.
type MissingPathParamError struct {
	// Path is the path template being serialized
	Path string
	// MissingParams lists unresolved placeholder names in left-to-right
	// order of first appearance
	MissingParams []string
}

// Error returns a human-readable error message.
func (e *MissingPathParamError) Error() string {
	msg := "missing path parameter"
	if len(e.MissingParams) > 1 {
		msg += "s"
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if len(e.MissingParams) > 0 {
		msg += ": " + strings.Join(e.MissingParams, ", ")
	}
	return msg
}

// Unwrap returns nil as MissingPathParamError has no underlying cause.
func (e *MissingPathParamError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MissingPathParamError) Is(target error) bool {
	return target == ErrMissingPathParam
}
