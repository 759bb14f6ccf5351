// Package oaserrors provides structured error types for openapi2jsonschema.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - ReferenceError: $ref resolution failures, circular references, path traversal
//   - ResourceLimitError: Resource exhaustion (depth, size limits)
//   - UnsupportedKindError: declared types that cannot be emitted stand-alone
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.As
//
//	result, err := e.Emit(doc)
//	for _, failure := range result.Failed {
//	    var refErr *oaserrors.ReferenceError
//	    if errors.As(failure.Err, &refErr) && refErr.IsCircular {
//	        // Handle circular reference specifically
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrPathTraversal indicates a path traversal attempt was blocked.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrUnsupportedKind indicates a declared type that cannot be processed.
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse or interpret a source document.
// This includes YAML/JSON deserialization errors and structural issues such
// as a missing version field or definitions map.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
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

// ReferenceError represents a failure to resolve a $ref.
// This includes missing references, circular references, and path traversal
// attempts.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// RefType indicates the reference type: "local" or "file"
	RefType string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// IsPathTraversal is true if this error is due to a path traversal attempt
	IsPathTraversal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	} else if e.IsPathTraversal {
		msg = "path traversal detected"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
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
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference or ErrPathTraversal
// when appropriate flags are set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	if target == ErrPathTraversal && e.IsPathTraversal {
		return true
	}
	return false
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when loading or dereferencing exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "ref_depth", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// UnsupportedKindError represents a declared type that is deliberately not
// processed. Kubernetes kinds that embed raw JSON Schema cannot be emitted
// in stand-alone mode and abort per-type processing with this error.
type UnsupportedKindError struct {
	// Kind is the declared type's kind segment (e.g., "JSONSchemaProps")
	Kind string
}

// Error returns a human-readable error message.
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s not currently supported", e.Kind)
}

// Is reports whether target matches this error type.
func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the configuration option that is invalid
	Option string
	// Message describes why the configuration is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += ": " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
