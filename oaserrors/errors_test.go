package oaserrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseError(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := &ParseError{Path: "swagger.yaml", Message: "invalid document", Cause: cause}

	if !errors.Is(err, ErrParse) {
		t.Error("ParseError does not match ErrParse")
	}
	if !errors.Is(err, cause) {
		t.Error("ParseError does not unwrap to its cause")
	}
	msg := err.Error()
	for _, want := range []string{"swagger.yaml", "invalid document", "yaml: line 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestReferenceErrorSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        *ReferenceError
		matches    []error
		notMatches []error
	}{
		{
			name:       "plain",
			err:        &ReferenceError{Ref: "#/definitions/A"},
			matches:    []error{ErrReference},
			notMatches: []error{ErrCircularReference, ErrPathTraversal, ErrParse},
		},
		{
			name:       "circular",
			err:        &ReferenceError{Ref: "#/definitions/A", IsCircular: true},
			matches:    []error{ErrReference, ErrCircularReference},
			notMatches: []error{ErrPathTraversal},
		},
		{
			name:       "path traversal",
			err:        &ReferenceError{Ref: "../x.json", IsPathTraversal: true},
			matches:    []error{ErrReference, ErrPathTraversal},
			notMatches: []error{ErrCircularReference},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range tt.matches {
				if !errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, target)
				}
			}
			for _, target := range tt.notMatches {
				if errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, target)
				}
			}
		})
	}
}

func TestReferenceErrorMessage(t *testing.T) {
	err := &ReferenceError{Ref: "#/definitions/A", IsCircular: true}
	if !strings.Contains(err.Error(), "circular reference") {
		t.Errorf("Error() = %q, missing circular marker", err.Error())
	}

	err = &ReferenceError{Ref: "../x.json", IsPathTraversal: true}
	if !strings.Contains(err.Error(), "path traversal") {
		t.Errorf("Error() = %q, missing traversal marker", err.Error())
	}
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "file_size", Limit: 100, Actual: 250}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("ResourceLimitError does not match ErrResourceLimit")
	}
	msg := err.Error()
	for _, want := range []string{"file_size", "100", "250"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestUnsupportedKindError(t *testing.T) {
	err := &UnsupportedKindError{Kind: "JSONSchemaProps"}
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Error("UnsupportedKindError does not match ErrUnsupportedKind")
	}
	if got := err.Error(); got != "JSONSchemaProps not currently supported" {
		t.Errorf("Error() = %q", got)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "OutputDir", Message: "cannot be empty"}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError does not match ErrConfig")
	}
	if !strings.Contains(err.Error(), "OutputDir") {
		t.Errorf("Error() = %q, missing option name", err.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	inner := &ReferenceError{Ref: "#/definitions/A", IsCircular: true}
	wrapped := fmt.Errorf("processing type: %w", inner)

	var refErr *ReferenceError
	if !errors.As(wrapped, &refErr) {
		t.Fatal("errors.As failed through wrapping")
	}
	if !refErr.IsCircular {
		t.Error("unwrapped error lost IsCircular")
	}
	if !errors.Is(wrapped, ErrCircularReference) {
		t.Error("wrapped error does not match ErrCircularReference")
	}
}
