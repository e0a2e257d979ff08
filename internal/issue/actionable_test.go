// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "load configuration",
			},
			expected: "failed to load configuration",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "./config.cue",
			},
			expected: "failed to load configuration: ./config.cue",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "bind capability",
				Cause:     errors.New("surety-config: syntax error"),
			},
			expected: "failed to bind capability: surety-config: syntax error",
		},
		{
			name: "operation with resource and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "./config.cue",
				Cause:     errors.New("unexpected token"),
			},
			expected: "failed to load configuration: ./config.cue: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapWithOperation(cause, "bind capability")

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}
}

func TestActionableError_FormatSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check CUE syntax").
		WithSuggestion("Run 'surety config init'").
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "• Check CUE syntax") {
		t.Errorf("Format() = %q, missing first suggestion", got)
	}
	if !strings.Contains(got, "• Run 'surety config init'") {
		t.Errorf("Format() = %q, missing second suggestion", got)
	}
}

func TestActionableError_FormatVerboseChain(t *testing.T) {
	inner := errors.New("inner")
	middle := WrapWithOperation(inner, "open sibling")
	outer := NewErrorContext().
		WithOperation("bind capability").
		Wrap(middle).
		Build()

	got := outer.Format(true)
	if !strings.Contains(got, "Error chain:") {
		t.Errorf("Format(true) = %q, missing error chain", got)
	}
	if !strings.Contains(got, "inner") {
		t.Errorf("Format(true) = %q, missing innermost cause", got)
	}

	if terse := outer.Format(false); strings.Contains(terse, "Error chain:") {
		t.Errorf("Format(false) = %q, should not include error chain", terse)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("./config.cue").Build(); err != nil {
		t.Errorf("Build() without operation = %v, want nil", err)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	if got := WrapWithOperation(nil, "bind capability"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}
