// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// ErrorCategory classifies startup errors.
type ErrorCategory string

const (
	// CategoryValidation indicates the user provided invalid input:
	// unknown flags, extra arguments, a bad config file, or a
	// non-terminal stdout. Fix the invocation and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryInternal indicates an unexpected failure: the TUI
	// program could not start or exited abnormally.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized startup error. It wraps an inner error,
// preserving the chain for errors.Is and errors.As, and may carry a
// hint telling the user what to do next.
type ToolError struct {
	// Category classifies the error.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step, printed after a blank line.
	Hint string
}

// Error returns the underlying message followed by the hint, if any.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the user provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
