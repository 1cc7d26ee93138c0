package sbatch

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrScriptNotFound indicates the script file was not found
	ErrScriptNotFound = errors.New("script file not found")

	// ErrInvalidHeaderSyntax indicates a directive value is malformed
	ErrInvalidHeaderSyntax = errors.New("invalid directive syntax")
)

// DirectiveError reports a malformed #SBATCH directive value.
type DirectiveError struct {
	Option string // Canonical option name (e.g., "time", "mem")
	Value  string // Offending raw value
	Reason string // Reason for rejection
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("option %q: %s (value: %q)", e.Option, e.Reason, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidHeaderSyntax) to match
func (e *DirectiveError) Unwrap() error {
	return ErrInvalidHeaderSyntax
}

// NewDirectiveError creates a new DirectiveError
func NewDirectiveError(option, value, reason string) *DirectiveError {
	return &DirectiveError{Option: option, Value: value, Reason: reason}
}

// IsDirectiveError checks if an error is a DirectiveError
func IsDirectiveError(err error) bool {
	var de *DirectiveError
	return errors.As(err, &de)
}
