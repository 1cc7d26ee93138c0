package resources

import (
	"errors"
	"fmt"
)

// ErrMissingResource indicates a mandatory resource (walltime or memory)
// is absent or unparsable. Array and CPU-layout problems never produce
// this error; they degrade to defaults instead.
var ErrMissingResource = errors.New("required resource not specified")

// MissingResourceError names the resource that could not be derived.
type MissingResourceError struct {
	Resource string // "time" or "mem"
	Reason   string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("invalid job script: %s %s", e.Resource, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMissingResource) to match
func (e *MissingResourceError) Unwrap() error {
	return ErrMissingResource
}

// NewMissingResourceError creates a new MissingResourceError
func NewMissingResourceError(resource, reason string) *MissingResourceError {
	return &MissingResourceError{Resource: resource, Reason: reason}
}
