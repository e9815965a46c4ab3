package merge

import (
	"errors"
	"fmt"
)

// Errors returned by reference resolution.
var (
	// ErrInheritanceCycle indicates a face reached itself through its
	// inherit or remap chain.
	ErrInheritanceCycle = errors.New("face inheritance cycle")

	// ErrInvalidReference indicates a malformed face reference.
	ErrInvalidReference = errors.New("invalid face reference")
)

// CycleError reports the face and the kind of merge point that closed the
// cycle.
type CycleError struct {
	Name string
	Kind Kind
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("face %q: %s cycle", e.Name, e.Kind)
}

// Unwrap returns ErrInheritanceCycle so callers can match with errors.Is.
func (e *CycleError) Unwrap() error {
	return ErrInheritanceCycle
}

// ReferenceError reports a malformed reference shape.
type ReferenceError struct {
	Ref any
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("invalid face reference: %v", e.Ref)
}

// Unwrap returns ErrInvalidReference so callers can match with errors.Is.
func (e *ReferenceError) Unwrap() error {
	return ErrInvalidReference
}
