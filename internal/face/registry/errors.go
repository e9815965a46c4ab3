package registry

import (
	"errors"
	"fmt"
)

// Errors returned by face table operations.
var (
	// ErrUnknownFace indicates the face name is not defined in the scope.
	ErrUnknownFace = errors.New("unknown face")

	// ErrAliasCycle indicates the alias chain of a face loops.
	ErrAliasCycle = errors.New("face alias cycle")
)

// UnknownFaceError reports which name was not defined.
type UnknownFaceError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownFaceError) Error() string {
	return fmt.Sprintf("invalid face %q", e.Name)
}

// Unwrap returns ErrUnknownFace so callers can match with errors.Is.
func (e *UnknownFaceError) Unwrap() error {
	return ErrUnknownFace
}

// AliasCycleError reports the face whose alias chain loops.
type AliasCycleError struct {
	Name string
}

// Error implements the error interface.
func (e *AliasCycleError) Error() string {
	return fmt.Sprintf("alias chain of face %q is circular", e.Name)
}

// Unwrap returns ErrAliasCycle so callers can match with errors.Is.
func (e *AliasCycleError) Unwrap() error {
	return ErrAliasCycle
}
