package realize

import (
	"errors"
	"fmt"
)

// Errors returned by the realization cache.
var (
	// ErrUnrealizable indicates an attribute vector with unspecified
	// slots. Only fully specified vectors can be realized.
	ErrUnrealizable = errors.New("attribute vector not fully specified")

	// ErrUnknownID indicates a face id with no live realized face, either
	// never assigned or dead since the last invalidation.
	ErrUnknownID = errors.New("unknown face id")
)

// IDError reports the offending face id.
type IDError struct {
	ID ID
}

// Error implements the error interface.
func (e *IDError) Error() string {
	return fmt.Sprintf("unknown face id %d", e.ID)
}

// Unwrap returns ErrUnknownID so callers can match with errors.Is.
func (e *IDError) Unwrap() error {
	return ErrUnknownID
}
