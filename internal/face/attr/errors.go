package attr

import (
	"errors"
	"fmt"
)

// ErrInvalidValue indicates a keyword/value shape mismatch.
var ErrInvalidValue = errors.New("invalid face attribute value")

// AttributeError reports which keyword rejected which value.
type AttributeError struct {
	Key   Keyword
	Value Value
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	return fmt.Sprintf("invalid face attribute %s %s", e.Key, e.Value)
}

// Unwrap returns ErrInvalidValue so callers can match with errors.Is.
func (e *AttributeError) Unwrap() error {
	return ErrInvalidValue
}
