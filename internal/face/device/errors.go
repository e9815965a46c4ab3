package device

import (
	"errors"
	"fmt"
)

// Errors returned by device backends.
var (
	// ErrColorUnavailable indicates a color name the device cannot resolve.
	ErrColorUnavailable = errors.New("color unavailable")

	// ErrFontUnavailable indicates no font matched the requested
	// attributes. This is a normal result, not a failure of the backend.
	ErrFontUnavailable = errors.New("font unavailable")
)

// ColorError reports the color name that failed to resolve.
type ColorError struct {
	Name string
}

// Error implements the error interface.
func (e *ColorError) Error() string {
	return fmt.Sprintf("color %q unavailable", e.Name)
}

// Unwrap returns ErrColorUnavailable so callers can match with errors.Is.
func (e *ColorError) Unwrap() error {
	return ErrColorUnavailable
}

// FontError reports the font family that failed to resolve.
type FontError struct {
	Family string
}

// Error implements the error interface.
func (e *FontError) Error() string {
	return fmt.Sprintf("font %q unavailable", e.Family)
}

// Unwrap returns ErrFontUnavailable so callers can match with errors.Is.
func (e *FontError) Unwrap() error {
	return ErrFontUnavailable
}
