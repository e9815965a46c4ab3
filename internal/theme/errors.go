package theme

import (
	"errors"
	"fmt"
)

// Errors returned by theme loading.
var (
	// ErrParse indicates a theme file that could not be parsed.
	ErrParse = errors.New("theme parse error")

	// ErrUnknownKeyword indicates an attribute key no face slot matches.
	ErrUnknownKeyword = errors.New("unknown face attribute")
)

// ParseError reports the file and reason of a parse failure.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("theme %s: %s", e.Path, e.Message)
}

// Unwrap returns the wrapped cause, or ErrParse.
func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrParse
}

// KeywordError reports an attribute key or value a theme file got wrong.
type KeywordError struct {
	Face  string
	Key   string
	Value any
}

// Error implements the error interface.
func (e *KeywordError) Error() string {
	return fmt.Sprintf("face %q: bad attribute %s = %v", e.Face, e.Key, e.Value)
}

// Unwrap returns ErrUnknownKeyword so callers can match with errors.Is.
func (e *KeywordError) Unwrap() error {
	return ErrUnknownKeyword
}
