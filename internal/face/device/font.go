package device

import "github.com/dshills/facet/internal/face/attr"

// FontHandle is an opened font. Its accessors report the properties the
// backend actually matched, which may differ from what was requested; the
// realization layer uses them to back-fill unspecified attributes.
type FontHandle interface {
	Family() string
	Foundry() string
	Weight() attr.Weight
	Slant() attr.Slant
	Width() attr.Width

	// Height returns the font size in 1/10 point units.
	Height() int
}

// FontResolver opens fonts for attribute vectors.
type FontResolver interface {
	// LoadFont opens the best font for the vector's font-related slots.
	// No matching font returns ErrFontUnavailable.
	LoadFont(v *attr.Vector) (FontHandle, error)

	// ReleaseFont releases a handle returned by LoadFont. Releasing nil is
	// a no-op.
	ReleaseFont(h FontHandle)
}
