package device

// Capability identifies one display attribute a device may or may not
// render.
type Capability uint8

// Display capabilities.
const (
	CapColors Capability = iota
	CapBold
	CapDim
	CapItalic
	CapUnderline
	CapInverse
	CapStrikeThrough
	CapOverline
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapColors:
		return "colors"
	case CapBold:
		return "bold"
	case CapDim:
		return "dim"
	case CapItalic:
		return "italic"
	case CapUnderline:
		return "underline"
	case CapInverse:
		return "inverse"
	case CapStrikeThrough:
		return "strike-through"
	case CapOverline:
		return "overline"
	default:
		return "unknown"
	}
}

// CapabilityProbe reports what the display can render. Realization consults
// it before requesting an attribute so limited displays degrade instead of
// emitting sequences the terminal ignores.
type CapabilityProbe interface {
	// Supports reports whether the display renders the capability.
	Supports(c Capability) bool

	// Colors returns the size of the color space: a palette size, or a
	// large value on true-color displays.
	Colors() int
}
