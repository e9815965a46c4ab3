package termdev

import "github.com/dshills/facet/internal/face/device"

// Caps is a declared terminal capability set.
type Caps struct {
	NumColors     int
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Inverse       bool
	StrikeThrough bool
	Overline      bool
}

// DefaultCaps describes a modern 256-color terminal.
var DefaultCaps = Caps{
	NumColors:     256,
	Bold:          true,
	Dim:           true,
	Italic:        true,
	Underline:     true,
	Inverse:       true,
	StrikeThrough: true,
}

// Supports implements device.CapabilityProbe.
func (c Caps) Supports(capability device.Capability) bool {
	switch capability {
	case device.CapColors:
		return c.NumColors > 0
	case device.CapBold:
		return c.Bold
	case device.CapDim:
		return c.Dim
	case device.CapItalic:
		return c.Italic
	case device.CapUnderline:
		return c.Underline
	case device.CapInverse:
		return c.Inverse
	case device.CapStrikeThrough:
		return c.StrikeThrough
	case device.CapOverline:
		return c.Overline
	default:
		return false
	}
}

// Colors implements device.CapabilityProbe.
func (c Caps) Colors() int {
	return c.NumColors
}
