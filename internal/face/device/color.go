package device

import "fmt"

// Pixel is a device color value. On a true-color display it is a packed
// 24-bit RGB value; on a palette display it is a palette index.
type Pixel uint32

// RGB holds the 8-bit channels of a resolved color, independent of how the
// device encodes the pixel.
type RGB struct {
	R, G, B uint8
}

// Hex returns the #rrggbb form of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorResolver maps color names to device pixels.
type ColorResolver interface {
	// ResolveColor maps a color name or #rrggbb spec to a device pixel and
	// the RGB value it will display as. Unknown names return
	// ErrColorUnavailable.
	ResolveColor(name string) (Pixel, RGB, error)

	// DefaultForeground returns the display's default foreground.
	DefaultForeground() (Pixel, RGB)

	// DefaultBackground returns the display's default background.
	DefaultBackground() (Pixel, RGB)

	// TrueColor reports whether pixels are 24-bit values rather than
	// palette indices.
	TrueColor() bool

	// Distance returns the perceptual distance between two colors.
	// Smaller is more similar.
	Distance(a, b RGB) float64
}
