package termdev

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/facet/internal/face/device"
)

// Colors resolves color names for a terminal display. On a true-color
// display pixels are packed 24-bit values; otherwise each color maps to the
// nearest entry of the terminal palette.
type Colors struct {
	trueColor bool
	palette   []colorful.Color
	defFG     resolved
	defBG     resolved
}

type resolved struct {
	pixel device.Pixel
	rgb   device.RGB
}

// NewColors creates a resolver for a display with the given palette size.
// A paletteSize of 0 (or anything above 256) selects true color. defaultFG
// and defaultBG name the display's default colors; unresolvable names fall
// back to white on black.
func NewColors(paletteSize int, defaultFG, defaultBG string) *Colors {
	c := &Colors{trueColor: paletteSize <= 0 || paletteSize > 256}
	if !c.trueColor {
		c.palette = make([]colorful.Color, paletteSize)
		for i := range c.palette {
			c.palette[i] = toColorful(rgbOf(tcell.PaletteColor(i)))
		}
	}
	c.defFG = c.resolveOr(defaultFG, device.RGB{R: 0xff, G: 0xff, B: 0xff})
	c.defBG = c.resolveOr(defaultBG, device.RGB{})
	return c
}

// ResolveColor implements device.ColorResolver.
func (c *Colors) ResolveColor(name string) (device.Pixel, device.RGB, error) {
	tc := tcell.GetColor(name)
	if !tc.Valid() {
		return 0, device.RGB{}, &device.ColorError{Name: name}
	}
	rgb := rgbOf(tc)
	return c.pixelFor(rgb), rgb, nil
}

// DefaultForeground implements device.ColorResolver.
func (c *Colors) DefaultForeground() (device.Pixel, device.RGB) {
	return c.defFG.pixel, c.defFG.rgb
}

// DefaultBackground implements device.ColorResolver.
func (c *Colors) DefaultBackground() (device.Pixel, device.RGB) {
	return c.defBG.pixel, c.defBG.rgb
}

// TrueColor implements device.ColorResolver.
func (c *Colors) TrueColor() bool {
	return c.trueColor
}

// Distance implements device.ColorResolver using CIE Lab distance.
func (c *Colors) Distance(a, b device.RGB) float64 {
	return toColorful(a).DistanceLab(toColorful(b))
}

func (c *Colors) resolveOr(name string, fallback device.RGB) resolved {
	if name != "" {
		if px, rgb, err := c.ResolveColor(name); err == nil {
			return resolved{pixel: px, rgb: rgb}
		}
	}
	return resolved{pixel: c.pixelFor(fallback), rgb: fallback}
}

func (c *Colors) pixelFor(rgb device.RGB) device.Pixel {
	if c.trueColor {
		return device.Pixel(uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B))
	}
	return device.Pixel(c.nearest(rgb))
}

// nearest returns the palette index perceptually closest to rgb.
func (c *Colors) nearest(rgb device.RGB) int {
	want := toColorful(rgb)
	best, bestDist := 0, -1.0
	for i, p := range c.palette {
		d := want.DistanceLab(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func rgbOf(tc tcell.Color) device.RGB {
	r, g, b := tc.TrueColor().RGB()
	return device.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func toColorful(rgb device.RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
}
