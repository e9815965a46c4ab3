package realize

import (
	"errors"

	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/device"
)

// Devices bundles the collaborators realization needs. Guard may be nil
// for a no-op guard.
type Devices struct {
	Fonts  device.FontResolver
	Colors device.ColorResolver
	Caps   device.CapabilityProbe
	Guard  device.InputGuard
}

// Options tune terminal realization details.
type Options struct {
	// SuppressBoldInverseDefault drops bold when a face is inverse video
	// in the default colors, for terminals whose bold+reverse rendering is
	// unreadable.
	SuppressBoldInverseDefault bool
}

// realize builds a RealizedFace from a fully specified vector. Device
// failures substitute defaults and set the corresponding Defaulted flags;
// they never fail the realization.
func (c *Cache) realize(v *attr.Vector) *RealizedFace {
	f := &RealizedFace{
		generation: c.generation,
		attrs:      *v,
		hash:       v.Hash(),
	}

	c.dev.Guard.Block()
	font, err := c.dev.Fonts.LoadFont(v)
	c.dev.Guard.Unblock()
	if err != nil {
		if !errors.Is(err, device.ErrFontUnavailable) {
			c.logf("font load: %v", err)
		}
		f.fontDefaulted = true
	}
	f.font = font

	f.Foreground = c.resolveColor(v[attr.SlotForeground], false)
	f.Background = c.resolveColor(v[attr.SlotBackground], true)

	c.realizeWeight(f, v)
	c.realizeSlant(f, v)
	c.realizeUnderline(f, v)
	c.realizeLines(f, v)
	c.realizeBox(f, v)
	c.realizeInverse(f, v)

	return f
}

// resolveColor maps a color slot to a device pixel, substituting the
// surface default on failure.
func (c *Cache) resolveColor(val attr.Value, background bool) Color {
	if name, ok := val.Str(); ok {
		px, rgb, err := c.dev.Colors.ResolveColor(name)
		if err == nil {
			return Color{Pixel: px, RGB: rgb}
		}
		c.logf("%v", err)
	}
	var px device.Pixel
	var rgb device.RGB
	if background {
		px, rgb = c.dev.Colors.DefaultBackground()
	} else {
		px, rgb = c.dev.Colors.DefaultForeground()
	}
	return Color{Pixel: px, RGB: rgb, Defaulted: true}
}

func (c *Cache) realizeWeight(f *RealizedFace, v *attr.Vector) {
	w, ok := v[attr.SlotWeight].Weight()
	if !ok || !w.Bold() {
		return
	}
	if c.dev.Caps.Supports(device.CapBold) {
		f.Bold = true
		return
	}
	// No bold attribute: double-strike approximates it.
	f.Overstrike = true
}

func (c *Cache) realizeSlant(f *RealizedFace, v *attr.Vector) {
	s, ok := v[attr.SlotSlant].Slant()
	if !ok || s == attr.SlantNormal {
		return
	}
	if c.dev.Caps.Supports(device.CapItalic) {
		f.Italic = true
	}
}

func (c *Cache) realizeUnderline(f *RealizedFace, v *attr.Vector) {
	val := v[attr.SlotUnderline]
	if val.State() != attr.StateSpecified {
		return
	}
	var color string
	if on, ok := val.Flag(); ok {
		if !on {
			return
		}
	} else if s, ok := val.Str(); ok {
		color = s
	} else if u, ok := val.Underline(); ok {
		color = u.Color
		f.UnderlineStyle = u.Style
	} else {
		return
	}
	if !c.dev.Caps.Supports(device.CapUnderline) {
		return
	}
	f.Underline = true
	if color != "" {
		f.UnderlineC = c.resolveColor(attr.Str(color), false)
	} else {
		f.UnderlineC = Color{Pixel: f.Foreground.Pixel, RGB: f.Foreground.RGB, Defaulted: true}
	}
}

// realizeLines handles overline and strike-through, both plain flags or a
// color name.
func (c *Cache) realizeLines(f *RealizedFace, v *attr.Vector) {
	if on, color, ok := lineSlot(v[attr.SlotOverline]); ok && on {
		if c.dev.Caps.Supports(device.CapOverline) {
			f.Overline = true
			f.OverlineC = c.lineColor(f, color)
		}
	}
	if on, color, ok := lineSlot(v[attr.SlotStrikeThrough]); ok && on {
		if c.dev.Caps.Supports(device.CapStrikeThrough) {
			f.StrikeThrough = true
			f.StrikeC = c.lineColor(f, color)
		}
	}
}

func lineSlot(val attr.Value) (on bool, color string, ok bool) {
	if val.State() != attr.StateSpecified {
		return false, "", false
	}
	if flag, isFlag := val.Flag(); isFlag {
		return flag, "", true
	}
	if s, isStr := val.Str(); isStr {
		return true, s, true
	}
	return false, "", false
}

func (c *Cache) lineColor(f *RealizedFace, color string) Color {
	if color == "" {
		return Color{Pixel: f.Foreground.Pixel, RGB: f.Foreground.RGB, Defaulted: true}
	}
	return c.resolveColor(attr.Str(color), false)
}

func (c *Cache) realizeBox(f *RealizedFace, v *attr.Vector) {
	val := v[attr.SlotBox]
	if val.State() != attr.StateSpecified || isOffFlag(val) {
		return
	}
	if n, ok := val.Int(); ok {
		f.BoxLineWidth = n
	} else if s, ok := val.Str(); ok {
		f.BoxLineWidth = 1
		f.BoxC = c.resolveColor(attr.Str(s), false)
		return
	} else if b, ok := val.Box(); ok {
		f.BoxLineWidth = b.LineWidth
		if f.BoxLineWidth == 0 {
			f.BoxLineWidth = 1
		}
		f.BoxStyle = b.Style
		if b.Color != "" {
			f.BoxC = c.resolveColor(attr.Str(b.Color), false)
			return
		}
	} else {
		return
	}
	f.BoxC = Color{Pixel: f.Foreground.Pixel, RGB: f.Foreground.RGB, Defaulted: true}
}

func isOffFlag(val attr.Value) bool {
	on, ok := val.Flag()
	return ok && !on
}

// realizeInverse applies inverse video by swapping the resolved colors.
// When both colors fell back to the defaults, the swap is left to the
// display's reverse attribute instead, so the terminal's own default
// rendering stays intact.
func (c *Cache) realizeInverse(f *RealizedFace, v *attr.Vector) {
	on, ok := v[attr.SlotInverse].Flag()
	if !ok || !on {
		return
	}
	if f.ColorsDefaulted() {
		if c.dev.Caps.Supports(device.CapInverse) {
			f.Inverse = true
			if c.opts.SuppressBoldInverseDefault {
				f.Bold = false
				f.Overstrike = false
			}
		}
		return
	}
	f.Foreground, f.Background = f.Background, f.Foreground
}

// release frees the device resources a face owns. The input guard must be
// held by the caller.
func (c *Cache) release(f *RealizedFace) {
	if f.font != nil && !f.fontDefaulted {
		c.dev.Fonts.ReleaseFont(f.font)
	}
	f.font = nil
}
