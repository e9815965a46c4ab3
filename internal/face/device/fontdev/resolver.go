package fontdev

import (
	"log"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"

	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/device"
)

// DefaultHeight is the font size assumed when a vector leaves the height
// slot without an absolute value, in 1/10 point units.
const DefaultHeight = 120

// Resolver loads fonts through the system font index.
type Resolver struct {
	fm     *fontscan.FontMap
	logger *log.Logger
	loaded bool
}

// NewResolver creates a resolver. A nil logger uses the standard logger.
// Call UseSystemFonts before loading fonts.
func NewResolver(logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{fm: fontscan.NewFontMap(logger), logger: logger}
}

// UseSystemFonts indexes the system's fonts, caching the index in cacheDir.
func (r *Resolver) UseSystemFonts(cacheDir string) error {
	if err := r.fm.UseSystemFonts(cacheDir); err != nil {
		return err
	}
	r.loaded = true
	return nil
}

// LoadFont implements device.FontResolver.
func (r *Resolver) LoadFont(v *attr.Vector) (device.FontHandle, error) {
	families := familiesFor(v)
	if !r.loaded {
		return nil, &device.FontError{Family: families[0]}
	}

	weight, slant, width := symbolsFor(v)
	r.fm.SetQuery(fontscan.Query{
		Families: families,
		Aspect:   aspectFor(weight, slant, width),
	})
	face := r.fm.ResolveFace('m')
	if face == nil {
		return nil, &device.FontError{Family: families[0]}
	}

	return &Handle{
		face:   face,
		family: families[0],
		weight: weight,
		slant:  slant,
		width:  width,
		height: heightFor(v),
	}, nil
}

// ReleaseFont implements device.FontResolver. Faces carry no device
// resources, so this is a no-op.
func (r *Resolver) ReleaseFont(h device.FontHandle) {}

// familiesFor returns the query family list for a vector: the family slot
// or font spec family first, then a monospace fallback.
func familiesFor(v *attr.Vector) []string {
	var families []string
	if fs, ok := v[attr.SlotFontSpec].FontSpec(); ok && fs.Family != "" {
		families = append(families, fs.Family)
	}
	if fam, ok := v[attr.SlotFamily].Str(); ok && fam != "" {
		families = append(families, fam)
	}
	return append(families, "monospace")
}

// symbolsFor reads the font symbol slots, defaulting unspecified ones.
// Font spec fields override the scalar slots.
func symbolsFor(v *attr.Vector) (attr.Weight, attr.Slant, attr.Width) {
	weight := attr.WeightNormal
	if w, ok := v[attr.SlotWeight].Weight(); ok {
		weight = w
	}
	slant := attr.SlantNormal
	if s, ok := v[attr.SlotSlant].Slant(); ok {
		slant = s
	}
	width := attr.WidthNormal
	if w, ok := v[attr.SlotWidth].Width(); ok {
		width = w
	}
	if fs, ok := v[attr.SlotFontSpec].FontSpec(); ok {
		if fs.Weight != 0 {
			weight = fs.Weight
		}
		if fs.Slant != 0 {
			slant = fs.Slant
		}
		if fs.Width != 0 {
			width = fs.Width
		}
	}
	return weight, slant, width
}

// aspectFor maps face attribute symbols onto a font query aspect.
func aspectFor(weight attr.Weight, slant attr.Slant, width attr.Width) font.Aspect {
	aspect := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.Weight(weight),
		Stretch: font.Stretch(float32(width) / 100),
	}
	if slant != attr.SlantNormal {
		aspect.Style = font.StyleItalic
	}
	return aspect
}

func heightFor(v *attr.Vector) int {
	if h, ok := v[attr.SlotHeight].Int(); ok && h > 0 {
		return h
	}
	if fs, ok := v[attr.SlotFontSpec].FontSpec(); ok && fs.Size > 0 {
		return fs.Size
	}
	return DefaultHeight
}
