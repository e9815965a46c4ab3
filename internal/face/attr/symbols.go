package attr

// Weight is a font weight on the usual 100..900 scale.
type Weight int

// Font weights.
const (
	WeightThin       Weight = 100
	WeightUltraLight Weight = 200
	WeightLight      Weight = 300
	WeightSemiLight  Weight = 350
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

var weightNames = map[string]Weight{
	"thin":        WeightThin,
	"ultra-light": WeightUltraLight,
	"extra-light": WeightUltraLight,
	"light":       WeightLight,
	"semi-light":  WeightSemiLight,
	"normal":      WeightNormal,
	"regular":     WeightNormal,
	"book":        WeightNormal,
	"medium":      WeightMedium,
	"semi-bold":   WeightSemiBold,
	"demi-bold":   WeightSemiBold,
	"bold":        WeightBold,
	"extra-bold":  WeightExtraBold,
	"ultra-bold":  WeightExtraBold,
	"black":       WeightBlack,
	"heavy":       WeightBlack,
}

// ParseWeight maps a weight name to its numeric value.
func ParseWeight(name string) (Weight, bool) {
	w, ok := weightNames[name]
	return w, ok
}

// String returns the canonical name of the weight.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "thin"
	case WeightUltraLight:
		return "ultra-light"
	case WeightLight:
		return "light"
	case WeightSemiLight:
		return "semi-light"
	case WeightNormal:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightSemiBold:
		return "semi-bold"
	case WeightBold:
		return "bold"
	case WeightExtraBold:
		return "extra-bold"
	case WeightBlack:
		return "black"
	default:
		return "unknown"
	}
}

// Bold reports whether the weight renders bold on displays that only have a
// bold/regular distinction.
func (w Weight) Bold() bool { return w > WeightMedium }

// Slant is a font slant.
type Slant int

// Font slants.
const (
	SlantNormal  Slant = 100
	SlantOblique Slant = 110
	SlantItalic  Slant = 200
)

var slantNames = map[string]Slant{
	"normal":  SlantNormal,
	"roman":   SlantNormal,
	"oblique": SlantOblique,
	"italic":  SlantItalic,
}

// ParseSlant maps a slant name to its value.
func ParseSlant(name string) (Slant, bool) {
	s, ok := slantNames[name]
	return s, ok
}

// String returns the canonical name of the slant.
func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "normal"
	case SlantOblique:
		return "oblique"
	case SlantItalic:
		return "italic"
	default:
		return "unknown"
	}
}

// Width is a font width (stretch) as a percentage of normal.
type Width int

// Font widths.
const (
	WidthUltraCondensed Width = 50
	WidthExtraCondensed Width = 63
	WidthCondensed      Width = 75
	WidthSemiCondensed  Width = 87
	WidthNormal         Width = 100
	WidthSemiExpanded   Width = 113
	WidthExpanded       Width = 125
	WidthExtraExpanded  Width = 150
	WidthUltraExpanded  Width = 200
)

var widthNames = map[string]Width{
	"ultra-condensed": WidthUltraCondensed,
	"extra-condensed": WidthExtraCondensed,
	"condensed":       WidthCondensed,
	"narrow":          WidthCondensed,
	"semi-condensed":  WidthSemiCondensed,
	"normal":          WidthNormal,
	"medium":          WidthNormal,
	"semi-expanded":   WidthSemiExpanded,
	"expanded":        WidthExpanded,
	"wide":            WidthExpanded,
	"extra-expanded":  WidthExtraExpanded,
	"ultra-expanded":  WidthUltraExpanded,
}

// ParseWidth maps a width name to its value.
func ParseWidth(name string) (Width, bool) {
	w, ok := widthNames[name]
	return w, ok
}

// String returns the canonical name of the width.
func (w Width) String() string {
	switch w {
	case WidthUltraCondensed:
		return "ultra-condensed"
	case WidthExtraCondensed:
		return "extra-condensed"
	case WidthCondensed:
		return "condensed"
	case WidthSemiCondensed:
		return "semi-condensed"
	case WidthNormal:
		return "normal"
	case WidthSemiExpanded:
		return "semi-expanded"
	case WidthExpanded:
		return "expanded"
	case WidthExtraExpanded:
		return "extra-expanded"
	case WidthUltraExpanded:
		return "ultra-expanded"
	default:
		return "unknown"
	}
}

// UnderlineStyle selects the underline shape.
type UnderlineStyle uint8

// Underline styles.
const (
	UnderlineLine UnderlineStyle = iota
	UnderlineWave
)

// Underline is the structured underline specification. An empty Color means
// the face foreground.
type Underline struct {
	Color string
	Style UnderlineStyle
}

// BoxStyle selects the box rendering.
type BoxStyle uint8

// Box styles.
const (
	BoxFlat BoxStyle = iota
	BoxRaised
	BoxSunken
)

// Box is the structured box specification. A zero LineWidth means 1; an empty
// Color means the face foreground.
type Box struct {
	LineWidth int
	Color     string
	Style     BoxStyle
}

// FontSpec is a structured font override. Zero-valued fields are unset.
// Its concrete fields take precedence over the corresponding scalar slots
// when merged, and writing a scalar slot clears the matching field here so
// font selection re-derives it.
type FontSpec struct {
	Family  string
	Foundry string
	Weight  Weight
	Slant   Slant
	Width   Width
	Size    int // 1/10pt
}

// Empty reports whether no field of the spec is set.
func (fs FontSpec) Empty() bool {
	return fs == FontSpec{}
}

// MergeFrom merges the set fields of other into fs, other's fields winning.
func (fs FontSpec) MergeFrom(other FontSpec) FontSpec {
	if other.Family != "" {
		fs.Family = other.Family
	}
	if other.Foundry != "" {
		fs.Foundry = other.Foundry
	}
	if other.Weight != 0 {
		fs.Weight = other.Weight
	}
	if other.Slant != 0 {
		fs.Slant = other.Slant
	}
	if other.Width != 0 {
		fs.Width = other.Width
	}
	if other.Size != 0 {
		fs.Size = other.Size
	}
	return fs
}
