package realize

import (
	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/device"
)

// ID identifies a realized face within one cache. Ids are dense and may be
// reused after a full invalidation; pair an id with the cache generation to
// detect staleness.
type ID int32

// InvalidID is never assigned to a live face.
const InvalidID ID = -1

// Color is one resolved color slot. Defaulted marks a slot whose name the
// device could not resolve, so release logic never frees a resource the
// face does not own.
type Color struct {
	Pixel     device.Pixel
	RGB       device.RGB
	Defaulted bool
}

// RealizedFace is the immutable result of realizing an attribute vector
// against a device. Variants realized for a different font share every
// non-font field with their anchor and keep a back reference to it.
type RealizedFace struct {
	id         ID
	generation uint64
	attrs      attr.Vector
	hash       uint32
	anchor     *RealizedFace

	font          device.FontHandle
	fontDefaulted bool

	Foreground Color
	Background Color
	UnderlineC Color
	OverlineC  Color
	StrikeC    Color
	BoxC       Color

	Bold           bool
	Italic         bool
	Underline      bool
	UnderlineStyle attr.UnderlineStyle
	Overline       bool
	StrikeThrough  bool
	Inverse        bool
	Overstrike     bool

	BoxLineWidth int
	BoxStyle     attr.BoxStyle
}

// ID returns the face's id within its cache.
func (f *RealizedFace) ID() ID { return f.id }

// Generation returns the cache generation the face was realized in.
func (f *RealizedFace) Generation() uint64 { return f.generation }

// Attributes returns a copy of the vector the face was realized from.
func (f *RealizedFace) Attributes() attr.Vector { return f.attrs }

// Hash returns the attribute hash the face is filed under.
func (f *RealizedFace) Hash() uint32 { return f.hash }

// Font returns the device font handle, which may be nil when no font
// matched.
func (f *RealizedFace) Font() device.FontHandle { return f.font }

// Anchor returns the face this variant was derived from, or nil for an
// anchor face.
func (f *RealizedFace) Anchor() *RealizedFace { return f.anchor }

// ColorsDefaulted reports whether both the foreground and background fell
// back to the surface defaults.
func (f *RealizedFace) ColorsDefaulted() bool {
	return f.Foreground.Defaulted && f.Background.Defaulted
}
