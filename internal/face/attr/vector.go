package attr

// Slot identifies one attribute of a face.
type Slot uint8

// Attribute slots.
const (
	SlotFamily Slot = iota
	SlotFoundry
	SlotWidth
	SlotHeight
	SlotWeight
	SlotSlant
	SlotUnderline
	SlotInverse
	SlotForeground
	SlotBackground
	SlotStipple
	SlotOverline
	SlotStrikeThrough
	SlotBox
	SlotFontSpec
	SlotInherit
	SlotFontset
	SlotDistantForeground
	SlotCount
)

// String returns the keyword name of the slot.
func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "unknown"
}

var slotNames = [SlotCount]string{
	SlotFamily:            "family",
	SlotFoundry:           "foundry",
	SlotWidth:             "width",
	SlotHeight:            "height",
	SlotWeight:            "weight",
	SlotSlant:             "slant",
	SlotUnderline:         "underline",
	SlotInverse:           "inverse-video",
	SlotForeground:        "foreground",
	SlotBackground:        "background",
	SlotStipple:           "stipple",
	SlotOverline:          "overline",
	SlotStrikeThrough:     "strike-through",
	SlotBox:               "box",
	SlotFontSpec:          "font",
	SlotInherit:           "inherit",
	SlotFontset:           "fontset",
	SlotDistantForeground: "distant-foreground",
}

// Vector is the fixed-size attribute record of one face. The zero value has
// every slot unspecified.
type Vector [SlotCount]Value

// FullySpecified reports whether every slot except font, inherit, and
// distant-foreground holds a concrete value. Only fully specified vectors
// may be realized.
func (v *Vector) FullySpecified() bool {
	for i := Slot(0); i < SlotCount; i++ {
		switch i {
		case SlotFontSpec, SlotInherit, SlotDistantForeground:
			continue
		}
		if !v[i].Specified() {
			return false
		}
	}
	return true
}

// Empty reports whether no slot is specified.
func (v *Vector) Empty() bool {
	for i := Slot(0); i < SlotCount; i++ {
		if !v[i].Unspecified() {
			return false
		}
	}
	return true
}

// Equal reports whether two vectors are attribute-equal in every slot.
func (v *Vector) Equal(o *Vector) bool {
	if v == o {
		return true
	}
	for i := Slot(0); i < SlotCount; i++ {
		if !v[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Reset returns every slot to unspecified.
func (v *Vector) Reset() {
	*v = Vector{}
}

// Hash returns the realization-cache hash of the vector: a case-insensitive
// hash of the family, foundry, foreground, and background strings combined
// with identity hashes of weight, slant, width, and height.
func (v *Vector) Hash() uint32 {
	var h uint32
	for _, slot := range [...]Slot{SlotFamily, SlotFoundry, SlotForeground, SlotBackground} {
		if s, ok := v[slot].Str(); ok {
			h ^= hashString(s)
		}
	}
	return h ^
		v[SlotWeight].identityHash() ^
		v[SlotSlant].identityHash() ^
		v[SlotWidth].identityHash() ^
		v[SlotHeight].identityHash()
}

// SameFontAttributes reports whether two fully specified vectors would select
// the same font: equal family, foundry (both compared case-insensitively),
// height, width, weight, slant, font override, and fontset.
func (v *Vector) SameFontAttributes(o *Vector) bool {
	return strCaseEqual(v[SlotFamily], o[SlotFamily]) &&
		strCaseEqual(v[SlotFoundry], o[SlotFoundry]) &&
		v[SlotHeight].Equal(o[SlotHeight]) &&
		v[SlotWidth].Equal(o[SlotWidth]) &&
		v[SlotWeight].Equal(o[SlotWeight]) &&
		v[SlotSlant].Equal(o[SlotSlant]) &&
		v[SlotFontSpec].Equal(o[SlotFontSpec]) &&
		(v[SlotFontset].Equal(o[SlotFontset]) || strCaseEqual(v[SlotFontset], o[SlotFontset]))
}

func strCaseEqual(a, b Value) bool {
	sa, oka := a.Str()
	sb, okb := b.Str()
	if !oka || !okb {
		return oka == okb && a.Equal(b)
	}
	if len(sa) != len(sb) {
		return false
	}
	for i := 0; i < len(sa); i++ {
		ca, cb := sa[i], sb[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
