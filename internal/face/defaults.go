package face

import "github.com/dshills/facet/internal/face/attr"

// fallbackDefault is the built-in base the default face is merged over, so
// realization always starts from a fully specified vector even before any
// theme defines "default".
func fallbackDefault() attr.Vector {
	var v attr.Vector
	v[attr.SlotFamily] = attr.Str("monospace")
	v[attr.SlotFoundry] = attr.Str("")
	v[attr.SlotWidth] = attr.WidthValue(attr.WidthNormal)
	v[attr.SlotHeight] = attr.Int(120)
	v[attr.SlotWeight] = attr.WeightValue(attr.WeightNormal)
	v[attr.SlotSlant] = attr.SlantValue(attr.SlantNormal)
	v[attr.SlotUnderline] = attr.Flag(false)
	v[attr.SlotInverse] = attr.Flag(false)
	v[attr.SlotForeground] = attr.Str("white")
	v[attr.SlotBackground] = attr.Str("black")
	v[attr.SlotStipple] = attr.Flag(false)
	v[attr.SlotOverline] = attr.Flag(false)
	v[attr.SlotStrikeThrough] = attr.Flag(false)
	v[attr.SlotBox] = attr.Flag(false)
	v[attr.SlotFontset] = attr.Str("")
	return v
}

// fillUnspecified completes v from the built-in fallback. A merged default
// face can leave slots unspecified (a theme may only set colors); filling
// the rest keeps the realized default fully specified.
func fillUnspecified(v *attr.Vector) {
	fb := fallbackDefault()
	for slot := attr.Slot(0); slot < attr.SlotCount; slot++ {
		if v[slot].State() != attr.StateSpecified && fb[slot].Specified() {
			v[slot] = fb[slot]
		}
	}
}
