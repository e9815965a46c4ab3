package attr

// InheritFunc resolves an inherit reference by merging the referenced
// face(s) into to. It is supplied by the merge engine; errors are handled
// (logged or surfaced) there.
type InheritFunc func(ref Ref, to *Vector)

// Merge merges from into to, which should be fully specified and hold only
// absolute attributes. Every specified attribute of from overrides the
// corresponding attribute of to; relative heights are merged with the
// absolute value in to and replace it.
//
// If from inherits from other faces, those are merged into to first via
// inherit, so from's direct attributes take precedence over inherited ones.
// After merging, to never declares inheritance itself.
func Merge(from, to *Vector, inherit InheritFunc) {
	if ref, ok := from[SlotInherit].Ref(); ok && inherit != nil {
		inherit(ref, to)
	}

	// Merge a structured font override field-by-field before the scalar
	// slots so a remapping that uses a font override works.
	var font FontSpec
	haveFont := false
	if fs, ok := from[SlotFontSpec].FontSpec(); ok {
		haveFont = true
		if prev, ok := to[SlotFontSpec].FontSpec(); ok {
			font = prev.MergeFrom(fs)
		} else {
			font = fs
		}
	}

	for i := Slot(0); i < SlotCount; i++ {
		if i == SlotInherit || i == SlotFontSpec {
			continue
		}
		if !from[i].Specified() {
			continue
		}
		if i == SlotHeight {
			if _, abs := from[i].Int(); !abs {
				if merged, ok := MergeHeights(from[i], to[i]); ok {
					to[i] = merged
				}
				clearFontField(to, SlotHeight)
				continue
			}
		}
		if !to[i].Equal(from[i]) {
			to[i] = from[i]
			switch i {
			case SlotFamily, SlotFoundry, SlotWidth, SlotHeight, SlotWeight, SlotSlant:
				// Font selection must re-derive this field.
				clearFontField(to, i)
			}
		}
	}

	// The font override's concrete fields take precedence over the scalar
	// slots, except size: the face height controls sizing.
	if haveFont {
		if font.Family != "" {
			to[SlotFamily] = Str(font.Family)
		}
		if font.Foundry != "" {
			to[SlotFoundry] = Str(font.Foundry)
		}
		if font.Weight != 0 {
			to[SlotWeight] = WeightValue(font.Weight)
		}
		if font.Slant != 0 {
			to[SlotSlant] = SlantValue(font.Slant)
		}
		if font.Width != 0 {
			to[SlotWidth] = WidthValue(font.Width)
		}
		font.Size = 0
		to[SlotFontSpec] = FontSpecValue(font)
	}

	to[SlotInherit] = Unspecified()
}

// clearFontField clears the font-override field corresponding to a scalar
// slot, if a font override is present on v.
func clearFontField(v *Vector, slot Slot) {
	fs, ok := v[SlotFontSpec].FontSpec()
	if !ok {
		return
	}
	switch slot {
	case SlotFamily:
		fs.Family = ""
	case SlotFoundry:
		fs.Foundry = ""
	case SlotWidth:
		fs.Width = 0
	case SlotHeight:
		fs.Size = 0
	case SlotWeight:
		fs.Weight = 0
	case SlotSlant:
		fs.Slant = 0
	}
	v[SlotFontSpec] = FontSpecValue(fs)
}
