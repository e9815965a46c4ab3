package attr

// Keyword names one face attribute in property lists, attribute-setting
// calls, and theme files.
type Keyword string

// Attribute keywords.
const (
	KeyFamily            Keyword = "family"
	KeyFoundry           Keyword = "foundry"
	KeyWidth             Keyword = "width"
	KeyHeight            Keyword = "height"
	KeyWeight            Keyword = "weight"
	KeySlant             Keyword = "slant"
	KeyUnderline         Keyword = "underline"
	KeyInverse           Keyword = "inverse-video"
	KeyForeground        Keyword = "foreground"
	KeyBackground        Keyword = "background"
	KeyStipple           Keyword = "stipple"
	KeyOverline          Keyword = "overline"
	KeyStrikeThrough     Keyword = "strike-through"
	KeyBox               Keyword = "box"
	KeyFont              Keyword = "font"
	KeyInherit           Keyword = "inherit"
	KeyFontset           Keyword = "fontset"
	KeyDistantForeground Keyword = "distant-foreground"
)

var keywordSlots = map[Keyword]Slot{
	KeyFamily:            SlotFamily,
	KeyFoundry:           SlotFoundry,
	KeyWidth:             SlotWidth,
	KeyHeight:            SlotHeight,
	KeyWeight:            SlotWeight,
	KeySlant:             SlotSlant,
	KeyUnderline:         SlotUnderline,
	KeyInverse:           SlotInverse,
	KeyForeground:        SlotForeground,
	KeyBackground:        SlotBackground,
	KeyStipple:           SlotStipple,
	KeyOverline:          SlotOverline,
	KeyStrikeThrough:     SlotStrikeThrough,
	KeyBox:               SlotBox,
	KeyFont:              SlotFontSpec,
	KeyInherit:           SlotInherit,
	KeyFontset:           SlotFontset,
	KeyDistantForeground: SlotDistantForeground,
}

// SlotForKeyword maps a keyword to its slot.
func SlotForKeyword(k Keyword) (Slot, bool) {
	s, ok := keywordSlots[k]
	return s, ok
}

// KeywordForSlot maps a slot to its keyword.
func KeywordForSlot(s Slot) Keyword {
	return Keyword(s.String())
}

// checkers is the per-keyword accept/reject table. Each checker reports
// whether the concrete payload shape is acceptable for the keyword; the
// unspecified and ignore-default states are always acceptable (setting
// "unspecified" is a documented no-op in property lists).
var checkers = map[Keyword]func(Value) bool{
	KeyFamily:  isString,
	KeyFoundry: isString,
	KeyWidth: func(v Value) bool {
		_, ok := v.Width()
		return ok
	},
	KeyHeight: func(v Value) bool {
		if n, ok := v.Int(); ok {
			return n > 0
		}
		if f, ok := v.Scale(); ok {
			return f > 0
		}
		_, ok := v.Func()
		return ok
	},
	KeyWeight: func(v Value) bool {
		_, ok := v.Weight()
		return ok
	},
	KeySlant: func(v Value) bool {
		_, ok := v.Slant()
		return ok
	},
	KeyUnderline: func(v Value) bool {
		if _, ok := v.Flag(); ok {
			return true
		}
		if _, ok := v.Str(); ok {
			return true
		}
		_, ok := v.Underline()
		return ok
	},
	KeyInverse: func(v Value) bool {
		_, ok := v.Flag()
		return ok
	},
	KeyForeground:        isNonEmptyString,
	KeyBackground:        isNonEmptyString,
	KeyStipple:           isStringOrOff,
	KeyOverline:          isFlagOrColor,
	KeyStrikeThrough:     isFlagOrColor,
	KeyDistantForeground: isNonEmptyString,
	KeyBox: func(v Value) bool {
		if n, ok := v.Int(); ok {
			return n != 0
		}
		if _, ok := v.Str(); ok {
			return true
		}
		if _, ok := v.Flag(); ok {
			// Both on and off are accepted; on becomes width 1.
			return true
		}
		_, ok := v.Box()
		return ok
	},
	KeyFont: func(v Value) bool {
		_, ok := v.FontSpec()
		return ok
	},
	KeyInherit: func(v Value) bool {
		_, ok := v.Ref()
		return ok
	},
	KeyFontset: isString,
}

func isString(v Value) bool {
	_, ok := v.Str()
	return ok
}

func isNonEmptyString(v Value) bool {
	s, ok := v.Str()
	return ok && s != ""
}

func isStringOrOff(v Value) bool {
	if _, ok := v.Str(); ok {
		return true
	}
	on, ok := v.Flag()
	return ok && !on
}

func isFlagOrColor(v Value) bool {
	if _, ok := v.Flag(); ok {
		return true
	}
	_, ok := v.Str()
	return ok
}

// Check validates value against keyword's accept/reject table. The
// unspecified and ignore-default states always pass.
func Check(key Keyword, value Value) error {
	if !value.Specified() {
		if _, ok := keywordSlots[key]; !ok {
			return &AttributeError{Key: key, Value: value}
		}
		return nil
	}
	check, ok := checkers[key]
	if !ok || !check(value) {
		return &AttributeError{Key: key, Value: value}
	}
	return nil
}

// ApplyProperty validates and applies one property-list pair to v, using
// merge semantics: heights merge against the current height, scalar font
// slot writes clear the matching font-override field, and box t normalizes
// to a width-1 box. An unspecified value is a no-op. The inherit keyword is
// not handled here; the merge engine resolves it recursively.
func ApplyProperty(v *Vector, p Property) error {
	if !p.Value.Specified() {
		// Specifying "unspecified" is a no-op.
		if _, ok := keywordSlots[p.Key]; !ok {
			return &AttributeError{Key: p.Key, Value: p.Value}
		}
		return nil
	}
	if err := Check(p.Key, p.Value); err != nil {
		return err
	}
	slot, _ := SlotForKeyword(p.Key)
	value := p.Value

	switch p.Key {
	case KeyHeight:
		merged, ok := MergeHeights(value, v[SlotHeight])
		if !ok {
			return &AttributeError{Key: p.Key, Value: p.Value}
		}
		value = merged
	case KeyBox:
		if on, ok := value.Flag(); ok && on {
			value = Int(1)
		}
	case KeyFont:
		if fs, ok := value.FontSpec(); ok {
			if prev, ok := v[SlotFontSpec].FontSpec(); ok {
				value = FontSpecValue(prev.MergeFrom(fs))
			}
		}
	}

	v[slot] = value
	switch slot {
	case SlotFamily, SlotFoundry, SlotWidth, SlotHeight, SlotWeight, SlotSlant:
		clearFontField(v, slot)
	}
	return nil
}

// VectorFromProperties converts a property list to an attribute vector
// without consulting any face table: a pure conversion. Inherit references
// are stored unresolved.
func VectorFromProperties(props PropList) (Vector, error) {
	var v Vector
	for _, p := range props {
		if p.Key == KeyInherit {
			if err := Check(p.Key, p.Value); err != nil {
				return Vector{}, err
			}
			v[SlotInherit] = p.Value
			continue
		}
		if err := ApplyProperty(&v, p); err != nil {
			return Vector{}, err
		}
	}
	return v, nil
}
