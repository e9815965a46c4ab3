package attr

import (
	"fmt"
	"reflect"
)

// State describes how a slot is filled.
type State uint8

const (
	// StateUnspecified means the slot inherits from whatever it is merged into.
	StateUnspecified State = iota

	// StateIgnoreDefault explicitly rejects a lower-priority default even
	// though the slot is effectively empty. It only participates in the
	// global-default synchronization protocol, never in ordinary merging.
	StateIgnoreDefault

	// StateSpecified means the slot holds a concrete value.
	StateSpecified
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnspecified:
		return "unspecified"
	case StateIgnoreDefault:
		return "ignore-default"
	case StateSpecified:
		return "specified"
	default:
		return "unknown"
	}
}

// HeightFunc adjusts a height value. It receives the height being merged
// into (which may be unspecified) and returns the new height.
type HeightFunc func(to Value) Value

// Value is one attribute slot: unspecified, ignore-default, or a concrete
// typed payload.
type Value struct {
	state State
	data  any
}

// Unspecified returns the unspecified value. It is also the zero Value.
func Unspecified() Value { return Value{} }

// IgnoreDefault returns the ignore-default sentinel value.
func IgnoreDefault() Value { return Value{state: StateIgnoreDefault} }

// Str returns a concrete string value (family, foundry, color names, etc.).
func Str(s string) Value { return Value{state: StateSpecified, data: s} }

// Int returns a concrete integer value (absolute height in 1/10pt, box line
// width).
func Int(n int) Value { return Value{state: StateSpecified, data: n} }

// Scale returns a relative height: a factor applied to the height being
// merged into.
func Scale(f float64) Value { return Value{state: StateSpecified, data: f} }

// Func returns a callable height value.
func Func(fn HeightFunc) Value { return Value{state: StateSpecified, data: fn} }

// Flag returns a concrete boolean value (inverse video, simple underline,
// overline, strike-through on/off).
func Flag(on bool) Value { return Value{state: StateSpecified, data: on} }

// WeightValue returns a concrete font weight.
func WeightValue(w Weight) Value { return Value{state: StateSpecified, data: w} }

// SlantValue returns a concrete font slant.
func SlantValue(s Slant) Value { return Value{state: StateSpecified, data: s} }

// WidthValue returns a concrete font width.
func WidthValue(w Width) Value { return Value{state: StateSpecified, data: w} }

// UnderlineValue returns a structured underline specification.
func UnderlineValue(u Underline) Value { return Value{state: StateSpecified, data: u} }

// BoxValue returns a structured box specification.
func BoxValue(b Box) Value { return Value{state: StateSpecified, data: b} }

// FontSpecValue returns a structured font override.
func FontSpecValue(fs FontSpec) Value { return Value{state: StateSpecified, data: fs} }

// RefValue returns a face-reference value, used only in the inherit slot.
func RefValue(r Ref) Value { return Value{state: StateSpecified, data: r} }

// State returns the fill state of the value.
func (v Value) State() State { return v.state }

// Specified returns true if the value holds a concrete payload.
func (v Value) Specified() bool { return v.state == StateSpecified }

// Unspecified returns true if the value is the unspecified sentinel.
func (v Value) Unspecified() bool { return v.state == StateUnspecified }

// Str returns the string payload, if any.
func (v Value) Str() (string, bool) {
	s, ok := v.data.(string)
	return s, ok && v.state == StateSpecified
}

// Int returns the integer payload, if any.
func (v Value) Int() (int, bool) {
	n, ok := v.data.(int)
	return n, ok && v.state == StateSpecified
}

// Scale returns the float scale payload, if any.
func (v Value) Scale() (float64, bool) {
	f, ok := v.data.(float64)
	return f, ok && v.state == StateSpecified
}

// Func returns the callable payload, if any.
func (v Value) Func() (HeightFunc, bool) {
	fn, ok := v.data.(HeightFunc)
	return fn, ok && v.state == StateSpecified
}

// Flag returns the boolean payload, if any.
func (v Value) Flag() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok && v.state == StateSpecified
}

// Weight returns the weight payload, if any.
func (v Value) Weight() (Weight, bool) {
	w, ok := v.data.(Weight)
	return w, ok && v.state == StateSpecified
}

// Slant returns the slant payload, if any.
func (v Value) Slant() (Slant, bool) {
	s, ok := v.data.(Slant)
	return s, ok && v.state == StateSpecified
}

// Width returns the width payload, if any.
func (v Value) Width() (Width, bool) {
	w, ok := v.data.(Width)
	return w, ok && v.state == StateSpecified
}

// Underline returns the structured underline payload, if any.
func (v Value) Underline() (Underline, bool) {
	u, ok := v.data.(Underline)
	return u, ok && v.state == StateSpecified
}

// Box returns the structured box payload, if any.
func (v Value) Box() (Box, bool) {
	b, ok := v.data.(Box)
	return b, ok && v.state == StateSpecified
}

// FontSpec returns the font override payload, if any.
func (v Value) FontSpec() (FontSpec, bool) {
	fs, ok := v.data.(FontSpec)
	return fs, ok && v.state == StateSpecified
}

// Ref returns the face-reference payload, if any.
func (v Value) Ref() (Ref, bool) {
	r, ok := v.data.(Ref)
	return r, ok && v.state == StateSpecified
}

// Equal reports whether two values are attribute-equal. Strings compare
// byte-wise, structured payloads field-wise, and callables by function
// identity.
func (v Value) Equal(o Value) bool {
	if v.state != o.state {
		return false
	}
	if v.state != StateSpecified {
		return true
	}
	switch a := v.data.(type) {
	case string:
		b, ok := o.data.(string)
		return ok && a == b
	case int:
		b, ok := o.data.(int)
		return ok && a == b
	case float64:
		b, ok := o.data.(float64)
		return ok && a == b
	case bool:
		b, ok := o.data.(bool)
		return ok && a == b
	case Weight:
		b, ok := o.data.(Weight)
		return ok && a == b
	case Slant:
		b, ok := o.data.(Slant)
		return ok && a == b
	case Width:
		b, ok := o.data.(Width)
		return ok && a == b
	case Underline:
		b, ok := o.data.(Underline)
		return ok && a == b
	case Box:
		b, ok := o.data.(Box)
		return ok && a == b
	case FontSpec:
		b, ok := o.data.(FontSpec)
		return ok && a == b
	case HeightFunc:
		b, ok := o.data.(HeightFunc)
		return ok && reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case Ref:
		b, ok := o.data.(Ref)
		return ok && refEqual(a, b)
	default:
		return false
	}
}

// String returns a readable form of the value for diagnostics.
func (v Value) String() string {
	switch v.state {
	case StateUnspecified:
		return "unspecified"
	case StateIgnoreDefault:
		return "ignore-default"
	}
	switch d := v.data.(type) {
	case string:
		return fmt.Sprintf("%q", d)
	case HeightFunc:
		return "func"
	default:
		return fmt.Sprint(d)
	}
}

// hashString hashes a string case-insensitively, matching the cache hash of
// realized faces.
func hashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		h = (h << 1) ^ uint32(c)
	}
	return h
}

// identityHash returns a small hash for enumerated and numeric payloads.
func (v Value) identityHash() uint32 {
	if v.state != StateSpecified {
		return uint32(v.state)
	}
	switch d := v.data.(type) {
	case int:
		return uint32(d)
	case float64:
		return uint32(d * 256)
	case Weight:
		return uint32(d)
	case Slant:
		return uint32(d)
	case Width:
		return uint32(d)
	case string:
		return hashString(d)
	default:
		return 0
	}
}
