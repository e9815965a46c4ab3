package theme

import (
	"math"

	"github.com/dshills/facet/internal/face/attr"
)

// property converts one raw decoded key/value pair into a face property.
// The shapes accepted here are the union of what the TOML, JSON, and Lua
// loaders produce; attribute validation proper happens when the property
// is applied.
func property(faceName, key string, raw any) (attr.Property, error) {
	kw := attr.Keyword(key)
	if _, ok := attr.SlotForKeyword(kw); !ok {
		return attr.Property{}, &KeywordError{Face: faceName, Key: key, Value: raw}
	}

	val, ok := valueFor(kw, raw)
	if !ok {
		return attr.Property{}, &KeywordError{Face: faceName, Key: key, Value: raw}
	}
	return attr.Property{Key: kw, Value: val}, nil
}

func valueFor(kw attr.Keyword, raw any) (attr.Value, bool) {
	switch kw {
	case attr.KeyInherit:
		return inheritValue(raw)
	case attr.KeyWeight:
		if s, ok := raw.(string); ok {
			w, ok := attr.ParseWeight(s)
			return attr.WeightValue(w), ok
		}
		if f, ok := toFloat(raw); ok {
			return attr.WeightValue(attr.Weight(f)), true
		}
	case attr.KeySlant:
		if s, ok := raw.(string); ok {
			sl, ok := attr.ParseSlant(s)
			return attr.SlantValue(sl), ok
		}
	case attr.KeyWidth:
		if s, ok := raw.(string); ok {
			w, ok := attr.ParseWidth(s)
			return attr.WidthValue(w), ok
		}
	case attr.KeyHeight:
		// Integral numbers are absolute 1/10pt heights, fractional ones
		// scale the inherited height.
		if f, ok := toFloat(raw); ok {
			if f == math.Trunc(f) {
				return attr.Int(int(f)), true
			}
			return attr.Scale(f), true
		}
	case attr.KeyUnderline:
		if m, ok := raw.(map[string]any); ok {
			return underlineValue(m)
		}
		return flagOrString(raw)
	case attr.KeyBox:
		if m, ok := raw.(map[string]any); ok {
			return boxValue(m)
		}
		if f, ok := toFloat(raw); ok && f == math.Trunc(f) {
			return attr.Int(int(f)), true
		}
		return flagOrString(raw)
	case attr.KeyInverse:
		if b, ok := raw.(bool); ok {
			return attr.Flag(b), true
		}
	case attr.KeyOverline, attr.KeyStrikeThrough, attr.KeyStipple:
		return flagOrString(raw)
	case attr.KeyFont:
		if m, ok := raw.(map[string]any); ok {
			return fontValue(m)
		}
	default:
		if s, ok := raw.(string); ok {
			return attr.Str(s), true
		}
	}
	return attr.Unspecified(), false
}

func inheritValue(raw any) (attr.Value, bool) {
	switch r := raw.(type) {
	case string:
		return attr.RefValue(attr.Name(r)), true
	case []any:
		var refs attr.RefList
		for _, e := range r {
			s, ok := e.(string)
			if !ok {
				return attr.Unspecified(), false
			}
			refs = append(refs, attr.Name(s))
		}
		return attr.RefValue(refs), true
	}
	return attr.Unspecified(), false
}

func flagOrString(raw any) (attr.Value, bool) {
	switch r := raw.(type) {
	case bool:
		return attr.Flag(r), true
	case string:
		return attr.Str(r), true
	}
	return attr.Unspecified(), false
}

func underlineValue(m map[string]any) (attr.Value, bool) {
	var u attr.Underline
	if c, ok := m["color"].(string); ok {
		u.Color = c
	}
	if s, ok := m["style"].(string); ok {
		switch s {
		case "line":
			u.Style = attr.UnderlineLine
		case "wave":
			u.Style = attr.UnderlineWave
		default:
			return attr.Unspecified(), false
		}
	}
	return attr.UnderlineValue(u), true
}

func boxValue(m map[string]any) (attr.Value, bool) {
	var b attr.Box
	if f, ok := toFloat(m["line-width"]); ok {
		b.LineWidth = int(f)
	}
	if c, ok := m["color"].(string); ok {
		b.Color = c
	}
	if s, ok := m["style"].(string); ok {
		switch s {
		case "flat":
			b.Style = attr.BoxFlat
		case "raised":
			b.Style = attr.BoxRaised
		case "sunken":
			b.Style = attr.BoxSunken
		default:
			return attr.Unspecified(), false
		}
	}
	return attr.BoxValue(b), true
}

func fontValue(m map[string]any) (attr.Value, bool) {
	var fs attr.FontSpec
	if s, ok := m["family"].(string); ok {
		fs.Family = s
	}
	if s, ok := m["foundry"].(string); ok {
		fs.Foundry = s
	}
	if s, ok := m["weight"].(string); ok {
		w, wok := attr.ParseWeight(s)
		if !wok {
			return attr.Unspecified(), false
		}
		fs.Weight = w
	}
	if s, ok := m["slant"].(string); ok {
		sl, sok := attr.ParseSlant(s)
		if !sok {
			return attr.Unspecified(), false
		}
		fs.Slant = sl
	}
	if s, ok := m["width"].(string); ok {
		w, wok := attr.ParseWidth(s)
		if !wok {
			return attr.Unspecified(), false
		}
		fs.Width = w
	}
	if f, ok := toFloat(m["size"]); ok {
		fs.Size = int(f)
	}
	return attr.FontSpecValue(fs), true
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
