package theme

import (
	"errors"
	"testing"

	"github.com/dshills/facet/internal/face/attr"
)

const sampleJSON = `{
  "name": "midnight",
  "colors": {
    "editor.foreground": "#d4d4d4",
    "editor.background": "#1e1e1e",
    "statusBar.background": "#007acc",
    "somethingUnknown.key": "#ffffff"
  },
  "tokenColors": [
    {
      "scope": "keyword",
      "settings": {"foreground": "#569cd6", "fontStyle": "bold"}
    },
    {
      "scope": ["comment", "comment.line"],
      "settings": {"foreground": "#6a9955", "fontStyle": "italic"}
    },
    {
      "settings": {"foreground": "#ff0000"}
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	th, err := ParseJSON("midnight.json", []byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if th.Name != "midnight" {
		t.Errorf("Name = %q, want midnight", th.Name)
	}

	def := findFace(t, th, "default")
	if fg, _ := propValue(t, def, attr.KeyForeground).Str(); fg != "#d4d4d4" {
		t.Errorf("default foreground = %q", fg)
	}
	if bg, _ := propValue(t, def, attr.KeyBackground).Str(); bg != "#1e1e1e" {
		t.Errorf("default background = %q", bg)
	}

	ml := findFace(t, th, "mode-line")
	if bg, _ := propValue(t, ml, attr.KeyBackground).Str(); bg != "#007acc" {
		t.Errorf("mode-line background = %q", bg)
	}

	kw := findFace(t, th, "keyword")
	if w, _ := propValue(t, kw, attr.KeyWeight).Weight(); w != attr.WeightBold {
		t.Errorf("keyword weight = %v, want bold from fontStyle", w)
	}

	// An array scope names the face after its first entry.
	cm := findFace(t, th, "comment")
	if s, _ := propValue(t, cm, attr.KeySlant).Slant(); s != attr.SlantItalic {
		t.Errorf("comment slant = %v, want italic", s)
	}

	// The scopeless entry and the unknown color key are skipped.
	for _, def := range th.Faces {
		if def.Name == "" {
			t.Error("scopeless token entry produced a face")
		}
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON("broken.json", []byte("{not json"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("want ParseError, got %v", err)
	}
}
