package theme

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/dshills/facet/internal/face"
	"github.com/dshills/facet/internal/face/attr"
)

const sampleTOML = `
name = "dusk"

[faces.default]
foreground = "#e0e0e0"
background = "#1a1a2e"
height = 120

[faces.warning]
foreground = "orange"
weight = "bold"

[faces.warning-strong]
inherit = "warning"
underline = true

[faces.shy]
height = 0.8

[aliases]
modeline = "mode-line"

[remaps]
fringe = "shy"
`

func findFace(t *testing.T, th *Theme, name string) Definition {
	t.Helper()
	for _, def := range th.Faces {
		if def.Name == name {
			return def
		}
	}
	t.Fatalf("face %q not in theme", name)
	return Definition{}
}

func propValue(t *testing.T, def Definition, key attr.Keyword) attr.Value {
	t.Helper()
	for _, p := range def.Props {
		if p.Key == key {
			return p.Value
		}
	}
	t.Fatalf("face %q has no %s property", def.Name, key)
	return attr.Unspecified()
}

func TestParseTOML(t *testing.T) {
	th, err := ParseTOML("dusk.toml", []byte(sampleTOML))
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	if th.Name != "dusk" {
		t.Errorf("Name = %q, want dusk", th.Name)
	}

	warn := findFace(t, th, "warning")
	if w, _ := propValue(t, warn, attr.KeyWeight).Weight(); w != attr.WeightBold {
		t.Errorf("warning weight = %v, want bold", w)
	}

	strong := findFace(t, th, "warning-strong")
	ref, ok := propValue(t, strong, attr.KeyInherit).Ref()
	if !ok || ref != attr.Ref(attr.Name("warning")) {
		t.Errorf("warning-strong inherit = %v, want warning", ref)
	}

	def := findFace(t, th, "default")
	if h, _ := propValue(t, def, attr.KeyHeight).Int(); h != 120 {
		t.Errorf("default height = %d, want absolute 120", h)
	}
	shy := findFace(t, th, "shy")
	if f, _ := propValue(t, shy, attr.KeyHeight).Scale(); f != 0.8 {
		t.Errorf("shy height = %v, want scale 0.8", f)
	}

	if len(th.Aliases) != 1 || th.Aliases[0] != [2]string{"modeline", "mode-line"} {
		t.Errorf("Aliases = %v", th.Aliases)
	}
	if len(th.Remaps) != 1 || th.Remaps[0] != [2]string{"fringe", "shy"} {
		t.Errorf("Remaps = %v", th.Remaps)
	}
}

func TestParseTOMLBadAttribute(t *testing.T) {
	_, err := ParseTOML("bad.toml", []byte("[faces.x]\nwobble = true\n"))
	if !errors.Is(err, ErrUnknownKeyword) {
		t.Errorf("want ErrUnknownKeyword, got %v", err)
	}

	_, err = ParseTOML("bad.toml", []byte("not toml ["))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("want ParseError, got %v", err)
	}
}

func TestThemeApply(t *testing.T) {
	th, err := ParseTOML("dusk.toml", []byte(sampleTOML))
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}

	env := face.NewEnvironment(log.New(io.Discard, "", 0))
	if err := th.Apply(env); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	v, ok := env.GlobalAttributes("warning")
	if !ok {
		t.Fatal("warning not defined")
	}
	if fg, _ := v[attr.SlotForeground].Str(); fg != "orange" {
		t.Errorf("foreground = %q, want orange", fg)
	}

	v, _ = env.GlobalAttributes("default")
	if h, _ := v[attr.SlotHeight].Int(); h != 120 {
		t.Errorf("default height = %d, want 120", h)
	}
}

func TestThemeApplyReportsFirstError(t *testing.T) {
	th := &Theme{Faces: []Definition{
		// A relative height on the default face is rejected by
		// validation.
		{Name: "default", Props: attr.PropList{{Key: attr.KeyHeight, Value: attr.Scale(1.5)}}},
		{Name: "ok", Props: attr.PropList{{Key: attr.KeyForeground, Value: attr.Str("red")}}},
	}}
	env := face.NewEnvironment(log.New(io.Discard, "", 0))
	if err := th.Apply(env); err == nil {
		t.Error("invalid default height accepted")
	}
	// The rest of the theme still applied.
	if v, ok := env.GlobalAttributes("ok"); !ok {
		t.Error("later face not applied after earlier failure")
	} else if fg, _ := v[attr.SlotForeground].Str(); fg != "red" {
		t.Errorf("foreground = %q, want red", fg)
	}
}
