package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/facet/internal/face/attr"
)

const sampleLua = `
theme("ember")

face("default", {
  foreground = "#f0e0d0",
  background = "#201510",
  height = 120,
})

face("error", {
  foreground = "red",
  weight = "bold",
  underline = { color = "red", style = "wave" },
})

face("error-strong", {
  inherit = { "error", "default" },
})

alias("err", "error")
remap("warning", "error")
`

func TestRunLua(t *testing.T) {
	th, err := RunLua("ember.lua", sampleLua)
	if err != nil {
		t.Fatalf("RunLua: %v", err)
	}
	if th.Name != "ember" {
		t.Errorf("Name = %q, want ember", th.Name)
	}

	def := findFace(t, th, "default")
	if h, _ := propValue(t, def, attr.KeyHeight).Int(); h != 120 {
		t.Errorf("default height = %d, want 120", h)
	}

	errFace := findFace(t, th, "error")
	u, ok := propValue(t, errFace, attr.KeyUnderline).Underline()
	if !ok {
		t.Fatal("underline table not converted")
	}
	if u.Color != "red" || u.Style != attr.UnderlineWave {
		t.Errorf("underline = %+v", u)
	}

	strong := findFace(t, th, "error-strong")
	ref, _ := propValue(t, strong, attr.KeyInherit).Ref()
	list, ok := ref.(attr.RefList)
	if !ok || len(list) != 2 || list[0] != attr.Ref(attr.Name("error")) {
		t.Errorf("inherit = %v, want [error default]", ref)
	}

	if len(th.Aliases) != 1 || th.Aliases[0] != [2]string{"err", "error"} {
		t.Errorf("Aliases = %v", th.Aliases)
	}
	if len(th.Remaps) != 1 || th.Remaps[0] != [2]string{"warning", "error"} {
		t.Errorf("Remaps = %v", th.Remaps)
	}
}

func TestRunLuaSandbox(t *testing.T) {
	if _, err := RunLua("evil.lua", `dofile("/etc/passwd")`); err == nil {
		t.Error("dofile available inside the sandbox")
	}
	if _, err := RunLua("evil.lua", `local f = io.open("/etc/passwd")`); err == nil {
		t.Error("io library available inside the sandbox")
	}
}

func TestRunLuaCannotRequireFromDisk(t *testing.T) {
	dir := t.TempDir()
	payload := `face("injected", { foreground = "red" })` + "\n" + `return {}`
	if err := os.WriteFile(filepath.Join(dir, "payload.lua"), []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	th, err := RunLua("theme.lua", `require("payload")`)
	if err == nil {
		t.Fatal("require available inside the sandbox")
	}
	if th != nil {
		for _, def := range th.Faces {
			if def.Name == "injected" {
				t.Error("required module defined a face")
			}
		}
	}
}

func TestRunLuaErrors(t *testing.T) {
	var pe *ParseError
	if _, err := RunLua("broken.lua", `face(`); !errors.As(err, &pe) {
		t.Errorf("want ParseError for a syntax error, got %v", err)
	}

	if _, err := RunLua("bad.lua", `face("x", { wobble = true })`); !errors.Is(err, ErrUnknownKeyword) {
		t.Errorf("want ErrUnknownKeyword, got %v", err)
	}
}
