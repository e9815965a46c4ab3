package theme

import (
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/facet/internal/face/attr"
)

// colorKeyFaces maps editor color keys onto face/slot pairs. The key set
// follows the common editor-theme JSON layout ("colors" plus
// "tokenColors").
var colorKeyFaces = map[string][2]string{
	"editor.foreground":                {"default", "foreground"},
	"editor.background":                {"default", "background"},
	"statusBar.foreground":             {"mode-line", "foreground"},
	"statusBar.background":             {"mode-line", "background"},
	"statusBar.noFolderBackground":     {"mode-line-inactive", "background"},
	"editorGroupHeader.tabsBackground": {"header-line", "background"},
	"editorCursor.foreground":          {"cursor", "background"},
	"editorGutter.background":          {"fringe", "background"},
	"editorWhitespace.foreground":      {"border", "foreground"},
}

// LoadJSON reads and parses an editor-style JSON theme file.
func LoadJSON(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSON(path, data)
}

// ParseJSON projects an editor-style JSON theme onto face definitions:
// entries of the "colors" map land on the basic faces, and each
// "tokenColors" entry defines one face per scope name.
func ParseJSON(path string, data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: path, Message: "invalid JSON"}
	}
	doc := gjson.ParseBytes(data)

	t := &Theme{Name: doc.Get("name").String()}
	byFace := map[string]*Definition{}
	order := []string{}
	add := func(face, key string, raw any) error {
		p, err := property(face, key, raw)
		if err != nil {
			return err
		}
		def, ok := byFace[face]
		if !ok {
			def = &Definition{Name: face}
			byFace[face] = def
			order = append(order, face)
		}
		def.Props = append(def.Props, p)
		return nil
	}

	var firstErr error
	doc.Get("colors").ForEach(func(key, value gjson.Result) bool {
		target, ok := colorKeyFaces[key.String()]
		if !ok {
			return true
		}
		if err := add(target[0], target[1], value.String()); err != nil && firstErr == nil {
			firstErr = err
		}
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}

	for _, tok := range doc.Get("tokenColors").Array() {
		scope := tok.Get("scope")
		name := scope.String()
		if scope.IsArray() && len(scope.Array()) > 0 {
			name = scope.Array()[0].String()
		}
		if name == "" {
			continue
		}
		settings := tok.Get("settings")
		if fg := settings.Get("foreground"); fg.Exists() {
			if err := add(name, "foreground", fg.String()); err != nil {
				return nil, err
			}
		}
		if bg := settings.Get("background"); bg.Exists() {
			if err := add(name, "background", bg.String()); err != nil {
				return nil, err
			}
		}
		if err := addFontStyle(add, name, settings.Get("fontStyle").String()); err != nil {
			return nil, err
		}
	}

	for _, name := range order {
		t.Faces = append(t.Faces, *byFace[name])
	}
	return t, nil
}

// addFontStyle expands the space-separated fontStyle shorthand into the
// corresponding face attributes.
func addFontStyle(add func(string, string, any) error, face, style string) error {
	for _, part := range strings.Fields(style) {
		var err error
		switch part {
		case "bold":
			err = add(face, string(attr.KeyWeight), "bold")
		case "italic":
			err = add(face, string(attr.KeySlant), "italic")
		case "underline":
			err = add(face, string(attr.KeyUnderline), true)
		case "strikethrough":
			err = add(face, string(attr.KeyStrikeThrough), true)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
