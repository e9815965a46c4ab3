package theme

import (
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// tomlTheme is the on-disk TOML shape.
type tomlTheme struct {
	Name    string                    `toml:"name"`
	Faces   map[string]map[string]any `toml:"faces"`
	Aliases map[string]string         `toml:"aliases"`
	Remaps  map[string]string         `toml:"remaps"`
}

// LoadTOML reads and parses a TOML theme file.
func LoadTOML(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTOML(path, data)
}

// ParseTOML parses TOML theme data. Face definitions apply in name order;
// the path only labels errors.
func ParseTOML(path string, data []byte) (*Theme, error) {
	var raw tomlTheme
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	t := &Theme{Name: raw.Name}
	for _, name := range sortedKeys(raw.Faces) {
		def := Definition{Name: name}
		attrs := raw.Faces[name]
		for _, key := range sortedKeys(attrs) {
			p, err := property(name, key, attrs[key])
			if err != nil {
				return nil, err
			}
			def.Props = append(def.Props, p)
		}
		t.Faces = append(t.Faces, def)
	}
	for _, from := range sortedKeys(raw.Aliases) {
		t.Aliases = append(t.Aliases, [2]string{from, raw.Aliases[from]})
	}
	for _, from := range sortedKeys(raw.Remaps) {
		t.Remaps = append(t.Remaps, [2]string{from, raw.Remaps[from]})
	}
	return t, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
