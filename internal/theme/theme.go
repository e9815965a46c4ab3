package theme

import (
	"github.com/dshills/facet/internal/face"
	"github.com/dshills/facet/internal/face/attr"
)

// Definition is one face a theme defines.
type Definition struct {
	Name  string
	Props attr.PropList
}

// Theme is a parsed, device-independent theme: face definitions plus alias
// and remap declarations, in file order.
type Theme struct {
	Name    string
	Faces   []Definition
	Aliases [][2]string
	Remaps  [][2]string
}

// Apply installs the theme's definitions into the environment's global
// scope. Faces are defined as needed; every attribute write is validated,
// and the first failure is returned after the remaining definitions have
// been applied.
func (t *Theme) Apply(env *face.Environment) error {
	var firstErr error
	for _, def := range t.Faces {
		env.DefineFace(def.Name)
		for _, p := range def.Props {
			if _, err := env.SetAttribute(def.Name, p.Key, p.Value); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	for _, a := range t.Aliases {
		env.SetAlias(a[0], a[1])
	}
	for _, r := range t.Remaps {
		env.SetRemap(r[0], attr.Name(r[1]))
	}
	return firstErr
}
