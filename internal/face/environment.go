package face

import (
	"log"

	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/merge"
	"github.com/dshills/facet/internal/face/realize"
	"github.com/dshills/facet/internal/face/registry"
)

// Environment owns the face state shared across surfaces: the global
// definitions seeding new surfaces, alias links, the remapping table, and
// the name interner handing out stable face ids.
type Environment struct {
	interner *registry.Interner
	global   *registry.Scope
	aliases  *registry.Aliases
	remap    *merge.RemapTable
	surfaces []*Surface
	logger   *log.Logger
}

// NewEnvironment creates an environment with the basic faces defined but
// unspecified. A nil logger uses the standard logger.
func NewEnvironment(logger *log.Logger) *Environment {
	if logger == nil {
		logger = log.Default()
	}
	interner := registry.NewInterner()
	env := &Environment{
		interner: interner,
		global:   registry.NewScope(interner, true),
		aliases:  registry.NewAliases(),
		remap:    merge.NewRemapTable(),
		logger:   logger,
	}
	for _, name := range realize.BasicNames {
		env.global.Define(name)
	}
	return env
}

// DefineFace ensures name exists in the global scope and returns its
// stable id. Defining an existing face returns the existing id.
func (env *Environment) DefineFace(name string) registry.ID {
	return env.global.Define(name)
}

// SetAttribute sets one attribute of a global face after validation,
// returning the previous value. A structural change runs the global sync
// and invalidation protocol on every attached surface: global values
// overwrite the local slots, IgnoreDefault forces them back to
// unspecified, and each surface's realization cache is emptied.
func (env *Environment) SetAttribute(name string, key attr.Keyword, value attr.Value) (attr.Value, error) {
	before := env.global.Generation()
	old, err := env.global.SetAttribute(name, key, value)
	if err != nil {
		return old, err
	}
	if env.global.Generation() != before {
		env.syncSurfaces(name)
	}
	return old, nil
}

// syncSurfaces pushes the global definition of name into every surface and
// invalidates their caches.
func (env *Environment) syncSurfaces(name string) {
	for _, s := range env.surfaces {
		if err := registry.SyncGlobalDefaults(env.global, s.local, name); err != nil {
			env.logger.Printf("face: sync %q: %v", name, err)
			continue
		}
		s.cache.InvalidateAll()
	}
}

// SetAlias links name to target. Faces reached through name resolve to
// target's definition from then on.
func (env *Environment) SetAlias(name, target string) {
	env.aliases.Set(name, target)
	env.invalidateAll()
}

// ClearAlias removes the alias of name.
func (env *Environment) ClearAlias(name string) {
	env.aliases.Clear(name)
	env.invalidateAll()
}

// SetRemap remaps name to a replacement reference on every surface.
func (env *Environment) SetRemap(name string, ref attr.Ref) {
	env.remap.Set(name, ref)
	env.invalidateAll()
}

// ClearRemap removes the remapping of name.
func (env *Environment) ClearRemap(name string) {
	env.remap.Clear(name)
	env.invalidateAll()
}

// GlobalAttributes returns a copy of the global attribute vector of name.
func (env *Environment) GlobalAttributes(name string) (attr.Vector, bool) {
	return env.global.Get(name)
}

// Names returns the defined global face names.
func (env *Environment) Names() []string {
	return env.global.Names()
}

// InvalidateAll empties the realization cache of every attached surface.
func (env *Environment) InvalidateAll() {
	env.invalidateAll()
}

func (env *Environment) invalidateAll() {
	for _, s := range env.surfaces {
		s.cache.InvalidateAll()
	}
}

// AttributesAsVector converts a property list to an attribute vector. It
// is a pure conversion: nothing is looked up, cached, or resolved.
func AttributesAsVector(props attr.PropList) (attr.Vector, error) {
	return attr.VectorFromProperties(props)
}
