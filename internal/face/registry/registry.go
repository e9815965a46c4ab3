package registry

import (
	"github.com/dshills/facet/internal/face/attr"
)

// Scope is one face table: either the environment-global defaults used to
// seed new surfaces, or a surface-local override table. All operations run
// on the single rendering thread; the scope carries no locking.
type Scope struct {
	interner *Interner
	faces    map[string]*attr.Vector

	// global marks the environment-global scope, which is the only place
	// the ignore-default sentinel may be written.
	global bool

	// generation counts structurally different attribute writes. A change
	// means realized faces derived from this scope are stale.
	generation uint64
}

// NewScope creates a face table sharing ids through interner. Global marks
// the environment-global defaults scope.
func NewScope(interner *Interner, global bool) *Scope {
	return &Scope{
		interner: interner,
		faces:    make(map[string]*attr.Vector),
		global:   global,
	}
}

// Define makes name a face with all attributes unspecified if it is not one
// already, and returns its stable id. Defining an existing face is a no-op.
func (s *Scope) Define(name string) ID {
	id := s.interner.Intern(name)
	if _, ok := s.faces[name]; !ok {
		s.faces[name] = &attr.Vector{}
	}
	return id
}

// Defined reports whether name has a definition in this scope.
func (s *Scope) Defined(name string) bool {
	_, ok := s.faces[name]
	return ok
}

// Get returns a copy of the attribute vector of name.
func (s *Scope) Get(name string) (attr.Vector, bool) {
	v, ok := s.faces[name]
	if !ok {
		return attr.Vector{}, false
	}
	return *v, true
}

// Put replaces the attribute vector of name, defining it if needed, and
// bumps the style generation if the definition changed structurally.
func (s *Scope) Put(name string, v attr.Vector) {
	s.Define(name)
	old := s.faces[name]
	if !old.Equal(&v) {
		s.generation++
	}
	*old = v
}

// Reset returns every attribute of name to unspecified. Faces are never
// destroyed, only emptied.
func (s *Scope) Reset(name string) bool {
	v, ok := s.faces[name]
	if !ok {
		return false
	}
	if !v.Empty() {
		s.generation++
	}
	v.Reset()
	return true
}

// SetAttribute validates and writes one attribute of name, returning the
// previous value. Height writes on the default face must be positive
// absolute values; on other faces a trial merge against a dummy absolute
// height must produce a positive absolute result. The ignore-default
// sentinel may only be written in the global scope. A structurally
// different successful write marks the scope's style generation dirty.
func (s *Scope) SetAttribute(name string, key attr.Keyword, value attr.Value) (attr.Value, error) {
	v, ok := s.faces[name]
	if !ok {
		return attr.Unspecified(), &UnknownFaceError{Name: name}
	}
	slot, ok := attr.SlotForKeyword(key)
	if !ok {
		return attr.Unspecified(), &attr.AttributeError{Key: key, Value: value}
	}

	if value.State() == attr.StateIgnoreDefault && !s.global {
		return attr.Unspecified(), &attr.AttributeError{Key: key, Value: value}
	}

	if err := attr.Check(key, value); err != nil {
		return attr.Unspecified(), err
	}

	if key == attr.KeyHeight && value.Specified() {
		if err := s.checkHeight(name, value); err != nil {
			return attr.Unspecified(), err
		}
	}

	old := v[slot]
	if !old.Equal(value) {
		v[slot] = value
		s.generation++
	}
	return old, nil
}

// checkHeight enforces the height write rules of SetAttribute.
func (s *Scope) checkHeight(name string, value attr.Value) error {
	if name == DefaultFaceName {
		// The default face height must stay absolute, or relative
		// heights merged against it would never resolve.
		if n, ok := value.Int(); !ok || n <= 0 {
			return &attr.AttributeError{Key: attr.KeyHeight, Value: value}
		}
		return nil
	}
	merged, ok := attr.MergeHeights(value, attr.Int(100))
	if !ok {
		return &attr.AttributeError{Key: attr.KeyHeight, Value: value}
	}
	if n, ok := merged.Int(); !ok || n <= 0 {
		return &attr.AttributeError{Key: attr.KeyHeight, Value: value}
	}
	return nil
}

// Generation returns the style generation of the scope.
func (s *Scope) Generation() uint64 {
	return s.generation
}

// Names returns the defined face names in no particular order.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.faces))
	for name := range s.faces {
		names = append(names, name)
	}
	return names
}

// Interner returns the shared id assignment.
func (s *Scope) Interner() *Interner {
	return s.interner
}
