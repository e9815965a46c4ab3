package registry

// ID is the stable small-integer id of a named face. Ids are assigned
// sequentially on first definition and are never reused within a process
// lifetime, so slice-backed state can index by ID.
type ID int32

// Invalid is the id of no face.
const Invalid ID = -1

// DefaultFaceName is the name of the designated default face, which every
// other face ultimately merges against.
const DefaultFaceName = "default"

// Interner maps face names to stable IDs. It is shared by every scope of an
// environment so a name has the same id globally and per surface.
type Interner struct {
	ids   map[string]ID
	names []string
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]ID)}
}

// Intern returns the ID for name, assigning the next id if name has not
// been seen before.
func (in *Interner) Intern(name string) ID {
	if id, ok := in.ids[name]; ok {
		return id
	}
	id := ID(len(in.names))
	in.ids[name] = id
	in.names = append(in.names, name)
	return id
}

// Lookup returns the ID for name without creating one.
func (in *Interner) Lookup(name string) (ID, bool) {
	id, ok := in.ids[name]
	return id, ok
}

// Name returns the name for an id.
func (in *Interner) Name(id ID) (string, bool) {
	if id < 0 || int(id) >= len(in.names) {
		return "", false
	}
	return in.names[id], true
}

// Len returns the number of interned names.
func (in *Interner) Len() int {
	return len(in.names)
}
