package merge

import (
	"github.com/dshills/facet/internal/face/attr"
)

// RemapTable associates face names with replacement references. It is
// consulted during named lookups with its own cycle-tracking namespace,
// distinct from inheritance cycles.
type RemapTable struct {
	entries map[string]attr.Ref
}

// NewRemapTable creates an empty remapping table.
func NewRemapTable() *RemapTable {
	return &RemapTable{entries: make(map[string]attr.Ref)}
}

// Set remaps name to ref.
func (t *RemapTable) Set(name string, ref attr.Ref) {
	t.entries[name] = ref
}

// Clear removes the remapping of name.
func (t *RemapTable) Clear(name string) {
	delete(t.entries, name)
}

// Lookup returns the remapping of name, if any.
func (t *RemapTable) Lookup(name string) (attr.Ref, bool) {
	if t == nil {
		return nil, false
	}
	ref, ok := t.entries[name]
	return ref, ok
}

// Empty reports whether no remappings are installed.
func (t *RemapTable) Empty() bool {
	return t == nil || len(t.entries) == 0
}
