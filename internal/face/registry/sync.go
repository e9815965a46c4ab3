package registry

import (
	"github.com/dshills/facet/internal/face/attr"
)

// SyncGlobalDefaults imposes the global definition of name onto local.
// Every slot the global vector marks ignore-default is forced back to
// unspecified locally; every slot the global vector specifies concretely
// overwrites the local slot. Global definitions win over local ones on this
// path only: it models defaults imposed after the fact, the opposite of
// ordinary merge precedence.
//
// The local face is created if it does not exist. The caller is responsible
// for invalidating the surface's realization cache afterwards.
func SyncGlobalDefaults(global, local *Scope, name string) error {
	gv, ok := global.faces[name]
	if !ok {
		return &UnknownFaceError{Name: name}
	}
	local.Define(name)
	lv := local.faces[name]

	changed := false
	for i := attr.Slot(0); i < attr.SlotCount; i++ {
		switch gv[i].State() {
		case attr.StateIgnoreDefault:
			if !lv[i].Unspecified() {
				lv[i] = attr.Unspecified()
				changed = true
			}
		case attr.StateSpecified:
			if !lv[i].Equal(gv[i]) {
				lv[i] = gv[i]
				changed = true
			}
		}
	}
	if changed {
		local.generation++
	}
	return nil
}
