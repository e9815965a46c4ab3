package merge

import (
	"log"

	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/registry"
)

// Env supplies the tables a resolution reads: face definitions (surface-
// local overriding global), alias links, and the remapping table.
type Env interface {
	// FaceAttributes returns the attribute vector of a face name, without
	// alias or remap resolution.
	FaceAttributes(name string) (attr.Vector, bool)

	// ResolveAlias follows the alias chain of name. On a cycle it returns
	// the default face name and an error.
	ResolveAlias(name string) (string, error)

	// Remap returns the remapping of name, if any.
	Remap(name string) (attr.Ref, bool)
}

// Engine resolves face references. It holds no per-resolution state.
type Engine struct {
	env    Env
	logger *log.Logger
}

// New creates an engine reading from env. A nil logger uses the standard
// logger.
func New(env Env, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{env: env, logger: logger}
}

// Resolve merges everything ref specifies into base.
//
// If signal is true, the first error encountered is returned after the
// remaining reference elements have still been processed; if false, errors
// are logged and the offending element is skipped. Resolution never aborts
// part-way through a reference list.
func (e *Engine) Resolve(ref attr.Ref, base *attr.Vector, signal bool, points *Points) error {
	if points == nil {
		points = &Points{}
	}
	err := e.resolve(ref, base, signal, points)
	if signal {
		return err
	}
	return nil
}

func (e *Engine) resolve(ref attr.Ref, base *attr.Vector, signal bool, points *Points) error {
	switch r := ref.(type) {
	case attr.Name:
		return e.mergeNamed(string(r), base, signal, points)

	case attr.ForegroundColor:
		if r == "" {
			return e.badRef(ref)
		}
		base[attr.SlotForeground] = attr.Str(string(r))
		return nil

	case attr.BackgroundColor:
		if r == "" {
			return e.badRef(ref)
		}
		base[attr.SlotBackground] = attr.Str(string(r))
		return nil

	case attr.PropList:
		var firstErr error
		for _, p := range r {
			var err error
			if p.Key == attr.KeyInherit {
				err = e.applyInherit(p.Value, base, signal, points)
			} else {
				err = attr.ApplyProperty(base, p)
				if err != nil {
					e.logf("invalid face attribute %s %s", p.Key, p.Value)
				}
			}
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr

	case attr.RefList:
		if len(r) == 0 {
			return nil
		}
		// Earlier elements take precedence: merge the tail first so the
		// head's writes win.
		var firstErr error
		if err := e.resolve(r[1:], base, signal, points); err != nil {
			firstErr = err
		}
		if err := e.resolve(r[0], base, signal, points); err != nil && firstErr == nil {
			firstErr = err
		}
		return firstErr

	default:
		return e.badRef(ref)
	}
}

// applyInherit resolves an inherit property value, which must itself be a
// face reference.
func (e *Engine) applyInherit(v attr.Value, base *attr.Vector, signal bool, points *Points) error {
	ref, ok := v.Ref()
	if !ok {
		e.logf("invalid face attribute %s %s", attr.KeyInherit, v)
		return &attr.AttributeError{Key: attr.KeyInherit, Value: v}
	}
	return e.resolve(ref, base, signal, points)
}

// mergeNamed looks up a face by name and merges its attributes into base.
func (e *Engine) mergeNamed(name string, base *attr.Vector, signal bool, points *Points) error {
	if !points.push(name, KindInherit) {
		err := &CycleError{Name: name, Kind: KindInherit}
		e.logf("%v", err)
		return err
	}
	defer points.pop()

	from, err := e.faceAttributes(name, signal, points)
	if err != nil {
		if signal {
			e.logf("invalid face reference: %s", name)
		}
		return err
	}

	attr.Merge(&from, base, func(ref attr.Ref, to *attr.Vector) {
		// Inherited attributes are best-effort: failures inside the
		// inherit chain are logged, never surfaced.
		_ = e.resolve(ref, to, false, points)
	})
	return nil
}

// faceAttributes returns the definition of name after alias resolution and
// remapping.
func (e *Engine) faceAttributes(name string, signal bool, points *Points) (attr.Vector, error) {
	resolved, err := e.env.ResolveAlias(name)
	if err != nil {
		// Alias cycles degrade to the default face and are never fatal.
		e.logf("%v", err)
	}
	name = resolved

	if ref, ok := e.env.Remap(name); ok {
		if points.push(name, KindRemap) {
			defer points.pop()
			var v attr.Vector
			err := e.resolve(ref, &v, signal, points)
			return v, err
		}
		// A remap cycle: fall through to the face's own definition, which
		// is what an active remap of the same name terminates at.
	}

	v, ok := e.env.FaceAttributes(name)
	if !ok {
		return attr.Vector{}, &registry.UnknownFaceError{Name: name}
	}
	return v, nil
}

// badRef logs and reports a malformed reference shape.
func (e *Engine) badRef(ref attr.Ref) error {
	err := &ReferenceError{Ref: ref}
	e.logf("%v", err)
	return err
}

func (e *Engine) logf(format string, args ...any) {
	e.logger.Printf("face: "+format, args...)
}
