package merge

// Kind distinguishes the two namespaces of merge points.
type Kind uint8

const (
	// KindInherit marks an ordinary named lookup.
	KindInherit Kind = iota

	// KindRemap marks a lookup through the remapping table.
	KindRemap
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInherit:
		return "inherit"
	case KindRemap:
		return "remap"
	default:
		return "unknown"
	}
}

type point struct {
	name string
	kind Kind
}

// Points is the stack of named lookups currently being resolved. It is held
// by the caller of Resolve, so concurrent independent resolutions never
// share cycle-tracking state. The zero value is ready to use.
type Points struct {
	stack []point
}

// push records a named lookup, reporting false if it would close a cycle.
// A remap point hides any earlier inherit point on the same name: a remap
// means control has truly moved to a different face identity, so an inherit
// lookup under an active remap of that name proceeds as if it were the
// terminal definition.
func (p *Points) push(name string, kind Kind) bool {
	for i := len(p.stack) - 1; i >= 0; i-- {
		prev := p.stack[i]
		if prev.name != name {
			continue
		}
		if prev.kind == kind {
			return false
		}
		if prev.kind == KindRemap {
			break
		}
	}
	p.stack = append(p.stack, point{name: name, kind: kind})
	return true
}

// pop removes the most recent merge point.
func (p *Points) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

// Depth returns the current stack depth.
func (p *Points) Depth() int {
	return len(p.stack)
}
