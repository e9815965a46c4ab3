package attr

// Ref is a face reference: the tagged union resolved by the merge engine.
// A reference is a face name, a property list, a legacy single-color pair,
// or a list of references where earlier elements take precedence.
type Ref interface {
	faceRef()
}

// Name references a face by name.
type Name string

func (Name) faceRef() {}

// PropList is a sequence of keyword/value pairs applied directly to the
// merge base.
type PropList []Property

func (PropList) faceRef() {}

// Property is one keyword/value pair of a property-list reference.
type Property struct {
	Key   Keyword
	Value Value
}

// ForegroundColor is the legacy (foreground-color . NAME) shorthand.
type ForegroundColor string

func (ForegroundColor) faceRef() {}

// BackgroundColor is the legacy (background-color . NAME) shorthand.
type BackgroundColor string

func (BackgroundColor) faceRef() {}

// RefList is a sequence of references. Earlier elements take precedence,
// which the merge engine implements by merging the tail first.
type RefList []Ref

func (RefList) faceRef() {}

// refEqual reports structural equality of two references.
func refEqual(a, b Ref) bool {
	switch ra := a.(type) {
	case Name:
		rb, ok := b.(Name)
		return ok && ra == rb
	case ForegroundColor:
		rb, ok := b.(ForegroundColor)
		return ok && ra == rb
	case BackgroundColor:
		rb, ok := b.(BackgroundColor)
		return ok && ra == rb
	case PropList:
		rb, ok := b.(PropList)
		if !ok || len(ra) != len(rb) {
			return false
		}
		for i := range ra {
			if ra[i].Key != rb[i].Key || !ra[i].Value.Equal(rb[i].Value) {
				return false
			}
		}
		return true
	case RefList:
		rb, ok := b.(RefList)
		if !ok || len(ra) != len(rb) {
			return false
		}
		for i := range ra {
			if !refEqual(ra[i], rb[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
