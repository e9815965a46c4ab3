package face

import (
	"github.com/dshills/facet/internal/face/annotate"
	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/device"
	"github.com/dshills/facet/internal/face/merge"
	"github.com/dshills/facet/internal/face/realize"
	"github.com/dshills/facet/internal/face/registry"
)

// Surface is one display attached to an environment. It holds the local
// face definitions overriding the globals, the realization cache bound to
// its device, and the annotation source supplying faces per position.
type Surface struct {
	env    *Environment
	local  *registry.Scope
	cache  *realize.Cache
	dev    realize.Devices
	engine *merge.Engine
	source annotate.Source

	basics    [realize.BasicCount]realize.ID
	basicsGen uint64
	hasBasics bool
}

// NewSurface attaches a surface driven by the given devices. The global
// definitions are synced into the local scope and the basic faces are
// realized eagerly, default first.
func (env *Environment) NewSurface(dev realize.Devices, opts realize.Options, source annotate.Source) (*Surface, error) {
	if dev.Guard == nil {
		dev.Guard = device.NopGuard{}
	}
	s := &Surface{
		env:    env,
		local:  registry.NewScope(env.interner, false),
		cache:  realize.NewCache(dev, opts, env.logger),
		dev:    dev,
		source: source,
	}
	s.engine = merge.New(s, env.logger)

	for _, name := range realize.BasicNames {
		s.local.Define(name)
		if err := registry.SyncGlobalDefaults(env.global, s.local, name); err != nil {
			return nil, err
		}
	}
	if err := s.realizeBasics(); err != nil {
		return nil, err
	}
	env.surfaces = append(env.surfaces, s)
	return s, nil
}

// Detach removes the surface from its environment and releases its
// realized faces.
func (s *Surface) Detach() {
	for i, other := range s.env.surfaces {
		if other == s {
			s.env.surfaces = append(s.env.surfaces[:i], s.env.surfaces[i+1:]...)
			break
		}
	}
	s.cache.InvalidateAll()
}

// FaceAttributes implements merge.Env: the local definition wins, the
// global one fills in for faces never defined locally.
func (s *Surface) FaceAttributes(name string) (attr.Vector, bool) {
	if v, ok := s.local.Get(name); ok {
		return v, true
	}
	return s.env.global.Get(name)
}

// ResolveAlias implements merge.Env.
func (s *Surface) ResolveAlias(name string) (string, error) {
	return s.env.aliases.Resolve(name)
}

// Remap implements merge.Env.
func (s *Surface) Remap(name string) (attr.Ref, bool) {
	return s.env.remap.Lookup(name)
}

// Cache exposes the surface's realization cache.
func (s *Surface) Cache() *realize.Cache {
	return s.cache
}

// DefineFace ensures name exists in the surface's local scope and returns
// its stable id.
func (s *Surface) DefineFace(name string) registry.ID {
	return s.local.Define(name)
}

// SetAttribute sets one attribute of a surface-local face after
// validation, returning the previous value. A structural change empties
// the realization cache, since which realized faces depended on the name
// is not tracked.
func (s *Surface) SetAttribute(name string, key attr.Keyword, value attr.Value) (attr.Value, error) {
	before := s.local.Generation()
	old, err := s.local.SetAttribute(name, key, value)
	if err != nil {
		return old, err
	}
	if s.local.Generation() != before {
		s.cache.InvalidateAll()
	}
	return old, nil
}

// Invalidate empties the surface's realization cache. The basic faces are
// realized again on next use.
func (s *Surface) Invalidate() {
	s.cache.InvalidateAll()
}

// LookupNamedFace returns the effective attribute vector of name on this
// surface, after alias resolution.
func (s *Surface) LookupNamedFace(name string) (attr.Vector, bool) {
	resolved, err := s.env.aliases.Resolve(name)
	if err != nil {
		s.env.logger.Printf("face: %v", err)
	}
	return s.FaceAttributes(resolved)
}

// AttributesEqual reports whether two named faces have attribute-equal
// effective definitions on this surface.
func (s *Surface) AttributesEqual(a, b string) bool {
	va, oka := s.LookupNamedFace(a)
	vb, okb := s.LookupNamedFace(b)
	if !oka || !okb {
		return oka == okb
	}
	return va.Equal(&vb)
}

// IsColorSupported reports whether the surface's device can resolve the
// color name. A background color needs a display that can actually paint
// grounds; on a monochrome display only the default background holds.
func (s *Surface) IsColorSupported(name string, background bool) bool {
	if background && s.dev.Caps.Colors() <= 0 {
		return false
	}
	_, _, err := s.dev.Colors.ResolveColor(name)
	return err == nil
}

// ResolveFaceForPosition merges the annotations at pos over the default
// face and returns the realized result. With no annotation source or no
// annotations, the default face itself is returned.
func (s *Surface) ResolveFaceForPosition(pos int) (*realize.RealizedFace, error) {
	if err := s.ensureBasics(); err != nil {
		return nil, err
	}
	def, ok := s.cache.Face(s.basics[realize.BasicDefault])
	if !ok {
		return nil, &realize.IDError{ID: s.basics[realize.BasicDefault]}
	}
	if s.source == nil {
		return def, nil
	}
	refs, _ := s.source.AnnotationsAt(pos)
	if len(refs) == 0 {
		return def, nil
	}

	base := def.Attributes()
	var points merge.Points
	_ = s.engine.Resolve(attr.RefList(refs), &base, false, &points)
	base[attr.SlotInherit] = attr.Unspecified()
	return s.cache.LookupOrCreate(&base)
}

// BasicFace returns the realized face for a basic-face index. Remapping of
// the face's name is honored; any failure falls back to the eagerly
// realized face at the fixed id.
func (s *Surface) BasicFace(index int) (*realize.RealizedFace, error) {
	if index < 0 || index >= realize.BasicCount {
		return nil, &realize.IDError{ID: realize.InvalidID}
	}
	if err := s.ensureBasics(); err != nil {
		return nil, err
	}
	fixed, ok := s.cache.Face(s.basics[index])
	if !ok {
		return nil, &realize.IDError{ID: s.basics[index]}
	}

	name := realize.BasicNames[index]
	if _, remapped := s.env.remap.Lookup(name); !remapped {
		return fixed, nil
	}
	base := fixed.Attributes()
	var points merge.Points
	if err := s.engine.Resolve(attr.Name(name), &base, true, &points); err != nil {
		return fixed, nil
	}
	base[attr.SlotInherit] = attr.Unspecified()
	f, err := s.cache.LookupOrCreate(&base)
	if err != nil {
		return fixed, nil
	}
	return f, nil
}

// Realize merges the named face over base and returns the realized
// result. base is typically the realized default face's vector, so the
// result is always fully specified.
func (s *Surface) Realize(name string, base *attr.Vector) (*realize.RealizedFace, error) {
	var points merge.Points
	if err := s.engine.Resolve(attr.Name(name), base, true, &points); err != nil {
		return nil, err
	}
	base[attr.SlotInherit] = attr.Unspecified()
	return s.cache.LookupOrCreate(base)
}

// FaceForFont returns a variant of a realized face using a different font,
// sharing everything else.
func (s *Surface) FaceForFont(id realize.ID, font device.FontHandle) (*realize.RealizedFace, error) {
	return s.cache.FaceForFont(id, font)
}

// FaceWithHeight returns a face identical to id except for an absolute
// height, realizing it if needed.
func (s *Surface) FaceWithHeight(id realize.ID, height int) (*realize.RealizedFace, error) {
	f, ok := s.cache.Face(id)
	if !ok {
		return nil, &realize.IDError{ID: id}
	}
	if height <= 0 {
		return f, nil
	}
	attrs := f.Attributes()
	if h, ok := attrs[attr.SlotHeight].Int(); ok && h == height {
		return f, nil
	}
	attrs[attr.SlotHeight] = attr.Int(height)
	return s.cache.LookupOrCreate(&attrs)
}

// SmallerFace returns a face like id but two steps smaller, the step being
// a tenth of the current height.
func (s *Surface) SmallerFace(id realize.ID, steps int) (*realize.RealizedFace, error) {
	f, ok := s.cache.Face(id)
	if !ok {
		return nil, &realize.IDError{ID: id}
	}
	h, ok := f.Attributes()[attr.SlotHeight].Int()
	if !ok || steps <= 0 {
		return f, nil
	}
	return s.FaceWithHeight(id, h*10/(10+steps))
}

// SyncGlobalDefaults pulls the global definition of name into the local
// scope, global values winning, and empties the cache.
func (s *Surface) SyncGlobalDefaults(name string) error {
	if err := registry.SyncGlobalDefaults(s.env.global, s.local, name); err != nil {
		return err
	}
	s.cache.InvalidateAll()
	return nil
}

// fillFromFont back-fills unspecified font properties of the default face
// from the font the resolver actually matched. A :font override can imply
// family, foundry, weight, slant, width, and height.
func (s *Surface) fillFromFont(v *attr.Vector) {
	fs, ok := v[attr.SlotFontSpec].FontSpec()
	if !ok || fs.Empty() {
		return
	}
	s.dev.Guard.Block()
	h, err := s.dev.Fonts.LoadFont(v)
	s.dev.Guard.Unblock()
	if err != nil || h == nil {
		return
	}
	defer s.dev.Fonts.ReleaseFont(h)
	if v[attr.SlotFamily].State() != attr.StateSpecified && h.Family() != "" {
		v[attr.SlotFamily] = attr.Str(h.Family())
	}
	if v[attr.SlotFoundry].State() != attr.StateSpecified {
		v[attr.SlotFoundry] = attr.Str(h.Foundry())
	}
	if v[attr.SlotWeight].State() != attr.StateSpecified {
		v[attr.SlotWeight] = attr.WeightValue(h.Weight())
	}
	if v[attr.SlotSlant].State() != attr.StateSpecified {
		v[attr.SlotSlant] = attr.SlantValue(h.Slant())
	}
	if v[attr.SlotWidth].State() != attr.StateSpecified {
		v[attr.SlotWidth] = attr.WidthValue(h.Width())
	}
	if v[attr.SlotHeight].State() != attr.StateSpecified && h.Height() > 0 {
		v[attr.SlotHeight] = attr.Int(h.Height())
	}
}

// ensureBasics re-realizes the basic faces after an invalidation.
func (s *Surface) ensureBasics() error {
	if s.hasBasics && s.basicsGen == s.cache.Generation() {
		return nil
	}
	return s.realizeBasics()
}

// realizeBasics realizes every basic face, default first. The default
// face's :font back-fills its unspecified font properties, the built-in
// fallback completes the rest so it is always fully specified, and the
// others merge their definitions over the realized default.
func (s *Surface) realizeBasics() error {
	var base attr.Vector
	var points merge.Points
	_ = s.engine.Resolve(attr.Name(registry.DefaultFaceName), &base, false, &points)
	base[attr.SlotInherit] = attr.Unspecified()
	s.fillFromFont(&base)
	fillUnspecified(&base)

	var def *realize.RealizedFace
	var err error
	if s.hasBasics {
		// Take over the existing id so holders of the default face id
		// stay valid across re-realization.
		def, err = s.cache.Replace(s.basics[realize.BasicDefault], &base)
		if err != nil {
			def, err = s.cache.LookupOrCreate(&base)
		}
	} else {
		def, err = s.cache.LookupOrCreate(&base)
	}
	if err != nil {
		return err
	}
	s.basics[realize.BasicDefault] = def.ID()

	for i := 1; i < realize.BasicCount; i++ {
		v := def.Attributes()
		points = merge.Points{}
		_ = s.engine.Resolve(attr.Name(realize.BasicNames[i]), &v, false, &points)
		v[attr.SlotInherit] = attr.Unspecified()
		f, err := s.cache.LookupOrCreate(&v)
		if err != nil {
			return err
		}
		s.basics[i] = f.ID()
	}
	s.basicsGen = s.cache.Generation()
	s.hasBasics = true
	return nil
}
