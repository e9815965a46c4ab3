package realize

import (
	"log"

	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/device"
)

// bucket is one hash chain. Anchors and variants are separate lists so a
// lookup scanning for an attribute match stops at the anchors without
// walking font variants of the same attributes.
type bucket struct {
	anchors  []*RealizedFace
	variants []*RealizedFace
}

// Cache holds the realized faces of one surface.
type Cache struct {
	dev    Devices
	opts   Options
	logger *log.Logger

	buckets map[uint32]*bucket
	faces   []*RealizedFace

	generation  uint64
	needsRedraw bool
}

// NewCache creates an empty cache for a surface's devices. A nil logger
// uses the standard logger; a nil guard in dev is replaced with a no-op.
func NewCache(dev Devices, opts Options, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	if dev.Guard == nil {
		dev.Guard = device.NopGuard{}
	}
	return &Cache{
		dev:     dev,
		opts:    opts,
		logger:  logger,
		buckets: make(map[uint32]*bucket),
	}
}

// Generation returns the invalidation generation. It changes whenever
// every id in the cache is released, so a held (id, generation) pair can
// detect that its face is gone even if the id has been reassigned.
func (c *Cache) Generation() uint64 { return c.generation }

// Len returns the number of live realized faces.
func (c *Cache) Len() int {
	n := 0
	for _, f := range c.faces {
		if f != nil {
			n++
		}
	}
	return n
}

// Face returns the live realized face of id.
func (c *Cache) Face(id ID) (*RealizedFace, bool) {
	if id < 0 || int(id) >= len(c.faces) || c.faces[id] == nil {
		return nil, false
	}
	return c.faces[id], true
}

// LookupOrCreate returns the realized face for a fully specified vector,
// realizing and caching it on first sight. Attribute-equal vectors always
// yield the same face.
func (c *Cache) LookupOrCreate(v *attr.Vector) (*RealizedFace, error) {
	if !v.FullySpecified() {
		return nil, ErrUnrealizable
	}

	h := v.Hash()
	b := c.buckets[h]
	if b != nil {
		for _, f := range b.anchors {
			if f.attrs.Equal(v) {
				return f, nil
			}
		}
	}

	f := c.realize(v)
	f.id = c.assignID(f)
	if b == nil {
		b = &bucket{}
		c.buckets[h] = b
	}
	// Anchors go to the head so later scans hit recent faces first.
	b.anchors = append([]*RealizedFace{f}, b.anchors...)
	return f, nil
}

// Replace realizes a vector into an existing id, releasing the previous
// occupant first. Holders of the id keep a valid reference; the default
// face is re-realized through this path so its id never moves. Font
// variants of the replaced face are released with it, since their anchor
// back reference would otherwise dangle.
func (c *Cache) Replace(id ID, v *attr.Vector) (*RealizedFace, error) {
	if !v.FullySpecified() {
		return nil, ErrUnrealizable
	}
	old, ok := c.Face(id)
	if !ok {
		return nil, &IDError{ID: id}
	}

	variants := c.variantsOf(old)
	c.dev.Guard.Block()
	c.release(old)
	for _, vf := range variants {
		c.release(vf)
	}
	c.dev.Guard.Unblock()
	c.unlink(old)
	c.faces[id] = nil
	for _, vf := range variants {
		c.unlink(vf)
		c.faces[vf.id] = nil
	}

	f := c.realize(v)
	f.id = id
	c.faces[id] = f
	b := c.buckets[f.hash]
	if b == nil {
		b = &bucket{}
		c.buckets[f.hash] = b
	}
	b.anchors = append([]*RealizedFace{f}, b.anchors...)
	return f, nil
}

// FaceForFont returns a variant of anchor rendered with a different font,
// sharing every non-font field. The variant keeps a back reference to its
// anchor and is found again on repeated calls with the same font.
func (c *Cache) FaceForFont(anchorID ID, font device.FontHandle) (*RealizedFace, error) {
	anchor, ok := c.Face(anchorID)
	if !ok {
		return nil, &IDError{ID: anchorID}
	}
	if anchor.anchor != nil {
		anchor = anchor.anchor
	}

	b := c.buckets[anchor.hash]
	if b == nil {
		b = &bucket{}
		c.buckets[anchor.hash] = b
	}
	for _, f := range b.variants {
		if f.anchor == anchor && f.font == font {
			return f, nil
		}
	}

	v := *anchor
	v.id = c.assignID(&v)
	v.font = font
	v.fontDefaulted = font == nil
	v.anchor = anchor
	// Variants go to the tail, behind every anchor of the chain.
	b.variants = append(b.variants, &v)
	return &v, nil
}

// InvalidateAll releases every realized face and empties the cache. The
// release of device resources happens before the tables are cleared, and
// the redraw flag is raised only after both, so a redraw entered from a
// release callback never sees a half-torn-down cache.
func (c *Cache) InvalidateAll() {
	c.dev.Guard.Block()
	for _, f := range c.faces {
		if f != nil {
			c.release(f)
		}
	}
	c.dev.Guard.Unblock()

	c.buckets = make(map[uint32]*bucket)
	c.faces = c.faces[:0]
	c.generation++
	c.needsRedraw = true
}

// NeedsRedraw reports whether an invalidation happened since the flag was
// last cleared.
func (c *Cache) NeedsRedraw() bool { return c.needsRedraw }

// ClearRedraw resets the redraw flag.
func (c *Cache) ClearRedraw() { c.needsRedraw = false }

// assignID stores f at the first free id slot, keeping ids dense.
func (c *Cache) assignID(f *RealizedFace) ID {
	for i, slot := range c.faces {
		if slot == nil {
			c.faces[i] = f
			return ID(i)
		}
	}
	c.faces = append(c.faces, f)
	return ID(len(c.faces) - 1)
}

// variantsOf collects the font variants anchored on f. Variants always
// live in their anchor's hash chain.
func (c *Cache) variantsOf(f *RealizedFace) []*RealizedFace {
	b := c.buckets[f.hash]
	if b == nil {
		return nil
	}
	var out []*RealizedFace
	for _, vf := range b.variants {
		if vf.anchor == f {
			out = append(out, vf)
		}
	}
	return out
}

// unlink removes f from its hash chain.
func (c *Cache) unlink(f *RealizedFace) {
	b := c.buckets[f.hash]
	if b == nil {
		return
	}
	b.anchors = remove(b.anchors, f)
	b.variants = remove(b.variants, f)
}

func remove(list []*RealizedFace, f *RealizedFace) []*RealizedFace {
	for i, e := range list {
		if e == f {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func (c *Cache) logf(format string, args ...any) {
	c.logger.Printf("face: "+format, args...)
}
