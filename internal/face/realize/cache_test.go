package realize

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/device"
)

type fakeFont struct{ family string }

func (f *fakeFont) Family() string      { return f.family }
func (f *fakeFont) Foundry() string     { return "" }
func (f *fakeFont) Weight() attr.Weight { return attr.WeightNormal }
func (f *fakeFont) Slant() attr.Slant   { return attr.SlantNormal }
func (f *fakeFont) Width() attr.Width   { return attr.WidthNormal }
func (f *fakeFont) Height() int         { return 120 }

type fakeFonts struct {
	loads    int
	releases int
	fail     bool
}

func (f *fakeFonts) LoadFont(v *attr.Vector) (device.FontHandle, error) {
	if f.fail {
		return nil, &device.FontError{Family: "none"}
	}
	f.loads++
	fam, _ := v[attr.SlotFamily].Str()
	return &fakeFont{family: fam}, nil
}

func (f *fakeFonts) ReleaseFont(h device.FontHandle) {
	if h != nil {
		f.releases++
	}
}

type fakeColors struct {
	known map[string]device.RGB
}

func newFakeColors() *fakeColors {
	return &fakeColors{known: map[string]device.RGB{
		"black":  {},
		"white":  {R: 0xff, G: 0xff, B: 0xff},
		"red":    {R: 0xff},
		"orange": {R: 0xff, G: 0xa5},
		"blue":   {B: 0xff},
	}}
}

func (c *fakeColors) ResolveColor(name string) (device.Pixel, device.RGB, error) {
	rgb, ok := c.known[name]
	if !ok {
		return 0, device.RGB{}, &device.ColorError{Name: name}
	}
	px := device.Pixel(uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B))
	return px, rgb, nil
}

func (c *fakeColors) DefaultForeground() (device.Pixel, device.RGB) {
	return 0xffffff, device.RGB{R: 0xff, G: 0xff, B: 0xff}
}

func (c *fakeColors) DefaultBackground() (device.Pixel, device.RGB) {
	return 0, device.RGB{}
}

func (c *fakeColors) TrueColor() bool { return true }

func (c *fakeColors) Distance(a, b device.RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return dr*dr + dg*dg + db*db
}

type fakeCaps struct{ noBold bool }

func (c fakeCaps) Supports(capability device.Capability) bool {
	if capability == device.CapBold && c.noBold {
		return false
	}
	return true
}

func (c fakeCaps) Colors() int { return 1 << 24 }

type countingGuard struct{ blocks, unblocks int }

func (g *countingGuard) Block()   { g.blocks++ }
func (g *countingGuard) Unblock() { g.unblocks++ }

type fixture struct {
	cache  *Cache
	fonts  *fakeFonts
	colors *fakeColors
	guard  *countingGuard
}

func newFixture(opts Options, caps fakeCaps) *fixture {
	fx := &fixture{
		fonts:  &fakeFonts{},
		colors: newFakeColors(),
		guard:  &countingGuard{},
	}
	fx.cache = NewCache(Devices{
		Fonts:  fx.fonts,
		Colors: fx.colors,
		Caps:   caps,
		Guard:  fx.guard,
	}, opts, log.New(io.Discard, "", 0))
	return fx
}

// fullVector returns a fully specified vector suitable for realization.
func fullVector() attr.Vector {
	var v attr.Vector
	v[attr.SlotFamily] = attr.Str("monospace")
	v[attr.SlotFoundry] = attr.Str("misc")
	v[attr.SlotWidth] = attr.WidthValue(attr.WidthNormal)
	v[attr.SlotHeight] = attr.Int(120)
	v[attr.SlotWeight] = attr.WeightValue(attr.WeightNormal)
	v[attr.SlotSlant] = attr.SlantValue(attr.SlantNormal)
	v[attr.SlotUnderline] = attr.Flag(false)
	v[attr.SlotInverse] = attr.Flag(false)
	v[attr.SlotForeground] = attr.Str("white")
	v[attr.SlotBackground] = attr.Str("black")
	v[attr.SlotStipple] = attr.Flag(false)
	v[attr.SlotOverline] = attr.Flag(false)
	v[attr.SlotStrikeThrough] = attr.Flag(false)
	v[attr.SlotBox] = attr.Flag(false)
	v[attr.SlotFontset] = attr.Str("")
	return v
}

func TestLookupOrCreateDeterministic(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})

	a := fullVector()
	b := fullVector()
	fa, err := fx.cache.LookupOrCreate(&a)
	if err != nil {
		t.Fatalf("LookupOrCreate: %v", err)
	}
	fb, err := fx.cache.LookupOrCreate(&b)
	if err != nil {
		t.Fatalf("LookupOrCreate: %v", err)
	}
	if fa.ID() != fb.ID() {
		t.Errorf("ids differ: %d vs %d", fa.ID(), fb.ID())
	}
	if fx.fonts.loads != 1 {
		t.Errorf("loads = %d, want 1 (second lookup is a cache hit)", fx.fonts.loads)
	}

	c := fullVector()
	c[attr.SlotForeground] = attr.Str("red")
	fc, err := fx.cache.LookupOrCreate(&c)
	if err != nil {
		t.Fatalf("LookupOrCreate: %v", err)
	}
	if fc.ID() == fa.ID() {
		t.Error("different attributes must get a different id")
	}
}

func TestLookupOrCreateRejectsIncomplete(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	var v attr.Vector
	v[attr.SlotForeground] = attr.Str("white")
	if _, err := fx.cache.LookupOrCreate(&v); !errors.Is(err, ErrUnrealizable) {
		t.Errorf("want ErrUnrealizable, got %v", err)
	}
}

func TestInvalidateAll(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	v := fullVector()
	f, _ := fx.cache.LookupOrCreate(&v)
	id, gen := f.ID(), f.Generation()

	fx.cache.InvalidateAll()

	if _, ok := fx.cache.Face(id); ok {
		t.Error("id still resolvable after InvalidateAll")
	}
	if !fx.cache.NeedsRedraw() {
		t.Error("redraw flag not raised")
	}
	if fx.fonts.releases != 1 {
		t.Errorf("releases = %d, want 1", fx.fonts.releases)
	}
	if fx.cache.Generation() == gen {
		t.Error("generation did not change")
	}

	// Re-realizing the same attributes may reuse the id, but the holder's
	// recorded generation exposes the reuse.
	f2, _ := fx.cache.LookupOrCreate(&v)
	if f2.Generation() == gen {
		t.Error("new face carries the old generation")
	}
}

func TestReplaceKeepsID(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	v := fullVector()
	f, _ := fx.cache.LookupOrCreate(&v)

	v2 := fullVector()
	v2[attr.SlotHeight] = attr.Int(140)
	f2, err := fx.cache.Replace(f.ID(), &v2)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if f2.ID() != f.ID() {
		t.Errorf("id changed: %d -> %d", f.ID(), f2.ID())
	}
	if fx.fonts.releases != 1 {
		t.Errorf("releases = %d, want 1 (old occupant freed)", fx.fonts.releases)
	}
	if h, _ := f2.Attributes()[attr.SlotHeight].Int(); h != 140 {
		t.Errorf("height = %d, want 140", h)
	}

	if _, err := fx.cache.Replace(99, &v2); !errors.Is(err, ErrUnknownID) {
		t.Errorf("want ErrUnknownID for dead id, got %v", err)
	}
}

func TestReplaceDropsVariants(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	v := fullVector()
	anchor, _ := fx.cache.LookupOrCreate(&v)

	alt := &fakeFont{family: "fallback"}
	variant, err := fx.cache.FaceForFont(anchor.ID(), alt)
	if err != nil {
		t.Fatalf("FaceForFont: %v", err)
	}

	v2 := fullVector()
	v2[attr.SlotHeight] = attr.Int(140)
	replaced, err := fx.cache.Replace(anchor.ID(), &v2)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	// The variant pointed at the freed occupant; its id must die with it.
	if _, ok := fx.cache.Face(variant.ID()); ok {
		t.Error("variant id still live after its anchor was replaced")
	}
	if fx.fonts.releases != 2 {
		t.Errorf("releases = %d, want 2 (old occupant and its variant)", fx.fonts.releases)
	}

	fresh, err := fx.cache.FaceForFont(replaced.ID(), alt)
	if err != nil {
		t.Fatalf("FaceForFont after Replace: %v", err)
	}
	if fresh == variant {
		t.Error("stale variant returned for the replacement face")
	}
	if fresh.Anchor() != replaced {
		t.Error("new variant must anchor at the replacement face")
	}
}

func TestFaceForFont(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	v := fullVector()
	anchor, _ := fx.cache.LookupOrCreate(&v)

	alt := &fakeFont{family: "fallback"}
	variant, err := fx.cache.FaceForFont(anchor.ID(), alt)
	if err != nil {
		t.Fatalf("FaceForFont: %v", err)
	}
	if variant.ID() == anchor.ID() {
		t.Error("variant must get its own id")
	}
	if variant.Anchor() != anchor {
		t.Error("variant lost its anchor back reference")
	}
	if variant.Font() != device.FontHandle(alt) {
		t.Error("variant font not installed")
	}
	if variant.Foreground != anchor.Foreground || variant.Background != anchor.Background {
		t.Error("variant must share the anchor's colors")
	}

	again, err := fx.cache.FaceForFont(anchor.ID(), alt)
	if err != nil {
		t.Fatalf("FaceForFont: %v", err)
	}
	if again != variant {
		t.Error("repeated call created a second variant")
	}

	// Deriving from the variant still anchors at the original face.
	other := &fakeFont{family: "other"}
	nested, err := fx.cache.FaceForFont(variant.ID(), other)
	if err != nil {
		t.Fatalf("FaceForFont: %v", err)
	}
	if nested.Anchor() != anchor {
		t.Error("variant of a variant must anchor at the original")
	}

	// The anchor's attributes still look up the anchor, not a variant.
	again2, _ := fx.cache.LookupOrCreate(&v)
	if again2 != anchor {
		t.Error("attribute lookup returned a variant")
	}
}

func TestColorDefaulting(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	v := fullVector()
	v[attr.SlotForeground] = attr.Str("no-such-color")
	f, err := fx.cache.LookupOrCreate(&v)
	if err != nil {
		t.Fatalf("LookupOrCreate: %v", err)
	}
	if !f.Foreground.Defaulted {
		t.Error("unresolvable foreground should be marked defaulted")
	}
	if f.Foreground.RGB != (device.RGB{R: 0xff, G: 0xff, B: 0xff}) {
		t.Errorf("foreground = %v, want the surface default", f.Foreground.RGB)
	}
	if f.Background.Defaulted {
		t.Error("background resolved fine, must not be defaulted")
	}
}

func TestInverseSwapsColors(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	v := fullVector()
	v[attr.SlotInverse] = attr.Flag(true)
	f, _ := fx.cache.LookupOrCreate(&v)

	if name, _ := v[attr.SlotForeground].Str(); name != "white" {
		t.Fatalf("fixture foreground = %q", name)
	}
	if f.Foreground.RGB != (device.RGB{}) {
		t.Errorf("foreground = %v, want swapped-in black", f.Foreground.RGB)
	}
	if f.Background.RGB != (device.RGB{R: 0xff, G: 0xff, B: 0xff}) {
		t.Errorf("background = %v, want swapped-in white", f.Background.RGB)
	}
	if f.Inverse {
		t.Error("swap already applied, inverse flag must be clear")
	}
}

func TestInverseWithDefaultedColors(t *testing.T) {
	fx := newFixture(Options{SuppressBoldInverseDefault: true}, fakeCaps{})
	v := fullVector()
	v[attr.SlotForeground] = attr.Str("nope")
	v[attr.SlotBackground] = attr.Str("nada")
	v[attr.SlotInverse] = attr.Flag(true)
	v[attr.SlotWeight] = attr.WeightValue(attr.WeightBold)
	f, _ := fx.cache.LookupOrCreate(&v)

	if !f.Inverse {
		t.Error("defaulted colors should keep the display's reverse attribute")
	}
	if f.Bold {
		t.Error("bold should be suppressed under inverse default colors")
	}
}

func TestBoldUnsupportedOverstrikes(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{noBold: true})
	v := fullVector()
	v[attr.SlotWeight] = attr.WeightValue(attr.WeightBold)
	f, _ := fx.cache.LookupOrCreate(&v)
	if f.Bold {
		t.Error("bold set although unsupported")
	}
	if !f.Overstrike {
		t.Error("overstrike should approximate unsupported bold")
	}
}

func TestGuardBalanced(t *testing.T) {
	fx := newFixture(Options{}, fakeCaps{})
	v := fullVector()
	f, _ := fx.cache.LookupOrCreate(&v)
	v2 := fullVector()
	v2[attr.SlotHeight] = attr.Int(140)
	if _, err := fx.cache.Replace(f.ID(), &v2); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	fx.cache.InvalidateAll()

	if fx.guard.blocks == 0 {
		t.Fatal("guard never acquired")
	}
	if fx.guard.blocks != fx.guard.unblocks {
		t.Errorf("guard unbalanced: %d blocks, %d unblocks", fx.guard.blocks, fx.guard.unblocks)
	}
}
