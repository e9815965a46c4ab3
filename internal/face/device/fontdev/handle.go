package fontdev

import (
	"github.com/go-text/typesetting/font"

	"github.com/dshills/facet/internal/face/attr"
)

// Handle is an opened font. It reports the properties the query was
// normalized to; callers back-fill unspecified face attributes from them.
type Handle struct {
	face   *font.Face
	family string
	weight attr.Weight
	slant  attr.Slant
	width  attr.Width
	height int
}

// Face returns the underlying typesetting face for shaping or rendering.
func (h *Handle) Face() *font.Face { return h.face }

// Family implements device.FontHandle.
func (h *Handle) Family() string { return h.family }

// Foundry implements device.FontHandle. System font indexes carry no
// foundry notion, so it is always empty.
func (h *Handle) Foundry() string { return "" }

// Weight implements device.FontHandle.
func (h *Handle) Weight() attr.Weight { return h.weight }

// Slant implements device.FontHandle.
func (h *Handle) Slant() attr.Slant { return h.slant }

// Width implements device.FontHandle.
func (h *Handle) Width() attr.Width { return h.width }

// Height implements device.FontHandle.
func (h *Handle) Height() int { return h.height }
