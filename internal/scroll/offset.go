// Package scroll holds the model shared by every scroll container: per-axis
// offsets, scrollbar geometry, kinetic physics, animated scroll-to and the
// interaction state machine that decides which of them drives the offsets.
//
// Nothing in this package allocates content or talks to a renderer. A
// container feeds it a Frame per event and acts on the returned Effects.
package scroll

import (
	"math"

	"github.com/xonecas/vscroll/internal/geom"
)

// Anchor decides which edge of the content an offset of zero refers to.
type Anchor int

const (
	// AnchorStart measures offsets from the top or left edge.
	AnchorStart Anchor = iota
	// AnchorEnd measures offsets from the bottom or right edge.
	AnchorEnd
)

func (a Anchor) String() string {
	if a == AnchorEnd {
		return "end"
	}
	return "start"
}

// Offset is the scroll position on one axis. It is either an absolute pixel
// value or a fraction of the scrollable range.
type Offset struct {
	relative bool
	value    float64
}

// Absolute returns an offset of px pixels. Out-of-range values are kept and
// clamped whenever the offset is resolved.
func Absolute(px float64) Offset {
	if math.IsNaN(px) {
		px = 0
	}
	return Offset{value: px}
}

// Relative returns an offset at fraction f of the scrollable range, clamped to [0, 1].
func Relative(f float64) Offset {
	if math.IsNaN(f) {
		f = 0
	}
	return Offset{relative: true, value: geom.Clamp(f, 0, 1)}
}

// IsRelative reports whether the offset follows the content size.
func (o Offset) IsRelative() bool { return o.relative }

// Resolve returns the offset in pixels, clamped to [0, max(content-viewport, 0)].
func (o Offset) Resolve(viewport, content float64) float64 {
	limit := math.Max(content-viewport, 0)
	if o.relative {
		return o.value * limit
	}
	return geom.Clamp(o.value, 0, limit)
}

// Translation returns how far the content is shifted for drawing. For
// AnchorEnd the offset counts back from the far edge.
func (o Offset) Translation(viewport, content float64, anchor Anchor) float64 {
	abs := o.Resolve(viewport, content)
	if anchor == AnchorEnd {
		return math.Max(math.Max(content-viewport, 0)-abs, 0)
	}
	return abs
}

// AbsoluteOffset is a pair of pixel offsets.
type AbsoluteOffset struct {
	X, Y float64
}

// Vector converts the offset to a vector.
func (a AbsoluteOffset) Vector() geom.Vector { return geom.Vector{X: a.X, Y: a.Y} }

// RelativeOffset is a pair of fractions of the scrollable range.
type RelativeOffset struct {
	X, Y float64
}

var (
	// RelativeStart points at the start of both axes.
	RelativeStart = RelativeOffset{X: 0, Y: 0}
	// RelativeEnd points at the end of both axes.
	RelativeEnd = RelativeOffset{X: 1, Y: 1}
)
