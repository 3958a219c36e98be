package scroll

import (
	"math"

	"github.com/xonecas/vscroll/internal/geom"
)

// notifyEpsilon is the smallest offset change worth a notification.
const notifyEpsilon = 1e-7

// Viewport is published to listeners whenever the visible part of the content changes.
type Viewport struct {
	Offset        AbsoluteOffset
	Bounds        geom.Rectangle
	ContentBounds geom.Rectangle
}

// AbsoluteOffset is the scroll position in pixels from the start edges.
func (v Viewport) AbsoluteOffset() AbsoluteOffset { return v.Offset }

// AbsoluteOffsetReversed is the scroll position in pixels from the end edges.
func (v Viewport) AbsoluteOffsetReversed() AbsoluteOffset {
	return AbsoluteOffset{
		X: math.Max(v.ContentBounds.Width-v.Bounds.Width, 0) - v.Offset.X,
		Y: math.Max(v.ContentBounds.Height-v.Bounds.Height, 0) - v.Offset.Y,
	}
}

// RelativeOffset is the scroll position as a fraction of the scrollable
// range. An axis without range reports 0.
func (v Viewport) RelativeOffset() RelativeOffset {
	rel := func(offset, viewport, content float64) float64 {
		limit := content - viewport
		if limit <= 0 {
			return 0
		}
		return offset / limit
	}
	return RelativeOffset{
		X: rel(v.Offset.X, v.Bounds.Width, v.ContentBounds.Width),
		Y: rel(v.Offset.Y, v.Bounds.Height, v.ContentBounds.Height),
	}
}

// VisibleRect is the part of the content on screen, in content coordinates.
func (v Viewport) VisibleRect() geom.Rectangle {
	return geom.Rect(
		v.Offset.X,
		v.Offset.Y,
		math.Min(v.Bounds.Width, math.Max(v.ContentBounds.Width-v.Offset.X, 0)),
		math.Min(v.Bounds.Height, math.Max(v.ContentBounds.Height-v.Offset.Y, 0)),
	)
}

// sameAs reports whether w would tell a listener nothing new after v.
func (v Viewport) sameAs(w Viewport) bool {
	near := func(a, b float64) bool {
		return math.Abs(a-b) <= notifyEpsilon || (math.IsNaN(a) && math.IsNaN(b))
	}
	vr, wr := v.RelativeOffset(), w.RelativeOffset()
	return v.Bounds == w.Bounds &&
		v.ContentBounds == w.ContentBounds &&
		near(vr.X, wr.X) && near(vr.Y, wr.Y) &&
		near(v.Offset.X, w.Offset.X) && near(v.Offset.Y, w.Offset.Y)
}
