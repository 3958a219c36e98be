package scroll

import (
	"math"

	"github.com/xonecas/vscroll/internal/constants"
	"github.com/xonecas/vscroll/internal/geom"
)

// Scrollbar configures one axis.
type Scrollbar struct {
	Width         float64
	Margin        float64
	ScrollerWidth float64
	Anchor        Anchor
	// Embedded reserves Spacing plus the bar's width next to the content
	// instead of drawing the bar over it.
	Embedded bool
	Spacing  float64
}

// DefaultScrollbar returns a floating bar anchored at the start.
func DefaultScrollbar() Scrollbar {
	return Scrollbar{
		Width:         constants.DefaultScrollbarWidth,
		ScrollerWidth: constants.DefaultScrollerWidth,
		Anchor:        AnchorStart,
	}
}

// TotalWidth is the cross-axis space the bar occupies.
func (s Scrollbar) TotalWidth() float64 {
	return math.Max(s.Width, s.ScrollerWidth) + 2*s.Margin
}

// Reserved is the cross-axis space taken away from the content.
func (s Scrollbar) Reserved() float64 {
	if !s.Embedded {
		return 0
	}
	return s.TotalWidth() + s.Spacing
}

// Direction lists the axes a container scrolls on. A nil bar disables the axis.
type Direction struct {
	Vertical   *Scrollbar
	Horizontal *Scrollbar
}

// Vertical scrolls on the y axis only.
func Vertical(sb Scrollbar) Direction { return Direction{Vertical: &sb} }

// Horizontal scrolls on the x axis only.
func Horizontal(sb Scrollbar) Direction { return Direction{Horizontal: &sb} }

// Both scrolls on both axes.
func Both(vertical, horizontal Scrollbar) Direction {
	return Direction{Vertical: &vertical, Horizontal: &horizontal}
}

// AnchorX returns the horizontal anchor, AnchorStart when the axis is off.
func (d Direction) AnchorX() Anchor {
	if d.Horizontal == nil {
		return AnchorStart
	}
	return d.Horizontal.Anchor
}

// AnchorY returns the vertical anchor, AnchorStart when the axis is off.
func (d Direction) AnchorY() Anchor {
	if d.Vertical == nil {
		return AnchorStart
	}
	return d.Vertical.Anchor
}

// Align maps a delta in draw space to offset space: disabled axes are
// dropped and End-anchored axes are negated.
func (d Direction) Align(delta geom.Vector) geom.Vector {
	var out geom.Vector
	if d.Horizontal != nil {
		out.X = delta.X
		if d.Horizontal.Anchor == AnchorEnd {
			out.X = -out.X
		}
	}
	if d.Vertical != nil {
		out.Y = delta.Y
		if d.Vertical.Anchor == AnchorEnd {
			out.Y = -out.Y
		}
	}
	return out
}

// ContentLimits is the space left for content once embedded bars are reserved.
func (d Direction) ContentLimits(bounds geom.Size) geom.Size {
	out := bounds
	if d.Vertical != nil {
		out.Width = math.Max(out.Width-d.Vertical.Reserved(), 0)
	}
	if d.Horizontal != nil {
		out.Height = math.Max(out.Height-d.Horizontal.Reserved(), 0)
	}
	return out
}
