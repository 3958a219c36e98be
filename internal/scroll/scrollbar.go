package scroll

import (
	"math"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

// Axis names a scroll axis.
type Axis int

const (
	AxisY Axis = iota
	AxisX
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Bar is the laid-out geometry of one scrollbar.
type Bar struct {
	// Total is the hit area: the rail plus its margins.
	Total geom.Rectangle
	// Rail is the track the handle slides along.
	Rail geom.Rectangle
	// Scroller is the handle. Valid only when HasScroller is true.
	Scroller    geom.Rectangle
	HasScroller bool
	Anchor      Anchor
}

// Bars holds the scrollbars shown for one frame. Absent bars are nil.
type Bars struct {
	Y *Bar
	X *Bar
}

// NewBars lays out the scrollbars for bounds showing content at translation.
// A bar is shown only when its axis is enabled and the content overflows.
func NewBars(dir Direction, bounds geom.Rectangle, content geom.Size, translation geom.Vector, minScroller float64) Bars {
	var bars Bars

	var showX, showY *Scrollbar
	if dir.Horizontal != nil && content.Width > bounds.Width {
		showX = dir.Horizontal
	}
	if dir.Vertical != nil && content.Height > bounds.Height {
		showY = dir.Vertical
	}

	if showY != nil {
		xBarHeight := 0.0
		if showX != nil {
			xBarHeight = math.Max(showX.Width, showX.ScrollerWidth) + showX.Margin
		}
		total := showY.TotalWidth()
		height := math.Max(bounds.Height-xBarHeight, 0)

		bar := &Bar{
			Total:  geom.Rect(bounds.X+bounds.Width-total, bounds.Y, total, height),
			Rail:   geom.Rect(bounds.X+bounds.Width-total/2-showY.Width/2, bounds.Y, showY.Width, height),
			Anchor: showY.Anchor,
		}

		ratio := bounds.Height / content.Height
		if ratio < 1 {
			length := math.Max(bar.Rail.Height*ratio, minScroller)
			offset := translation.Y * bar.Rail.Height / content.Height
			bar.Scroller = geom.Rect(
				bounds.X+bounds.Width-total/2-showY.ScrollerWidth/2,
				math.Max(bar.Rail.Y+offset, bar.Rail.Y),
				showY.ScrollerWidth,
				length,
			)
			bar.HasScroller = true
		}
		bars.Y = bar
	}

	if showX != nil {
		yBarWidth := 0.0
		if bars.Y != nil {
			yBarWidth = bars.Y.Total.Width
		}
		total := showX.TotalWidth()
		width := math.Max(bounds.Width-yBarWidth, 0)

		bar := &Bar{
			Total:  geom.Rect(bounds.X, bounds.Y+bounds.Height-total, width, total),
			Rail:   geom.Rect(bounds.X, bounds.Y+bounds.Height-total/2-showX.Width/2, width, showX.Width),
			Anchor: showX.Anchor,
		}

		ratio := bounds.Width / content.Width
		if ratio < 1 {
			length := math.Max(bar.Rail.Width*ratio, minScroller)
			offset := translation.X * bar.Rail.Width / content.Width
			bar.Scroller = geom.Rect(
				math.Max(bar.Rail.X+offset, bar.Rail.X),
				bounds.Y+bounds.Height-total/2-showX.ScrollerWidth/2,
				length,
				showX.ScrollerWidth,
			)
			bar.HasScroller = true
		}
		bars.X = bar
	}

	return bars
}

// Active reports whether any bar is shown.
func (b Bars) Active() bool { return b.X != nil || b.Y != nil }

// Bar returns the bar for axis, or nil.
func (b Bars) Bar(axis Axis) *Bar {
	if axis == AxisX {
		return b.X
	}
	return b.Y
}

// MouseOver reports whether the cursor is over the vertical and horizontal bars.
func (b Bars) MouseOver(cursor event.Cursor) (overY, overX bool) {
	p, ok := cursor.Pos()
	if !ok {
		return false, false
	}
	if b.Y != nil {
		overY = b.Y.Total.Contains(p)
	}
	if b.X != nil {
		overX = b.X.Total.Contains(p)
	}
	return overY, overX
}

// Grab returns where along the handle the pointer grabbed it, as a fraction
// of the handle length. A press on the rail outside the handle grabs its
// middle. It fails when the bar has no handle or p is outside the bar.
func (b Bars) Grab(axis Axis, p geom.Point) (float64, bool) {
	bar := b.Bar(axis)
	if bar == nil || !bar.HasScroller || !bar.Total.Contains(p) {
		return 0, false
	}
	if !bar.Scroller.Contains(p) {
		return 0.5, true
	}
	if axis == AxisX {
		return (p.X - bar.Scroller.X) / bar.Scroller.Width, true
	}
	return (p.Y - bar.Scroller.Y) / bar.Scroller.Height, true
}

// ScrollPercentage converts a pointer position during a drag into a fraction
// of the scrollable range. The result is not clamped.
func (bar Bar) ScrollPercentage(axis Axis, grabbedAt float64, p geom.Point) float64 {
	if !bar.HasScroller {
		return 0
	}

	var pct float64
	if axis == AxisX {
		travel := bar.Rail.Width - bar.Scroller.Width
		if travel <= 0 {
			return 0
		}
		pct = (p.X - bar.Rail.X - bar.Scroller.Width*grabbedAt) / travel
	} else {
		travel := bar.Rail.Height - bar.Scroller.Height
		if travel <= 0 {
			return 0
		}
		pct = (p.Y - bar.Rail.Y - bar.Scroller.Height*grabbedAt) / travel
	}

	if bar.Anchor == AnchorEnd {
		return 1 - pct
	}
	return pct
}
