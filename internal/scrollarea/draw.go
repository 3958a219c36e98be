package scrollarea

import (
	"github.com/xonecas/vscroll/internal/constants"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/widget"
)

// drawBackground fills the container bounds.
func (c *container) drawBackground(cv widget.Canvas) {
	if c.style.Background != nil {
		cv.FillRect(c.bounds, c.style.Background)
	}
}

// drawBars paints both scrollbars and the auto-scroll marker over the content.
func (c *container) drawBars(cv widget.Canvas, bars scroll.Bars) {
	st := c.state.Status()
	if bars.Y != nil {
		c.drawBar(cv, scroll.AxisY, bars.Y, st, st.VerticalHovered, st.VerticalDragged)
	}
	if bars.X != nil {
		c.drawBar(cv, scroll.AxisX, bars.X, st, st.HorizontalHovered, st.HorizontalDragged)
	}

	if as, ok := c.state.Interaction().(scroll.AutoScrolling); ok && c.style.Marker != nil {
		size := constants.AutoScrollIconSize
		box := geom.Rect(as.Origin.X-size/2, as.Origin.Y-size/2, size, size)
		cv.FillRect(box, fade(c.style.Marker, 0.25))
		dot := size / 5
		cv.FillRect(geom.Rect(as.Origin.X-dot/2, as.Origin.Y-dot/2, dot, dot), c.style.Marker)
	}
}

func (c *container) drawBar(cv widget.Canvas, axis scroll.Axis, bar *scroll.Bar, st scroll.Status, hovered, dragged bool) {
	alpha := 1.0
	if c.style.Floating && !dragged {
		alpha = st.HoverFactor
	}
	if alpha <= 0 {
		return
	}

	if c.style.Rail != nil {
		cv.FillRect(bar.Rail, fade(c.style.Rail, alpha))
	}
	if !bar.HasScroller {
		return
	}

	handle := bar.Scroller
	if c.style.Thin && !dragged {
		grow := c.style.MinWidth + (1-c.style.MinWidth)*st.HoverFactor
		handle = thin(axis, handle, grow)
	}
	if handle.Width > 0 && handle.Height > 0 {
		cv.FillRect(handle, fade(c.style.handleColor(hovered, dragged), alpha))
	}
}

// thin narrows a handle across its axis to factor of its width, keeping the
// trailing edge in place.
func thin(axis scroll.Axis, r geom.Rectangle, factor float64) geom.Rectangle {
	if axis == scroll.AxisY {
		w := r.Width * factor
		return geom.Rect(r.X+r.Width-w, r.Y, w, r.Height)
	}
	h := r.Height * factor
	return geom.Rect(r.X, r.Y+r.Height-h, r.Width, h)
}
