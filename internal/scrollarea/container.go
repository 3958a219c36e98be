// Package scrollarea hosts content inside scroll containers: Scrollable for
// content that is laid out in full and Virtual for content built on demand
// for the visible rectangle only.
package scrollarea

import (
	"time"

	"github.com/xonecas/vscroll/internal/clock"
	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/widget"
)

// container is the part shared by both variants: scroll state, bounds,
// options and the translation of state effects into shell calls.
type container struct {
	state      *scroll.State
	direction  scroll.Direction
	autoScroll bool
	focused    bool
	bounds     geom.Rectangle
	style      Style
	clock      clock.Clock
	onScroll   func(scroll.Viewport) any

	// extent returns the content size for the current bounds.
	extent func() geom.Size
}

func newContainer(t scroll.Tuning) container {
	return container{
		state:      scroll.NewState(t),
		direction:  scroll.Vertical(scroll.DefaultScrollbar()),
		autoScroll: true,
		focused:    true,
		style:      Solid(),
		clock:      clock.System{},
	}
}

// SetDirection selects the scrolling axes and their scrollbars.
func (c *container) SetDirection(d scroll.Direction) { c.direction = d }

func (c *container) Direction() scroll.Direction { return c.direction }

// SetAutoScroll enables middle-button auto-scrolling.
func (c *container) SetAutoScroll(enabled bool) { c.autoScroll = enabled }

// SetFocused enables keyboard scrolling.
func (c *container) SetFocused(focused bool) { c.focused = focused }

func (c *container) SetStyle(s Style) { c.style = s }

func (c *container) Style() Style { return c.style }

// SetClock replaces the time source used for events that carry no time.
func (c *container) SetClock(clk clock.Clock) { c.clock = clk }

// OnScroll sets the message published whenever the viewport changes.
func (c *container) OnScroll(f func(scroll.Viewport) any) { c.onScroll = f }

// Bounds returns the rectangle the container was last laid out in.
func (c *container) Bounds() geom.Rectangle { return c.bounds }

// ContentSize returns the size scrolled over.
func (c *container) ContentSize() geom.Size { return c.extent() }

// State exposes the scroll state for inspection.
func (c *container) State() *scroll.State { return c.state }

// Status returns the styling status from the last update.
func (c *container) Status() scroll.Status { return c.state.Status() }

// Interaction returns the active input mode.
func (c *container) Interaction() scroll.Interaction { return c.state.Interaction() }

// Offset returns the resolved scroll offsets in pixels.
func (c *container) Offset() scroll.AbsoluteOffset {
	return c.state.AbsoluteOffset(c.bounds, c.extent())
}

// Translation returns how far the content is shifted for drawing.
func (c *container) Translation() geom.Vector {
	return c.state.Translation(c.direction, c.bounds, c.extent())
}

// Viewport returns the current notification value.
func (c *container) Viewport() scroll.Viewport {
	return c.state.Viewport(c.bounds, c.extent())
}

// Bars lays out the scrollbars for the current offsets.
func (c *container) Bars() scroll.Bars {
	return scroll.NewBars(c.direction, c.bounds, c.extent(), c.Translation(), c.state.Tuning().MinScrollerLength)
}

func (c *container) SnapTo(o scroll.RelativeOffset) { c.state.SnapTo(o) }

func (c *container) ScrollTo(o scroll.AbsoluteOffset) { c.state.ScrollTo(o) }

// ScrollBy scrolls by delta in draw space. End-anchored axes are flipped.
func (c *container) ScrollBy(delta geom.Vector) {
	c.state.ScrollBy(c.direction.Align(delta), c.bounds, c.extent())
}

func (c *container) ScrollToAnimated(o scroll.AbsoluteOffset) {
	c.state.ScrollToAnimated(o, c.bounds, c.extent(), c.clock.Now())
}

func (c *container) ScrollByAnimated(delta geom.Vector) {
	c.state.ScrollByAnimated(c.direction.Align(delta), c.bounds, c.extent(), c.clock.Now())
}

// EnsureVisible scrolls just enough to show target, given in content coordinates.
func (c *container) EnsureVisible(target geom.Rectangle) {
	c.state.EnsureVisible(target, c.direction, c.bounds, c.extent())
}

func (c *container) EnsureVisibleAnimated(target geom.Rectangle) {
	c.state.EnsureVisibleAnimated(target, c.direction, c.bounds, c.extent(), c.clock.Now())
}

// Animating reports whether the container still needs redraws.
func (c *container) Animating() bool { return c.state.Animating(c.clock.Now()) }

// now is the event time: redraws carry their own, everything else uses the clock.
func (c *container) now(ev event.Event) time.Time {
	if r, ok := ev.(event.RedrawRequested); ok && !r.Now.IsZero() {
		return r.Now
	}
	return c.clock.Now()
}

func (c *container) frame(cursor event.Cursor, now time.Time) scroll.Frame {
	return scroll.Frame{
		Bounds:     c.bounds,
		Content:    c.extent(),
		Direction:  c.direction,
		Cursor:     cursor,
		Now:        now,
		AutoScroll: c.autoScroll,
		Focused:    c.focused,
	}
}

// apply hands the effects of a state update to the shell.
func (c *container) apply(fx scroll.Effects, shell widget.Shell, now time.Time) {
	if fx.Captured {
		shell.CaptureEvent()
	}
	if fx.InvalidateLayout {
		shell.InvalidateLayout()
	}
	if c.onScroll != nil {
		for _, vp := range fx.Notifications {
			shell.Publish(c.onScroll(vp))
		}
	}
	if fx.Redraw || c.state.Animating(now) {
		shell.RequestRedrawAt(now.Add(c.state.Tuning().Frame))
	}
}

// contentCursor is the cursor content sees: available only over the content
// area and never over a scrollbar.
func (c *container) contentCursor(cursor event.Cursor, bars scroll.Bars) event.Cursor {
	p, ok := cursor.PositionIn(c.bounds)
	if !ok {
		return event.Unavailable()
	}
	if overY, overX := bars.MouseOver(cursor); overY || overX {
		return event.Unavailable()
	}
	return event.At(p)
}

// mouseInteraction covers the container's own pointer shapes. ok is false
// when the content decides.
func (c *container) mouseInteraction(cursor event.Cursor, bars scroll.Bars) (widget.MouseInteraction, bool) {
	switch c.state.Interaction().(type) {
	case scroll.ScrollbarDragged:
		return widget.MouseGrabbing, true
	case scroll.AutoScrolling:
		return widget.MouseAllScroll, true
	case scroll.TouchPanning:
		return widget.MouseGrabbing, true
	}
	if !cursor.IsOver(c.bounds) {
		return widget.MouseNone, true
	}
	if overY, overX := bars.MouseOver(cursor); overY || overX {
		return widget.MouseIdle, true
	}
	return widget.MouseNone, false
}

// captureShell records whether content captured a forwarded event.
type captureShell struct {
	widget.Shell
	captured bool
}

func (s *captureShell) CaptureEvent() {
	s.captured = true
	s.Shell.CaptureEvent()
}

func (s *captureShell) IsCaptured() bool { return s.captured }
