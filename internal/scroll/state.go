package scroll

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

// Frame is everything the state machine needs to know about the container
// for one event.
type Frame struct {
	Bounds     geom.Rectangle
	Content    geom.Size
	Direction  Direction
	Cursor     event.Cursor
	Now        time.Time
	AutoScroll bool
	// Focused enables keyboard scrolling.
	Focused bool
}

// ContentBounds places the content extent at the container origin.
func (f Frame) ContentBounds() geom.Rectangle {
	return geom.Rect(f.Bounds.X, f.Bounds.Y, f.Content.Width, f.Content.Height)
}

// Forward hands an event to the content. cursor is in container coordinates
// and is levitating when the pointer is over a scrollbar. It reports whether
// the content captured the event.
type Forward func(ev event.Event, cursor event.Cursor) bool

// Effects is what the container must do after an update.
type Effects struct {
	// Captured stops the event from reaching anything else.
	Captured bool
	// Redraw asks for another frame one tick from now.
	Redraw           bool
	InvalidateLayout bool
	// Notifications are the viewports to publish, oldest first.
	Notifications []Viewport
}

// State is the scroll state of one container.
type State struct {
	tuning Tuning

	offsetX, offsetY Offset
	interaction      Interaction
	kinetic          Kinetic
	scrollTo         *ScrollTo

	lastScrolled time.Time
	lastNotified *Viewport

	hover      Animation
	mouseOver  bool
	status     Status
	lastStatus *Status
}

// NewState returns a state at offset zero.
func NewState(t Tuning) *State {
	return &State{
		tuning:      t,
		offsetX:     Absolute(0),
		offsetY:     Absolute(0),
		interaction: Idle{},
		hover:       NewAnimation(false, t.HoverDuration),
	}
}

// Tuning returns the constants in use.
func (s *State) Tuning() Tuning { return s.tuning }

// Interaction returns the active input mode.
func (s *State) Interaction() Interaction { return s.interaction }

// Status returns the status computed by the last Update.
func (s *State) Status() Status { return s.status }

// Velocity returns the current kinetic velocity in px/s.
func (s *State) Velocity() geom.Vector { return s.kinetic.Velocity }

// Offsets returns the raw per-axis offsets.
func (s *State) Offsets() (x, y Offset) { return s.offsetX, s.offsetY }

// KineticActive reports whether momentum is still carrying the content.
func (s *State) KineticActive() bool { return s.kinetic.Active(s.tuning.MinVelocity) }

// ScrollTarget returns the destination of a running animated scroll.
func (s *State) ScrollTarget() (AbsoluteOffset, bool) {
	if s.scrollTo == nil {
		return AbsoluteOffset{}, false
	}
	return s.scrollTo.Target, true
}

// Animating reports whether the container needs frames to keep moving.
func (s *State) Animating(now time.Time) bool {
	if s.KineticActive() || s.scrollTo != nil || s.hover.IsAnimating(now) {
		return true
	}
	_, auto := s.interaction.(AutoScrolling)
	return auto
}

// AbsoluteOffset resolves both offsets to pixels.
func (s *State) AbsoluteOffset(bounds geom.Rectangle, content geom.Size) AbsoluteOffset {
	return AbsoluteOffset{
		X: s.offsetX.Resolve(bounds.Width, content.Width),
		Y: s.offsetY.Resolve(bounds.Height, content.Height),
	}
}

// Translation is how far the content is shifted for drawing, rounded to
// whole pixels. Disabled axes never translate.
func (s *State) Translation(dir Direction, bounds geom.Rectangle, content geom.Size) geom.Vector {
	var t geom.Vector
	if dir.Horizontal != nil {
		t.X = math.Round(s.offsetX.Translation(bounds.Width, content.Width, dir.Horizontal.Anchor))
	}
	if dir.Vertical != nil {
		t.Y = math.Round(s.offsetY.Translation(bounds.Height, content.Height, dir.Vertical.Anchor))
	}
	return t
}

// Viewport returns the notification value for the current offsets.
func (s *State) Viewport(bounds geom.Rectangle, content geom.Size) Viewport {
	return Viewport{
		Offset:        s.AbsoluteOffset(bounds, content),
		Bounds:        bounds,
		ContentBounds: geom.Rect(bounds.X, bounds.Y, content.Width, content.Height),
	}
}

// scroll moves the offsets by delta on every axis that overflows and
// returns how far they actually moved.
func (s *State) scroll(delta geom.Vector, bounds geom.Rectangle, content geom.Size) geom.Vector {
	var moved geom.Vector
	if bounds.Height < content.Height {
		before := s.offsetY.Resolve(bounds.Height, content.Height)
		after := geom.Clamp(before+delta.Y, 0, content.Height-bounds.Height)
		s.offsetY = Absolute(after)
		moved.Y = after - before
	}
	if bounds.Width < content.Width {
		before := s.offsetX.Resolve(bounds.Width, content.Width)
		after := geom.Clamp(before+delta.X, 0, content.Width-bounds.Width)
		s.offsetX = Absolute(after)
		moved.X = after - before
	}
	return moved
}

func (s *State) stopMotion() {
	s.kinetic.Halt()
	s.scrollTo = nil
}

// ScrollBy moves the offsets by delta, in offset space.
func (s *State) ScrollBy(delta geom.Vector, bounds geom.Rectangle, content geom.Size) {
	s.stopMotion()
	s.scroll(delta, bounds, content)
}

// ScrollYTo jumps to fraction pct of the vertical range.
func (s *State) ScrollYTo(pct float64, bounds geom.Rectangle, content geom.Size) {
	s.offsetY = Relative(pct)
	s.Unsnap(bounds, content)
}

// ScrollXTo jumps to fraction pct of the horizontal range.
func (s *State) ScrollXTo(pct float64, bounds geom.Rectangle, content geom.Size) {
	s.offsetX = Relative(pct)
	s.Unsnap(bounds, content)
}

// SnapTo pins both axes to fractions of the range. They stay relative, so
// the position follows the content as it grows.
func (s *State) SnapTo(o RelativeOffset) {
	s.stopMotion()
	s.offsetX = Relative(o.X)
	s.offsetY = Relative(o.Y)
}

// ScrollTo jumps to absolute pixel offsets.
func (s *State) ScrollTo(o AbsoluteOffset) {
	s.stopMotion()
	s.offsetX = Absolute(math.Max(o.X, 0))
	s.offsetY = Absolute(math.Max(o.Y, 0))
}

// Unsnap turns relative offsets into the absolute offsets they resolve to now.
func (s *State) Unsnap(bounds geom.Rectangle, content geom.Size) {
	abs := s.AbsoluteOffset(bounds, content)
	s.offsetX = Absolute(abs.X)
	s.offsetY = Absolute(abs.Y)
}

// ScrollToAnimated eases from the current offsets to target.
func (s *State) ScrollToAnimated(target AbsoluteOffset, bounds geom.Rectangle, content geom.Size, now time.Time) {
	start := s.AbsoluteOffset(bounds, content)
	target = AbsoluteOffset{
		X: geom.Clamp(target.X, 0, math.Max(content.Width-bounds.Width, 0)),
		Y: geom.Clamp(target.Y, 0, math.Max(content.Height-bounds.Height, 0)),
	}
	s.kinetic.Halt()
	s.scrollTo = NewScrollTo(start, target, now, s.tuning.ScrollToDuration)
}

// ScrollByAnimated eases by delta. A running animation is extended from its target.
func (s *State) ScrollByAnimated(delta geom.Vector, bounds geom.Rectangle, content geom.Size, now time.Time) {
	base := s.AbsoluteOffset(bounds, content)
	if s.scrollTo != nil {
		base = s.scrollTo.Target
	}
	s.ScrollToAnimated(AbsoluteOffset{X: base.X + delta.X, Y: base.Y + delta.Y}, bounds, content, now)
}

func (s *State) setInteraction(next Interaction) {
	if next.String() != s.interaction.String() {
		log.Debug().Str("from", s.interaction.String()).Str("to", next.String()).Msg("scroll interaction")
	}
	s.interaction = next
}

// notifyViewport records a notification when the viewport changed since the last one.
func (s *State) notifyViewport(f Frame, fx *Effects) bool {
	if f.Content.Width <= f.Bounds.Width && f.Content.Height <= f.Bounds.Height {
		return false
	}
	vp := s.Viewport(f.Bounds, f.Content)
	if s.lastNotified != nil && s.lastNotified.sameAs(vp) {
		return false
	}
	s.lastNotified = &vp
	fx.Notifications = append(fx.Notifications, vp)
	return true
}

// notifyScroll is notifyViewport for user scrolling: it also opens a wheel transaction.
func (s *State) notifyScroll(f Frame, now time.Time, fx *Effects) bool {
	if !s.notifyViewport(f, fx) {
		return false
	}
	s.lastScrolled = now
	return true
}

// pointer returns the cursor to use for ev. Touch events carry their own position.
func pointer(ev event.Event, c event.Cursor) event.Cursor {
	switch e := ev.(type) {
	case event.FingerPressed:
		return event.At(e.Position)
	case event.FingerMoved:
		return event.At(e.Position)
	case event.FingerLifted:
		return event.At(e.Position)
	case event.FingerLost:
		return event.At(e.Position)
	case event.CursorLeft:
		return event.Unavailable()
	}
	return c
}

// Update runs one event through the state machine. forward may be nil.
func (s *State) Update(ev event.Event, f Frame, forward Forward) Effects {
	var fx Effects

	f.Cursor = pointer(ev, f.Cursor)
	bars := NewBars(f.Direction, f.Bounds, f.Content, s.Translation(f.Direction, f.Bounds, f.Content), s.tuning.MinScrollerLength)
	overY, overX := bars.MouseOver(f.Cursor)
	_, overArea := f.Cursor.PositionIn(f.Bounds)
	lastX, lastY := s.offsetX, s.offsetY

	s.expireTransaction(ev, f.Now)
	s.update(ev, f, bars, overX, overY, overArea, forward, &fx)

	if overArea != s.mouseOver {
		s.mouseOver = overArea
		s.hover.Go(overArea, f.Now)
	}
	if s.hover.IsAnimating(f.Now) {
		fx.Redraw = true
	}

	status := s.computeStatus(f, overX, overY, overArea)
	if _, ok := ev.(event.RedrawRequested); ok {
		st := status
		s.lastStatus = &st
	}
	if lastX != s.offsetX || lastY != s.offsetY || (s.lastStatus != nil && *s.lastStatus != status) {
		fx.Redraw = true
	}
	s.status = status

	return fx
}

// expireTransaction ends the wheel transaction that keeps wheel events
// away from the content right after a scroll.
func (s *State) expireTransaction(ev event.Event, now time.Time) {
	if s.lastScrolled.IsZero() {
		return
	}
	elapsed := now.Sub(s.lastScrolled)

	var clear bool
	switch ev.(type) {
	case event.ButtonPressed, event.ButtonReleased, event.CursorLeft:
		clear = true
	case event.CursorMoved:
		clear = elapsed > s.tuning.TransactionIdle
	default:
		clear = elapsed > s.tuning.TransactionTimeout
	}
	if clear {
		s.lastScrolled = time.Time{}
	}
}

// InTransaction reports whether a wheel transaction is open.
func (s *State) InTransaction() bool { return !s.lastScrolled.IsZero() }

func (s *State) update(ev event.Event, f Frame, bars Bars, overX, overY, overArea bool, forward Forward, fx *Effects) {
	s.updateDrag(AxisY, ev, f, bars, overY, fx)
	s.updateDrag(AxisX, ev, f, bars, overX, fx)

	if _, ok := s.interaction.(AutoScrolling); ok && cancelsAutoScroll(ev) {
		s.setInteraction(Idle{})
		fx.Captured = true
		fx.InvalidateLayout = true
		fx.Redraw = true
		return
	}

	_, wheel := ev.(event.WheelScrolled)
	if forward != nil && !fx.Captured && (!s.InTransaction() || !wheel) {
		cursor := f.Cursor.Levitate()
		if overArea && !overX && !overY {
			cursor = event.At(f.Cursor.Position)
		}
		if forward(ev, cursor) {
			fx.Captured = true
		}
	}

	if endsGesture(ev) {
		if _, ok := s.interaction.(TouchPanning); ok {
			s.kinetic.Release(f.Direction.Align(s.kinetic.Velocity), f.Now)
			if s.KineticActive() {
				fx.Redraw = true
			} else {
				s.kinetic.Halt()
			}
		}
		s.setInteraction(Idle{})
		return
	}

	if fx.Captured {
		return
	}

	switch e := ev.(type) {
	case event.WheelScrolled:
		if !overArea {
			return
		}
		if _, idle := s.interaction.(Idle); !idle {
			return
		}
		s.stopMotion()
		s.scroll(f.Direction.Align(s.wheelDelta(e)), f.Bounds, f.Content)
		if s.notifyScroll(f, f.Now, fx) || s.InTransaction() {
			fx.Captured = true
		}

	case event.ButtonPressed:
		if e.Button != event.ButtonMiddle || !f.AutoScroll || !overArea {
			return
		}
		if _, idle := s.interaction.(Idle); !idle {
			return
		}
		s.stopMotion()
		s.setInteraction(AutoScrolling{Origin: f.Cursor.Position, Current: f.Cursor.Position})
		fx.Captured = true
		fx.InvalidateLayout = true
		fx.Redraw = true

	case event.FingerPressed, event.FingerMoved:
		_, panning := s.interaction.(TouchPanning)
		if !panning && (overX || overY) {
			return
		}
		s.updateTouch(ev, f, overArea, fx)
		fx.Captured = true

	case event.CursorMoved:
		if as, ok := s.interaction.(AutoScrolling); ok {
			last := as.LastFrame
			as.Current = e.Position
			s.interaction = as
			d := as.Current.Sub(as.Origin)
			dz := s.tuning.AutoScrollDeadzone
			if (math.Abs(d.X) >= dz || math.Abs(d.Y) >= dz) && last.IsZero() {
				fx.Redraw = true
			}
		}

	case event.KeyPressed:
		s.handleKey(e, f, fx)

	case event.RedrawRequested:
		s.tick(e.Now, f, fx)
	}
}

// updateDrag starts, continues or ignores a scrollbar drag on one axis.
func (s *State) updateDrag(axis Axis, ev event.Event, f Frame, bars Bars, over bool, fx *Effects) {
	bar := bars.Bar(axis)

	if drag, ok := s.interaction.(ScrollbarDragged); ok && drag.Axis == axis {
		switch ev.(type) {
		case event.CursorMoved, event.FingerMoved:
			p, ok := f.Cursor.Pos()
			if !ok || bar == nil {
				return
			}
			s.scrollAxisTo(axis, bar.ScrollPercentage(axis, drag.GrabbedAt, p), f)
			s.notifyScroll(f, f.Now, fx)
			fx.Captured = true
		}
		return
	}

	if !over {
		return
	}
	switch e := ev.(type) {
	case event.ButtonPressed:
		if e.Button != event.ButtonLeft {
			return
		}
	case event.FingerPressed:
	default:
		return
	}

	p, ok := f.Cursor.Pos()
	if !ok {
		return
	}
	if grabbedAt, ok := bars.Grab(axis, p); ok && bar != nil {
		s.stopMotion()
		s.scrollAxisTo(axis, bar.ScrollPercentage(axis, grabbedAt, p), f)
		s.setInteraction(ScrollbarDragged{Axis: axis, GrabbedAt: grabbedAt})
		s.notifyScroll(f, f.Now, fx)
	}
	fx.Captured = true
}

func (s *State) scrollAxisTo(axis Axis, pct float64, f Frame) {
	if axis == AxisX {
		s.ScrollXTo(pct, f.Bounds, f.Content)
		return
	}
	s.ScrollYTo(pct, f.Bounds, f.Content)
}

func (s *State) updateTouch(ev event.Event, f Frame, overArea bool, fx *Effects) {
	switch ev.(type) {
	case event.FingerPressed:
		if !overArea {
			return
		}
		s.stopMotion()
		s.setInteraction(TouchPanning{LastPosition: f.Cursor.Position, LastTime: f.Now})

	case event.FingerMoved:
		pan, ok := s.interaction.(TouchPanning)
		if !ok {
			return
		}
		p, ok := f.Cursor.Pos()
		if !ok {
			return
		}

		dt := f.Now.Sub(pan.LastTime)
		if dt < s.tuning.MinTouchInterval {
			dt = s.tuning.MinTouchInterval
		}
		// delta points the way the content scrolls, so momentum keeps that heading.
		delta := pan.LastPosition.Sub(p)
		s.kinetic.Smooth(delta.Scale(1/dt.Seconds()), s.tuning.VelocitySmoothing)

		s.scroll(f.Direction.Align(delta), f.Bounds, f.Content)
		s.interaction = TouchPanning{LastPosition: p, LastTime: f.Now}
		s.notifyScroll(f, f.Now, fx)
	}
}

// wheelDelta converts a wheel event to a draw-space pixel delta.
func (s *State) wheelDelta(e event.WheelScrolled) geom.Vector {
	if e.Unit == event.Pixels {
		return e.Delta.Neg()
	}
	d := e.Delta
	if e.Modifiers.Shift() && s.tuning.ShiftSwapsAxes {
		d = geom.Vec(d.Y, d.X)
	}
	return d.Neg().Scale(s.tuning.LineMultiplier)
}

// tick advances every running animation to now.
func (s *State) tick(now time.Time, f Frame, fx *Effects) {
	if as, ok := s.interaction.(AutoScrolling); ok {
		if s.tickAutoScroll(as, now, f, fx) {
			return
		}
	}

	if s.KineticActive() {
		apply := func(d geom.Vector) geom.Vector { return s.scroll(d, f.Bounds, f.Content) }
		if s.kinetic.Advance(now, s.tuning, apply) {
			s.notifyScroll(f, now, fx)
		}
		if s.KineticActive() {
			fx.Redraw = true
		} else {
			s.kinetic.Halt()
		}
	}

	if s.scrollTo != nil {
		if s.tickScrollTo(now, f) {
			s.notifyScroll(f, now, fx)
		}
		if s.scrollTo != nil {
			fx.Redraw = true
		}
	}

	s.notifyViewport(f, fx)
}

// tickAutoScroll reports whether the tick was fully handled.
func (s *State) tickAutoScroll(as AutoScrolling, now time.Time, f Frame, fx *Effects) bool {
	if !as.LastFrame.IsZero() && as.LastFrame.Equal(now) {
		fx.Redraw = true
		return true
	}

	last := as.LastFrame
	as.LastFrame = time.Time{}
	s.interaction = as

	delta := as.Current.Sub(as.Origin)
	dz := s.tuning.AutoScrollDeadzone
	if math.Abs(delta.X) < dz {
		delta.X = 0
	}
	if math.Abs(delta.Y) < dz {
		delta.Y = 0
	}
	if delta.IsZero() {
		return false
	}

	var elapsed float64
	if !last.IsZero() {
		elapsed = now.Sub(last).Seconds()
	}
	speed := func(d float64) float64 {
		return math.Copysign(math.Pow(math.Abs(d), s.tuning.AutoScrollExponent), d) * elapsed
	}

	s.scroll(f.Direction.Align(geom.Vec(speed(delta.X), speed(delta.Y))), f.Bounds, f.Content)
	scrolled := s.notifyScroll(f, now, fx)

	if scrolled || elapsed == 0 {
		as.LastFrame = now
		s.interaction = as
		fx.Redraw = true
	}
	return true
}

func (s *State) tickScrollTo(now time.Time, f Frame) bool {
	pos, done := s.scrollTo.Position(now)
	if done {
		s.scrollTo = nil
	}

	beforeX, beforeY := s.offsetX, s.offsetY
	s.offsetX = Absolute(geom.Clamp(pos.X, 0, math.Max(f.Content.Width-f.Bounds.Width, 0)))
	s.offsetY = Absolute(geom.Clamp(pos.Y, 0, math.Max(f.Content.Height-f.Bounds.Height, 0)))
	return beforeX != s.offsetX || beforeY != s.offsetY
}

// computeStatus reports an enabled axis whose content fits as disabled.
func (s *State) computeStatus(f Frame, overX, overY, overArea bool) Status {
	st := Status{
		Kind:               StatusActive,
		HoverFactor:        s.hover.Interpolate(0, 1, f.Now),
		VerticalDisabled:   f.Direction.Vertical != nil && f.Content.Height <= f.Bounds.Height,
		HorizontalDisabled: f.Direction.Horizontal != nil && f.Content.Width <= f.Bounds.Width,
	}

	if drag, ok := s.interaction.(ScrollbarDragged); ok {
		st.Kind = StatusDragged
		st.VerticalDragged = drag.Axis == AxisY
		st.HorizontalDragged = drag.Axis == AxisX
	} else if overArea {
		st.Kind = StatusHovered
		st.VerticalHovered = overY
		st.HorizontalHovered = overX
	}
	return st
}

// cancelsAutoScroll lists the inputs that end auto-scrolling.
func cancelsAutoScroll(ev event.Event) bool {
	switch e := ev.(type) {
	case event.ButtonPressed, event.WheelScrolled, event.KeyPressed,
		event.FingerPressed, event.FingerMoved, event.FingerLifted, event.FingerLost:
		return true
	case event.ButtonReleased:
		return e.Button == event.ButtonMiddle
	}
	return false
}

// endsGesture lists the inputs that end a drag or a pan.
func endsGesture(ev event.Event) bool {
	switch e := ev.(type) {
	case event.ButtonReleased:
		return e.Button == event.ButtonLeft
	case event.FingerLifted, event.FingerLost:
		return true
	}
	return false
}

// visibleView is the on-screen part of the content in draw space.
func (s *State) visibleView(dir Direction, bounds geom.Rectangle, content geom.Size) geom.Rectangle {
	t := s.Translation(dir, bounds, content)
	return geom.Rect(t.X, t.Y, bounds.Width, bounds.Height)
}

// EnsureVisible scrolls just enough for target, in content coordinates, to be on screen.
func (s *State) EnsureVisible(target geom.Rectangle, dir Direction, bounds geom.Rectangle, content geom.Size) {
	delta := VisibleDelta(s.visibleView(dir, bounds, content), target)
	s.ScrollBy(dir.Align(delta), bounds, content)
}

// EnsureVisibleAnimated is EnsureVisible with an eased transition.
func (s *State) EnsureVisibleAnimated(target geom.Rectangle, dir Direction, bounds geom.Rectangle, content geom.Size, now time.Time) {
	delta := VisibleDelta(s.visibleView(dir, bounds, content), target)
	if delta.IsZero() {
		return
	}
	s.ScrollByAnimated(dir.Align(delta), bounds, content, now)
}
