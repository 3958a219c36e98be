package scrollarea

import (
	"github.com/rs/zerolog/log"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/widget"
)

// Scrollable lays its content out in full and scrolls over the result.
// Use it when the content is small enough to build at once.
type Scrollable struct {
	container

	content widget.Content
	node    widget.Node
}

// NewScrollable returns a vertical container for content.
func NewScrollable(content widget.Content, t scroll.Tuning) *Scrollable {
	s := &Scrollable{container: newContainer(t), content: content}
	s.extent = func() geom.Size { return s.node.Size() }
	return s
}

// SetContent replaces the content. It is laid out on the next Layout.
func (s *Scrollable) SetContent(content widget.Content) { s.content = content }

// Layout places the container in bounds and lays the content out with the
// scrolling axes unbounded.
func (s *Scrollable) Layout(bounds geom.Rectangle) {
	s.bounds = bounds
	limits := widget.Loose(s.direction.ContentLimits(bounds.Size())).
		Unbounded(s.direction.Horizontal != nil, s.direction.Vertical != nil)
	// Content never collapses below the viewport on an axis it cannot scroll.
	if s.direction.Horizontal == nil {
		limits.Min.Width = limits.Max.Width
	}
	if s.direction.Vertical == nil {
		limits.Min.Height = limits.Max.Height
	}
	s.node = s.content.Layout(limits)
	log.Debug().
		Float64("width", s.node.Bounds.Width).
		Float64("height", s.node.Bounds.Height).
		Msg("scrollable content laid out")
}

// origin is where the content's top-left corner is drawn.
func (s *Scrollable) origin() geom.Vector {
	return s.bounds.Position().Sub(geom.Point{}).Add(s.Translation().Neg())
}

func (s *Scrollable) Update(ev event.Event, cursor event.Cursor, shell widget.Shell) {
	now := s.now(ev)
	forward := func(ev event.Event, cur event.Cursor) bool {
		local := &captureShell{Shell: shell}
		s.content.Update(ev, s.node, cur.Translate(s.origin().Neg()), local)
		return local.captured
	}

	fx := s.state.Update(ev, s.frame(cursor, now), forward)
	s.apply(fx, shell, now)
}

func (s *Scrollable) Draw(cv widget.Canvas, cursor event.Cursor) {
	bars := s.Bars()
	s.drawBackground(cv)

	offset := s.origin()
	cv.PushClip(s.bounds)
	cv.PushTranslation(offset)
	s.content.Draw(cv, s.node, s.contentCursor(cursor, bars).Translate(offset.Neg()), s.bounds.Translate(offset.Neg()))
	cv.PopTranslation()
	cv.PopClip()

	s.drawBars(cv, bars)
}

func (s *Scrollable) MouseInteraction(cursor event.Cursor) widget.MouseInteraction {
	bars := s.Bars()
	if m, ok := s.mouseInteraction(cursor, bars); ok {
		return m
	}
	return s.content.MouseInteraction(s.node, s.contentCursor(cursor, bars).Translate(s.origin().Neg()))
}
