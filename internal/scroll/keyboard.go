package scroll

import (
	"math"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

// handleKey scrolls for arrows and pages. Paging and Home/End animate;
// arrows move immediately.
func (s *State) handleKey(e event.KeyPressed, f Frame, fx *Effects) {
	if !f.Focused {
		return
	}
	if _, idle := s.interaction.(Idle); !idle {
		return
	}

	vertical := f.Direction.Vertical != nil
	step := s.tuning.ArrowStep

	var delta geom.Vector
	switch e.Key {
	case event.KeyUp:
		delta.Y = -step
	case event.KeyDown:
		delta.Y = step
	case event.KeyLeft:
		delta.X = -step
	case event.KeyRight:
		delta.X = step

	case event.KeyPageUp, event.KeyPageDown:
		page := s.page(f, vertical)
		if e.Key == event.KeyPageUp {
			page = -page
		}
		var d geom.Vector
		if vertical {
			d.Y = page
		} else {
			d.X = page
		}
		s.ScrollByAnimated(f.Direction.Align(d), f.Bounds, f.Content, f.Now)
		fx.Captured = true
		fx.Redraw = true
		return

	case event.KeyHome, event.KeyEnd:
		s.ScrollToAnimated(s.edge(f, vertical, e.Key == event.KeyEnd), f.Bounds, f.Content, f.Now)
		fx.Captured = true
		fx.Redraw = true
		return

	default:
		return
	}

	s.stopMotion()
	s.scroll(f.Direction.Align(delta), f.Bounds, f.Content)
	if s.notifyScroll(f, f.Now, fx) {
		fx.Captured = true
	}
}

// page is one screen minus the overlap kept for context.
func (s *State) page(f Frame, vertical bool) float64 {
	extent := f.Bounds.Width
	if vertical {
		extent = f.Bounds.Height
	}
	if page := extent - s.tuning.PageOverlap; page > 0 {
		return page
	}
	return extent
}

// edge returns the offsets that show the start (or end) of the main axis.
// The other axis keeps its position.
func (s *State) edge(f Frame, vertical, end bool) AbsoluteOffset {
	target := s.AbsoluteOffset(f.Bounds, f.Content)

	offsetFor := func(viewport, content float64, anchor Anchor) float64 {
		limit := math.Max(content-viewport, 0)
		translation := 0.0
		if end {
			translation = limit
		}
		if anchor == AnchorEnd {
			return limit - translation
		}
		return translation
	}

	if vertical {
		target.Y = offsetFor(f.Bounds.Height, f.Content.Height, f.Direction.AnchorY())
	} else {
		target.X = offsetFor(f.Bounds.Width, f.Content.Width, f.Direction.AnchorX())
	}
	return target
}

// VisibleDelta returns the smallest draw-space shift that brings target into
// view. view and target are in content coordinates. A target larger than the
// view is aligned to its leading edge.
func VisibleDelta(view, target geom.Rectangle) geom.Vector {
	axis := func(viewStart, viewLen, start, length float64) float64 {
		switch {
		case start < viewStart:
			return start - viewStart
		case start+length > viewStart+viewLen:
			return math.Min(start+length-(viewStart+viewLen), start-viewStart)
		}
		return 0
	}
	return geom.Vector{
		X: axis(view.X, view.Width, target.X, target.Width),
		Y: axis(view.Y, view.Height, target.Y, target.Height),
	}
}
