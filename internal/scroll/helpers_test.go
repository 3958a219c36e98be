package scroll

import (
	"time"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

func vec(x, y float64) geom.Vector { return geom.Vec(x, y) }

func size(w, h float64) geom.Size { return geom.Size{Width: w, Height: h} }

// testEpoch is a fixed, non-zero instant for deterministic timing.
var testEpoch = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// listFrame is a 300x400 viewport over a three-million pixel tall list.
func listFrame(now time.Time, cursor geom.Point) Frame {
	return Frame{
		Bounds:     geom.Rect(0, 0, 300, 400),
		Content:    size(300, 3_000_000),
		Direction:  Vertical(DefaultScrollbar()),
		Cursor:     event.At(cursor),
		Now:        now,
		AutoScroll: true,
		Focused:    true,
	}
}

func offsetY(s *State, f Frame) float64 {
	return s.AbsoluteOffset(f.Bounds, f.Content).Y
}

func at(d time.Duration) time.Time { return testEpoch.Add(d) }
