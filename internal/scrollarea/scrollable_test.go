package scrollarea

import (
	"image/color"
	"testing"

	"github.com/xonecas/vscroll/internal/clock"
	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/widget"
)

func newScrollable(t *testing.T) *Scrollable {
	t.Helper()
	content := widget.Rows{
		Range:  widget.RowRange{First: 0, Last: 100},
		Height: 20,
		Row: func(i int) widget.Content {
			return widget.Label{Background: color.RGBA{R: uint8(i), A: 0xFF}, Height: 20}
		},
	}
	s := NewScrollable(content, scroll.DefaultTuning())
	s.SetClock(clock.NewManual(testEpoch))
	s.Layout(geom.Rect(0, 0, 300, 400))
	return s
}

func TestScrollableMeasuresContent(t *testing.T) {
	s := newScrollable(t)
	if got := s.ContentSize(); got != (geom.Size{Width: 300, Height: 2000}) {
		t.Errorf("expected 300x2000, got %+v", got)
	}
}

func TestScrollableWheelAndDraw(t *testing.T) {
	s := newScrollable(t)

	var shell widget.Recorder
	s.Update(event.WheelScrolled{Unit: event.Lines, Delta: geom.Vec(0, -1)}, event.At(geom.Pt(150, 200)), &shell)
	if got := s.Offset().Y; got != 60 {
		t.Fatalf("expected offset 60, got %v", got)
	}

	var cv recordingCanvas
	s.Draw(&cv, event.Unavailable())

	// Row 3 starts at y=60 and is now at the top.
	if !cv.filled(geom.Rect(0, 0, 300, 20)) {
		t.Error("expected row 3 at the top of the viewport")
	}
	for _, f := range cv.fills {
		if f.rect.Y < 0 || f.rect.Y+f.rect.Height > 400 {
			t.Errorf("expected fills clipped to the viewport, got %+v", f.rect)
		}
	}
}

func TestScrollableSnapFollowsGrowth(t *testing.T) {
	s := newScrollable(t)
	s.SnapTo(scroll.RelativeEnd)

	if got := s.Offset().Y; got != 1600 {
		t.Fatalf("expected 1600, got %v", got)
	}

	s.SetContent(widget.Rows{
		Range:  widget.RowRange{First: 0, Last: 200},
		Height: 20,
		Row:    func(int) widget.Content { return widget.Label{Height: 20} },
	})
	s.Layout(geom.Rect(0, 0, 300, 400))
	if got := s.Offset().Y; got != 3600 {
		t.Errorf("expected the snapped offset to follow the content to 3600, got %v", got)
	}
}

func TestScrollableEmbeddedBarReservesWidth(t *testing.T) {
	s := newScrollable(t)
	sb := scroll.DefaultScrollbar()
	sb.Embedded = true
	sb.Spacing = 6
	s.SetDirection(scroll.Vertical(sb))
	s.Layout(geom.Rect(0, 0, 300, 400))

	if got := s.ContentSize().Width; got != 284 {
		t.Errorf("expected content width 284, got %v", got)
	}
}
