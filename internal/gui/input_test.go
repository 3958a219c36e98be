package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/widget"
)

func focused() frameInput { return frameInput{Focused: true} }

func at(x, y float64) frameInput {
	in := focused()
	in.Cursor, in.InWindow = geom.Pt(x, y), true
	return in
}

func TestTranslateCursor(t *testing.T) {
	tr := newTranslator()

	assert.Equal(t, []event.Event{event.CursorMoved{Position: geom.Pt(10, 20)}}, tr.translate(at(10, 20)))
	assert.Empty(t, tr.translate(at(10, 20)), "a still cursor reports nothing")

	in := at(10, 20)
	in.InWindow = false
	assert.Equal(t, []event.Event{event.CursorLeft{}}, tr.translate(in))
	assert.Empty(t, tr.translate(in))

	_, ok := tr.cursor.Pos()
	assert.False(t, ok)
}

func TestTranslateButtonsWheelAndKeys(t *testing.T) {
	tr := newTranslator()
	tr.translate(at(5, 5))

	in := at(5, 5)
	in.Pressed = []event.Button{event.ButtonLeft}
	in.Released = []event.Button{event.ButtonMiddle}
	in.Wheel = geom.Vec(0, -1)
	in.Mods = event.ModShift
	in.Keys = []event.Key{event.KeyPageDown}

	assert.Equal(t, []event.Event{
		event.ButtonPressed{Button: event.ButtonLeft},
		event.ButtonReleased{Button: event.ButtonMiddle},
		event.WheelScrolled{Unit: event.Lines, Delta: geom.Vec(0, -1), Modifiers: event.ModShift},
		event.KeyPressed{Key: event.KeyPageDown, Modifiers: event.ModShift},
	}, tr.translate(in))
}

func TestTranslateTouches(t *testing.T) {
	tr := newTranslator()

	in := focused()
	in.Touches = []touch{{ID: 1, Position: geom.Pt(50, 50)}}
	assert.Equal(t, []event.Event{event.FingerPressed{ID: 1, Position: geom.Pt(50, 50)}}, tr.translate(in))
	assert.Empty(t, tr.translate(in), "a still finger reports nothing")

	in.Touches = []touch{{ID: 1, Position: geom.Pt(50, 30)}}
	assert.Equal(t, []event.Event{event.FingerMoved{ID: 1, Position: geom.Pt(50, 30)}}, tr.translate(in))

	in.Touches = nil
	in.Lifted = []touch{{ID: 1, Position: geom.Pt(50, 30)}, {ID: 9, Position: geom.Pt(1, 1)}}
	assert.Equal(t, []event.Event{event.FingerLifted{ID: 1, Position: geom.Pt(50, 30)}}, tr.translate(in),
		"unknown contacts are ignored")
}

func TestFocusLossCancelsTouchesInOrder(t *testing.T) {
	tr := newTranslator()
	in := at(1, 1)
	in.Touches = []touch{{ID: 7, Position: geom.Pt(70, 70)}, {ID: 3, Position: geom.Pt(30, 30)}}
	tr.translate(in)

	got := tr.translate(frameInput{})
	assert.Equal(t, []event.Event{
		event.FingerLost{ID: 3, Position: geom.Pt(30, 30)},
		event.FingerLost{ID: 7, Position: geom.Pt(70, 70)},
		event.CursorLeft{},
	}, got)
	assert.Empty(t, tr.translate(frameInput{}))
}

func TestRepeats(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{23, false},
		{24, true},
		{26, false},
		{28, true},
	}
	for _, tt := range tests {
		if got := repeats(tt.ticks); got != tt.want {
			t.Errorf("repeats(%d): expected %v, got %v", tt.ticks, tt.want, got)
		}
	}
}

func TestCursorShape(t *testing.T) {
	assert.Equal(t, ebiten.CursorShapeDefault, cursorShape(widget.MouseNone))
	assert.Equal(t, ebiten.CursorShapeDefault, cursorShape(widget.MouseIdle))
	assert.Equal(t, ebiten.CursorShapePointer, cursorShape(widget.MousePointer))
	assert.Equal(t, ebiten.CursorShapeMove, cursorShape(widget.MouseGrabbing))
	assert.Equal(t, ebiten.CursorShapeMove, cursorShape(widget.MouseAllScroll))
	assert.Equal(t, ebiten.CursorShapeText, cursorShape(widget.MouseText))
}
