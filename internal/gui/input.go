package gui

import (
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/widget"
)

// Key repeat, in ticks at 60 TPS.
const (
	repeatDelay    = 24
	repeatInterval = 4
)

type touch struct {
	ID       event.FingerID
	Position geom.Point
}

// frameInput is what ebiten reported during one tick.
type frameInput struct {
	Cursor   geom.Point
	InWindow bool
	Focused  bool
	Wheel    geom.Vector
	Mods     event.Modifiers
	Pressed  []event.Button
	Released []event.Button
	Touches  []touch // contacts currently down
	Lifted   []touch // contacts that ended this tick
	Keys     []event.Key

	ToggleOverlay bool
	CycleStyle    bool
	Follow        bool
	Quit          bool
}

var mouseButtons = []struct {
	eb ebiten.MouseButton
	b  event.Button
}{
	{ebiten.MouseButtonLeft, event.ButtonLeft},
	{ebiten.MouseButtonRight, event.ButtonRight},
	{ebiten.MouseButtonMiddle, event.ButtonMiddle},
	{ebiten.MouseButton3, event.ButtonOther},
	{ebiten.MouseButton4, event.ButtonOther},
}

var keyMap = []struct {
	ek ebiten.Key
	k  event.Key
}{
	{ebiten.KeyArrowUp, event.KeyUp},
	{ebiten.KeyArrowDown, event.KeyDown},
	{ebiten.KeyArrowLeft, event.KeyLeft},
	{ebiten.KeyArrowRight, event.KeyRight},
	{ebiten.KeyPageUp, event.KeyPageUp},
	{ebiten.KeyPageDown, event.KeyPageDown},
	{ebiten.KeyHome, event.KeyHome},
	{ebiten.KeyEnd, event.KeyEnd},
	{ebiten.KeyEnter, event.KeyEnter},
	{ebiten.KeyEscape, event.KeyEscape},
}

// repeats reports whether a key held for d ticks fires on this tick.
func repeats(d int) bool {
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// readInput polls ebiten for the current tick.
func readInput(width, height int) frameInput {
	var in frameInput

	x, y := ebiten.CursorPosition()
	in.Cursor = geom.Pt(float64(x), float64(y))
	in.InWindow = x >= 0 && y >= 0 && x < width && y < height
	in.Focused = ebiten.IsFocused()

	wx, wy := ebiten.Wheel()
	in.Wheel = geom.Vec(wx, wy)

	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		in.Mods |= event.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		in.Mods |= event.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		in.Mods |= event.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		in.Mods |= event.ModLogo
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			in.Pressed = append(in.Pressed, mb.b)
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			in.Released = append(in.Released, mb.b)
		}
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, touch{ID: event.FingerID(id), Position: geom.Pt(float64(tx), float64(ty))})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		in.Lifted = append(in.Lifted, touch{ID: event.FingerID(id), Position: geom.Pt(float64(tx), float64(ty))})
	}

	for _, km := range keyMap {
		if repeats(inpututil.KeyPressDuration(km.ek)) {
			in.Keys = append(in.Keys, km.k)
		}
	}

	in.ToggleOverlay = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	in.CycleStyle = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.Follow = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return in
}

// translator turns tick snapshots into container events. It remembers the
// cursor and touches of the previous tick.
type translator struct {
	cursor  event.Cursor
	touches map[event.FingerID]geom.Point
}

func newTranslator() *translator {
	return &translator{cursor: event.Unavailable(), touches: make(map[event.FingerID]geom.Point)}
}

// leave drops the cursor and cancels every touch.
func (t *translator) leave() []event.Event {
	var evs []event.Event
	for _, id := range slices.Sorted(maps.Keys(t.touches)) {
		evs = append(evs, event.FingerLost{ID: id, Position: t.touches[id]})
		delete(t.touches, id)
	}
	if _, ok := t.cursor.Pos(); ok {
		t.cursor = event.Unavailable()
		evs = append(evs, event.CursorLeft{})
	}
	return evs
}

func (t *translator) translate(in frameInput) []event.Event {
	if !in.Focused {
		return t.leave()
	}

	var evs []event.Event
	if in.InWindow {
		if cur, ok := t.cursor.Pos(); !ok || cur != in.Cursor {
			t.cursor = event.At(in.Cursor)
			evs = append(evs, event.CursorMoved{Position: in.Cursor})
		}
	} else if _, ok := t.cursor.Pos(); ok {
		t.cursor = event.Unavailable()
		evs = append(evs, event.CursorLeft{})
	}

	for _, b := range in.Pressed {
		evs = append(evs, event.ButtonPressed{Button: b})
	}
	for _, b := range in.Released {
		evs = append(evs, event.ButtonReleased{Button: b})
	}
	if !in.Wheel.IsZero() {
		evs = append(evs, event.WheelScrolled{Unit: event.Lines, Delta: in.Wheel, Modifiers: in.Mods})
	}

	for _, tc := range in.Touches {
		prev, known := t.touches[tc.ID]
		switch {
		case !known:
			evs = append(evs, event.FingerPressed{ID: tc.ID, Position: tc.Position})
		case prev != tc.Position:
			evs = append(evs, event.FingerMoved{ID: tc.ID, Position: tc.Position})
		}
		t.touches[tc.ID] = tc.Position
	}
	for _, tc := range in.Lifted {
		if _, known := t.touches[tc.ID]; known {
			delete(t.touches, tc.ID)
			evs = append(evs, event.FingerLifted{ID: tc.ID, Position: tc.Position})
		}
	}

	for _, k := range in.Keys {
		evs = append(evs, event.KeyPressed{Key: k, Modifiers: in.Mods})
	}
	return evs
}

// cursorShape maps a widget's requested pointer to an ebiten cursor.
func cursorShape(m widget.MouseInteraction) ebiten.CursorShapeType {
	switch m {
	case widget.MousePointer:
		return ebiten.CursorShapePointer
	case widget.MouseGrab, widget.MouseGrabbing, widget.MouseAllScroll:
		return ebiten.CursorShapeMove
	case widget.MouseText:
		return ebiten.CursorShapeText
	default:
		return ebiten.CursorShapeDefault
	}
}
