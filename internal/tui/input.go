package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

// pointer turns terminal mouse reports into container events. The list
// starts on the second terminal row and every cell is cellW×cellH pixels;
// a cell maps to its center.
type pointer struct {
	cellW, cellH float64
	top          int // first terminal row of the list

	cursor event.Cursor
	held   event.Button
	down   bool
}

func newPointer(cellW, cellH float64, top int) pointer {
	return pointer{cellW: cellW, cellH: cellH, top: top, cursor: event.Unavailable()}
}

// position maps a terminal cell to list pixels.
func (p pointer) position(x, y int) geom.Point {
	return geom.Pt((float64(x)+0.5)*p.cellW, (float64(y-p.top)+0.5)*p.cellH)
}

func mouseModifiers(msg tea.MouseMsg) event.Modifiers {
	var mods event.Modifiers
	if msg.Shift {
		mods |= event.ModShift
	}
	if msg.Ctrl {
		mods |= event.ModCtrl
	}
	if msg.Alt {
		mods |= event.ModAlt
	}
	return mods
}

func mouseButton(b tea.MouseButton) (event.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return event.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return event.ButtonMiddle, true
	case tea.MouseButtonRight:
		return event.ButtonRight, true
	case tea.MouseButtonBackward, tea.MouseButtonForward:
		return event.ButtonOther, true
	}
	return 0, false
}

// translate returns the events for one mouse report and updates the cursor.
func (p *pointer) translate(msg tea.MouseMsg) []event.Event {
	var evs []event.Event

	pos := p.position(msg.X, msg.Y)
	if cur, ok := p.cursor.Pos(); !ok || cur != pos {
		p.cursor = event.At(pos)
		evs = append(evs, event.CursorMoved{Position: pos})
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if delta, ok := wheelDelta(msg.Button); ok {
			evs = append(evs, event.WheelScrolled{Unit: event.Lines, Delta: delta, Modifiers: mouseModifiers(msg)})
			break
		}
		if b, ok := mouseButton(msg.Button); ok {
			p.held, p.down = b, true
			evs = append(evs, event.ButtonPressed{Button: b})
		}

	case tea.MouseActionRelease:
		// Some terminals do not say which button went up.
		b, ok := mouseButton(msg.Button)
		if !ok {
			b, ok = p.held, p.down
		}
		if ok {
			p.down = false
			evs = append(evs, event.ButtonReleased{Button: b})
		}
	}

	return evs
}

// leave forgets the cursor, as when the terminal loses focus.
func (p *pointer) leave() []event.Event {
	p.cursor = event.Unavailable()
	return []event.Event{event.CursorLeft{}}
}

// wheelDelta is one notch in lines. Positive Y scrolls up.
func wheelDelta(b tea.MouseButton) (geom.Vector, bool) {
	switch b {
	case tea.MouseButtonWheelUp:
		return geom.Vec(0, 1), true
	case tea.MouseButtonWheelDown:
		return geom.Vec(0, -1), true
	case tea.MouseButtonWheelLeft:
		return geom.Vec(1, 0), true
	case tea.MouseButtonWheelRight:
		return geom.Vec(-1, 0), true
	}
	return geom.Vector{}, false
}

// scrollKey maps the scrolling keys to container keys. Alt is matched
// separately and carried as a modifier.
func scrollKey(msg tea.KeyMsg) (event.KeyPressed, bool) {
	plain := msg
	plain.Alt = false

	var k event.Key
	switch msg := plain; {
	case key.Matches(msg, keys.Up):
		k = event.KeyUp
	case key.Matches(msg, keys.Down):
		k = event.KeyDown
	case key.Matches(msg, keys.Left):
		k = event.KeyLeft
	case key.Matches(msg, keys.Right):
		k = event.KeyRight
	case key.Matches(msg, keys.PageUp):
		k = event.KeyPageUp
	case key.Matches(msg, keys.PageDown):
		k = event.KeyPageDown
	case key.Matches(msg, keys.Home):
		k = event.KeyHome
	case key.Matches(msg, keys.End):
		k = event.KeyEnd
	default:
		return event.KeyPressed{}, false
	}

	var mods event.Modifiers
	if msg.Alt {
		mods |= event.ModAlt
	}
	return event.KeyPressed{Key: k, Modifiers: mods}, true
}

// Key bindings
var keys = struct {
	Quit     key.Binding
	Help     key.Binding
	Escape   key.Binding
	Enter    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Follow   key.Binding
	Jump     key.Binding
	Style    key.Binding
}{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Escape:   key.NewBinding(key.WithKeys("esc")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Left:     key.NewBinding(key.WithKeys("left", "h")),
	Right:    key.NewBinding(key.WithKeys("right", "l")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", " ")),
	Home:     key.NewBinding(key.WithKeys("home", "g")),
	End:      key.NewBinding(key.WithKeys("end", "G")),
	Follow:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow")),
	Jump:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump")),
	Style:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "style")),
}

// shortHelp feeds the status bar's bubbles/help view.
type shortHelp []key.Binding

func (h shortHelp) ShortHelp() []key.Binding  { return h }
func (h shortHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

var statusHelp = shortHelp{keys.Jump, keys.Follow, keys.Style, keys.Help, keys.Quit}
