// Package event defines the decoded input a host delivers to the scroll container.
//
// Hosts (the terminal and window front ends) translate their native input into
// these values. The container never sees raw terminal sequences or platform
// events.
package event

import (
	"time"

	"github.com/xonecas/vscroll/internal/geom"
)

// Event is any input delivered to the container.
type Event interface {
	isEvent()
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "other"
	}
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModLogo
)

// Shift reports whether shift is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether control is held.
func (m Modifiers) Ctrl() bool { return m&ModCtrl != 0 }

// CursorMoved reports a new pointer position in host coordinates.
type CursorMoved struct {
	Position geom.Point
}

// CursorLeft reports the pointer leaving the window.
type CursorLeft struct{}

// ButtonPressed reports a mouse button going down.
type ButtonPressed struct {
	Button Button
}

// ButtonReleased reports a mouse button going up.
type ButtonReleased struct {
	Button Button
}

// DeltaUnit tells whether a wheel delta counts lines or pixels.
type DeltaUnit int

const (
	Lines DeltaUnit = iota
	Pixels
)

// WheelScrolled reports a wheel or trackpad scroll.
// Positive Y means the user scrolled up (content should move down).
type WheelScrolled struct {
	Unit      DeltaUnit
	Delta     geom.Vector
	Modifiers Modifiers
}

// FingerID identifies one touch contact.
type FingerID uint64

// FingerPressed reports a new touch contact.
type FingerPressed struct {
	ID       FingerID
	Position geom.Point
}

// FingerMoved reports a touch contact moving.
type FingerMoved struct {
	ID       FingerID
	Position geom.Point
}

// FingerLifted reports a touch contact ending normally.
type FingerLifted struct {
	ID       FingerID
	Position geom.Point
}

// FingerLost reports a touch contact cancelled by the platform.
type FingerLost struct {
	ID       FingerID
	Position geom.Point
}

// Key names the keys the container reacts to. Anything else is KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
)

// KeyPressed reports a key going down. Text carries the typed text for KeyOther.
type KeyPressed struct {
	Key       Key
	Text      string
	Modifiers Modifiers
}

// RedrawRequested is delivered once per frame by the host scheduler.
type RedrawRequested struct {
	Now time.Time
}

func (CursorMoved) isEvent()     {}
func (CursorLeft) isEvent()      {}
func (ButtonPressed) isEvent()   {}
func (ButtonReleased) isEvent()  {}
func (WheelScrolled) isEvent()   {}
func (FingerPressed) isEvent()   {}
func (FingerMoved) isEvent()     {}
func (FingerLifted) isEvent()    {}
func (FingerLost) isEvent()      {}
func (KeyPressed) isEvent()      {}
func (RedrawRequested) isEvent() {}
