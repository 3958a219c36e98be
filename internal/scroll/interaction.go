package scroll

import (
	"time"

	"github.com/xonecas/vscroll/internal/geom"
)

// Interaction is the input mode currently driving the offsets.
// Exactly one is active; the zero value of State starts in Idle.
type Interaction interface {
	interaction()
	String() string
}

// Idle means no pointer gesture owns the container.
type Idle struct{}

// ScrollbarDragged means a scrollbar handle follows the pointer.
type ScrollbarDragged struct {
	Axis Axis
	// GrabbedAt is where along the handle it was grabbed, in [0, 1].
	GrabbedAt float64
}

// TouchPanning means a finger drags the content.
type TouchPanning struct {
	LastPosition geom.Point
	LastTime     time.Time
}

// AutoScrolling means the content scrolls toward the pointer's offset from
// Origin, set by a middle press.
type AutoScrolling struct {
	Origin  geom.Point
	Current geom.Point
	// LastFrame is zero until the first tick after the deadzone is left.
	LastFrame time.Time
}

func (Idle) interaction()             {}
func (ScrollbarDragged) interaction() {}
func (TouchPanning) interaction()     {}
func (AutoScrolling) interaction()    {}

func (Idle) String() string               { return "idle" }
func (d ScrollbarDragged) String() string { return "dragging-" + d.Axis.String() }
func (TouchPanning) String() string       { return "panning" }
func (AutoScrolling) String() string      { return "auto-scrolling" }
