// Package widget defines the contracts between a scroll container and the
// content it hosts: layout, event handling, drawing and the host shell.
package widget

import (
	"math"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

// Limits bound the size a content node may take.
type Limits struct {
	Min geom.Size
	Max geom.Size
}

// Loose allows anything from zero up to max.
func Loose(max geom.Size) Limits { return Limits{Max: max} }

// Unbounded returns limits with an infinite maximum on the given axes.
func (l Limits) Unbounded(width, height bool) Limits {
	if width {
		l.Max.Width = math.Inf(1)
	}
	if height {
		l.Max.Height = math.Inf(1)
	}
	return l
}

// Resolve clamps s into the limits.
func (l Limits) Resolve(s geom.Size) geom.Size {
	return geom.Size{
		Width:  geom.Clamp(s.Width, l.Min.Width, l.Max.Width),
		Height: geom.Clamp(s.Height, l.Min.Height, l.Max.Height),
	}
}

// Node is the result of laying out a piece of content. Bounds are relative
// to the parent node.
type Node struct {
	Bounds   geom.Rectangle
	Children []Node
}

// Size is the laid-out extent.
func (n Node) Size() geom.Size { return n.Bounds.Size() }

// Local is the node's own area in its local coordinates.
func (n Node) Local() geom.Rectangle { return geom.Rect(0, 0, n.Bounds.Width, n.Bounds.Height) }

// MouseInteraction is the pointer shape content asks for.
type MouseInteraction int

const (
	MouseNone MouseInteraction = iota
	MouseIdle
	MousePointer
	MouseGrab
	MouseGrabbing
	MouseText
	MouseAllScroll
)

var mouseNames = [...]string{"none", "idle", "pointer", "grab", "grabbing", "text", "all-scroll"}

func (m MouseInteraction) String() string {
	if int(m) < len(mouseNames) {
		return mouseNames[m]
	}
	return "unknown"
}

// Content is a node hosted by a scroll container. All coordinates passed to
// Content are local to its own node: the cursor at (0,0) is over the node's
// top-left corner.
type Content interface {
	// Layout sizes the content within limits.
	Layout(limits Limits) Node
	// Update handles one event. Content stops propagation with shell.CaptureEvent.
	Update(ev event.Event, node Node, cursor event.Cursor, shell Shell)
	// Draw paints the content. clip is the region that will be visible,
	// in the content's coordinates.
	Draw(c Canvas, node Node, cursor event.Cursor, clip geom.Rectangle)
	// MouseInteraction reports the pointer shape for cursor.
	MouseInteraction(node Node, cursor event.Cursor) MouseInteraction
}

// Empty is content that takes no space and ignores everything.
type Empty struct{}

func (Empty) Layout(Limits) Node                                   { return Node{} }
func (Empty) Update(event.Event, Node, event.Cursor, Shell)        {}
func (Empty) Draw(Canvas, Node, event.Cursor, geom.Rectangle)      {}
func (Empty) MouseInteraction(Node, event.Cursor) MouseInteraction { return MouseNone }
