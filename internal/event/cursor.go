package event

import "github.com/xonecas/vscroll/internal/geom"

// CursorState describes how much a widget may trust the cursor position.
type CursorState int

const (
	// CursorUnavailable means the position is unknown.
	CursorUnavailable CursorState = iota
	// CursorAvailable means the pointer is over this widget.
	CursorAvailable
	// CursorLevitating means the position is known but something else is on top.
	CursorLevitating
)

// Cursor is the pointer as seen by one widget.
type Cursor struct {
	State    CursorState
	Position geom.Point
}

// At returns an available cursor at p.
func At(p geom.Point) Cursor {
	return Cursor{State: CursorAvailable, Position: p}
}

// Unavailable returns a cursor with no position.
func Unavailable() Cursor {
	return Cursor{}
}

// Pos returns the position when it is known.
func (c Cursor) Pos() (geom.Point, bool) {
	if c.State == CursorUnavailable {
		return geom.Point{}, false
	}
	return c.Position, true
}

// PositionIn returns the position only when the cursor is available and inside r.
func (c Cursor) PositionIn(r geom.Rectangle) (geom.Point, bool) {
	if c.State != CursorAvailable || !r.Contains(c.Position) {
		return geom.Point{}, false
	}
	return c.Position, true
}

// IsOver reports whether the cursor is available and inside r.
func (c Cursor) IsOver(r geom.Rectangle) bool {
	_, ok := c.PositionIn(r)
	return ok
}

// Translate shifts a known position by v.
func (c Cursor) Translate(v geom.Vector) Cursor {
	if c.State == CursorUnavailable {
		return c
	}
	c.Position = c.Position.Add(v)
	return c
}

// Levitate keeps the position but marks the cursor as occluded.
func (c Cursor) Levitate() Cursor {
	if c.State == CursorAvailable {
		c.State = CursorLevitating
	}
	return c
}
