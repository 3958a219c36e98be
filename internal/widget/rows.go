package widget

import (
	"fmt"
	"image/color"
	"math"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

// RowRange is a half-open range of row indices.
type RowRange struct {
	First int
	Last  int
}

// Len is the number of rows in the range.
func (r RowRange) Len() int { return max(r.Last-r.First, 0) }

// Contains reports whether row i is in the range.
func (r RowRange) Contains(i int) bool { return i >= r.First && i < r.Last }

func (r RowRange) String() string { return fmt.Sprintf("%d..%d", r.First, r.Last) }

// Rows stacks rows of a fixed height, the first one at the top of the node.
type Rows struct {
	Range  RowRange
	Height float64
	// Row builds the content for row i.
	Row func(i int) Content
	// OnClick, when set, is published for a left press on row i.
	OnClick func(i int) any
}

func (r Rows) Layout(limits Limits) Node {
	width := limits.Max.Width
	if math.IsInf(width, 1) {
		width = limits.Min.Width
	}

	node := Node{Bounds: geom.Rect(0, 0, width, float64(r.Range.Len())*r.Height)}
	node.Children = make([]Node, 0, r.Range.Len())
	for i := r.Range.First; i < r.Range.Last; i++ {
		child := r.Row(i).Layout(Loose(geom.Size{Width: width, Height: r.Height}))
		child.Bounds.X = 0
		child.Bounds.Y = float64(i-r.Range.First) * r.Height
		node.Children = append(node.Children, child)
	}
	return node
}

// rowAt returns the row under a local position.
func (r Rows) rowAt(p geom.Point) (int, bool) {
	if p.Y < 0 || r.Height <= 0 {
		return 0, false
	}
	i := r.Range.First + int(p.Y/r.Height)
	return i, r.Range.Contains(i)
}

func (r Rows) Update(ev event.Event, node Node, cursor event.Cursor, shell Shell) {
	if p, ok := cursor.PositionIn(node.Local()); ok {
		if b, pressed := ev.(event.ButtonPressed); pressed && b.Button == event.ButtonLeft && r.OnClick != nil {
			if i, ok := r.rowAt(p); ok {
				shell.Publish(r.OnClick(i))
				shell.CaptureEvent()
				return
			}
		}
	}

	for k, child := range node.Children {
		if shell.IsCaptured() {
			return
		}
		local := cursor.Translate(geom.Vec(-child.Bounds.X, -child.Bounds.Y))
		r.Row(r.Range.First+k).Update(ev, child, local, shell)
	}
}

func (r Rows) Draw(c Canvas, node Node, cursor event.Cursor, clip geom.Rectangle) {
	for k, child := range node.Children {
		if _, visible := clip.Intersection(child.Bounds); !visible {
			continue
		}
		offset := geom.Vec(child.Bounds.X, child.Bounds.Y)
		c.PushTranslation(offset)
		r.Row(r.Range.First+k).Draw(c, child, cursor.Translate(offset.Neg()), clip.Translate(offset.Neg()))
		c.PopTranslation()
	}
}

func (r Rows) MouseInteraction(node Node, cursor event.Cursor) MouseInteraction {
	p, ok := cursor.PositionIn(node.Local())
	if !ok {
		return MouseNone
	}
	if _, ok := r.rowAt(p); ok && r.OnClick != nil {
		return MousePointer
	}
	return MouseIdle
}

// Label is a single line of text on an optional background.
type Label struct {
	Text       string
	Foreground color.Color
	Background color.Color
	// Hover replaces Background while the cursor is over the label.
	Hover   color.Color
	Padding float64
	Height  float64
}

func (l Label) Layout(limits Limits) Node {
	width := limits.Max.Width
	if math.IsInf(width, 1) {
		width = limits.Min.Width
	}
	s := limits.Resolve(geom.Size{Width: width, Height: l.Height})
	return Node{Bounds: geom.Rect(0, 0, s.Width, s.Height)}
}

func (Label) Update(event.Event, Node, event.Cursor, Shell) {}

func (l Label) Draw(c Canvas, node Node, cursor event.Cursor, _ geom.Rectangle) {
	bounds := node.Local()
	bg := l.Background
	if l.Hover != nil && cursor.IsOver(bounds) {
		bg = l.Hover
	}
	if bg != nil {
		c.FillRect(bounds, bg)
	}
	if l.Text != "" && l.Foreground != nil {
		c.Text(geom.Pt(l.Padding, 0), l.Text, l.Foreground)
	}
}

func (Label) MouseInteraction(Node, event.Cursor) MouseInteraction { return MouseIdle }
