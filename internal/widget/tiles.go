package widget

import (
	"fmt"
	"image/color"
	"math"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

// Tiles draws a checkerboard of labelled cells covering a visible rectangle
// of a large canvas. The first visible cell is drawn at the node origin.
type Tiles struct {
	Cell    geom.Size
	Visible geom.Rectangle
	Even    color.Color
	Odd     color.Color
	Text    color.Color
}

// span returns the first cell and the number of cells covering length from start.
func span(start, length, cell float64) (int, int) {
	if cell <= 0 {
		return 0, 0
	}
	first := math.Floor(start / cell)
	last := math.Ceil((start + length) / cell)
	return int(first), int(last - first)
}

// Grid returns the first column and row and how many of each are visible.
func (t Tiles) Grid() (col, row, cols, rows int) {
	col, cols = span(t.Visible.X, t.Visible.Width, t.Cell.Width)
	row, rows = span(t.Visible.Y, t.Visible.Height, t.Cell.Height)
	return col, row, cols, rows
}

func (t Tiles) Layout(limits Limits) Node {
	_, _, cols, rows := t.Grid()
	return Node{Bounds: geom.Rect(0, 0, float64(cols)*t.Cell.Width, float64(rows)*t.Cell.Height)}
}

func (Tiles) Update(event.Event, Node, event.Cursor, Shell) {}

func (t Tiles) Draw(c Canvas, _ Node, _ event.Cursor, clip geom.Rectangle) {
	col, row, cols, rows := t.Grid()
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			cell := geom.Rect(float64(i)*t.Cell.Width, float64(j)*t.Cell.Height, t.Cell.Width, t.Cell.Height)
			if _, visible := clip.Intersection(cell); !visible {
				continue
			}
			fill := t.Even
			if (col+i+row+j)%2 != 0 {
				fill = t.Odd
			}
			c.FillRect(cell, fill)
			c.Text(geom.Pt(cell.X+4, cell.Y+4), fmt.Sprintf("%d,%d", col+i, row+j), t.Text)
		}
	}
}

func (Tiles) MouseInteraction(Node, event.Cursor) MouseInteraction { return MouseIdle }
