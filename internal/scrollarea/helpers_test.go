package scrollarea

import (
	"image/color"
	"testing"
	"time"

	"github.com/xonecas/vscroll/internal/clock"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/widget"
)

var testEpoch = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

type fill struct {
	rect  geom.Rectangle
	color color.Color
}

// recordingCanvas keeps every visible fill and text in device coordinates.
type recordingCanvas struct {
	widget.Transform
	fills []fill
	texts []string
}

func (c *recordingCanvas) FillRect(r geom.Rectangle, clr color.Color) {
	if r, ok := c.Apply(r); ok {
		c.fills = append(c.fills, fill{rect: r, color: clr})
	}
}

func (c *recordingCanvas) Text(p geom.Point, s string, _ color.Color) {
	if _, ok := c.Apply(geom.Rect(p.X, p.Y, 1, 1)); ok {
		c.texts = append(c.texts, s)
	}
}

func (c *recordingCanvas) filled(r geom.Rectangle) bool {
	for _, f := range c.fills {
		if f.rect.ApproxEqual(r, 1e-9) {
			return true
		}
	}
	return false
}

type rowClicked int

// countingRows builds labelled rows and counts builder calls.
type countingRows struct {
	builds int
	ranges []widget.RowRange
}

func (c *countingRows) view(r widget.RowRange) widget.Content {
	c.builds++
	c.ranges = append(c.ranges, r)
	return widget.Rows{
		Range:  r,
		Height: 30,
		Row: func(i int) widget.Content {
			return widget.Label{Text: "row", Foreground: color.White, Height: 30}
		},
		OnClick: func(i int) any { return rowClicked(i) },
	}
}

// newList is scenario A's list: 100,000 rows of 30px in a 300x400 viewport.
func newList(t *testing.T) (*Rows, *countingRows, *clock.Manual) {
	t.Helper()
	counter := &countingRows{}
	rows := NewRows(30, 100_000, counter.view, scroll.DefaultTuning())
	clk := clock.NewManual(testEpoch)
	rows.SetClock(clk)
	rows.Layout(geom.Rect(0, 0, 300, 400))
	return rows, counter, clk
}
