package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/widget"
)

type cell struct {
	ch rune // 0 marks the right half of a wide rune
	fg color.RGBA
	bg color.RGBA
}

// cellCanvas is a widget.Canvas over a grid of terminal cells. Drawing is
// in pixels; each cell covers cw×ch pixels and a pixel rectangle covers
// the cells its snapped edges enclose.
type cellCanvas struct {
	widget.Transform

	cols, rows int
	cw, ch     float64
	cells      []cell
}

func newCellCanvas(cols, rows int, cw, ch float64, bg color.Color) *cellCanvas {
	c := &cellCanvas{
		cols:  max(cols, 0),
		rows:  max(rows, 0),
		cw:    cw,
		ch:    ch,
		cells: make([]cell, max(cols, 0)*max(rows, 0)),
	}
	base := toRGBA(bg)
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: rowText, bg: base}
	}
	return c
}

// Size is the canvas size in pixels.
func (c *cellCanvas) Size() geom.Size {
	return geom.Size{Width: float64(c.cols) * c.cw, Height: float64(c.rows) * c.ch}
}

// span maps a device rectangle to the half-open cell range its snapped
// edges enclose. A rectangle thinner than a cell still covers one.
func (c *cellCanvas) span(r geom.Rectangle) (x0, y0, x1, y1 int) {
	x0 = int(snap(r.X / c.cw))
	x1 = int(snap((r.X + r.Width) / c.cw))
	y0 = int(snap(r.Y / c.ch))
	y1 = int(snap((r.Y + r.Height) / c.ch))
	if x1 == x0 && r.Width > 0 {
		x1++
	}
	if y1 == y0 && r.Height > 0 {
		y1++
	}
	x0, x1 = clampSpan(x0, x1, c.cols)
	y0, y1 = clampSpan(y0, y1, c.rows)
	return x0, y0, x1, y1
}

// snap rounds half up so edges and text rows agree at every sub-cell offset.
func snap(v float64) float64 { return math.Floor(v + 0.5) }

func clampSpan(lo, hi, n int) (int, int) {
	return min(max(lo, 0), n), min(max(hi, 0), n)
}

func (c *cellCanvas) at(col, row int) *cell {
	return &c.cells[row*c.cols+col]
}

func (c *cellCanvas) FillRect(r geom.Rectangle, col color.Color) {
	if col == nil {
		return
	}
	dev, ok := c.Apply(r)
	if !ok {
		return
	}
	x0, y0, x1, y1 := c.span(dev)
	sr, sg, sb, sa := col.RGBA()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cl := c.at(x, y)
			cl.bg = blend(sr, sg, sb, sa, cl.bg)
			if sa == 0xFFFF {
				cl.ch = ' '
			}
		}
	}
}

func (c *cellCanvas) Text(p geom.Point, s string, col color.Color) {
	if col == nil || s == "" {
		return
	}
	dev := p.Add(c.Offset())
	row := int(snap(dev.Y / c.ch))
	x := int(snap(dev.X / c.cw))

	x0, y0, x1, y1 := 0, 0, c.cols, c.rows
	if clip, ok := c.Clip(); ok {
		x0, y0, x1, y1 = c.cellClip(clip)
	}
	if row < y0 || row >= y1 {
		return
	}

	fg := toRGBA(col)
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if w <= 0 {
			continue
		}
		if x >= x1 || x+w > x1 {
			return
		}
		if x >= x0 {
			cl := c.at(x, row)
			cl.ch, cl.fg = r, fg
			for k := 1; k < w; k++ {
				c.at(x+k, row).ch = 0
			}
		}
		x += w
	}
}

// cellClip maps a clip to cells without widening thin clips.
func (c *cellCanvas) cellClip(r geom.Rectangle) (x0, y0, x1, y1 int) {
	x0, x1 = clampSpan(int(snap(r.X/c.cw)), int(snap((r.X+r.Width)/c.cw)), c.cols)
	y0, y1 = clampSpan(int(snap(r.Y/c.ch)), int(snap((r.Y+r.Height)/c.ch)), c.rows)
	return x0, y0, x1, y1
}

// Glyph writes ch into every cell r covers, keeping the cell colors. A nil
// fg draws the glyph in the cell's background color.
func (c *cellCanvas) Glyph(r geom.Rectangle, ch rune, fg color.Color) {
	dev, ok := c.Apply(r)
	if !ok {
		return
	}
	x0, y0, x1, y1 := c.span(dev)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cl := c.at(x, y)
			cl.ch = ch
			if fg != nil {
				cl.fg = toRGBA(fg)
			} else {
				cl.fg = cl.bg
			}
		}
	}
}

// Line returns the plain text of one row.
func (c *cellCanvas) Line(row int) string {
	var b strings.Builder
	for x := 0; x < c.cols; x++ {
		if ch := c.at(x, row).ch; ch != 0 {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Render returns the grid as styled lines joined by newlines.
func (c *cellCanvas) Render() string {
	type pair struct{ fg, bg color.RGBA }
	styles := make(map[pair]lipgloss.Style)
	style := func(p pair) lipgloss.Style {
		s, ok := styles[p]
		if !ok {
			s = lipgloss.NewStyle().Foreground(hex(p.fg)).Background(hex(p.bg))
			styles[p] = s
		}
		return s
	}

	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var line, run strings.Builder
		var cur pair
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(style(cur).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.cols; x++ {
			cl := c.at(x, y)
			if cl.ch == 0 {
				continue
			}
			p := pair{cl.fg, cl.bg}
			if p != cur {
				flush()
				cur = p
			}
			run.WriteRune(cl.ch)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// blend composites a premultiplied source over an opaque destination.
func blend(sr, sg, sb, sa uint32, dst color.RGBA) color.RGBA {
	inv := 0xFFFF - sa
	mix := func(s uint32, d uint8) uint8 {
		return uint8((s + uint32(d)*0x101*inv/0xFFFF) >> 8)
	}
	return color.RGBA{R: mix(sr, dst.R), G: mix(sg, dst.G), B: mix(sb, dst.B), A: 0xFF}
}
