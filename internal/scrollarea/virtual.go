package scrollarea

import (
	"math"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/widget"
)

// Virtual scrolls over content that is never materialized in full: the
// builder is asked only for the visible rectangle, and its result is cached
// until the rectangle moves or the data version changes.
type Virtual struct {
	container

	build Builder
	// size is the declared content size. A zero axis follows the bounds.
	size geom.Size
	cell geom.Size
	// overscan adds one cell to the visible rectangle while the offset
	// sits between cells.
	overscan bool
	version  uint64
	cache    *Cache
}

// NewVirtual returns a vertical virtual container over content of the
// given size.
func NewVirtual(size geom.Size, build Builder, t scroll.Tuning) *Virtual {
	v := &Virtual{
		container: newContainer(t),
		build:     build,
		size:      size,
		cache:     NewCache(t.CacheEpsilon),
	}
	v.extent = v.contentSize
	return v
}

// SetCellSize enables sub-cell scrolling for content made of uniform cells.
// The content is expected to draw its first visible cell at its origin.
func (v *Virtual) SetCellSize(cell geom.Size) {
	v.cell = cell
	v.overscan = true
}

// SetContentSize changes the scrolled extent, as when rows are appended.
func (v *Virtual) SetContentSize(size geom.Size) { v.size = size }

// SetDataVersion changes the key the cached content is valid for. Bump it
// whenever the data behind the builder changes.
func (v *Virtual) SetDataVersion(version uint64) { v.version = version }

func (v *Virtual) DataVersion() uint64 { return v.version }

// CacheStats returns how often the builder was skipped.
func (v *Virtual) CacheStats() CacheStats { return v.cache.Stats() }

func (v *Virtual) contentSize() geom.Size {
	s := v.size
	if s.Width <= 0 {
		s.Width = v.bounds.Width
	}
	if s.Height <= 0 {
		s.Height = v.bounds.Height
	}
	return s
}

// VisibleRect is the part of the content to build, in content coordinates.
func (v *Virtual) VisibleRect() geom.Rectangle {
	cell := geom.Size{}
	if v.overscan {
		cell = v.cell
	}
	return VisibleRect(v.bounds.Size(), v.contentSize(), v.Translation(), cell)
}

// VisibleRect returns the rectangle of content shown at translation t. When
// cell has a positive extent on an axis and t is between cells (and not at
// the end), one more cell is included so the partial cell is covered.
func VisibleRect(bounds, content geom.Size, t geom.Vector, cell geom.Size) geom.Rectangle {
	extra := func(t, viewport, content, cell float64) float64 {
		if cell <= 0 || t >= math.Max(content-viewport, 0) || math.Mod(t, cell) == 0 {
			return 0
		}
		return cell
	}

	ex := extra(t.X, bounds.Width, content.Width, cell.Width)
	ey := extra(t.Y, bounds.Height, content.Height, cell.Height)

	return geom.Rectangle{
		X:      t.X,
		Y:      t.Y,
		Width:  math.Min(bounds.Width+ex, math.Max(content.Width-t.X, 0)),
		Height: math.Min(bounds.Height+ey, math.Max(content.Height-t.Y, 0)),
	}
}

// subCell is how far the first visible cell starts above and left of the
// viewport edge.
func subCell(t geom.Vector, cell geom.Size) geom.Vector {
	rem := func(t, cell float64) float64 {
		if cell > 0 {
			return math.Mod(t, cell)
		}
		return t - math.Floor(t)
	}
	return geom.Vec(rem(t.X, cell.Width), rem(t.Y, cell.Height))
}

// origin is where the content node's top-left corner is drawn.
func (v *Virtual) origin() geom.Point {
	return v.bounds.Position().Add(subCell(v.Translation(), v.cell).Neg())
}

// resolve returns the content for the current visible rectangle.
func (v *Virtual) resolve() (widget.Content, widget.Node) {
	limits := widget.Loose(v.direction.ContentLimits(v.bounds.Size()))
	return v.cache.Resolve(v.VisibleRect(), v.version, limits, v.build)
}

// Layout places the container in bounds and refreshes the visible content.
func (v *Virtual) Layout(bounds geom.Rectangle) {
	v.bounds = bounds
	v.resolve()
}

// Update runs an event through the container, forwarding to the content
// what the scroll state does not consume.
func (v *Virtual) Update(ev event.Event, cursor event.Cursor, shell widget.Shell) {
	now := v.now(ev)
	forward := func(ev event.Event, cur event.Cursor) bool {
		content, node := v.resolve()
		local := &captureShell{Shell: shell}
		content.Update(ev, node, cur.Translate(geom.Point{}.Sub(v.origin())), local)
		return local.captured
	}

	fx := v.state.Update(ev, v.frame(cursor, now), forward)
	v.apply(fx, shell, now)
}

// Draw paints the visible content, then the scrollbars.
func (v *Virtual) Draw(cv widget.Canvas, cursor event.Cursor) {
	bars := v.Bars()
	v.drawBackground(cv)

	content, node := v.resolve()
	origin := v.origin()
	offset := origin.Sub(geom.Point{})

	cv.PushClip(v.bounds)
	cv.PushTranslation(offset)
	clip := v.bounds.Translate(offset.Neg())
	content.Draw(cv, node, v.contentCursor(cursor, bars).Translate(offset.Neg()), clip)
	cv.PopTranslation()
	cv.PopClip()

	v.drawBars(cv, bars)
}

// MouseInteraction returns the pointer shape for cursor.
func (v *Virtual) MouseInteraction(cursor event.Cursor) widget.MouseInteraction {
	bars := v.Bars()
	if m, ok := v.mouseInteraction(cursor, bars); ok {
		return m
	}
	content, node := v.resolve()
	offset := v.origin().Sub(geom.Point{})
	return content.MouseInteraction(node, v.contentCursor(cursor, bars).Translate(offset.Neg()))
}
