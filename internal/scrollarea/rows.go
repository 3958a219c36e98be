package scrollarea

import (
	"math"

	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/widget"
)

// RowsFor returns the rows needed to cover visible: from the row at its top
// edge through the row at its bottom edge, plus overscan rows, clamped to count.
func RowsFor(visible geom.Rectangle, rowHeight float64, count, overscan int) widget.RowRange {
	if rowHeight <= 0 || count <= 0 {
		return widget.RowRange{}
	}
	first := int(math.Max(math.Floor(visible.Y/rowHeight), 0))
	last := int(math.Ceil((visible.Y+visible.Height)/rowHeight)) + overscan
	return widget.RowRange{First: min(first, count), Last: min(last, count)}
}

// NewRows returns a virtual list of count rows of equal height. view builds
// the content for a range of rows; it draws the first row of the range at
// its origin and the container shifts it by the part of that row scrolled
// out of view.
func NewRows(rowHeight float64, count int, view func(widget.RowRange) widget.Content, t scroll.Tuning) *Rows {
	r := &Rows{rowHeight: rowHeight, count: count, overscan: t.RowOverscan}
	r.Virtual = NewVirtual(geom.Size{Height: rowHeight * float64(count)}, func(visible geom.Rectangle) widget.Content {
		r.last = RowsFor(visible, r.rowHeight, r.count, r.overscan)
		return view(r.last)
	}, t)
	r.Virtual.cell = geom.Size{Height: rowHeight}
	return r
}

// Rows is a Virtual specialised for uniform rows.
type Rows struct {
	*Virtual

	rowHeight float64
	count     int
	overscan  int
	last      widget.RowRange
}

// SetRowCount changes the number of rows, as when rows are appended.
func (r *Rows) SetRowCount(count int) {
	if count != r.count {
		r.cache.Invalidate()
	}
	r.count = count
	r.SetContentSize(geom.Size{Height: r.rowHeight * float64(count)})
}

func (r *Rows) RowCount() int { return r.count }

func (r *Rows) RowHeight() float64 { return r.rowHeight }

// Range returns the rows requested by the last build.
func (r *Rows) Range() widget.RowRange { return r.last }

// RowsInView returns the rows needed for the current offsets, without building.
func (r *Rows) RowsInView() widget.RowRange {
	return RowsFor(r.VisibleRect(), r.rowHeight, r.count, r.overscan)
}

// RowRect is the rectangle of row i in content coordinates.
func (r *Rows) RowRect(i int) geom.Rectangle {
	return geom.Rect(0, float64(i)*r.rowHeight, r.contentSize().Width, r.rowHeight)
}

// EnsureRowVisible scrolls just enough to show row i.
func (r *Rows) EnsureRowVisible(i int, animated bool) {
	if animated {
		r.EnsureVisibleAnimated(r.RowRect(i))
		return
	}
	r.EnsureVisible(r.RowRect(i))
}
