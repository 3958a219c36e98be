package tui

import (
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/scrollarea"
)

const (
	scrollbarThumb  = '█' // Solid block for thumb
	scrollbarTrack  = '│' // Thin vertical line for track
	scrollbarTrackH = '─'
)

// overlayScrollbars marks the scrollbar cells with glyphs on top of the
// colors the container painted, so the bars stay readable on terminals
// without color.
func overlayScrollbars(cv *cellCanvas, bars scroll.Bars, style scrollarea.Style, st scroll.Status) {
	if bars.Y != nil {
		overlayBar(cv, bars.Y, scrollbarTrack, style, st.HoverFactor, st.VerticalDragged)
	}
	if bars.X != nil {
		overlayBar(cv, bars.X, scrollbarTrackH, style, st.HoverFactor, st.HorizontalDragged)
	}
}

func overlayBar(cv *cellCanvas, bar *scroll.Bar, track rune, style scrollarea.Style, hover float64, dragged bool) {
	// Floating bars are hidden until hovered.
	if style.Floating && !dragged && hover <= 0 {
		return
	}
	if style.Rail != nil {
		cv.Glyph(bar.Rail, track, rowMuted)
	}
	if bar.HasScroller {
		cv.Glyph(bar.Scroller, scrollbarThumb, nil)
	}
}
