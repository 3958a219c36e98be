package tui

import (
	"image/color"
	"testing"

	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/scrollarea"
)

func testBar(scroller bool) *scroll.Bar {
	return &scroll.Bar{
		Total:       geom.Rect(24, 0, 8, 64),
		Rail:        geom.Rect(24, 0, 8, 64),
		Scroller:    geom.Rect(24, 16, 8, 32),
		HasScroller: scroller,
	}
}

func column(cv *cellCanvas, col int) string {
	var s []rune
	for y := 0; y < cv.rows; y++ {
		s = append(s, cv.at(col, y).ch)
	}
	return string(s)
}

func TestOverlayScrollbars_Solid(t *testing.T) {
	cv := newCellCanvas(4, 4, 8, 16, color.Black)
	overlayScrollbars(cv, scroll.Bars{Y: testBar(true)}, scrollarea.Solid(), scroll.Status{})

	if got := column(cv, 3); got != "│██│" {
		t.Errorf("expected %q, got %q", "│██│", got)
	}
	if got := column(cv, 2); got != "    " {
		t.Errorf("expected the content column untouched, got %q", got)
	}
}

func TestOverlayScrollbars_ThinHasNoRail(t *testing.T) {
	cv := newCellCanvas(4, 4, 8, 16, color.Black)
	overlayScrollbars(cv, scroll.Bars{Y: testBar(true)}, scrollarea.Thin(), scroll.Status{})

	if got := column(cv, 3); got != " ██ " {
		t.Errorf("expected %q, got %q", " ██ ", got)
	}
}

func TestOverlayScrollbars_FloatingHiddenUntilHovered(t *testing.T) {
	cv := newCellCanvas(4, 4, 8, 16, color.Black)
	overlayScrollbars(cv, scroll.Bars{Y: testBar(true)}, scrollarea.Floating(), scroll.Status{})
	if got := column(cv, 3); got != "    " {
		t.Errorf("expected hidden bar, got %q", got)
	}

	overlayScrollbars(cv, scroll.Bars{Y: testBar(true)}, scrollarea.Floating(), scroll.Status{HoverFactor: 0.5})
	if got := column(cv, 3); got != " ██ " {
		t.Errorf("expected visible bar while hovered, got %q", got)
	}
}

func TestOverlayScrollbars_RailWithoutHandle(t *testing.T) {
	cv := newCellCanvas(4, 4, 8, 16, color.Black)
	overlayScrollbars(cv, scroll.Bars{Y: testBar(false)}, scrollarea.Solid(), scroll.Status{})

	if got := column(cv, 3); got != "││││" {
		t.Errorf("expected a bare rail, got %q", got)
	}
}

func TestOverlayScrollbars_NoBars(t *testing.T) {
	cv := newCellCanvas(4, 4, 8, 16, color.Black)
	overlayScrollbars(cv, scroll.Bars{}, scrollarea.Solid(), scroll.Status{VerticalDisabled: true})

	if got := column(cv, 3); got != "    " {
		t.Errorf("expected nothing drawn when the content fits, got %q", got)
	}
}

func TestOverlayScrollbars_Horizontal(t *testing.T) {
	cv := newCellCanvas(4, 2, 8, 16, color.Black)
	bar := &scroll.Bar{
		Rail:        geom.Rect(0, 16, 32, 16),
		Scroller:    geom.Rect(0, 16, 16, 16),
		HasScroller: true,
	}
	overlayScrollbars(cv, scroll.Bars{X: bar}, scrollarea.Solid(), scroll.Status{})

	if got := cv.Line(1); got != "██──" {
		t.Errorf("expected %q, got %q", "██──", got)
	}
}
