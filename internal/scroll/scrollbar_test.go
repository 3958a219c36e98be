package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
)

func TestBarsHiddenWhenContentFits(t *testing.T) {
	bars := NewBars(Vertical(DefaultScrollbar()), geom.Rect(0, 0, 300, 400), size(300, 400), vec(0, 0), 2)
	if bars.Active() {
		t.Error("expected no scrollbars when content fits")
	}
}

func TestBarsGeometry(t *testing.T) {
	bounds := geom.Rect(0, 0, 300, 400)
	bars := NewBars(Vertical(DefaultScrollbar()), bounds, size(300, 4000), vec(0, 1800), 2)
	require.NotNil(t, bars.Y)
	assert.Nil(t, bars.X)

	y := bars.Y
	assert.Equal(t, geom.Rect(290, 0, 10, 400), y.Total)
	assert.Equal(t, geom.Rect(290, 0, 10, 400), y.Rail)
	require.True(t, y.HasScroller)
	assert.InDelta(t, 40, y.Scroller.Height, 1e-9)
	assert.InDelta(t, 180, y.Scroller.Y, 1e-9)
}

func TestBarsZeroHeightViewport(t *testing.T) {
	bars := NewBars(Vertical(DefaultScrollbar()), geom.Rect(0, 0, 300, 0), size(300, 1000), vec(0, 600), 2)
	require.NotNil(t, bars.Y)
	require.True(t, bars.Y.HasScroller)

	s := bars.Y.Scroller
	if math.IsNaN(s.Y) || math.IsInf(s.Y, 0) {
		t.Fatalf("expected a finite handle position, got %+v", s)
	}
	assert.Equal(t, 0.0, s.Y)
	assert.Equal(t, 2.0, s.Height)
}

func TestBarsHorizontalLeavesRoomForVertical(t *testing.T) {
	bounds := geom.Rect(0, 0, 300, 400)
	bars := NewBars(Both(DefaultScrollbar(), DefaultScrollbar()), bounds, size(3000, 4000), vec(0, 0), 2)
	require.NotNil(t, bars.Y)
	require.NotNil(t, bars.X)

	assert.Equal(t, 390.0, bars.Y.Rail.Height, "vertical rail stops above the horizontal bar")
	assert.Equal(t, 290.0, bars.X.Rail.Width, "horizontal rail stops left of the vertical bar")
	assert.Equal(t, 390.0, bars.X.Total.Y)
}

func TestScrollerMinimumLength(t *testing.T) {
	bars := NewBars(Vertical(DefaultScrollbar()), geom.Rect(0, 0, 300, 400), size(300, 1e9), vec(0, 0), 2)
	require.NotNil(t, bars.Y)
	if bars.Y.Scroller.Height != 2 {
		t.Errorf("expected handle length 2, got %v", bars.Y.Scroller.Height)
	}
}

func TestScrollbarRoundTrip(t *testing.T) {
	bounds := geom.Rect(0, 0, 300, 400)
	content := size(300, 4000)
	limit := content.Height - bounds.Height

	for _, translation := range []float64{0, 450, 1800, 3000, limit} {
		bars := NewBars(Vertical(DefaultScrollbar()), bounds, content, vec(0, translation), 2)
		bar := bars.Y
		require.NotNil(t, bar)

		// Grab a quarter of the way down the handle.
		p := geom.Pt(295, bar.Scroller.Y+bar.Scroller.Height*0.25)
		grabbedAt, ok := bars.Grab(AxisY, p)
		require.True(t, ok)
		assert.InDelta(t, 0.25, grabbedAt, 1e-9)

		pct := bar.ScrollPercentage(AxisY, grabbedAt, p)
		assert.InDelta(t, translation, pct*limit, 1e-6, "translation %v", translation)
	}
}

func TestGrabOnRailTakesHandleMiddle(t *testing.T) {
	bars := NewBars(Vertical(DefaultScrollbar()), geom.Rect(0, 0, 300, 400), size(300, 4000), vec(0, 0), 2)

	grabbedAt, ok := bars.Grab(AxisY, geom.Pt(295, 300))
	if !ok {
		t.Fatal("expected grab on rail")
	}
	if grabbedAt != 0.5 {
		t.Errorf("expected 0.5, got %v", grabbedAt)
	}

	if _, ok := bars.Grab(AxisY, geom.Pt(100, 300)); ok {
		t.Error("expected no grab outside the bar")
	}
	if _, ok := bars.Grab(AxisX, geom.Pt(295, 300)); ok {
		t.Error("expected no grab on a missing bar")
	}
}

func TestScrollPercentageEndAnchor(t *testing.T) {
	sb := DefaultScrollbar()
	sb.Anchor = AnchorEnd
	bars := NewBars(Vertical(sb), geom.Rect(0, 0, 300, 400), size(300, 4000), vec(0, 0), 2)

	// Handle at the top of the rail: translation 0, which is the far end for an End anchor.
	pct := bars.Y.ScrollPercentage(AxisY, 0, geom.Pt(295, 0))
	if pct != 1 {
		t.Errorf("expected 1, got %v", pct)
	}
}

func TestMouseOver(t *testing.T) {
	bars := NewBars(Vertical(DefaultScrollbar()), geom.Rect(0, 0, 300, 400), size(300, 4000), vec(0, 0), 2)

	overY, overX := bars.MouseOver(event.At(geom.Pt(295, 10)))
	if !overY || overX {
		t.Errorf("expected over vertical only, got y=%v x=%v", overY, overX)
	}
	overY, _ = bars.MouseOver(event.Unavailable())
	if overY {
		t.Error("expected unavailable cursor to be over nothing")
	}
}
