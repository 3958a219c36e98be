package scrollarea

import (
	"testing"

	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/widget"
)

func TestCacheToleratesSubEpsilonMoves(t *testing.T) {
	cache := NewCache(0.01)
	builds := 0
	build := func(geom.Rectangle) widget.Content {
		builds++
		return widget.Empty{}
	}
	limits := widget.Loose(geom.Size{Width: 300, Height: 400})

	cache.Resolve(geom.Rect(0, 100, 300, 400), 1, limits, build)
	cache.Resolve(geom.Rect(0, 100.005, 300, 400), 1, limits, build)
	if builds != 1 {
		t.Errorf("expected a sub-epsilon move to reuse the entry, got %d builds", builds)
	}

	cache.Resolve(geom.Rect(0, 100.5, 300, 400), 1, limits, build)
	if builds != 2 {
		t.Errorf("expected a real move to rebuild, got %d builds", builds)
	}

	cache.Resolve(geom.Rect(0, 100.5, 300, 400), 2, limits, build)
	if builds != 3 {
		t.Errorf("expected a new key to rebuild, got %d builds", builds)
	}

	if got := cache.Stats(); got.Hits != 1 || got.Misses != 3 {
		t.Errorf("expected 1 hit and 3 misses, got %+v", got)
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewCache(0.01)
	builds := 0
	build := func(geom.Rectangle) widget.Content {
		builds++
		return widget.Empty{}
	}

	cache.Resolve(geom.Rect(0, 0, 10, 10), 0, widget.Limits{}, build)
	cache.Invalidate()
	if _, ok := cache.Rect(); ok {
		t.Error("expected no entry after invalidation")
	}

	cache.Resolve(geom.Rect(0, 0, 10, 10), 0, widget.Limits{}, build)
	if builds != 2 {
		t.Errorf("expected a rebuild after invalidation, got %d builds", builds)
	}
}
