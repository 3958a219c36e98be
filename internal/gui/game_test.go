package gui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xonecas/vscroll/internal/clock"
	"github.com/xonecas/vscroll/internal/config"
	"github.com/xonecas/vscroll/internal/core"
	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/store"
	"github.com/xonecas/vscroll/internal/widget"
)

var testEpoch = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

type fakeSource struct {
	mu    sync.Mutex
	count int
	reads int
	err   error
}

func (s *fakeSource) Rows(_ context.Context, first, last int) ([]*store.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.err != nil {
		return nil, s.err
	}
	rows := make([]*store.Row, 0, last-first)
	for i := first; i < last; i++ {
		rows = append(rows, &store.Row{
			Index:     i,
			ID:        fmt.Sprintf("row-id-%d", i),
			Level:     store.LevelInfo,
			Message:   fmt.Sprintf("row %d", i),
			CreatedAt: testEpoch.Add(time.Duration(i) * time.Second),
		})
	}
	return rows, nil
}

func (s *fakeSource) Count(context.Context) (int, error) { return s.count, nil }

func (s *fakeSource) Version(context.Context) (uint64, error) { return 1, nil }

func (s *fakeSource) readCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func newTestGame(t *testing.T, src *fakeSource, bus *core.EventBus) (*Game, *clock.Manual) {
	t.Helper()
	g, err := NewGame(src, bus, nil, config.DefaultConfig())
	require.NoError(t, err)
	clk := clock.NewManual(testEpoch)
	g.setClock(clk)
	g.Layout(800, 600)
	return g, clk
}

// settle steps until no fetch is pending and the rows in view are loaded.
func settle(t *testing.T, g *Game, now time.Time) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		g.step(focused(), now)
		if !g.fetch.pending && g.window.covers(g.list.RowsInView()) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("rows never arrived")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNewGameReadsCount(t *testing.T) {
	g, _ := newTestGame(t, &fakeSource{count: 1000}, nil)

	assert.Equal(t, 1000, g.list.RowCount())
	assert.Equal(t, uint64(1), g.version)
	assert.Equal(t, geom.Rect(0, 0, 800, 578), g.bounds())
}

func TestNewGameRequiresSource(t *testing.T) {
	_, err := NewGame(nil, nil, nil, config.DefaultConfig())
	assert.Error(t, err)
}

func TestStepFetchesRowsInView(t *testing.T) {
	src := &fakeSource{count: 1000}
	g, clk := newTestGame(t, src, nil)

	settle(t, g, clk.Now())

	assert.Equal(t, 0, g.window.first)
	assert.Greater(t, len(g.window.rows), g.list.RowsInView().Len())
	assert.Equal(t, 1, src.readCount())

	g.step(focused(), clk.Now())
	assert.Equal(t, 1, src.readCount(), "covered rows are not fetched again")
}

func TestFetchErrorShowsInStatus(t *testing.T) {
	src := &fakeSource{count: 1000, err: errors.New("disk gone")}
	g, clk := newTestGame(t, src, nil)

	deadline := time.Now().Add(2 * time.Second)
	for g.err == nil {
		require.False(t, time.Now().After(deadline), "fetch error never surfaced")
		g.step(focused(), clk.Now())
		time.Sleep(time.Millisecond)
	}
	assert.Contains(t, g.statusText(), "Error: fetch rows")
	assert.Contains(t, g.statusText(), "disk gone")
}

func TestClickSelectsAndEnterActivates(t *testing.T) {
	bus := core.NewEventBus(64)
	events := bus.Subscribe()
	g, clk := newTestGame(t, &fakeSource{count: 1000}, bus)
	settle(t, g, clk.Now())

	in := at(100, 16*3+8)
	in.Pressed = []event.Button{event.ButtonLeft}
	g.step(in, clk.Now())
	assert.Equal(t, 3, g.selected)

	in = at(100, 16*3+8)
	in.Keys = []event.Key{event.KeyEnter}
	g.step(in, clk.Now())
	assert.Equal(t, "activated row 3", g.status)

	var got core.RowActivatedData
	for got.ID == "" {
		select {
		case e := <-events:
			if e.Type == core.EventRowActivated {
				got = e.Data.(core.RowActivatedData)
			}
		case <-time.After(time.Second):
			t.Fatal("no activation published")
		}
	}
	assert.Equal(t, core.RowActivatedData{Index: 3, ID: "row-id-3", Message: "row 3"}, got)

	in = at(100, 16*3+8)
	in.Keys = []event.Key{event.KeyEscape}
	g.step(in, clk.Now())
	assert.Equal(t, -1, g.selected)
	assert.Empty(t, g.status)
}

func TestWheelScrollsAndPublishesViewport(t *testing.T) {
	bus := core.NewEventBus(64)
	events := bus.Subscribe()
	g, clk := newTestGame(t, &fakeSource{count: 1000}, bus)
	settle(t, g, clk.Now())

	in := at(100, 100)
	in.Wheel = geom.Vec(0, -1)
	g.step(in, clk.Now())

	assert.InDelta(t, 60.0, g.area.Viewport().Offset.Y, 1e-9)
	for {
		select {
		case e := <-events:
			if e.Type != core.EventViewportChanged {
				continue
			}
			data := e.Data.(core.ViewportData)
			if data.Offset == 0 {
				continue
			}
			assert.Equal(t, 3, data.First)
			assert.InDelta(t, 60.0, data.Offset, 1e-9)
			return
		case <-time.After(time.Second):
			t.Fatal("no viewport published")
		}
	}
}

func TestEndKeyAnimatesOverRedraws(t *testing.T) {
	g, clk := newTestGame(t, &fakeSource{count: 1000}, nil)
	settle(t, g, clk.Now())

	in := focused()
	in.Keys = []event.Key{event.KeyEnd}
	g.step(in, clk.Now())
	require.False(t, g.redrawAt.IsZero(), "an animation schedules a frame")

	for i := 0; i < 5 && !g.redrawAt.IsZero(); i++ {
		g.step(focused(), clk.Advance(time.Second))
	}
	assert.InDelta(t, 1.0, g.area.Viewport().RelativeOffset().Y, 1e-9)
	assert.True(t, g.redrawAt.IsZero())
}

func TestFollowKeepsUpWithAppends(t *testing.T) {
	g, clk := newTestGame(t, &fakeSource{count: 1000}, nil)
	settle(t, g, clk.Now())

	in := focused()
	in.Follow = true
	g.step(in, clk.Now())
	assert.Equal(t, "following new rows", g.status)

	g.handleEvent(core.Event{Type: core.EventRowsAppended, Data: core.RowsAppendedData{Count: 1200, Version: 2}})
	g.step(focused(), clk.Now())

	assert.Equal(t, 1200, g.list.RowCount())
	assert.InDelta(t, 1.0, g.area.Viewport().RelativeOffset().Y, 1e-9)
	assert.Contains(t, g.statusText(), "/1200")
}

func TestStaleAppendIgnored(t *testing.T) {
	g, _ := newTestGame(t, &fakeSource{count: 1000}, nil)
	g.handleEvent(core.Event{Type: core.EventRowsAppended, Data: core.RowsAppendedData{Count: 1100, Version: 5}})
	g.handleEvent(core.Event{Type: core.EventRowsAppended, Data: core.RowsAppendedData{Count: 1050, Version: 4}})

	assert.Equal(t, 1100, g.list.RowCount())
}

func TestBusEventsDrainedEachStep(t *testing.T) {
	bus := core.NewEventBus(64)
	ch := bus.Subscribe()
	g, err := NewGame(&fakeSource{count: 10}, bus, ch, config.DefaultConfig())
	require.NoError(t, err)
	g.setClock(clock.NewManual(testEpoch))

	bus.Publish(core.Event{Type: core.EventFeedError, Data: core.ErrorData{Error: "upstream unavailable"}})
	g.step(focused(), testEpoch)

	assert.EqualError(t, g.err, "upstream unavailable")
}

func TestStyleCycle(t *testing.T) {
	g, clk := newTestGame(t, &fakeSource{count: 10}, nil)

	in := focused()
	in.CycleStyle = true
	g.step(in, clk.Now())
	assert.Equal(t, "scrollbar style thin", g.status)

	g.step(in, clk.Now())
	g.step(in, clk.Now())
	assert.Equal(t, "scrollbar style solid", g.status)
}

func TestOverlayToggle(t *testing.T) {
	g, clk := newTestGame(t, &fakeSource{count: 10}, nil)

	in := focused()
	in.ToggleOverlay = true
	g.step(in, clk.Now())
	assert.True(t, g.overlay)
	assert.Contains(t, g.debugText(), "interaction idle")
}

func TestTileMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.TileSize = 100
	cfg.Window.CanvasSize = 10_000

	g, err := NewGame(nil, nil, nil, cfg)
	require.NoError(t, err)
	clk := clock.NewManual(testEpoch)
	g.setClock(clk)
	g.Layout(800, 600)

	g.step(focused(), clk.Now())
	assert.Contains(t, g.statusText(), "offset 0,0")

	in := at(400, 300)
	in.Wheel = geom.Vec(-1, 0)
	g.step(in, clk.Now())
	assert.InDelta(t, 60.0, g.area.Viewport().Offset.X, 1e-9)

	tiles, ok := g.buildTiles(geom.Rect(150, 0, 800, 578)).(widget.Tiles)
	require.True(t, ok)
	col, row, cols, rows := tiles.Grid()
	assert.Equal(t, []int{1, 0, 9, 6}, []int{col, row, cols, rows})

	g.area.SnapTo(scroll.RelativeOffset{Y: 1})
	g.step(focused(), clk.Now())
	assert.InDelta(t, 10_000-578, g.area.Viewport().Offset.Y, 1e-9)
}
