// Package gui hosts the scroll containers in a desktop window.
package gui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/xonecas/vscroll/internal/clock"
	"github.com/xonecas/vscroll/internal/config"
	"github.com/xonecas/vscroll/internal/constants"
	"github.com/xonecas/vscroll/internal/core"
	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/scrollarea"
	"github.com/xonecas/vscroll/internal/widget"
)

var styleNames = []string{"solid", "thin", "floating"}

// area is what the window needs from a scroll container.
type area interface {
	Layout(bounds geom.Rectangle)
	Update(ev event.Event, cursor event.Cursor, shell widget.Shell)
	Draw(cv widget.Canvas, cursor event.Cursor)
	MouseInteraction(cursor event.Cursor) widget.MouseInteraction
	Viewport() scroll.Viewport
	Interaction() scroll.Interaction
	State() *scroll.State
	CacheStats() scrollarea.CacheStats
	SetStyle(s scrollarea.Style)
	SetFocused(focused bool)
	SetClock(clk clock.Clock)
	SnapTo(o scroll.RelativeOffset)
}

// Game implements ebiten.Game over a scroll container. With a tile size
// configured it scrolls a large checkerboard in both directions, otherwise
// it lists the rows of src.
type Game struct {
	cfg     *config.Config
	src     RowSource
	bus     *core.EventBus
	eventCh <-chan core.Event
	clock   clock.Clock

	area  area
	list  *scrollarea.Rows // nil in tile mode
	fetch *rowFetcher
	input *translator
	face  *text.GoTextFace

	window   rowWindow
	selected int
	key      uint64
	count    int
	version  uint64

	width, height int
	redrawAt      time.Time
	overlay       bool
	styleIdx      int
	status        string
	err           error
}

// NewGame reads the row count and builds the container. src may be nil in
// tile mode.
func NewGame(src RowSource, bus *core.EventBus, eventCh <-chan core.Event, cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	face, err := newFace(FontSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		src:      src,
		bus:      bus,
		eventCh:  eventCh,
		clock:    clock.System{},
		input:    newTranslator(),
		face:     face,
		selected: -1,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}
	for i, name := range styleNames {
		if name == cfg.Behavior.Style {
			g.styleIdx = i
		}
	}

	tuning := cfg.Tuning()
	if tile := cfg.Window.TileSize; tile > 0 {
		side := cfg.Window.CanvasSize
		v := scrollarea.NewVirtual(geom.Size{Width: side, Height: side}, g.buildTiles, tuning)
		v.SetCellSize(geom.Size{Width: tile, Height: tile})
		dir := cfg.Direction()
		if dir.Horizontal == nil {
			h := scroll.DefaultScrollbar()
			dir.Horizontal = &h
		}
		v.SetDirection(dir)
		v.SetAutoScroll(cfg.Behavior.AutoScroll)
		v.OnScroll(func(vp scroll.Viewport) any { return vp })
		g.area = v
	} else {
		if src == nil {
			return nil, errors.New("row source is required without a tile size")
		}
		ctx, cancel := contextWithFetchTimeout()
		defer cancel()
		count, err := src.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count rows: %w", err)
		}
		version, err := src.Version(ctx)
		if err != nil {
			return nil, fmt.Errorf("read version: %w", err)
		}

		limit := rate.Inf
		if cfg.Terminal.FetchRate > 0 {
			limit = rate.Limit(cfg.Terminal.FetchRate)
		}
		g.fetch = newRowFetcher(src, rate.NewLimiter(limit, max(cfg.Terminal.FetchBurst, 1)))

		g.list = scrollarea.NewRows(cfg.List.RowHeight, count, g.buildRows, tuning)
		g.list.SetDirection(cfg.Direction())
		g.list.SetAutoScroll(cfg.Behavior.AutoScroll)
		g.list.OnScroll(func(vp scroll.Viewport) any { return vp })
		g.count, g.version = count, version
		g.area = g.list
	}
	g.area.SetStyle(scrollarea.StyleByName(styleNames[g.styleIdx]))
	g.area.SetFocused(true)

	log.Info().Int("rows", g.count).Float64("tile", cfg.Window.TileSize).Msg("Window host ready")
	return g, nil
}

// setClock replaces the time source of the game and its container.
func (g *Game) setClock(clk clock.Clock) {
	g.clock = clk
	g.area.SetClock(clk)
}

func (g *Game) bounds() geom.Rectangle {
	return geom.Rect(0, 0, float64(g.width), max(float64(g.height)-StatusBarHeight, 0))
}

// Update polls input and advances the container by one tick.
func (g *Game) Update() error {
	in := readInput(g.width, g.height)
	if in.Quit {
		return ebiten.Termination
	}
	g.step(in, g.clock.Now())
	ebiten.SetCursorShape(cursorShape(g.area.MouseInteraction(g.input.cursor)))
	return nil
}

// step applies one tick of input. It does not touch ebiten state.
func (g *Game) step(in frameInput, now time.Time) {
	g.drainEvents()
	g.pollRows()

	g.area.SetFocused(in.Focused)
	g.area.Layout(g.bounds())

	if in.ToggleOverlay {
		g.overlay = !g.overlay
	}
	if in.CycleStyle {
		g.styleIdx = (g.styleIdx + 1) % len(styleNames)
		g.area.SetStyle(scrollarea.StyleByName(styleNames[g.styleIdx]))
		g.status = "scrollbar style " + styleNames[g.styleIdx]
	}
	if in.Follow {
		g.area.SnapTo(scroll.RelativeOffset{Y: 1})
		g.status = "following new rows"
		g.dispatch(event.RedrawRequested{Now: now})
	}

	for _, ev := range g.input.translate(in) {
		if k, ok := ev.(event.KeyPressed); ok {
			switch k.Key {
			case event.KeyEnter:
				g.activate()
			case event.KeyEscape:
				g.selectRow(-1)
				g.status, g.err = "", nil
			}
		}
		g.dispatch(ev)
	}

	if !g.redrawAt.IsZero() && !now.Before(g.redrawAt) {
		g.redrawAt = time.Time{}
		g.dispatch(event.RedrawRequested{Now: now})
	}

	g.area.Layout(g.bounds())
	g.requestRows()
}

// dispatch runs one event through the container and acts on what it asked for.
func (g *Game) dispatch(ev event.Event) {
	var rec widget.Recorder
	g.area.Update(ev, g.input.cursor, &rec)

	for _, msg := range rec.Messages {
		switch msg := msg.(type) {
		case rowClicked:
			g.selectRow(int(msg))
		case scroll.Viewport:
			g.publishViewport(msg)
		}
	}
	if at, ok := rec.RedrawAt(); ok && (g.redrawAt.IsZero() || at.Before(g.redrawAt)) {
		g.redrawAt = at
	}
}

func (g *Game) publishViewport(vp scroll.Viewport) {
	data := core.ViewportData{Offset: vp.Offset.Y}
	if g.list != nil {
		r := scrollarea.RowsFor(vp.VisibleRect(), g.list.RowHeight(), g.list.RowCount(), 0)
		data.First, data.Last = r.First, r.Last
	}
	g.publish(core.EventViewportChanged, data)
}

func (g *Game) publish(t core.EventType, data interface{}) {
	if g.bus == nil {
		return
	}
	g.bus.Publish(core.Event{Type: t, Data: data, Timestamp: g.clock.Now()})
}

func (g *Game) selectRow(i int) {
	if g.list == nil {
		return
	}
	g.selected = i
	g.touch()
}

func (g *Game) activate() {
	if g.list == nil || g.selected < 0 {
		return
	}
	data := core.RowActivatedData{Index: g.selected}
	if row, ok := g.window.row(g.selected); ok {
		data.ID, data.Message = row.ID, row.Message
	}
	g.publish(core.EventRowActivated, data)
	g.status = fmt.Sprintf("activated row %d", g.selected)
}

// touch bumps the data version so the list rebuilds.
func (g *Game) touch() {
	g.key++
	g.list.SetDataVersion(g.key)
}

// drainEvents applies every bus event that is already waiting.
func (g *Game) drainEvents() {
	for {
		select {
		case e, ok := <-g.eventCh:
			if !ok {
				g.eventCh = nil
				return
			}
			g.handleEvent(e)
		default:
			return
		}
	}
}

func (g *Game) handleEvent(e core.Event) {
	switch e.Type {
	case core.EventRowsAppended:
		data, ok := e.Data.(core.RowsAppendedData)
		if !ok || g.list == nil || data.Version < g.version {
			return
		}
		g.count, g.version = data.Count, data.Version
		g.list.SetRowCount(data.Count)
		g.err = nil
	case core.EventFeedError:
		if data, ok := e.Data.(core.ErrorData); ok {
			g.err = errors.New(data.Error)
		}
	}
}

func (g *Game) pollRows() {
	if g.fetch == nil {
		return
	}
	res, ok := g.fetch.poll()
	if !ok {
		return
	}
	if res.err != nil {
		log.Warn().Err(res.err).Msg("Row fetch failed")
		g.err = res.err
		return
	}
	g.window = rowWindow{first: res.first, rows: res.rows}
	g.touch()
}

// requestRows starts a fetch when the rows in view are not all in memory.
func (g *Game) requestRows() {
	if g.list == nil {
		return
	}
	want := g.list.RowsInView()
	if g.window.covers(want) {
		return
	}
	wide := widget.RowRange{
		First: max(want.First-constants.FetchMargin, 0),
		Last:  min(want.Last+constants.FetchMargin, g.count),
	}
	g.fetch.request(wide)
}

// Draw paints the container, the status bar and the debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	cv := newImageCanvas(screen, g.face)
	g.area.Draw(cv, g.input.cursor)

	bar := geom.Rect(0, float64(g.height)-StatusBarHeight, float64(g.width), StatusBarHeight)
	cv.FillRect(bar, ColorSurface)
	fg := ColorTextMuted
	if g.err != nil {
		fg = ColorError
	}
	cv.Text(geom.Pt(RowPadding, bar.Y+2), g.statusText(), fg)

	if g.overlay {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f\n%s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.debugText()), 8, 8)
	}
}

// Layout tracks the window size one to one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// statusText summarizes the view for the status bar.
func (g *Game) statusText() string {
	vp := g.area.Viewport()
	var parts []string
	if g.list != nil {
		r := scrollarea.RowsFor(vp.VisibleRect(), g.list.RowHeight(), g.list.RowCount(), 0)
		parts = append(parts, fmt.Sprintf("rows %d-%d/%d", r.First, r.Last, g.count))
	} else {
		parts = append(parts, fmt.Sprintf("offset %.0f,%.0f", vp.Offset.X, vp.Offset.Y))
	}
	rel := vp.RelativeOffset()
	parts = append(parts, fmt.Sprintf("%.0f%%", rel.Y*100), g.area.Interaction().String())

	switch {
	case g.err != nil:
		parts = append(parts, "Error: "+g.err.Error())
	case g.status != "":
		parts = append(parts, g.status)
	}
	return strings.Join(parts, " · ")
}

// debugText is the body of the F12 overlay.
func (g *Game) debugText() string {
	st := g.area.State()
	vel := st.Velocity()
	stats := g.area.CacheStats()
	x, y := st.Offsets()
	return fmt.Sprintf("interaction %s\nvelocity %.1f,%.1f px/s\noffsets %v %v\ncache hits %d misses %d\nstatus %+v",
		st.Interaction(), vel.X, vel.Y, x, y, stats.Hits, stats.Misses, st.Status())
}
