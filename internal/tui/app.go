// Package tui provides the terminal host for the virtual list.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/xonecas/vscroll/internal/config"
	"github.com/xonecas/vscroll/internal/constants"
	"github.com/xonecas/vscroll/internal/core"
	"github.com/xonecas/vscroll/internal/event"
	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/scroll"
	"github.com/xonecas/vscroll/internal/scrollarea"
	"github.com/xonecas/vscroll/internal/widget"
)

// Scrollbar styles the "s" key cycles through.
var styleNames = []string{"solid", "thin", "floating"}

// Model is the main TUI model.
type Model struct {
	src     RowSource
	bus     *core.EventBus
	eventCh <-chan core.Event
	cfg     *config.Config

	list    *scrollarea.Rows
	rows    *rowView
	limiter *rate.Limiter
	pointer *pointer

	width    int
	height   int
	showHelp bool

	jumping   bool
	jump      textinput.Model
	help      help.Model
	indicator Indicator

	frameDue bool
	fetching bool
	count    int
	version  uint64
	styleIdx int
	status   string
	err      error
}

// EventMsg wraps a core event for the TUI.
type EventMsg struct {
	Event core.Event
}

// frameMsg delivers a scheduled redraw.
type frameMsg time.Time

// New creates a new TUI model. bus and eventCh may be nil.
func New(src RowSource, bus *core.EventBus, eventCh <-chan core.Event, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	rv := newRowView(cfg.List.RowHeight)
	list := scrollarea.NewRows(cfg.List.RowHeight, 0, rv.build, cfg.Tuning())
	list.SetDirection(cfg.Direction())
	list.SetAutoScroll(cfg.Behavior.AutoScroll)
	list.SetStyle(scrollarea.StyleByName(cfg.Behavior.Style))
	list.OnScroll(func(vp scroll.Viewport) any { return vp })

	styleIdx := 0
	for i, name := range styleNames {
		if name == cfg.Behavior.Style {
			styleIdx = i
		}
	}

	jump := textinput.New()
	jump.Prompt = "jump to row: "
	jump.PromptStyle = inputPromptStyle
	jump.CharLimit = 12

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = labelStyle

	p := newPointer(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, 1)

	limit := rate.Inf
	if cfg.Terminal.FetchRate > 0 {
		limit = rate.Limit(cfg.Terminal.FetchRate)
	}

	return Model{
		src:       src,
		bus:       bus,
		eventCh:   eventCh,
		cfg:       cfg,
		list:      list,
		rows:      rv,
		limiter:   rate.NewLimiter(limit, max(cfg.Terminal.FetchBurst, 1)),
		pointer:   &p,
		jump:      jump,
		help:      h,
		indicator: NewIndicator(),
		styleIdx:  styleIdx,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadRowCount(m.src),
		m.listenForEvents(),
		m.indicator.Init(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	return m, tea.Batch(cmd, m.sync())
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.jump.Width = max(msg.Width-20, 8)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.dispatch(m.pointer.translate(msg)...)

	case tea.FocusMsg:
		m.list.SetFocused(true)
		return nil

	case tea.BlurMsg:
		m.list.SetFocused(false)
		return m.dispatch(m.pointer.leave()...)

	case frameMsg:
		m.frameDue = false
		return m.dispatch(event.RedrawRequested{Now: time.Time(msg)})

	case rowCountMsg:
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		m.setCount(msg.count, msg.version)
		return nil

	case rowsFetchedMsg:
		m.fetching = false
		if msg.err != nil {
			log.Warn().Err(msg.err).Int("first", msg.first).Msg("Row fetch failed")
			m.err = msg.err
			return nil
		}
		m.rows.window = rowWindow{first: msg.first, rows: msg.rows}
		m.list.SetDataVersion(m.rows.touch())
		return nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m.listenForEvents()

	case IndicatorTickMsg:
		var cmd tea.Cmd
		m.indicator, cmd = m.indicator.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.jumping {
		return m.handleJumpKey(msg)
	}

	// Handle help toggle
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return nil
	}

	// Close help if shown
	if m.showHelp {
		m.showHelp = false
		return nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit

	case key.Matches(msg, keys.Escape):
		m.selectRow(-1)
		m.status = ""
		m.err = nil

	case key.Matches(msg, keys.Enter):
		m.activate()

	case key.Matches(msg, keys.Jump):
		m.jumping = true
		m.jump.SetValue("")
		return m.jump.Focus()

	case key.Matches(msg, keys.Follow):
		m.list.SnapTo(scroll.RelativeOffset{Y: 1})
		m.status = "following new rows"
		return m.dispatch(event.RedrawRequested{Now: time.Now()})

	case key.Matches(msg, keys.Style):
		m.styleIdx = (m.styleIdx + 1) % len(styleNames)
		m.list.SetStyle(scrollarea.StyleByName(styleNames[m.styleIdx]))
		m.status = "scrollbar style " + styleNames[m.styleIdx]

	default:
		if k, ok := scrollKey(msg); ok {
			return m.dispatch(k)
		}
	}
	return nil
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Escape):
		m.jumping = false
		m.jump.Blur()
		return nil

	case key.Matches(msg, keys.Enter):
		m.jumping = false
		m.jump.Blur()
		return m.jumpTo(strings.TrimSpace(m.jump.Value()))
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return cmd
}

// jumpTo selects row s and scrolls it into view.
func (m *Model) jumpTo(s string) tea.Cmd {
	n, err := strconv.Atoi(s)
	if err != nil {
		m.err = fmt.Errorf("invalid row %q", s)
		return nil
	}
	if m.count == 0 {
		return nil
	}
	n = min(max(n, 0), m.count-1)

	m.err = nil
	m.selectRow(n)
	m.list.EnsureRowVisible(n, true)
	m.status = fmt.Sprintf("row %d", n)
	return m.dispatch(event.RedrawRequested{Now: time.Now()})
}

// activate publishes the selected row.
func (m *Model) activate() {
	i := m.rows.selected
	if i < 0 {
		return
	}
	data := core.RowActivatedData{Index: i}
	if row, ok := m.rows.window.row(i); ok {
		data.ID = row.ID
		data.Message = row.Message
	}
	m.publish(core.EventRowActivated, data)
	m.status = fmt.Sprintf("activated row %d", i)
}

func (m *Model) selectRow(i int) {
	if m.rows.selected == i {
		return
	}
	m.rows.selected = i
	m.list.SetDataVersion(m.rows.touch())
}

func (m *Model) setCount(count int, version uint64) {
	m.count = count
	m.version = version
	m.list.SetRowCount(count)
}

func (m *Model) handleEvent(e core.Event) {
	switch e.Type {
	case core.EventRowsAppended:
		if data, ok := e.Data.(core.RowsAppendedData); ok && data.Version >= m.version {
			m.setCount(data.Count, data.Version)
			m.err = nil
		}
	case core.EventFeedError:
		if data, ok := e.Data.(core.ErrorData); ok {
			m.err = errors.New(data.Error)
		}
	}
}

// dispatch runs events through the list and acts on what it asked for.
func (m *Model) dispatch(evs ...event.Event) tea.Cmd {
	var rec widget.Recorder
	var redraw time.Time
	for _, ev := range evs {
		rec.Reset()
		m.list.Update(ev, m.pointer.cursor, &rec)

		for _, msg := range rec.Messages {
			switch msg := msg.(type) {
			case rowClicked:
				m.selectRow(int(msg))
			case scroll.Viewport:
				first, last := m.visibleRows(msg)
				m.publish(core.EventViewportChanged, core.ViewportData{First: first, Last: last, Offset: msg.Offset.Y})
			}
		}
		if at, ok := rec.RedrawAt(); ok && (redraw.IsZero() || at.Before(redraw)) {
			redraw = at
		}
	}

	if redraw.IsZero() || m.frameDue {
		return nil
	}
	m.frameDue = true
	return tea.Tick(max(time.Until(redraw), 0), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) publish(t core.EventType, data interface{}) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(core.Event{Type: t, Data: data, Timestamp: time.Now()})
}

// visibleRows is the range of rows on screen, without overscan.
func (m *Model) visibleRows(vp scroll.Viewport) (int, int) {
	r := scrollarea.RowsFor(vp.VisibleRect(), m.list.RowHeight(), m.list.RowCount(), 0)
	return r.First, r.Last
}

func (m *Model) listRows() int { return max(m.height-2, 0) }

func (m *Model) listBounds() geom.Rectangle {
	return geom.Rect(0, 0,
		float64(m.width)*m.cfg.Terminal.CellWidth,
		float64(m.listRows())*m.cfg.Terminal.CellHeight)
}

// sync lays the list out and starts a fetch when the rows in view are not
// all in memory.
func (m *Model) sync() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	m.list.Layout(m.listBounds())

	var cmd tea.Cmd
	want := m.list.RowsInView()
	if !m.fetching && !m.rows.window.covers(want) {
		m.fetching = true
		cmd = fetchRows(m.src, m.limiter, widen(want, constants.FetchMargin, m.count))
	}

	switch {
	case m.fetching:
		m.indicator.SetActivity(ActivityFetch)
	case m.list.Animating():
		m.indicator.SetActivity(ActivityScroll)
	default:
		if _, idle := m.list.Interaction().(scroll.Idle); idle {
			m.indicator.SetActivity(ActivityIdle)
		} else {
			m.indicator.SetActivity(ActivityScroll)
		}
	}
	return cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return RenderHelp(m.width, m.height)
	}

	return strings.Join([]string{
		renderSectionTitle("VSCROLL", m.width),
		m.renderList(),
		m.renderStatusBar(),
	}, "\n")
}

// renderList draws the list into terminal cells.
func (m Model) renderList() string {
	cv := newCellCanvas(m.width, m.listRows(), m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight, rowBg)
	m.list.Draw(cv, m.pointer.cursor)
	overlayScrollbars(cv, m.list.Bars(), m.list.Style(), m.list.Status())
	return cv.Render()
}

func (m Model) renderStatusBar() string {
	if m.jumping {
		return statusBarStyle.Render(ansi.Truncate(m.jump.View(), m.width, ""))
	}

	vp := m.list.Viewport()
	first, last := m.visibleRows(vp)
	stats := m.list.CacheStats()
	parts := []string{
		labelStyle.Render("rows ") + valueStyle.Render(fmt.Sprintf("%d-%d", first, last)) + labelStyle.Render(fmt.Sprintf("/%d", m.count)),
		valueStyle.Render(fmt.Sprintf("%3.0f%%", vp.RelativeOffset().Y*100)),
		highlightStyle.Render(m.list.Interaction().String()),
	}
	if mi := m.list.MouseInteraction(m.pointer.cursor); mi != widget.MouseNone {
		parts = append(parts, labelStyle.Render(mi.String()))
	}
	parts = append(parts, labelStyle.Render(fmt.Sprintf("cache %d/%d", stats.Hits, stats.Misses)))
	left := strings.Join(parts, labelStyle.Render(" · "))

	var middle string
	switch {
	case m.err != nil:
		middle = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.status != "":
		middle = highlightStyle.Render(m.status)
	default:
		middle = m.help.View(statusHelp)
	}
	right := m.indicator.View()

	// The indicator goes first when space runs out, then the middle.
	fits := func(segs ...string) bool {
		w := len(segs) - 1
		for _, s := range segs {
			w += lipgloss.Width(s)
		}
		return w <= m.width
	}
	var line string
	switch {
	case fits(left, middle, right):
		gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right) - 1
		line = left + " " + middle + strings.Repeat(" ", gap) + right
	case fits(left, middle):
		line = left + " " + middle
	default:
		line = ansi.Truncate(left, m.width, "…")
	}
	return statusBarStyle.Render(line)
}

// listenForEvents waits for the next core event.
func (m Model) listenForEvents() tea.Cmd {
	if m.eventCh == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.eventCh
		if !ok {
			return nil
		}
		return EventMsg{Event: ev}
	}
}
