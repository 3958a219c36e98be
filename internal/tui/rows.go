package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/xonecas/vscroll/internal/store"
	"github.com/xonecas/vscroll/internal/widget"
)

const fetchTimeout = 5 * time.Second

// RowSource is the part of the row store the terminal reads from.
type RowSource interface {
	Rows(ctx context.Context, first, last int) ([]*store.Row, error)
	Count(ctx context.Context) (int, error)
	Version(ctx context.Context) (uint64, error)
}

// rowWindow is the contiguous slice of rows held in memory.
type rowWindow struct {
	first int
	rows  []*store.Row
}

func (w rowWindow) row(i int) (*store.Row, bool) {
	k := i - w.first
	if k < 0 || k >= len(w.rows) {
		return nil, false
	}
	return w.rows[k], true
}

// covers reports whether every row of r is in the window.
func (w rowWindow) covers(r widget.RowRange) bool {
	return r.Len() == 0 || (r.First >= w.first && r.Last <= w.first+len(w.rows))
}

// rowView is the host state the row builder reads. It is shared by every
// copy of the Model.
type rowView struct {
	window    rowWindow
	selected  int
	key       uint64
	rowHeight float64
}

func newRowView(rowHeight float64) *rowView {
	return &rowView{selected: -1, rowHeight: rowHeight}
}

// touch changes the data-version key so the list rebuilds its rows.
func (v *rowView) touch() uint64 {
	v.key++
	return v.key
}

type rowClicked int

// build returns the content for a range of rows. Rows outside the window
// render as placeholders until their fetch lands.
func (v *rowView) build(r widget.RowRange) widget.Content {
	return widget.Rows{
		Range:  r,
		Height: v.rowHeight,
		Row: func(i int) widget.Content {
			bg := rowBg
			if i%2 == 1 {
				bg = rowBgAlt
			}
			row, ok := v.window.row(i)
			if !ok {
				return widget.Label{Text: fmt.Sprintf("%7d …", i), Foreground: rowMuted, Background: bg, Height: v.rowHeight}
			}
			label := widget.Label{
				Text:       formatRow(row),
				Foreground: rgb(LevelColor(row.Level)),
				Background: bg,
				Hover:      rowHover,
				Height:     v.rowHeight,
			}
			if i == v.selected {
				label.Foreground, label.Background, label.Hover = rowSelectedTxt, rowSelected, nil
			}
			return label
		},
		OnClick: func(i int) any { return rowClicked(i) },
	}
}

// widen grows r by margin rows on both sides, clamped to count.
func widen(r widget.RowRange, margin, count int) widget.RowRange {
	return widget.RowRange{First: max(r.First-margin, 0), Last: min(r.Last+margin, count)}
}

type rowsFetchedMsg struct {
	first int
	rows  []*store.Row
	err   error
}

type rowCountMsg struct {
	count   int
	version uint64
	err     error
}

// fetchRows reads the rows of want once the limiter allows it.
func fetchRows(src RowSource, lim *rate.Limiter, want widget.RowRange) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if err := lim.Wait(ctx); err != nil {
			return rowsFetchedMsg{first: want.First, err: fmt.Errorf("wait for fetch: %w", err)}
		}
		rows, err := src.Rows(ctx, want.First, want.Last)
		if err != nil {
			return rowsFetchedMsg{first: want.First, err: err}
		}
		return rowsFetchedMsg{first: want.First, rows: rows}
	}
}

// loadRowCount reads the number of rows and the store version.
func loadRowCount(src RowSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		count, err := src.Count(ctx)
		if err != nil {
			return rowCountMsg{err: err}
		}
		version, err := src.Version(ctx)
		if err != nil {
			return rowCountMsg{err: err}
		}
		return rowCountMsg{count: count, version: version}
	}
}
