package gui

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/store"
	"github.com/xonecas/vscroll/internal/widget"
)

const fetchTimeout = 5 * time.Second

// RowSource is the part of the row store the window reads from.
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

func (w rowWindow) covers(r widget.RowRange) bool {
	return r.Len() == 0 || (r.First >= w.first && r.Last <= w.first+len(w.rows))
}

type fetchResult struct {
	first int
	rows  []*store.Row
	err   error
}

// rowFetcher reads rows on a goroutine. At most one fetch is in flight and
// Update collects the result without blocking.
type rowFetcher struct {
	src     RowSource
	limiter *rate.Limiter
	results chan fetchResult
	pending bool
}

func newRowFetcher(src RowSource, limiter *rate.Limiter) *rowFetcher {
	return &rowFetcher{src: src, limiter: limiter, results: make(chan fetchResult, 1)}
}

// request starts a fetch of want unless one is pending or the limiter
// says to wait. It reports whether a fetch started.
func (f *rowFetcher) request(want widget.RowRange) bool {
	if f.pending || !f.limiter.Allow() {
		return false
	}
	f.pending = true
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		rows, err := f.src.Rows(ctx, want.First, want.Last)
		if err != nil {
			err = fmt.Errorf("fetch rows %s: %w", want, err)
		}
		f.results <- fetchResult{first: want.First, rows: rows, err: err}
	}()
	return true
}

// poll returns the finished fetch, if any.
func (f *rowFetcher) poll() (fetchResult, bool) {
	select {
	case r := <-f.results:
		f.pending = false
		return r, true
	default:
		return fetchResult{}, false
	}
}

type rowClicked int

// buildRows returns the content for a range of rows. Rows not yet fetched
// render as placeholders.
func (g *Game) buildRows(r widget.RowRange) widget.Content {
	h := g.cfg.List.RowHeight
	return widget.Rows{
		Range:  r,
		Height: h,
		Row: func(i int) widget.Content {
			var bg color.Color = ColorBackground
			if i%2 == 1 {
				bg = ColorRowAlt
			}
			row, ok := g.window.row(i)
			if !ok {
				return widget.Label{Text: fmt.Sprintf("%7d …", i), Foreground: ColorTextMuted, Background: bg, Height: h, Padding: RowPadding}
			}
			label := widget.Label{
				Text:       formatRow(row),
				Foreground: levelColor(row.Level),
				Background: bg,
				Hover:      ColorHover,
				Height:     h,
				Padding:    RowPadding,
			}
			if i == g.selected {
				label.Foreground, label.Background, label.Hover = ColorAccent, ColorSelected, nil
			}
			return label
		},
		OnClick: func(i int) any { return rowClicked(i) },
	}
}

// buildTiles returns the checkerboard for the visible part of the canvas.
func (g *Game) buildTiles(visible geom.Rectangle) widget.Content {
	cell := g.cfg.Window.TileSize
	return widget.Tiles{
		Cell:    geom.Size{Width: cell, Height: cell},
		Visible: visible,
		Even:    ColorSurface,
		Odd:     ColorRowAlt,
		Text:    ColorTextMuted,
	}
}

func formatRow(r *store.Row) string {
	return fmt.Sprintf("%7d  %s  %-5s  %s", r.Index, r.CreatedAt.UTC().Format(time.TimeOnly), strings.ToUpper(string(r.Level)), r.Message)
}

func contextWithFetchTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fetchTimeout)
}
