package tui

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/xonecas/vscroll/internal/store"
)

// Test constants for consistent terminal dimensions
const (
	TestTerminalWidth  = 80
	TestTerminalHeight = 24
)

// setupGoldenTest forces TrueColor output for consistent golden file generation.
// Returns a cleanup function that should be deferred.
func setupGoldenTest(t *testing.T) func() {
	t.Helper()
	lipgloss.SetColorProfile(termenv.TrueColor)
	return func() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

var ansiStripRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSIForGolden removes all ANSI escape codes from a string for stripped golden files.
func stripANSIForGolden(s string) string {
	return ansiStripRegex.ReplaceAllString(s, "")
}

// testTime returns a fixed timestamp so rendered rows never change.
func testTime() time.Time {
	return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
}

// testRows returns n info rows named "row <i>", one second apart.
func testRows(n int) []*store.Row {
	rows := make([]*store.Row, n)
	for i := range rows {
		rows[i] = &store.Row{
			Index:     i,
			ID:        fmt.Sprintf("row-id-%d", i),
			Level:     store.LevelInfo,
			Message:   fmt.Sprintf("row %d", i),
			CreatedAt: testTime().Add(time.Duration(i) * time.Second),
		}
	}
	return rows
}

// fakeSource serves rows from memory and counts the reads.
type fakeSource struct {
	mu      sync.Mutex
	rows    []*store.Row
	version uint64
	reads   int
	err     error
}

func newFakeSource(n int) *fakeSource {
	return &fakeSource{rows: testRows(n), version: 1}
}

func (f *fakeSource) Rows(ctx context.Context, first, last int) ([]*store.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.err != nil {
		return nil, f.err
	}
	first = max(first, 0)
	last = min(last, len(f.rows))
	if last <= first {
		return nil, nil
	}
	return append([]*store.Row(nil), f.rows[first:last]...), nil
}

func (f *fakeSource) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows), nil
}

func (f *fakeSource) Version(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version, nil
}

func (f *fakeSource) readCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

// newTestModel returns a model over src laid out at width×height cells,
// with every row already in memory.
func newTestModel(t *testing.T, src *fakeSource, width, height int) Model {
	t.Helper()
	m := New(src, nil, nil, nil)
	m.width, m.height = width, height
	m.setCount(len(src.rows), src.version)
	m.rows.window = rowWindow{first: 0, rows: src.rows}
	m.list.SetDataVersion(m.rows.touch())
	m.list.Layout(m.listBounds())
	return m
}
