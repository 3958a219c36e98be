package tui

import (
	"errors"
	"testing"

	"golang.org/x/time/rate"

	"github.com/xonecas/vscroll/internal/widget"
)

func TestRowWindow_Covers(t *testing.T) {
	w := rowWindow{first: 10, rows: testRows(20)}

	tests := []struct {
		r    widget.RowRange
		want bool
	}{
		{widget.RowRange{First: 10, Last: 30}, true},
		{widget.RowRange{First: 15, Last: 20}, true},
		{widget.RowRange{First: 9, Last: 20}, false},
		{widget.RowRange{First: 25, Last: 31}, false},
		{widget.RowRange{First: 50, Last: 50}, true},
	}
	for _, tt := range tests {
		if got := w.covers(tt.r); got != tt.want {
			t.Errorf("covers(%v): expected %v, got %v", tt.r, tt.want, got)
		}
	}
}

func TestWiden(t *testing.T) {
	got := widen(widget.RowRange{First: 10, Last: 20}, 64, 50)
	if want := (widget.RowRange{First: 0, Last: 50}); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = widen(widget.RowRange{First: 100, Last: 120}, 8, 1000)
	if want := (widget.RowRange{First: 92, Last: 128}); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRowView_BuildPlaceholders(t *testing.T) {
	v := newRowView(16)
	v.window = rowWindow{first: 0, rows: testRows(2)}

	content := v.build(widget.RowRange{First: 1, Last: 3}).(widget.Rows)

	loaded := content.Row(1).(widget.Label)
	if loaded.Text != formatRow(v.window.rows[1]) {
		t.Errorf("expected row text, got %q", loaded.Text)
	}
	if loaded.Hover == nil {
		t.Error("expected loaded rows to highlight on hover")
	}

	missing := content.Row(2).(widget.Label)
	if missing.Text != "      2 …" {
		t.Errorf("expected placeholder, got %q", missing.Text)
	}
	if missing.Foreground != rowMuted {
		t.Errorf("expected muted placeholder, got %v", missing.Foreground)
	}
}

func TestRowView_BuildSelected(t *testing.T) {
	v := newRowView(16)
	v.window = rowWindow{first: 0, rows: testRows(3)}
	v.selected = 1

	content := v.build(widget.RowRange{First: 0, Last: 3}).(widget.Rows)
	selected := content.Row(1).(widget.Label)
	if selected.Background != rowSelected {
		t.Errorf("expected selected background, got %v", selected.Background)
	}
	if selected.Hover != nil {
		t.Error("expected no hover on the selected row")
	}
	if other := content.Row(0).(widget.Label); other.Background != rowBg {
		t.Errorf("expected even row background, got %v", other.Background)
	}
	if other := content.Row(2).(widget.Label); other.Background != rowBg {
		t.Errorf("expected even row background, got %v", other.Background)
	}

	if got := content.OnClick(2); got != rowClicked(2) {
		t.Errorf("expected rowClicked(2), got %v", got)
	}
}

func TestRowView_Touch(t *testing.T) {
	v := newRowView(16)
	a, b := v.touch(), v.touch()
	if b <= a {
		t.Errorf("expected increasing keys, got %d then %d", a, b)
	}
}

func TestFetchRows(t *testing.T) {
	src := newFakeSource(100)
	lim := rate.NewLimiter(rate.Inf, 1)

	msg := fetchRows(src, lim, widget.RowRange{First: 40, Last: 60})().(rowsFetchedMsg)
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if msg.first != 40 || len(msg.rows) != 20 {
		t.Errorf("expected 20 rows from 40, got %d from %d", len(msg.rows), msg.first)
	}
	if msg.rows[0].Index != 40 {
		t.Errorf("expected first index 40, got %d", msg.rows[0].Index)
	}
}

func TestFetchRows_Error(t *testing.T) {
	src := newFakeSource(10)
	src.err = errors.New("database is locked")

	msg := fetchRows(src, rate.NewLimiter(rate.Inf, 1), widget.RowRange{First: 0, Last: 5})().(rowsFetchedMsg)
	if msg.err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadRowCount(t *testing.T) {
	src := newFakeSource(42)
	src.version = 7

	msg := loadRowCount(src)().(rowCountMsg)
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if msg.count != 42 || msg.version != 7 {
		t.Errorf("expected 42 rows at version 7, got %d at %d", msg.count, msg.version)
	}
}
