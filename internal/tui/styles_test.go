package tui

import (
	"image/color"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/vscroll/internal/store"
)

func TestFormatRow(t *testing.T) {
	r := &store.Row{
		Index:     1234,
		Level:     store.LevelWarn,
		Message:   "slow response #1234",
		CreatedAt: testTime().Add(90 * time.Second),
	}

	want := "   1234 10:01:30 WARN  slow response #1234"
	if got := formatRow(r); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	got := rgb(colorBrand)
	if want := (color.RGBA{R: 0x9D, G: 0x00, B: 0xFF, A: 0xFF}); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if back := hex(got); back != colorBrand {
		t.Errorf("expected %s, got %s", colorBrand, back)
	}

	if got := rgb(lipgloss.Color("212")); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("expected black for a non-hex color, got %v", got)
	}
}

func TestLevelColor(t *testing.T) {
	tests := []struct {
		level store.Level
		want  lipgloss.Color
	}{
		{store.LevelDebug, colorDebug},
		{store.LevelInfo, colorInfo},
		{store.LevelWarn, colorWarn},
		{store.LevelError, colorError},
		{store.Level("trace"), colorText},
	}
	for _, tt := range tests {
		if got := LevelColor(tt.level); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.level, tt.want, got)
		}
	}
}

func TestRenderSectionTitle(t *testing.T) {
	for _, width := range []int{10, 40, 80} {
		if got := lipgloss.Width(renderSectionTitle("VSCROLL", width)); got > width {
			t.Errorf("width %d: title is %d columns wide", width, got)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("日本語", 5); got != "日本" {
		t.Errorf("expected %q, got %q", "日本", got)
	}
	if got := truncateToWidth("abc", 0); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
