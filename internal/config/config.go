// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xonecas/vscroll/internal/constants"
	"github.com/xonecas/vscroll/internal/scroll"
)

// Config is the root configuration structure.
type Config struct {
	Scrollbar ScrollbarsConfig `toml:"scrollbar"`
	Behavior  BehaviorConfig   `toml:"behavior"`
	List      ListConfig       `toml:"list"`
	Terminal  TerminalConfig   `toml:"terminal"`
	Window    WindowConfig     `toml:"window"`
	Feed      FeedConfig       `toml:"feed"`
}

// ScrollbarsConfig holds one section per axis.
type ScrollbarsConfig struct {
	Vertical   ScrollbarConfig `toml:"vertical"`
	Horizontal ScrollbarConfig `toml:"horizontal"`
}

// ScrollbarConfig describes one scrollbar. A disabled bar disables scrolling on its axis.
type ScrollbarConfig struct {
	Enabled       bool    `toml:"enabled"`
	Width         float64 `toml:"width"`
	Margin        float64 `toml:"margin"`
	ScrollerWidth float64 `toml:"scroller_width"`
	Anchor        string  `toml:"anchor"`
	Embedded      bool    `toml:"embedded"`
	Spacing       float64 `toml:"spacing"`
}

// BehaviorConfig holds input and animation settings.
type BehaviorConfig struct {
	AutoScroll     bool    `toml:"auto_scroll"`
	Friction       float64 `toml:"friction"`
	LineMultiplier float64 `toml:"line_multiplier"`
	// ShiftSwapsAxes defaults to the platform convention when unset.
	ShiftSwapsAxes *bool   `toml:"shift_swaps_axes"`
	HoverMs        int     `toml:"hover_ms"`
	ScrollToMs     int     `toml:"scroll_to_ms"`
	PageOverlap    float64 `toml:"page_overlap"`
	ArrowStep      float64 `toml:"arrow_step"`
	Style          string  `toml:"style"`
}

// ListConfig sizes the demo list.
type ListConfig struct {
	Rows      int     `toml:"rows"`
	RowHeight float64 `toml:"row_height"`
}

// TerminalConfig maps terminal cells to pixels and limits row fetches.
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	FetchRate  float64 `toml:"fetch_rate"`
	FetchBurst int     `toml:"fetch_burst"`
}

// WindowConfig holds the window host settings.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// TileSize switches the window to a tiled canvas when positive.
	TileSize   float64 `toml:"tile_size"`
	CanvasSize float64 `toml:"canvas_size"`
}

// FeedConfig controls the background row appender.
type FeedConfig struct {
	Enabled    bool `toml:"enabled"`
	IntervalMs int  `toml:"interval_ms"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scrollbar: ScrollbarsConfig{
			Vertical: ScrollbarConfig{
				Enabled:       true,
				Width:         constants.DefaultScrollbarWidth,
				ScrollerWidth: constants.DefaultScrollerWidth,
				Anchor:        "start",
			},
			Horizontal: ScrollbarConfig{
				Width:         constants.DefaultScrollbarWidth,
				ScrollerWidth: constants.DefaultScrollerWidth,
				Anchor:        "start",
			},
		},
		Behavior: BehaviorConfig{
			AutoScroll:     true,
			Friction:       constants.Friction,
			LineMultiplier: constants.LineMultiplier,
			HoverMs:        int(constants.HoverDuration / time.Millisecond),
			ScrollToMs:     int(constants.ScrollToDuration / time.Millisecond),
			PageOverlap:    constants.PageOverlap,
			ArrowStep:      constants.ArrowStep,
			Style:          "solid",
		},
		List: ListConfig{
			Rows:      constants.DefaultSeedRows,
			RowHeight: 16,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			FetchRate:  30,
			FetchBurst: 4,
		},
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Title:      "vscroll",
			CanvasSize: 100_000,
		},
		Feed: FeedConfig{
			Enabled:    true,
			IntervalMs: int(constants.FeedInterval / time.Millisecond),
		},
	}
}

// Load reads configuration from a TOML file and applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Load from file if it exists
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VSCROLL_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.List.Rows = n
		}
	}

	if v := os.Getenv("VSCROLL_ROW_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.List.RowHeight = f
		}
	}

	if v := os.Getenv("VSCROLL_AUTO_SCROLL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Behavior.AutoScroll = b
		}
	}

	if v := os.Getenv("VSCROLL_FRICTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Behavior.Friction = f
		}
	}

	if v := os.Getenv("VSCROLL_STYLE"); v != "" {
		cfg.Behavior.Style = strings.ToLower(v)
	}

	if v := os.Getenv("VSCROLL_ANCHOR"); v != "" {
		cfg.Scrollbar.Vertical.Anchor = strings.ToLower(v)
	}

	if v := os.Getenv("VSCROLL_CELL_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Terminal.CellHeight = f
		}
	}

	if v := os.Getenv("VSCROLL_FEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Feed.Enabled = b
		}
	}

	if v := os.Getenv("VSCROLL_FEED_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Feed.IntervalMs = n
		}
	}
}

// Validate rejects settings the containers cannot work with.
func (c *Config) Validate() error {
	if c.List.Rows < 0 {
		return fmt.Errorf("list.rows must not be negative, got %d", c.List.Rows)
	}
	if c.List.RowHeight <= 0 {
		return fmt.Errorf("list.row_height must be positive, got %v", c.List.RowHeight)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	for name, sb := range map[string]ScrollbarConfig{"vertical": c.Scrollbar.Vertical, "horizontal": c.Scrollbar.Horizontal} {
		if _, err := parseAnchor(sb.Anchor); err != nil {
			return fmt.Errorf("scrollbar.%s: %w", name, err)
		}
	}
	return nil
}

func parseAnchor(s string) (scroll.Anchor, error) {
	switch s {
	case "", "start":
		return scroll.AnchorStart, nil
	case "end":
		return scroll.AnchorEnd, nil
	}
	return scroll.AnchorStart, fmt.Errorf("unknown anchor %q", s)
}

func (sb ScrollbarConfig) scrollbar() scroll.Scrollbar {
	anchor, _ := parseAnchor(sb.Anchor)
	return scroll.Scrollbar{
		Width:         sb.Width,
		Margin:        sb.Margin,
		ScrollerWidth: sb.ScrollerWidth,
		Anchor:        anchor,
		Embedded:      sb.Embedded,
		Spacing:       sb.Spacing,
	}
}

// Direction returns the scrolling axes for the enabled scrollbars.
func (c *Config) Direction() scroll.Direction {
	var d scroll.Direction
	if c.Scrollbar.Vertical.Enabled {
		v := c.Scrollbar.Vertical.scrollbar()
		d.Vertical = &v
	}
	if c.Scrollbar.Horizontal.Enabled {
		h := c.Scrollbar.Horizontal.scrollbar()
		d.Horizontal = &h
	}
	return d
}

// Tuning returns the scroll constants with the configured overrides applied.
func (c *Config) Tuning() scroll.Tuning {
	t := scroll.DefaultTuning()
	b := c.Behavior
	if b.Friction > 0 {
		t.Friction = b.Friction
	}
	if b.LineMultiplier > 0 {
		t.LineMultiplier = b.LineMultiplier
	}
	if b.ShiftSwapsAxes != nil {
		t.ShiftSwapsAxes = *b.ShiftSwapsAxes
	}
	if b.HoverMs >= 0 {
		t.HoverDuration = time.Duration(b.HoverMs) * time.Millisecond
	}
	if b.ScrollToMs >= 0 {
		t.ScrollToDuration = time.Duration(b.ScrollToMs) * time.Millisecond
	}
	if b.PageOverlap >= 0 {
		t.PageOverlap = b.PageOverlap
	}
	if b.ArrowStep > 0 {
		t.ArrowStep = b.ArrowStep
	}
	return t
}

// FeedInterval is the configured append interval.
func (c *Config) FeedInterval() time.Duration {
	if c.Feed.IntervalMs <= 0 {
		return constants.FeedInterval
	}
	return time.Duration(c.Feed.IntervalMs) * time.Millisecond
}

// DataDir returns the path to the vscroll data directory (~/.vscroll).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vscroll"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
