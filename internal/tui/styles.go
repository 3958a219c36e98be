package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xonecas/vscroll/internal/store"
)

// Colors - deep space background with the electric purple and teal accents.
var (
	colorBrand    = lipgloss.Color("#9D00FF") // Electric purple
	colorTeal     = lipgloss.Color("#00FFCC") // Bright teal
	colorBrandDim = lipgloss.Color("#6B00B3") // Dimmed purple for subtle accents

	// Level colors
	colorDebug = lipgloss.Color("#00CCFF")
	colorInfo  = lipgloss.Color("#00FF66")
	colorWarn  = lipgloss.Color("#FFCC00")
	colorError = lipgloss.Color("#FF3366")

	colorMuted = lipgloss.Color("#5555AA") // Muted purple-gray
	colorText  = lipgloss.Color("#C8C8E0")

	// Backgrounds
	colorBg      = lipgloss.Color("#08080F") // Deep space black
	colorBgAlt   = lipgloss.Color("#101018") // Slightly lighter, for zebra rows
	colorBgPanel = lipgloss.Color("#14141F") // Panel background
	colorBorder  = lipgloss.Color("#2A2A55") // Purple-tinted border
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand).
			Background(colorBgAlt)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorBrand).
			Background(colorBgPanel).
			Padding(1, 2).
			Margin(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorBgPanel).
			Foreground(colorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorBrand).
				Bold(true)
)

// Row colors handed to the widgets, which speak image/color.
var (
	rowText        = rgb(colorText)
	rowMuted       = rgb(colorMuted)
	rowBg          = rgb(colorBg)
	rowBgAlt       = rgb(colorBgAlt)
	rowHover       = rgb(colorBorder)
	rowSelected    = rgb(colorBrandDim)
	rowSelectedTxt = rgb(colorTeal)
)

// LevelColor returns the foreground color for a log level.
func LevelColor(level store.Level) lipgloss.Color {
	switch level {
	case store.LevelDebug:
		return colorDebug
	case store.LevelInfo:
		return colorInfo
	case store.LevelWarn:
		return colorWarn
	case store.LevelError:
		return colorError
	default:
		return colorText
	}
}

// rgb converts a "#RRGGBB" lipgloss color to an opaque color.RGBA.
func rgb(c lipgloss.Color) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// hex converts a color back to the "#RRGGBB" form lipgloss accepts.
func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8))
}

// renderSectionTitle renders a section title that spans the full width.
func renderSectionTitle(title string, width int) string {
	// Format: ⬧── TITLE ──⬧ with dashes filling the remaining space
	titleWithSpaces := " " + title + " "
	availableWidth := width - lipgloss.Width(titleWithSpaces) - 4
	if availableWidth < 2 {
		availableWidth = 2
	}
	leftDashes := availableWidth / 2
	rightDashes := availableWidth - leftDashes

	line := "⬧─" + strings.Repeat("─", leftDashes) + titleWithSpaces + strings.Repeat("─", rightDashes) + "─⬧"
	return panelTitleStyle.Render(truncateToWidth(line, width))
}

// truncateToWidth truncates a string to fit within maxWidth display columns.
// Uses rune-aware iteration to avoid cutting multi-byte characters.
func truncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	currentWidth := 0
	for i, r := range s {
		charWidth := lipgloss.Width(string(r))
		if currentWidth+charWidth > maxWidth {
			return s[:i]
		}
		currentWidth += charWidth
	}
	return s
}

// formatRow renders the text of one log row: index, time, level, message.
func formatRow(r *store.Row) string {
	return fmt.Sprintf("%7d %s %-5s %s", r.Index, r.CreatedAt.UTC().Format(time.TimeOnly), strings.ToUpper(string(r.Level)), r.Message)
}
