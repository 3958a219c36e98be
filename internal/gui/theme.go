package gui

import (
	"image/color"

	"github.com/xonecas/vscroll/internal/store"
)

// Palette, shared with the terminal host.
var (
	ColorBackground = color.RGBA{R: 0x08, G: 0x08, B: 0x0F, A: 0xFF}
	ColorRowAlt     = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
	ColorSurface    = color.RGBA{R: 0x14, G: 0x14, B: 0x1F, A: 0xFF}
	ColorPrimary    = color.RGBA{R: 0x9D, G: 0x00, B: 0xFF, A: 0xFF}
	ColorAccent     = color.RGBA{R: 0x00, G: 0xFF, B: 0xCC, A: 0xFF}
	ColorSelected   = color.RGBA{R: 0x6B, G: 0x00, B: 0xB3, A: 0xFF}
	ColorHover      = color.RGBA{R: 0x2A, G: 0x2A, B: 0x55, A: 0xFF}
	ColorText       = color.RGBA{R: 0xC8, G: 0xC8, B: 0xE0, A: 0xFF}
	ColorTextMuted  = color.RGBA{R: 0x55, G: 0x55, B: 0xAA, A: 0xFF}
	ColorError      = color.RGBA{R: 0xFF, G: 0x33, B: 0x66, A: 0xFF}

	colorDebug = color.RGBA{R: 0x00, G: 0xCC, B: 0xFF, A: 0xFF}
	colorInfo  = color.RGBA{R: 0x00, G: 0xFF, B: 0x66, A: 0xFF}
	colorWarn  = color.RGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF}
)

// Sizes in pixels.
const (
	StatusBarHeight = 22.0
	FontSize        = 12.0
	RowPadding      = 8.0
)

func levelColor(level store.Level) color.Color {
	switch level {
	case store.LevelDebug:
		return colorDebug
	case store.LevelInfo:
		return colorInfo
	case store.LevelWarn:
		return colorWarn
	case store.LevelError:
		return ColorError
	default:
		return ColorText
	}
}
