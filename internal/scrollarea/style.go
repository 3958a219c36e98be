package scrollarea

import "image/color"

// Palette shared by the presets. Deep space background with the brand
// purple and teal.
var (
	colorBg       = color.RGBA{R: 0x08, G: 0x08, B: 0x0F, A: 0xFF}
	colorRail     = color.RGBA{R: 0x14, G: 0x14, B: 0x1F, A: 0xFF}
	colorHandle   = color.RGBA{R: 0x55, G: 0x55, B: 0xAA, A: 0xFF}
	colorHover    = color.RGBA{R: 0x6B, G: 0x00, B: 0xB3, A: 0xFF}
	colorDragged  = color.RGBA{R: 0x9D, G: 0x00, B: 0xFF, A: 0xFF}
	colorMarker   = color.RGBA{R: 0x00, G: 0xFF, B: 0xCC, A: 0xFF}
)

// Style is how a container paints itself and its scrollbars.
type Style struct {
	// Background fills the container bounds. Nil leaves it transparent.
	Background color.Color
	Rail       color.Color
	Handle     color.Color
	Hovered    color.Color
	Dragged    color.Color
	// Marker is the auto-scroll origin indicator.
	Marker color.Color

	// Thin draws the handle at MinWidth of the bar until hovered and
	// widens it with the hover factor.
	Thin     bool
	MinWidth float64
	// Floating hides the bars until hovered and fades them in.
	Floating bool
}

// Solid is an always visible rail and handle.
func Solid() Style {
	return Style{
		Background: colorBg,
		Rail:       colorRail,
		Handle:     colorHandle,
		Hovered:    colorHover,
		Dragged:    colorDragged,
		Marker:     colorMarker,
	}
}

// Thin is a narrow handle without a rail that widens on hover.
func Thin() Style {
	s := Solid()
	s.Rail = nil
	s.Thin = true
	s.MinWidth = 0.3
	return s
}

// Floating shows the bars only while the pointer is over the container.
func Floating() Style {
	s := Thin()
	s.Floating = true
	return s
}

// StyleByName maps a configuration name to a preset. Unknown names give Solid.
func StyleByName(name string) Style {
	switch name {
	case "thin":
		return Thin()
	case "floating":
		return Floating()
	}
	return Solid()
}

// handleColor picks the handle color for an axis.
func (s Style) handleColor(hovered, dragged bool) color.Color {
	switch {
	case dragged && s.Dragged != nil:
		return s.Dragged
	case hovered && s.Hovered != nil:
		return s.Hovered
	}
	return s.Handle
}

// fade scales the alpha of c by f in [0,1].
func fade(c color.Color, f float64) color.Color {
	if c == nil {
		return nil
	}
	if f >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * max(f, 0))
	return n
}
