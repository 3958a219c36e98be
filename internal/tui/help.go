package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

var helpItems = []helpItem{
	{"q / Ctrl+C", "Quit"},
	{"↑ / ↓  k / j", "Scroll a step"},
	{"← / →  h / l", "Scroll sideways"},
	{"PgUp / PgDn", "Scroll a page"},
	{"Home / End", "Go to top / bottom"},
	{"Wheel", "Scroll (Shift for sideways)"},
	{"Drag scrollbar", "Jump through the list"},
	{"Middle click", "Auto-scroll toward the pointer"},
	{"Click", "Select row"},
	{"Enter", "Activate selected row"},
	{":", "Jump to row"},
	{"f", "Follow new rows"},
	{"s", "Cycle scrollbar style"},
	{"Esc", "Clear selection / Cancel"},
	{"?", "Toggle help"},
}

// RenderHelp renders the help overlay.
func RenderHelp(width, height int) string {
	var lines []string
	lines = append(lines, titleStyle.Render("⌨ Keyboard & Mouse"))
	lines = append(lines, "")

	maxKeyLen := 0
	for _, item := range helpItems {
		if w := lipgloss.Width(item.key); w > maxKeyLen {
			maxKeyLen = w
		}
	}

	for _, item := range helpItems {
		key := helpKeyStyle.Render(padRight(item.key, maxKeyLen))
		desc := helpDescStyle.Render(item.desc)
		lines = append(lines, key+"  "+desc)
	}

	content := strings.Join(lines, "\n")

	// Center the help box
	box := helpStyle.Render(content)

	boxWidth := lipgloss.Width(box)
	boxHeight := lipgloss.Height(box)

	padLeft := (width - boxWidth) / 2
	padTop := (height - boxHeight) / 2

	if padLeft < 0 {
		padLeft = 0
	}
	if padTop < 0 {
		padTop = 0
	}

	leftPad := strings.Repeat(" ", padLeft)
	topPad := strings.Repeat("\n", padTop)

	boxLines := strings.Split(box, "\n")
	for i, line := range boxLines {
		boxLines[i] = leftPad + line
	}

	return topPad + strings.Join(boxLines, "\n")
}

func padRight(s string, length int) string {
	w := lipgloss.Width(s)
	if w >= length {
		return s
	}
	return s + strings.Repeat(" ", length-w)
}
