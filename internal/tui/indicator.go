package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Activity is what the list is busy with.
type Activity int

const (
	ActivityIdle   Activity = iota
	ActivityFetch           // Reading rows from the store
	ActivityScroll          // Animating or following a gesture
)

// Indicator is a bouncing progress bar shown while the list is busy.
type Indicator struct {
	activity  Activity
	position  int // Current position of the "ball" (0-width)
	direction int // 1 = right, -1 = left
	width     int // Width of the indicator bar
}

// IndicatorTickMsg is sent to animate the indicator.
type IndicatorTickMsg time.Time

// NewIndicator creates a new activity indicator.
func NewIndicator() Indicator {
	return Indicator{
		activity:  ActivityIdle,
		direction: 1,
		width:     8,
	}
}

// SetActivity sets the current activity.
func (n *Indicator) SetActivity(activity Activity) {
	n.activity = activity
}

// Activity returns the current activity.
func (n Indicator) Activity() Activity {
	return n.activity
}

// Update handles tick messages for animation.
func (n Indicator) Update(msg tea.Msg) (Indicator, tea.Cmd) {
	switch msg.(type) {
	case IndicatorTickMsg:
		if n.activity != ActivityIdle {
			n.position += n.direction

			// Bounce at edges
			if n.position >= n.width-1 {
				n.position = n.width - 1
				n.direction = -1
			} else if n.position <= 0 {
				n.position = 0
				n.direction = 1
			}
		}
		return n, n.tick()
	}
	return n, nil
}

func (n Indicator) tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return IndicatorTickMsg(t)
	})
}

// Init starts the indicator animation.
func (n Indicator) Init() tea.Cmd {
	return n.tick()
}

// View renders the indicator.
func (n Indicator) View() string {
	const (
		barEmpty  = "░"
		barFilled = "█"
		barLeft   = "▐"
		barRight  = "▌"
	)

	var style lipgloss.Style
	var label string

	switch n.activity {
	case ActivityIdle:
		style = lipgloss.NewStyle().Foreground(colorMuted)
		return style.Render("⬦ IDLE  " + barLeft + strings.Repeat(barEmpty, n.width) + barRight)
	case ActivityFetch:
		style = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
		label = "⬥ FETCH"
	case ActivityScroll:
		style = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
		label = "⬥ SCROL"
	}

	var bar strings.Builder
	bar.WriteString(barLeft)
	for i := 0; i < n.width; i++ {
		// A 3-char wide "ball" that bounces
		if i >= n.position-1 && i <= n.position+1 {
			bar.WriteString(barFilled)
		} else {
			bar.WriteString(barEmpty)
		}
	}
	bar.WriteString(barRight)

	return style.Render(label + " " + bar.String())
}
