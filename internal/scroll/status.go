package scroll

// StatusKind is the coarse state used for styling.
type StatusKind int

const (
	StatusActive StatusKind = iota
	StatusHovered
	StatusDragged
)

func (k StatusKind) String() string {
	switch k {
	case StatusHovered:
		return "hovered"
	case StatusDragged:
		return "dragged"
	default:
		return "active"
	}
}

// Status tells a style how to draw the scrollbars.
type Status struct {
	Kind StatusKind
	// HoverFactor fades from 0 to 1 while the pointer is over the container.
	HoverFactor float64

	VerticalHovered   bool
	HorizontalHovered bool
	VerticalDragged   bool
	HorizontalDragged bool

	VerticalDisabled   bool
	HorizontalDisabled bool
}
