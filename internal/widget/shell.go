package widget

import "time"

// Shell is the host side of an update: it collects messages, redraw
// requests and event capture for one event.
type Shell interface {
	// Publish emits a message to the application.
	Publish(msg any)
	// RequestRedrawAt asks for a RedrawRequested event no later than t.
	RequestRedrawAt(t time.Time)
	// CaptureEvent stops the event from propagating further.
	CaptureEvent()
	IsCaptured() bool
	// InvalidateLayout asks the host to lay everything out again before the next draw.
	InvalidateLayout()
}

// Recorder is a Shell that records what happened. Hosts create one per event
// and act on it afterwards.
type Recorder struct {
	Messages []any

	captured    bool
	invalidated bool
	redrawAt    time.Time
}

func (r *Recorder) Publish(msg any) { r.Messages = append(r.Messages, msg) }

// RequestRedrawAt keeps the earliest request.
func (r *Recorder) RequestRedrawAt(t time.Time) {
	if r.redrawAt.IsZero() || t.Before(r.redrawAt) {
		r.redrawAt = t
	}
}

func (r *Recorder) CaptureEvent()     { r.captured = true }
func (r *Recorder) IsCaptured() bool  { return r.captured }
func (r *Recorder) InvalidateLayout() { r.invalidated = true }

// RedrawAt returns the earliest redraw request, if any.
func (r *Recorder) RedrawAt() (time.Time, bool) { return r.redrawAt, !r.redrawAt.IsZero() }

// LayoutInvalidated reports whether anything asked for a new layout.
func (r *Recorder) LayoutInvalidated() bool { return r.invalidated }

// Reset clears the recorder for the next event.
func (r *Recorder) Reset() { *r = Recorder{} }
