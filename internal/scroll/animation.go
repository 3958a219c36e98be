package scroll

import (
	"math"
	"time"
)

// Animation moves a boolean toward its target over a fixed duration. Its
// progress is a value in [0, 1] where 1 means true. Retargeting mid-flight
// continues from the current progress.
type Animation struct {
	target   bool
	from     float64
	start    time.Time
	duration time.Duration
}

// NewAnimation returns an animation resting at initial.
func NewAnimation(initial bool, duration time.Duration) Animation {
	from := 0.0
	if initial {
		from = 1
	}
	return Animation{target: initial, from: from, duration: duration}
}

// Target returns the value the animation is heading to.
func (a Animation) Target() bool { return a.target }

// Go starts moving toward target at now. It is a no-op when already heading there.
func (a *Animation) Go(target bool, now time.Time) {
	if target == a.target {
		return
	}
	a.from = a.Value(now)
	a.target = target
	a.start = now
}

// Value returns the progress toward true at now.
func (a Animation) Value(now time.Time) float64 {
	goal := 0.0
	if a.target {
		goal = 1
	}
	if a.duration <= 0 || a.start.IsZero() {
		return goal
	}

	// Partial transitions take proportionally less time.
	span := math.Abs(goal - a.from)
	if span == 0 {
		return goal
	}
	total := time.Duration(float64(a.duration) * span)
	elapsed := now.Sub(a.start)
	if elapsed >= total {
		return goal
	}
	if elapsed <= 0 {
		return a.from
	}
	t := float64(elapsed) / float64(total)
	return a.from + (goal-a.from)*t
}

// IsAnimating reports whether the value is still moving at now.
func (a Animation) IsAnimating(now time.Time) bool {
	goal := 0.0
	if a.target {
		goal = 1
	}
	return a.Value(now) != goal
}

// Interpolate maps the progress at now onto [lo, hi].
func (a Animation) Interpolate(lo, hi float64, now time.Time) float64 {
	return lo + (hi-lo)*a.Value(now)
}

// EaseOutCubic decelerates toward t = 1.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// ScrollTo is an in-flight animated scroll between two absolute offsets.
type ScrollTo struct {
	Start  AbsoluteOffset
	Target AbsoluteOffset
	anim   Animation
}

// NewScrollTo starts an animation from start to target at now.
func NewScrollTo(start, target AbsoluteOffset, now time.Time, duration time.Duration) *ScrollTo {
	anim := NewAnimation(false, duration)
	anim.Go(true, now)
	return &ScrollTo{Start: start, Target: target, anim: anim}
}

// Position returns the eased offset at now and whether the animation has finished.
// A finished animation reports exactly Target.
func (s *ScrollTo) Position(now time.Time) (AbsoluteOffset, bool) {
	if !s.anim.IsAnimating(now) {
		return s.Target, true
	}
	eased := EaseOutCubic(s.anim.Interpolate(0, 1, now))
	return AbsoluteOffset{
		X: s.Start.X + (s.Target.X-s.Start.X)*eased,
		Y: s.Start.Y + (s.Target.Y-s.Start.Y)*eased,
	}, false
}
