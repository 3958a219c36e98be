package scroll

import (
	"math"
	"time"

	"github.com/xonecas/vscroll/internal/geom"
)

// Kinetic is the momentum left after a touch pan ends.
type Kinetic struct {
	Velocity geom.Vector // px/s in offset space
	last     time.Time
}

// Active reports whether either component is faster than minVelocity.
func (k Kinetic) Active(minVelocity float64) bool {
	return math.Abs(k.Velocity.X) > minVelocity || math.Abs(k.Velocity.Y) > minVelocity
}

// Halt drops all momentum.
func (k *Kinetic) Halt() {
	k.Velocity = geom.Vector{}
	k.last = time.Time{}
}

// Release starts coasting at velocity from now.
func (k *Kinetic) Release(velocity geom.Vector, now time.Time) {
	k.Velocity = velocity
	k.last = now
}

// Smooth blends a new velocity sample into the current one.
// weight is the share of the new sample.
func (k *Kinetic) Smooth(sample geom.Vector, weight float64) {
	k.Velocity.X = k.Velocity.X*(1-weight) + sample.X*weight
	k.Velocity.Y = k.Velocity.Y*(1-weight) + sample.Y*weight
}

// Advance integrates one tick ending at now. apply scrolls by the given
// delta and returns how far the offsets actually moved. An axis that did not
// move loses its velocity. Advance reports whether anything moved.
func (k *Kinetic) Advance(now time.Time, t Tuning, apply func(geom.Vector) geom.Vector) bool {
	if math.Abs(k.Velocity.X) < t.MinVelocity && math.Abs(k.Velocity.Y) < t.MinVelocity {
		k.Halt()
		return false
	}

	dt := t.FirstTick.Seconds()
	if !k.last.IsZero() {
		dt = now.Sub(k.last).Seconds()
	}
	if dt <= 0 {
		return false
	}
	k.last = now

	moved := apply(k.Velocity.Scale(dt))

	decay := math.Exp(-t.Friction * dt)
	k.Velocity = k.Velocity.Scale(decay)
	if moved.X == 0 {
		k.Velocity.X = 0
	}
	if moved.Y == 0 {
		k.Velocity.Y = 0
	}

	return !moved.IsZero()
}
