package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xonecas/vscroll/internal/geom"
)

func TestKineticConvergesToGeometricSum(t *testing.T) {
	tuning := DefaultTuning()
	const frame = 16 * time.Millisecond
	const v0 = 100.0

	var k Kinetic
	k.Release(vec(0, v0), at(0))

	var travelled geom.Vector
	apply := func(d geom.Vector) geom.Vector {
		travelled = travelled.Add(d)
		return d
	}

	ticks := 0
	for k.Active(tuning.MinVelocity) {
		ticks++
		if ticks > 1000 {
			t.Fatal("kinetic scrolling never settled")
		}
		k.Advance(at(time.Duration(ticks)*frame), tuning, apply)
	}

	dt := frame.Seconds()
	r := math.Exp(-tuning.Friction * dt)
	// Smallest n with v0*r^n <= MinVelocity.
	wantTicks := int(math.Ceil(math.Log(v0/tuning.MinVelocity) / (tuning.Friction * dt)))
	want := v0 * dt * (1 - math.Pow(r, float64(wantTicks))) / (1 - r)

	assert.Equal(t, wantTicks, ticks)
	assert.InDelta(t, want, travelled.Y, 1e-9)
	assert.Zero(t, travelled.X)
}

func TestKineticStopsAtEdge(t *testing.T) {
	tuning := DefaultTuning()

	var k Kinetic
	k.Release(vec(50, 500), at(0))

	// Only the x axis can still move.
	moved := k.Advance(at(16*time.Millisecond), tuning, func(d geom.Vector) geom.Vector {
		return vec(d.X, 0)
	})
	if !moved {
		t.Fatal("expected movement on x")
	}
	if k.Velocity.Y != 0 {
		t.Errorf("expected y velocity cleared at the edge, got %v", k.Velocity.Y)
	}
	if k.Velocity.X <= 0 {
		t.Errorf("expected x velocity kept, got %v", k.Velocity.X)
	}
}

func TestKineticIgnoresNonPositiveInterval(t *testing.T) {
	tuning := DefaultTuning()

	var k Kinetic
	k.Release(vec(0, 300), at(time.Second))

	called := false
	moved := k.Advance(at(time.Second), tuning, func(d geom.Vector) geom.Vector {
		called = true
		return d
	})
	if moved || called {
		t.Error("expected no movement for a zero interval")
	}
	if k.Velocity.Y != 300 {
		t.Errorf("expected velocity untouched, got %v", k.Velocity.Y)
	}
	if math.IsNaN(k.Velocity.Y) {
		t.Error("velocity became NaN")
	}
}

func TestKineticFirstTickUsesDefaultInterval(t *testing.T) {
	tuning := DefaultTuning()
	k := Kinetic{Velocity: vec(0, 1000)}

	var got geom.Vector
	k.Advance(at(0), tuning, func(d geom.Vector) geom.Vector {
		got = d
		return d
	})
	assert.InDelta(t, 1000*tuning.FirstTick.Seconds(), got.Y, 1e-9)
}

func TestKineticSettlesBelowFloor(t *testing.T) {
	k := Kinetic{Velocity: vec(0.5, -0.9)}
	if k.Active(1) {
		t.Error("expected inactive below the velocity floor")
	}
	if k.Advance(at(0), DefaultTuning(), func(d geom.Vector) geom.Vector { return d }) {
		t.Error("expected no movement below the velocity floor")
	}
	if !k.Velocity.IsZero() {
		t.Errorf("expected velocity cleared, got %+v", k.Velocity)
	}
}
