package scroll

import (
	"runtime"
	"time"

	"github.com/xonecas/vscroll/internal/constants"
)

// Tuning collects the physical constants of scrolling.
type Tuning struct {
	Friction          float64
	MinVelocity       float64
	VelocitySmoothing float64
	MinTouchInterval  time.Duration
	FirstTick         time.Duration
	Frame             time.Duration

	AutoScrollDeadzone float64
	AutoScrollExponent float64

	LineMultiplier float64
	ShiftSwapsAxes bool

	HoverDuration    time.Duration
	ScrollToDuration time.Duration

	TransactionIdle    time.Duration
	TransactionTimeout time.Duration

	PageOverlap       float64
	ArrowStep         float64
	MinScrollerLength float64

	CacheEpsilon float64
	RowOverscan  int
}

// DefaultTuning returns the stock constants. Shift swaps wheel axes everywhere
// except macOS, where the system already does it.
func DefaultTuning() Tuning {
	return Tuning{
		Friction:           constants.Friction,
		MinVelocity:        constants.MinVelocity,
		VelocitySmoothing:  constants.VelocitySmoothing,
		MinTouchInterval:   constants.MinTouchInterval,
		FirstTick:          constants.FirstTickInterval,
		Frame:              constants.FrameInterval,
		AutoScrollDeadzone: constants.AutoScrollDeadzone,
		AutoScrollExponent: constants.AutoScrollExponent,
		LineMultiplier:     constants.LineMultiplier,
		ShiftSwapsAxes:     runtime.GOOS != "darwin",
		HoverDuration:      constants.HoverDuration,
		ScrollToDuration:   constants.ScrollToDuration,
		TransactionIdle:    constants.TransactionIdle,
		TransactionTimeout: constants.TransactionTimeout,
		PageOverlap:        constants.PageOverlap,
		ArrowStep:          constants.ArrowStep,
		MinScrollerLength:  constants.MinScrollerLength,
		CacheEpsilon:       constants.CacheEpsilon,
		RowOverscan:        1,
	}
}
