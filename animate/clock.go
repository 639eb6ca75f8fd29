// Package animate advances the reveal progress of a scene from an
// externally owned clock. The core never blocks or awaits; callers
// sample elapsed time and feed deltas in.
package animate

import "time"

// DefaultTimeScale divides elapsed milliseconds so that speed 1.0
// reveals one primitive per 100ms.
const DefaultTimeScale = 100.0

// Clock converts elapsed wall time into progress increments.
type Clock struct {
	// TimeScale is the elapsed-millisecond divisor. Zero falls back to
	// DefaultTimeScale.
	TimeScale float64
	// Speed is the animation speed multiplier. Negative speeds are
	// treated as zero: progress never decreases on its own.
	Speed float64
}

// Advance returns the new progress after elapsed time, clamped to
// [progress, max]. Progress is monotone: the result never drops below
// the input and never exceeds the primitive count bound.
func (c Clock) Advance(progress float64, elapsed time.Duration, max int) float64 {
	timeScale := c.TimeScale
	if timeScale <= 0 {
		timeScale = DefaultTimeScale
	}
	speed := c.Speed
	if speed < 0 {
		speed = 0
	}

	millis := float64(elapsed) / float64(time.Millisecond)
	next := progress + millis/timeScale*speed
	if next < progress {
		next = progress
	}
	if bound := float64(max); next > bound {
		next = bound
	}
	return next
}
