package player

import (
	"math"
	"time"
)

// Clock tracks the adaptive pacing state for one playback session.
//
// The target interval is fixed at 1/rate. The current interval starts at
// the target and relaxes under sustained overload: each lag event folds
// the overshoot into an online average, and the result is clamped so it
// never falls below the target. The clock is owned by the consumer
// goroutine and is not safe for concurrent use.
type Clock struct {
	rate    float64
	target  time.Duration
	current time.Duration
	lags    int
	epoch   time.Time
}

// NewClock creates a clock for the given source frame rate.
func NewClock(rate float64) *Clock {
	target := time.Duration(float64(time.Second) / rate)
	return &Clock{rate: rate, target: target, current: target}
}

// Start marks the session epoch. Elapsed time and drift are measured from
// this instant.
func (c *Clock) Start(now time.Time) {
	c.epoch = now
}

// Elapsed returns the wall-clock time since the session epoch.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	return now.Sub(c.epoch)
}

// CalculatedFrame returns the frame index the session should be showing
// at the given instant: round(rate × elapsed seconds).
func (c *Clock) CalculatedFrame(now time.Time) int {
	return int(math.Round(c.rate * c.Elapsed(now).Seconds()))
}

// Target returns the fixed source frame interval.
func (c *Clock) Target() time.Duration {
	return c.target
}

// Interval returns the current pacing interval. Always ≥ Target.
func (c *Clock) Interval() time.Duration {
	return c.current
}

// Lags returns the cumulative lag event count.
func (c *Clock) Lags() int {
	return c.lags
}

// Absorb folds one iteration's cost into the pacing state and returns how
// long the consumer should sleep before the next frame. A cheap iteration
// with no backlog earns the remaining interval as sleep; anything else is
// a lag event that relaxes the current interval.
func (c *Clock) Absorb(cost time.Duration, framesBehind int) time.Duration {
	if cost < c.current && framesBehind <= 0 {
		return c.current - cost
	}

	c.lags++
	c.current = (cost - c.current) / time.Duration(c.lags)
	if c.current < c.target {
		c.current = c.target
	}
	return 0
}
