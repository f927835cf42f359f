// Package timing measures per-frame wall-clock durations for the
// application shell. The simulation core only ever consumes the
// resulting seconds value.
package timing

import "time"

// Clock hands out elapsed time between successive ticks.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock returns a clock primed at the current instant.
func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.last = c.now()
	return c
}

// Tick returns the seconds elapsed since the previous Tick (or since
// NewClock for the first call) and restarts the interval.
func (c *Clock) Tick() float64 {
	now := c.now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
