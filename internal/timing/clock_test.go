package timing

import (
	"testing"
	"time"
)

func TestTickReturnsInterval(t *testing.T) {
	current := time.Unix(0, 0)
	c := &Clock{now: func() time.Time { return current }}
	c.last = current

	current = current.Add(16 * time.Millisecond)
	dt := c.Tick()

	if dt != 0.016 {
		t.Errorf("expected 0.016, got %f", dt)
	}

	// Interval restarts: a second immediate tick sees no elapsed time.
	if dt := c.Tick(); dt != 0 {
		t.Errorf("expected 0 after restart, got %f", dt)
	}
}

func TestNewClockIsPrimed(t *testing.T) {
	c := NewClock()
	if dt := c.Tick(); dt < 0 || dt > 1 {
		t.Errorf("first tick out of range: %f", dt)
	}
}
