package core

import "time"

// Clock turns monotonically increasing clock readings into per-tick deltas.
// The scheduler feeds it the time of each tick; the first reading yields 0.
type Clock struct {
	last    time.Time
	started bool
}

// Advance records now and returns the time elapsed since the previous call.
// Overrunning ticks simply produce a larger delta; nothing is capped.
func (c *Clock) Advance(now time.Time) time.Duration {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the last reading so the next Advance yields 0.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
