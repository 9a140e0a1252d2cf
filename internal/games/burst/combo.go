package burst

import "time"

// Combo tracks the score multiplier for hits landed in quick succession.
// Times are simulation time, not wall clock.
type Combo struct {
	window     time.Duration
	max        int
	multiplier int
	lastHit    time.Duration
	hasHit     bool
}

// NewCombo creates a tracker with the given window and multiplier cap.
func NewCombo(window time.Duration, max int) Combo {
	if max < 1 {
		max = 1
	}
	return Combo{window: window, max: max, multiplier: 1}
}

// Multiplier returns the current multiplier in [1, max].
func (c *Combo) Multiplier() int {
	return c.multiplier
}

// Decay drops the multiplier back to 1 once the window since the last hit
// has elapsed.
func (c *Combo) Decay(now time.Duration) {
	if c.hasHit && now-c.lastHit > c.window {
		c.multiplier = 1
	}
}

// Hit registers a hit at now and returns the multiplier to apply to it.
func (c *Combo) Hit(now time.Duration) int {
	if c.hasHit && now-c.lastHit < c.window {
		c.multiplier = min(c.multiplier+1, c.max)
	} else {
		c.multiplier = 1
	}
	c.lastHit = now
	c.hasHit = true
	return c.multiplier
}

// Reset forgets all hits.
func (c *Combo) Reset() {
	c.multiplier = 1
	c.lastHit = 0
	c.hasHit = false
}
