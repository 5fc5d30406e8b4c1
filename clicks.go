package screenspace

import "time"

// ClickCounter detects double-clicks for hosts that only report presses
// and releases. Two releases of the same button count as a double-click
// when they are close enough in both time and space.
type ClickCounter struct {
	maxTime     time.Duration
	maxDistance float64

	lastButton Button
	lastPos    Vec2
	lastTime   time.Time
	lastCount  int
}

// NewClickCounter creates a counter using cfg's double-click interval and
// distance (defaults when zero).
func NewClickCounter(cfg Config) *ClickCounter {
	cfg = cfg.withDefaults()
	return &ClickCounter{
		maxTime:     cfg.DoubleClickInterval,
		maxDistance: cfg.DoubleClickDistance,
	}
}

// Record records a release of b at pos and returns the click count: 1 for
// a new sequence, 2 for a double-click. The count wraps back to 1 after
// 2, so a triple click reports 1, 2, 1. A zero timestamp uses time.Now.
func (c *ClickCounter) Record(b Button, pos Vec2, at time.Time) int {
	if at.IsZero() {
		at = time.Now()
	}
	if c.isPartOfSequence(b, pos, at) {
		c.lastCount++
		if c.lastCount > 2 {
			c.lastCount = 1
		}
	} else {
		c.lastCount = 1
	}
	c.lastButton = b
	c.lastPos = pos
	c.lastTime = at
	return c.lastCount
}

func (c *ClickCounter) isPartOfSequence(b Button, pos Vec2, at time.Time) bool {
	if c.lastCount == 0 || c.lastTime.IsZero() || b != c.lastButton {
		return false
	}
	// Negative elapsed time means the clock went backwards.
	elapsed := at.Sub(c.lastTime)
	if elapsed < 0 || elapsed > c.maxTime {
		return false
	}
	return distance(c.lastPos, pos) <= c.maxDistance
}

// Reset forgets the current click sequence.
func (c *ClickCounter) Reset() {
	c.lastCount = 0
	c.lastTime = time.Time{}
	c.lastPos = Vec2{}
}
