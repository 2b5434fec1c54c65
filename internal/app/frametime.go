package app

import "time"

// frameClock measures per-frame phase durations for the slow-frame log.
type frameClock struct {
	frameStart time.Time

	updateDur  time.Duration
	renderDur  time.Duration
	presentDur time.Duration
}

// beginFrame resets the frame timer. Call at the start of each tick.
func (c *frameClock) beginFrame() {
	c.frameStart = time.Now()
}

// track returns a stop function that records the elapsed time into dst.
// Usage: defer c.track(&c.renderDur)()
func (c *frameClock) track(dst *time.Duration) func() {
	start := time.Now()
	return func() {
		*dst = time.Since(start)
	}
}

// total returns the time spent in the current frame so far.
func (c *frameClock) total() time.Duration {
	return time.Since(c.frameStart)
}
