package app

import (
	"testing"
	"time"

	"quadspin/internal/config"
)

// TestWaitUncapped verifies a zero FPS limit never blocks the loop.
func TestWaitUncapped(t *testing.T) {
	config.SetFPSLimit(0)
	f := NewFPSLimiter()

	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("100 uncapped waits took %v, expected near-zero", elapsed)
	}
}

func TestFrameClockTrack(t *testing.T) {
	var c frameClock
	c.beginFrame()

	func() {
		defer c.track(&c.renderDur)()
		time.Sleep(2 * time.Millisecond)
	}()

	if c.renderDur < time.Millisecond {
		t.Errorf("tracked render duration = %v, want >= 1ms", c.renderDur)
	}
	if c.total() < c.renderDur {
		t.Errorf("frame total %v shorter than tracked phase %v", c.total(), c.renderDur)
	}
}
