package tui

import (
	"testing"
	"time"
)

func TestTickClock(t *testing.T) {
	var c tickClock
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	if d := c.Elapsed(start); d != 0 {
		t.Errorf("first Elapsed() = %v, expected 0", d)
	}
	if d := c.Elapsed(start.Add(20 * time.Millisecond)); d != 20*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 20ms", d)
	}

	// A clock going backwards never yields a negative step
	if d := c.Elapsed(start); d != 0 {
		t.Errorf("Elapsed() backwards = %v, expected 0", d)
	}

	c.Reset()
	if d := c.Elapsed(start.Add(time.Second)); d != 0 {
		t.Errorf("Elapsed() after Reset = %v, expected 0", d)
	}
}
