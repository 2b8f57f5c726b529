// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickClock measures the wall time between tick messages. Bubble Tea
// delivers ticks late under load, so games are told how much time actually
// passed instead of assuming the nominal interval.
type tickClock struct {
	last time.Time
}

// Elapsed returns the time since the previous tick, or zero for the first
// tick so the game falls back to one nominal step.
func (c *tickClock) Elapsed(now time.Time) time.Duration {
	var d time.Duration
	if !c.last.IsZero() && now.After(c.last) {
		d = now.Sub(c.last)
	}
	c.last = now
	return d
}

// Reset forgets the previous tick, e.g. after a pause or restart.
func (c *tickClock) Reset() {
	c.last = time.Time{}
}
