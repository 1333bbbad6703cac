// Package tui provides the Bubble Tea integration for Sneaky.
// It handles the terminal UI loop, input mapping, the tick driver and
// rendering of the landing screen, the board and the results table.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg struct {
	gen uint64
	At  time.Time
}

// Clock drives the simulation with periodic TickMsgs.
//
// Each Start or Stop bumps the generation. A TickMsg carries the generation
// it was scheduled under, and only a message of the current generation from
// a running clock is accepted. A stale message is dropped without scheduling
// another one, so a stopped clock goes quiet after at most one in-flight tick.
type Clock struct {
	interval time.Duration
	gen      uint64
	running  bool
}

// NewClock creates a stopped clock with the given tick interval.
func NewClock(interval time.Duration) Clock {
	return Clock{interval: interval}
}

// Interval returns the time between ticks.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	return c.running
}

// Start starts the clock and returns the command for the first tick.
// Returns nil if the clock is already running.
func (c *Clock) Start() tea.Cmd {
	if c.running {
		return nil
	}
	c.running = true
	c.gen++
	return c.Next()
}

// Stop stops the clock. Ticks already scheduled become stale.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.gen++
}

// Accept reports whether msg belongs to the current run of the clock.
func (c *Clock) Accept(msg TickMsg) bool {
	return c.running && msg.gen == c.gen
}

// Next schedules the following tick of the current run.
func (c *Clock) Next() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{gen: gen, At: t}
	})
}
