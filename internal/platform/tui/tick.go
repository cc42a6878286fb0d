// Package tui provides the Bubble Tea front end for snake90: the interactive
// model, key bindings, board rendering, the score browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the game by one step. Ticks from an older
// generation are stale and dropped.
type TickMsg struct {
	gen uint64
}

// FrameMsg triggers a redraw. It runs at the display rate and never moves the
// snake.
type FrameMsg time.Time

// frameCmd returns a command that sends a frame message at the given rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// cadence implements game.Ticker on top of tea.Tick. Reset and Stop bump the
// generation, which orphans any tick already in flight. At most one tick per
// generation is outstanding.
type cadence struct {
	gen       uint64
	interval  time.Duration
	running   bool
	scheduled bool // a tick for gen is in flight
}

func (c *cadence) Reset(d time.Duration) {
	c.gen++
	c.interval = d
	c.running = true
	c.scheduled = false
}

func (c *cadence) Stop() {
	c.gen++
	c.running = false
	c.scheduled = false
}

// next returns the command for the next tick, or nil if one is already in
// flight or the cadence is stopped.
func (c *cadence) next() tea.Cmd {
	if !c.running || c.scheduled {
		return nil
	}
	c.scheduled = true
	gen, d := c.gen, c.interval
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}

// accept reports whether msg belongs to the current generation and frees the
// in-flight slot when it does.
func (c *cadence) accept(msg TickMsg) bool {
	if !c.running || msg.gen != c.gen {
		return false
	}
	c.scheduled = false
	return true
}
