// Package loop drives a game in real time without a terminal. One goroutine
// owns the game and selects over the tick clock, queued actions and the
// context, so the state machine never sees concurrent calls.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/game"
)

// Clock is a resettable tick source. The game resets and stops it; the loop
// receives from C.
type Clock interface {
	game.Ticker
	C() <-chan time.Time
}

// timeClock adapts *time.Ticker to Clock.
type timeClock struct {
	t *time.Ticker
}

// NewClock returns a Clock backed by a stdlib ticker started at d.
func NewClock(d time.Duration) Clock {
	return &timeClock{t: time.NewTicker(d)}
}

func (c *timeClock) C() <-chan time.Time    { return c.t.C }
func (c *timeClock) Reset(d time.Duration) { c.t.Reset(d) }
func (c *timeClock) Stop()                 { c.t.Stop() }

// Options configures Run.
type Options struct {
	// Game is passed to game.New; its Ticker field is replaced by Clock.
	Game game.Config

	// Clock drives ticks. Nil means a real ticker.
	Clock Clock

	// Actions are applied between ticks in arrival order. May be nil.
	Actions <-chan core.Action

	// Autopilot, if set, is consulted before every tick.
	Autopilot func(game.Snapshot) core.Action

	// OnTick observes every tick that moved or ended the round.
	OnTick func(game.Snapshot, game.TickResult)

	// ExitOnGameOver returns as soon as the hazard is hit.
	ExitOnGameOver bool

	Logger *log.Logger
}

// Run plays until ctx is done, or until game over when ExitOnGameOver is set.
// It returns the final snapshot and ctx.Err() if the context ended the run.
func Run(ctx context.Context, opts Options) (game.Snapshot, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := opts.Clock
	if clock == nil {
		clock = NewClock(game.BaseInterval)
	}
	defer clock.Stop()

	cfg := opts.Game
	cfg.Ticker = clock
	if cfg.Logger == nil {
		cfg.Logger = logger
	}
	g := game.New(cfg)

	actions := opts.Actions
	logger.Info("loop started", "interval", g.Interval(), "high_score", g.HighScore())

	for {
		select {
		case <-ctx.Done():
			snap := g.Snapshot()
			logger.Info("loop stopped", "score", snap.Score, "level", snap.Level, "ticks", snap.Ticks)
			return snap, ctx.Err()

		case a, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			g.HandleInput(a)

		case <-clock.C():
			if opts.Autopilot != nil {
				if a := opts.Autopilot(g.Snapshot()); a != core.ActionNone {
					g.HandleInput(a)
				}
			}

			res := g.Tick()
			if !res.Moved && !res.HitHazard {
				continue
			}
			if opts.OnTick != nil {
				opts.OnTick(g.Snapshot(), res)
			}
			if res.LevelUp {
				logger.Debug("speed up", "level", g.Level(), "interval", g.Interval())
			}
			if res.HitHazard {
				logger.Info("game over", "score", g.Score(), "high_score", g.HighScore(), "ticks", g.Ticks())
				if opts.ExitOnGameOver {
					return g.Snapshot(), nil
				}
			}
		}
	}
}
