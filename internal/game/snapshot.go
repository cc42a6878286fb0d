package game

import (
	"time"

	"github.com/vovakirdan/snake90/internal/core"
)

// Snapshot is a read-only copy of everything a renderer or an input source
// needs. Mutating it has no effect on the game.
type Snapshot struct {
	Ticks     uint64
	Snake     []core.Point // Head first
	Direction core.Direction
	Food      core.Point
	Hazard    core.Point
	Score     int
	HighScore int
	Level     int
	Interval  time.Duration
	Skin      core.Skin
	State     State
}

// Head returns the first segment.
func (s Snapshot) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{}
	}
	return s.Snake[0]
}

// Paused reports whether the snapshot was taken while paused.
func (s Snapshot) Paused() bool { return s.State == StatePaused }

// GameOver reports whether the snapshot was taken after a hazard hit.
func (s Snapshot) GameOver() bool { return s.State == StateGameOver }

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     g.ticks,
		Snake:     g.Snake(),
		Direction: g.dir,
		Food:      g.food,
		Hazard:    g.hazard,
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Interval:  g.interval,
		Skin:      g.skin,
		State:     g.state,
	}
}
