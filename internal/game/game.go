// Package game implements the snake state machine: movement, hazard
// collision, growth and scoring, level-based speed scaling, and the
// pause/restart transitions. It owns no timer and draws nothing; a driver
// calls Tick at the cadence pushed to its Ticker and forwards input through
// HandleInput.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake90/internal/core"
)

// Board and scoring constants. The board geometry is fixed.
const (
	Cols = 24
	Rows = 24

	FoodReward   = 10
	LevelUpEvery = 50 // score multiple that triggers a level-up

	BaseInterval = 120 * time.Millisecond
	IntervalStep = 10 * time.Millisecond
	MinInterval  = 40 * time.Millisecond
)

// startChain is the snake after every reset, head first.
var startChain = []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

// State is the state machine's mode.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Ticker is the cadence source that drives Tick. *time.Ticker satisfies it.
type Ticker interface {
	Reset(d time.Duration)
	Stop()
}

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Config wires a Game to its collaborators. Every field is optional.
type Config struct {
	Seed   int64
	Store  HighScoreStore
	Ticker Ticker
	Logger *log.Logger
	Skin   core.Skin
}

// TickResult reports what a single Tick did.
type TickResult struct {
	Moved     bool
	Ate       bool
	LevelUp   bool
	HitHazard bool
}

// Game is the snake state machine. It is not safe for concurrent use; drivers
// funnel ticks and input through a single owner.
type Game struct {
	rng    *rand.Rand
	store  HighScoreStore
	ticker Ticker
	logger *log.Logger

	snake  []core.Point // Head at index 0
	dir    core.Direction
	food   core.Point
	hazard core.Point

	score     int
	highScore int
	level     int
	interval  time.Duration
	ticks     uint64

	state State
	skin  core.Skin
}

// New creates a game, loads the high score once and starts the first round.
// The ticker, if any, is armed at BaseInterval.
func New(cfg Config) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	skin := cfg.Skin
	if !skin.Valid() {
		skin = core.SkinClassic
	}

	g := &Game{
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		store:  cfg.Store,
		ticker: cfg.Ticker,
		logger: logger,
		skin:   skin,
	}
	g.highScore = g.loadHighScore()
	g.reset()
	return g
}

// reset puts every round-scoped field back to its initial value.
// Skin and high score survive.
func (g *Game) reset() {
	g.snake = append(make([]core.Point, 0, 64), startChain...)
	g.dir = core.DirRight
	g.score = 0
	g.level = 1
	g.interval = BaseInterval
	g.ticks = 0
	g.state = StateRunning

	g.spawnHazard()
	g.spawnFood()

	if g.ticker != nil {
		g.ticker.Reset(g.interval)
	}
}

// Tick advances the simulation by one step. It does nothing unless the game
// is running.
func (g *Game) Tick() TickResult {
	if g.state != StateRunning {
		return TickResult{}
	}

	newHead := g.snake[0].Add(g.dir.Delta())

	// Hazard wins over everything else, and nothing else changes.
	if newHead == g.hazard {
		g.state = StateGameOver
		if g.ticker != nil {
			g.ticker.Stop()
		}
		g.logger.Debug("hazard hit", "score", g.score, "level", g.level, "ticks", g.ticks)
		return TickResult{HitHazard: true}
	}

	g.ticks++

	// No wall or self collision: the head is always prepended.
	g.snake = append(g.snake, core.Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead

	res := TickResult{Moved: true}
	if newHead != g.food {
		g.snake = g.snake[:len(g.snake)-1]
		return res
	}

	res.Ate = true
	g.score += FoodReward
	if g.score > g.highScore {
		g.highScore = g.score
		g.saveHighScore()
	}
	g.spawnFood()
	res.LevelUp = g.checkLevelUp()
	return res
}

// checkLevelUp bumps the level on every LevelUpEvery points and pushes the
// shorter interval to the ticker.
func (g *Game) checkLevelUp() bool {
	if g.score%LevelUpEvery != 0 {
		return false
	}
	g.level++
	g.interval = IntervalForLevel(g.level)
	if g.ticker != nil {
		g.ticker.Reset(g.interval)
	}
	g.logger.Debug("level up", "level", g.level, "interval", g.interval)
	return true
}

// IntervalForLevel returns the tick interval for a level:
// 120ms minus 10ms per level gained, floored at 40ms.
func IntervalForLevel(level int) time.Duration {
	d := BaseInterval - time.Duration(level-1)*IntervalStep
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// HandleInput applies a logical command. It reports whether the command was
// accepted; rejected and unknown commands are ignored.
func (g *Game) HandleInput(a core.Action) bool {
	if d, ok := a.Direction(); ok {
		return g.steer(d)
	}
	if s, ok := a.Skin(); ok {
		g.skin = s
		return true
	}

	switch a {
	case core.ActionTogglePause:
		return g.togglePause()
	case core.ActionRestart:
		g.Restart()
		return true
	}
	return false
}

// steer changes the pending direction unless d is the exact opposite of it.
func (g *Game) steer(d core.Direction) bool {
	if g.state != StateRunning {
		return false
	}
	if d == g.dir.Opposite() {
		return false
	}
	g.dir = d
	return true
}

func (g *Game) togglePause() bool {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
	case StatePaused:
		g.state = StateRunning
	default:
		return false
	}
	return true
}

// Restart resets the round from any state and re-arms the ticker.
func (g *Game) Restart() {
	g.reset()
	g.logger.Debug("restart", "high_score", g.highScore)
}

// spawnHazard places the hazard off the snake and off the cell the head is
// about to enter.
func (g *Game) spawnHazard() {
	ahead := g.snake[0].Add(g.dir.Delta())
	g.hazard = g.randomFreeCell(func(p core.Point) bool {
		return p == ahead
	})
}

// spawnFood places food uniformly on a cell that holds neither the snake nor
// the hazard.
func (g *Game) spawnFood() {
	g.food = g.randomFreeCell(func(p core.Point) bool {
		return p == g.hazard
	})
}

// randomFreeCell picks a uniform random board cell not covered by the snake
// and not rejected by blocked. If the board is full it falls back to any cell.
func (g *Game) randomFreeCell(blocked func(core.Point) bool) core.Point {
	occupied := make(map[core.Point]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	free := make([]core.Point, 0, Cols*Rows)
	for y := range Rows {
		for x := range Cols {
			p := core.Point{X: x, Y: y}
			if !occupied[p] && !blocked(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return core.Point{X: g.rng.Intn(Cols), Y: g.rng.Intn(Rows)}
	}
	return free[g.rng.Intn(len(free))]
}

func (g *Game) loadHighScore() int {
	if g.store == nil {
		return 0
	}
	score, err := g.store.Load()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.highScore); err != nil {
		g.logger.Warn("could not save high score", "score", g.highScore, "error", err)
	}
}

// State returns the current mode.
func (g *Game) State() State { return g.state }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.state == StatePaused }

// GameOver reports whether the hazard has been hit.
func (g *Game) GameOver() bool { return g.state == StateGameOver }

// Score returns the current round's score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen by this process, including the
// value loaded at construction.
func (g *Game) HighScore() int { return g.highScore }

// Level returns the current speed tier, starting at 1.
func (g *Game) Level() int { return g.level }

// Interval returns the tick interval for the current level.
func (g *Game) Interval() time.Duration { return g.interval }

// Direction returns the pending heading applied on the next tick.
func (g *Game) Direction() core.Direction { return g.dir }

// Skin returns the selected cosmetic skin.
func (g *Game) Skin() core.Skin { return g.skin }

// Food returns the food position.
func (g *Game) Food() core.Point { return g.food }

// Hazard returns the hazard position.
func (g *Game) Hazard() core.Point { return g.hazard }

// Ticks returns the number of moves made this round.
func (g *Game) Ticks() uint64 { return g.ticks }

// Snake returns a copy of the snake, head first.
func (g *Game) Snake() []core.Point {
	out := make([]core.Point, len(g.snake))
	copy(out, g.snake)
	return out
}
