package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake90/internal/core"
	"github.com/vovakirdan/snake90/internal/game"
)

// Recorder keeps a history of finished games. storage.SQLiteStore implements it.
type Recorder interface {
	RecordGame(score, level int, ticks uint64) (int64, error)
}

// Options configures a Model.
type Options struct {
	Config   core.RuntimeConfig
	Store    game.HighScoreStore
	Recorder Recorder // Optional
	Logger   *log.Logger
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one snake session. Bubble Tea's update
// loop is the single owner of the game: ticks, frames and keys are all
// messages processed in order.
type Model struct {
	game     *game.Game
	cadence  *cadence
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	recorder Recorder
	logger   *log.Logger
	fps      int

	width, height int
	sized         bool
	recorded      bool // Whether the current game over has been recorded
	quitting      bool
}

// NewModel creates a model and starts the first round.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = core.DefaultConfig().FPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cad := &cadence{}
	g := game.New(game.Config{
		Seed:   cfg.Seed,
		Store:  opts.Store,
		Ticker: cad,
		Logger: logger,
		Skin:   cfg.Skin,
	})

	return Model{
		game:     g,
		cadence:  cad,
		screen:   NewBoardScreen(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		recorder: opts.Recorder,
		logger:   logger,
		fps:      cfg.FPS,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		sized:    cfg.ScreenW > 0 && cfg.ScreenH > 0,
	}
}

// Init starts the tick and frame loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.cadence.next(), frameCmd(m.fps))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sized = true
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case FrameMsg:
		return m, frameCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if m.game.HandleInput(action) && action == core.ActionRestart {
		m.recorded = false
	}

	// Restart re-arms the cadence; schedule the first tick of the new round.
	return m, m.cadence.next()
}

// handleTick advances the game if the tick is current.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.cadence.accept(msg) {
		return m, nil
	}

	res := m.game.Tick()
	if res.HitHazard {
		m.recordGameOver()
	}

	return m, m.cadence.next()
}

// recordGameOver saves the finished game to the history once.
func (m *Model) recordGameOver() {
	if m.recorded {
		return
	}
	m.recorded = true
	m.logger.Info("game over", "score", m.game.Score(), "level", m.game.Level(), "ticks", m.game.Ticks())

	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.RecordGame(m.game.Score(), m.game.Level(), m.game.Ticks()); err != nil {
		m.logger.Warn("could not record game", "error", err)
	}
}

// Snapshot returns the current game snapshot.
func (m Model) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sized && (m.width < MinWidth || m.height < MinHeight) {
		return tooSmallView(m.width, m.height)
	}

	DrawBoard(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
