package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake90/internal/core"
)

// KeyMap translates key presses into game actions. Quit and Help are platform
// concerns and never reach the game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Skin1   key.Binding
	Skin2   key.Binding
	Skin3   key.Binding
	Help    key.Binding
	Quit    key.Binding

	move key.Binding // help text only
	skin key.Binding // help text only
}

// DefaultKeyMap returns the default bindings: arrows, WASD and vim keys for
// movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "s", "j")),
		Left:    key.NewBinding(key.WithKeys("left", "a", "h")),
		Right:   key.NewBinding(key.WithKeys("right", "d", "l")),
		Skin1:   key.NewBinding(key.WithKeys("1")),
		Skin2:   key.NewBinding(key.WithKeys("2")),
		Skin3:   key.NewBinding(key.WithKeys("3")),
		Pause:   key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		move: key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→/wasd", "move")),
		skin: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "skin")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.Pause, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.move, k.skin},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// Action maps a key message to a game action. Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Pause):
		return core.ActionTogglePause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Skin1):
		return core.ActionSkin1
	case key.Matches(msg, k.Skin2):
		return core.ActionSkin2
	case key.Matches(msg, k.Skin3):
		return core.ActionSkin3
	}
	return core.ActionNone
}
