package core

// Action represents a logical game command, abstracted from physical key presses.
// Input sources (keyboard, autopilot) produce actions; the game consumes them.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveUp             // W, Up arrow, K
	ActionMoveDown           // S, Down arrow, J
	ActionMoveLeft           // A, Left arrow, H
	ActionMoveRight          // D, Right arrow, L
	ActionTogglePause        // P, Escape
	ActionRestart            // R
	ActionSkin1              // 1
	ActionSkin2              // 2
	ActionSkin3              // 3
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionTogglePause:
		return "TogglePause"
	case ActionRestart:
		return "Restart"
	case ActionSkin1:
		return "Skin1"
	case ActionSkin2:
		return "Skin2"
	case ActionSkin3:
		return "Skin3"
	default:
		return "Unknown"
	}
}

// Direction returns the heading a move action requests.
// ok is false for actions that are not moves.
func (a Action) Direction() (d Direction, ok bool) {
	switch a {
	case ActionMoveUp:
		return DirUp, true
	case ActionMoveDown:
		return DirDown, true
	case ActionMoveLeft:
		return DirLeft, true
	case ActionMoveRight:
		return DirRight, true
	}
	return 0, false
}

// Skin returns the skin a skin-select action requests.
// ok is false for actions that are not skin selects.
func (a Action) Skin() (s Skin, ok bool) {
	switch a {
	case ActionSkin1:
		return SkinClassic, true
	case ActionSkin2:
		return SkinIce, true
	case ActionSkin3:
		return SkinGold, true
	}
	return 0, false
}

// MoveAction returns the move action that requests heading d.
func MoveAction(d Direction) Action {
	switch d {
	case DirUp:
		return ActionMoveUp
	case DirDown:
		return ActionMoveDown
	case DirLeft:
		return ActionMoveLeft
	case DirRight:
		return ActionMoveRight
	}
	return ActionNone
}
