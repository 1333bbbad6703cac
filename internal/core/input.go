package core

// Action represents a semantic intent, abstracted from physical key presses.
// Any input source (keyboard, SSH session, tests) produces Actions.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow
	ActionDown              // S, J, Down arrow
	ActionLeft              // A, H, Left arrow
	ActionRight             // D, L, Right arrow
	ActionConfirm           // Enter - start a round from the landing screen
	ActionRestart           // R - new game
	ActionBack              // Esc - quit the round back to the landing screen
	ActionScoreboard        // Tab - show best results
	ActionQuit              // Ctrl+C - exit the program
	ActionScreenshot        // Ctrl+S - save the board as text
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is one of the four movement intents.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
