package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k
	ActionDown             // Down arrow, j
	ActionLeft             // Left arrow, h
	ActionRight            // Right arrow, l
	ActionTerminate        // Enter, Escape, q, Ctrl+C
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
	case ActionTerminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action requests a turn.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
