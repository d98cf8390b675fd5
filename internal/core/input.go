package core

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W
	ActionConfirm        // Enter
	ActionBack           // Esc, B
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	ActionScores         // L - open the leaderboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
