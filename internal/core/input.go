package core

// Action is a semantic playground action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move probe up
	ActionDown           // S, Down arrow - move probe down
	ActionLeft           // A, Left arrow - move probe left
	ActionRight          // D, Right arrow - move probe right
	ActionNext           // Tab - select the next target
	ActionPrev           // Shift+Tab - select the previous target
	ActionToggle         // C - toggle the selected target's collidable flag
	ActionRecord         // Enter - record the current probe query
	ActionReset          // R - restore the scene to its initial layout
	ActionBack           // B, Escape - go back to the scene menu
	ActionQuit           // Q, Ctrl+C - exit playground/session
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
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionToggle:
		return "Toggle"
	case ActionRecord:
		return "Record"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the one-cell movement for a direction action, and false for
// any other action.
func (a Action) Delta() (Vector2, bool) {
	switch a {
	case ActionUp:
		return Vec(0, -1), true
	case ActionDown:
		return Vec(0, 1), true
	case ActionLeft:
		return Vec(-1, 0), true
	case ActionRight:
		return Vec(1, 0), true
	}
	return Vector2{}, false
}

// InputFrame collects the actions triggered during one tick, in the order
// the keys were pressed. Repeated actions are kept.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in press order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether nothing was pressed this frame.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
