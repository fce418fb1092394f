package sim

// Action is a logical input identifier. The window layer translates raw
// key events into these so the model never sees keyboard types.
type Action int

const (
	Forward Action = iota
	Back
	Left
	Right
	ZoomIn
	ZoomOut
	// Jump is reported by the input layer (space bar) but no update logic
	// consumes it; the surface walk has no vertical motion.
	Jump
)

// InputState holds the pressed/released state of every action. It is
// mutated by key events between frames and read once per tick.
type InputState struct {
	pressed map[Action]bool
}

func NewInputState() *InputState {
	return &InputState{pressed: make(map[Action]bool)}
}

// Set records a press (down=true) or release (down=false) for an action.
func (s *InputState) Set(a Action, down bool) {
	s.pressed[a] = down
}

// Pressed reports whether the action is currently held.
func (s *InputState) Pressed(a Action) bool {
	return s.pressed[a]
}
