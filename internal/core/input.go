package core

// Action is a semantic input intent, abstracted from physical key presses.
// Rounds react to actions; the platform owns the key bindings.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - move left
	ActionRight        // D, Right arrow - move right
	ActionUp           // W, Up arrow - move/climb up
	ActionDown         // S, Down arrow - move/climb down
	ActionPress        // Space - the primary "do it" action
	ActionBack         // Esc - leave the current screen
	ActionQuit         // Q, Ctrl+C - abandon the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPress:
		return "Press"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input that arrived during a single tick.
// Actions are deduplicated; Runes keeps the raw printable keys in arrival
// order for rounds that care about letters rather than directions.
type InputFrame struct {
	Actions map[Action]bool
	Runes   []rune
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

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Any reports whether any action at all was triggered this frame.
// Rune input counts: a round that punishes "touching anything" must not
// be cheatable by typing letters.
func (f InputFrame) Any() bool {
	return len(f.Actions) > 0 || len(f.Runes) > 0
}

// Type appends a printable rune to the frame.
func (f *InputFrame) Type(r rune) {
	f.Runes = append(f.Runes, r)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}

// Clone returns an independent copy of this frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Runes = append(clone.Runes, f.Runes...)
	return clone
}
