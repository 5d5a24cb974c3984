package core

// Action represents a semantic control, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - lane up / menu up
	ActionDown           // S, Down arrow - lane down / menu down
	ActionGas            // D, Right arrow - accelerate (held)
	ActionBrake          // A, Left arrow - slow down (held)
	ActionConfirm        // Enter, Space - confirm selection in menu
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionGas:
		return "Gas"
	case ActionBrake:
		return "Brake"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Controls is the level state of every control: true while it is held down.
type Controls struct {
	Up, Down   bool
	Gas, Brake bool
	Confirm    bool
	Pause      bool
}

// Set marks the control bound to an action as held.
func (c *Controls) Set(a Action) {
	switch a {
	case ActionUp:
		c.Up = true
	case ActionDown:
		c.Down = true
	case ActionGas:
		c.Gas = true
	case ActionBrake:
		c.Brake = true
	case ActionConfirm:
		c.Confirm = true
	case ActionPause:
		c.Pause = true
	}
}

// InputSnapshot is the input consumed by one simulation tick.
// Up, Down, Confirm and Pause are edge-triggered: true only on the tick the
// control went from released to pressed. Gas and Brake are level-triggered.
type InputSnapshot struct {
	Up, Down   bool
	Gas, Brake bool
	Confirm    bool
	Pause      bool
}

// EdgeDetector turns a stream of Controls into InputSnapshots.
// It remembers the previous level state so a held control fires once.
type EdgeDetector struct {
	prev Controls
}

// Poll returns the snapshot for the current tick and remembers cur.
func (d *EdgeDetector) Poll(cur Controls) InputSnapshot {
	in := InputSnapshot{
		Up:      cur.Up && !d.prev.Up,
		Down:    cur.Down && !d.prev.Down,
		Gas:     cur.Gas,
		Brake:   cur.Brake,
		Confirm: cur.Confirm && !d.prev.Confirm,
		Pause:   cur.Pause && !d.prev.Pause,
	}
	d.prev = cur
	return in
}

// Reset forgets the previous state, so anything held fires again.
func (d *EdgeDetector) Reset() {
	d.prev = Controls{}
}
