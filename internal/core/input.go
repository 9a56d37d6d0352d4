package core

// Action is a semantic game intent, decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow, k
	ActionDown             // S, Down arrow, j
	ActionLeft             // A, Left arrow, h
	ActionRight            // D, Right arrow, l
	ActionSelect           // Space, Enter - pick the tile under the cursor
	ActionUndo             // U
	ActionForceSwap        // F
	ActionExplode          // E
	ActionHint             // ?
	ActionStart            // Enter on the start screen
	ActionPause            // P
	ActionRestart          // R
	ActionBack             // B, Escape
	ActionQuit             // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionSelect:    "Select",
	ActionUndo:      "Undo",
	ActionForceSwap: "ForceSwap",
	ActionExplode:   "Explode",
	ActionHint:      "Hint",
	ActionStart:     "Start",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Click is a mouse press in screen coordinates.
type Click struct {
	X, Y int
}

// InputFrame collects the input for one simulation tick.
type InputFrame struct {
	// Actions triggered this frame. Order does not matter.
	Actions map[Action]bool
	// Clicks in the order they arrived.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// AddClick records a mouse press at (x, y).
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Clicks = f.Clicks[:0]
}
