package session

// Tool identifies a one-shot power-up.
type Tool int

const (
	ToolUndo Tool = iota
	ToolForceSwap
	ToolExplode
)

// String returns a human-readable tool name.
func (t Tool) String() string {
	switch t {
	case ToolUndo:
		return "Undo"
	case ToolForceSwap:
		return "Force Swap"
	case ToolExplode:
		return "Explode"
	default:
		return "Unknown"
	}
}

// ToolState reports whether a power-up can still be used and whether it is
// waiting for a target.
type ToolState struct {
	Available bool
	Armed     bool
}

// Tools is the power-up bar. At most one tool is armed at a time.
type Tools struct {
	Undo      ToolState
	ForceSwap ToolState
	Explode   ToolState
}

func newTools() Tools {
	return Tools{
		Undo:      ToolState{Available: true},
		ForceSwap: ToolState{Available: true},
		Explode:   ToolState{Available: true},
	}
}

func (t *Tools) get(kind Tool) *ToolState {
	switch kind {
	case ToolUndo:
		return &t.Undo
	case ToolForceSwap:
		return &t.ForceSwap
	case ToolExplode:
		return &t.Explode
	}
	return nil
}

func (t *Tools) disarmAll() {
	t.Undo.Armed = false
	t.ForceSwap.Armed = false
	t.Explode.Armed = false
}

// consume marks a tool spent and disarmed.
func (t *Tools) consume(kind Tool) {
	if s := t.get(kind); s != nil {
		s.Available = false
		s.Armed = false
	}
}

// Armed returns the armed tool, if any.
func (t Tools) Armed() (Tool, bool) {
	switch {
	case t.ForceSwap.Armed:
		return ToolForceSwap, true
	case t.Explode.Armed:
		return ToolExplode, true
	}
	return 0, false
}
