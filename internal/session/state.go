package session

import "github.com/vovakirdan/tui-match3/internal/engine"

// Phase is the session's position in the selection state machine.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseTileSelected Phase = "tile_selected"
	PhaseResolving    Phase = "resolving"
	PhaseGameOver     Phase = "game_over"
)

// State is a read-only view of a session for rendering.
type State struct {
	Phase       Phase
	Active      bool
	Score       int
	ComboStreak int
	LastCombo   int // deepest combo of the most recent chain
	TimeLeft    int
	Moves       int
	Reshuffles  int
	Selected    *engine.Pos
	Tools       Tools
	UndoDepth   int // snapshots currently available to undo
}

// OutcomeKind classifies the effect of an intent.
type OutcomeKind int

const (
	OutcomeNone       OutcomeKind = iota
	OutcomeSelected               // first tile picked
	OutcomeDeselected             // same tile picked again
	OutcomeReselected             // non-adjacent tile picked, selection moved
	OutcomeRejected               // swap produced no match and was reverted
	OutcomeCommitted              // swap kept and cascade resolved
	OutcomeExploded               // explode power-up cleared a block
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCommitted:
		return "committed"
	case OutcomeExploded:
		return "exploded"
	default:
		return "none"
	}
}

// Outcome is returned by every board intent.
type Outcome struct {
	Kind    OutcomeKind
	From    engine.Pos
	To      engine.Pos
	Forced  bool         // swap bypassed the match requirement
	Cleared []engine.Pos // cells emptied by an explosion
	Report  engine.Report
}

// ScoreGain is the points earned by the intent.
func (o Outcome) ScoreGain() int {
	return o.Report.ScoreGain
}
