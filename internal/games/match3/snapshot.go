package match3

import "github.com/vovakirdan/tui-match3/internal/session"

// Snapshot captures the observable game state for determinism tests and
// replays.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Phase     session.Phase
	Score     int
	TimeLeft  int
	Moves     int
	MaxCombo  int
	CursorRow int
	CursorCol int
	BoardHash uint64
	Board     string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.sess.State()
	board := g.sess.Board()
	return Snapshot{
		Tick:      g.tick,
		Variant:   string(g.variant),
		Phase:     st.Phase,
		Score:     st.Score,
		TimeLeft:  st.TimeLeft,
		Moves:     st.Moves,
		MaxCombo:  g.maxCombo,
		CursorRow: g.cursor.Row,
		CursorCol: g.cursor.Col,
		BoardHash: board.Hash(),
		Board:     board.String(),
	}
}
