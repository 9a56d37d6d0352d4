package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-match3/internal/session"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultLeaderboardSize is how many scores are kept on screen per variant.
const DefaultLeaderboardSize = 5

// DefaultMatch3Config mirrors defaults/match3.yaml. It is used when even the
// embedded file cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:  8,
			Cols:  6,
			Types: 5,
		},
		Scoring: ScoringConfig{
			MatchScore: 10,
			ComboBonus: 5,
		},
		Timer: TimerConfig{
			InitialTime: 100,
		},
		Undo: UndoConfig{
			Policy: string(session.UndoSingleSnapshot),
			Depth:  session.DefaultUndoDepth,
		},
		Leaderboard: LeaderboardConfig{
			Size: DefaultLeaderboardSize,
		},
	}
}
